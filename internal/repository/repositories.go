package repository

import (
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Comments   *CommentRepository
	Tags       *TagRepository
	Categories *CategoryRepository
}

// NewRepositories constructs the repository container on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithProvider(s.DB.Pool)
}

// NewRepositoriesWithProvider builds every repository on the same provider.
func NewRepositoriesWithProvider(db ConnProvider) *Repositories {
	return &Repositories{
		Comments:   NewCommentRepository(db),
		Tags:       NewTagRepository(db),
		Categories: NewCategoryRepository(db),
	}
}
