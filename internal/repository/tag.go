package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/model"
)

// TagRepository reads and writes tags.
type TagRepository struct {
	db ConnProvider
}

func NewTagRepository(db ConnProvider) *TagRepository {
	return &TagRepository{db: db}
}

// Add inserts a tag. The generated id is not read back, so callers that
// need it must look the tag up again.
func (r *TagRepository) Add(ctx context.Context, tag model.Tag) error {
	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, `INSERT INTO tag (name) VALUES (@name)`,
			pgx.NamedArgs{"name": tag.Name})
		return err
	})
	if err != nil {
		return fmt.Errorf("add tag: %w", err)
	}

	return nil
}

// Update is not supported: renaming tags has not been decided on. It never
// touches the store.
func (r *TagRepository) Update(_ context.Context, tag model.Tag) error {
	return fmt.Errorf("update tag %d: %w", tag.ID, ErrNotImplemented)
}

// Delete removes the tag. Deleting a missing id is not an error.
func (r *TagRepository) Delete(ctx context.Context, id int) error {
	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, `
			DELETE FROM tag
			WHERE id = @id`,
			pgx.NamedArgs{"id": id})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete tag %d: %w", id, err)
	}

	return nil
}

// GetAllTags returns every tag ordered by name.
func (r *TagRepository) GetAllTags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag

	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT
				id,
				name
			FROM tag
			ORDER BY name`)
		if err != nil {
			return err
		}

		tags, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Tag])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get all tags: %w", err)
	}

	return tags, nil
}

// GetTagByID returns the tag, or nil if no tag has that id.
func (r *TagRepository) GetTagByID(ctx context.Context, id int) (*model.Tag, error) {
	var tag *model.Tag

	err := withConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT
				id,
				name
			FROM tag
			WHERE id = @id`,
			pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}

		t, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Tag])
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		tag = &t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get tag %d: %w", id, err)
	}

	return tag, nil
}
