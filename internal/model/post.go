package model

import "time"

// Post is the read-only projection of a post used by comment reads.
type Post struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	ImageLocation   *string    `json:"imageLocation"`
	CreateDateTime  time.Time  `json:"createDateTime"`
	PublishDateTime *time.Time `json:"publishDateTime"`
	IsApproved      bool       `json:"isApproved"`
	CategoryID      int        `json:"categoryId"`
	UserProfileID   int        `json:"userProfileId"`
}
