package model

import "time"

// Comment is a comment left by a user profile on a post.
//
// Post and UserProfile are read-time snapshots taken from a join. They are
// nil when the referenced row is missing and are never written back.
type Comment struct {
	ID             int          `json:"id"`
	Subject        string       `json:"subject"`
	Content        string       `json:"content"`
	CreateDateTime time.Time    `json:"createDateTime"`
	PostID         int          `json:"postId"`
	UserProfileID  int          `json:"userProfileId"`
	Post           *Post        `json:"post,omitempty"`
	UserProfile    *UserProfile `json:"userProfile,omitempty"`
}
