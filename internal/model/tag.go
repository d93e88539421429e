package model

// Tag is a free-form label. Names are not unique.
type Tag struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
