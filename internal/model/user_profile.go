package model

import "time"

// UserProfile is the read-only projection of a user profile.
type UserProfile struct {
	ID             int       `json:"id"`
	DisplayName    string    `json:"displayName"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	CreateDateTime time.Time `json:"createDateTime"`
	ImageLocation  *string   `json:"imageLocation"`
	UserTypeID     int       `json:"userTypeId"`
}

// FullName joins first and last name.
func (u UserProfile) FullName() string {
	return u.FirstName + " " + u.LastName
}
