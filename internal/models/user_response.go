package models

import "time"

// UserResponse is the public view of a user, safe to show to any caller.
type UserResponse struct {
	ID             uint       `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Bio            *string    `json:"bio"`
	ProfilePicture *string    `json:"profile_picture"`
	Rating         float64    `json:"rating"`
	CreatedAt      time.Time  `json:"created_at"`
}
