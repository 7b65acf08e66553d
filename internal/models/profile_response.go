package models

import "time"

// ProfileResponse is the owner's view of their own account.
type ProfileResponse struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Bio            *string   `json:"bio"`
	ProfilePicture *string   `json:"profile_picture"`
	Rating         float64   `json:"rating"`
	Phone          *string   `json:"phone"`
	Address        *string   `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
}
