package models

import "time"

// User is owned by the auth subsystem; every other domain references it and
// never mutates it outside the profile endpoints.
type User struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"not null" json:"-"`
	Password       string     `gorm:"-" json:"password,omitempty"`
	FirstName      string     `gorm:"not null" json:"first_name"`
	LastName       string     `gorm:"not null" json:"last_name"`
	Bio            *string    `json:"bio"`
	ProfilePicture *string    `json:"profile_picture"`
	Rating         float64    `gorm:"not null;default:0" json:"rating"`
	Phone          *string    `json:"phone"`
	Address        *string    `json:"address"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"-"`
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		Rating:         user.Rating,
		CreatedAt:      user.CreatedAt,
	}
}

func (user *User) ToProfileResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		Rating:         user.Rating,
		Phone:          user.Phone,
		Address:        user.Address,
		CreatedAt:      user.CreatedAt,
	}
}
