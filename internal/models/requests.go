package models

import "time"

type RegisterRequestBody struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequestBody struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Bio       *string `json:"bio"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

type ChangePasswordRequestBody struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type SendMessageRequestBody struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

type CreateSkillRequestBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Level       *string `json:"level"`
	IsOffering  bool    `json:"is_offering"`
}

type CreateDealRequestBody struct {
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Product       *string   `json:"product"`
	OriginalPrice float64   `json:"original_price"`
	GroupPrice    float64   `json:"group_price"`
	MinimumPeople int       `json:"minimum_people"`
	Deadline      time.Time `json:"deadline"`
	Category      *string   `json:"category"`
}

type CreateEventRequestBody struct {
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	EventDate    time.Time `json:"event_date"`
	Category     *string   `json:"category"`
	MaxAttendees int       `json:"max_attendees"`
}

type CreatePostRequestBody struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

type CreateReviewRequestBody struct {
	ReviewedUserID  uint    `json:"reviewed_user_id"`
	Rating          int     `json:"rating"`
	Comment         *string `json:"comment"`
	TransactionType *string `json:"transaction_type"`
	TransactionID   *uint   `json:"transaction_id"`
}
