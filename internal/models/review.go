package models

import "time"

// Review is one user's rating of another after a transaction. A reviewer may
// review a given transaction only once; the reviewed user's average rating is
// recomputed when a review lands.
type Review struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	ReviewerID      uint      `gorm:"index;not null" json:"reviewer_id"`
	ReviewedUserID  uint      `gorm:"index;not null" json:"reviewed_user_id"`
	Rating          int       `gorm:"not null" json:"rating"`
	Comment         *string   `json:"comment"`
	TransactionType *string   `json:"transaction_type"`
	TransactionID   *uint     `json:"transaction_id"`
	CreatedAt       time.Time `json:"created_at"`

	Reviewer     User `gorm:"foreignKey:ReviewerID" json:"-"`
	ReviewedUser User `gorm:"foreignKey:ReviewedUserID" json:"-"`
}

type ReviewWithReviewer struct {
	ID                uint      `json:"id"`
	ReviewerID        uint      `json:"reviewer_id"`
	ReviewedUserID    uint      `json:"reviewed_user_id"`
	Rating            int       `json:"rating"`
	Comment           *string   `json:"comment"`
	TransactionType   *string   `json:"transaction_type"`
	TransactionID     *uint     `json:"transaction_id"`
	CreatedAt         time.Time `json:"created_at"`
	ReviewerFirstName string    `json:"reviewer_first_name"`
	ReviewerLastName  string    `json:"reviewer_last_name"`
	ReviewerPicture   *string   `json:"reviewer_picture"`
}

type ReviewWithReviewed struct {
	ID                uint      `json:"id"`
	ReviewerID        uint      `json:"reviewer_id"`
	ReviewedUserID    uint      `json:"reviewed_user_id"`
	Rating            int       `json:"rating"`
	Comment           *string   `json:"comment"`
	TransactionType   *string   `json:"transaction_type"`
	TransactionID     *uint     `json:"transaction_id"`
	CreatedAt         time.Time `json:"created_at"`
	ReviewedFirstName string    `json:"reviewed_first_name"`
	ReviewedLastName  string    `json:"reviewed_last_name"`
}
