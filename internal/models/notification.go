package models

import "time"

// Notification rows are written best-effort by other domains (message send,
// deal join, event RSVP, review creation); a failed write never fails the
// operation that triggered it.
type Notification struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	FromUserID *uint      `json:"from_user_id"`
	Type       string     `gorm:"not null" json:"type"`
	Title      string     `gorm:"not null" json:"title"`
	Message    string     `gorm:"not null" json:"message"`
	Link       *string    `json:"link"`
	ReadAt     *time.Time `json:"read_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type NotificationWithSender struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	FromUserID *uint      `json:"from_user_id"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Link       *string    `json:"link"`
	ReadAt     *time.Time `json:"read_at"`
	CreatedAt  time.Time  `json:"created_at"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
}
