package models

import "time"

type Event struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatorID    uint      `gorm:"index;not null" json:"creator_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	EventDate    time.Time `gorm:"index" json:"event_date"`
	Category     *string   `json:"category"`
	MaxAttendees int       `json:"max_attendees"`
	CreatedAt    time.Time `json:"created_at"`

	Creator User `gorm:"foreignKey:CreatorID" json:"-"`
}

type EventAttendee struct {
	ID      uint `gorm:"primarykey" json:"id"`
	EventID uint `gorm:"uniqueIndex:idx_event_attendee;not null" json:"event_id"`
	UserID  uint `gorm:"uniqueIndex:idx_event_attendee;not null" json:"user_id"`
}

type EventWithCreator struct {
	ID               uint      `json:"id"`
	CreatorID        uint      `json:"creator_id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description"`
	Location         *string   `json:"location"`
	EventDate        time.Time `json:"event_date"`
	Category         *string   `json:"category"`
	MaxAttendees     int       `json:"max_attendees"`
	CreatedAt        time.Time `json:"created_at"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	CurrentAttendees int64     `json:"current_attendees"`
}
