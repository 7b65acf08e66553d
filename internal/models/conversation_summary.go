package models

import "time"

// ConversationSummary is the derived per-peer view of the message table.
// It is recomputed on every list request and never persisted.
type ConversationSummary struct {
	OtherUserID     uint      `json:"other_user_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfilePicture  *string   `json:"profile_picture"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	HasUnread       bool      `json:"has_unread"`
}
