package models

import "time"

// ThreadMessageResponse is one message of a two-party thread with both
// participants' names joined in, ready for chronological rendering.
type ThreadMessageResponse struct {
	ID                uint       `json:"id"`
	SenderID          uint       `json:"sender_id"`
	ReceiverID        uint       `json:"receiver_id"`
	Content           string     `json:"content"`
	CreatedAt         time.Time  `json:"created_at"`
	ReadAt            *time.Time `json:"read_at"`
	SenderFirstName   string     `json:"sender_first_name"`
	SenderLastName    string     `json:"sender_last_name"`
	ReceiverFirstName string     `json:"receiver_first_name"`
	ReceiverLastName  string     `json:"receiver_last_name"`
}
