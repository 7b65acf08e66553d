package models

import "time"

// Message is a direct message between two users. ReadAt is set once by the
// receiver opening the thread and never cleared afterwards.
type Message struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	SenderID   uint       `gorm:"index;not null" json:"sender_id"`
	ReceiverID uint       `gorm:"index;not null" json:"receiver_id"`
	Content    string     `gorm:"not null" json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	ReadAt     *time.Time `json:"read_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (message *Message) ToThreadMessageResponse() ThreadMessageResponse {
	return ThreadMessageResponse{
		ID:                message.ID,
		SenderID:          message.SenderID,
		ReceiverID:        message.ReceiverID,
		Content:           message.Content,
		CreatedAt:         message.CreatedAt,
		ReadAt:            message.ReadAt,
		SenderFirstName:   message.Sender.FirstName,
		SenderLastName:    message.Sender.LastName,
		ReceiverFirstName: message.Receiver.FirstName,
		ReceiverLastName:  message.Receiver.LastName,
	}
}
