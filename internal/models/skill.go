package models

import "time"

type Skill struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	Level       *string   `json:"level"`
	IsOffering  bool      `gorm:"not null;default:true" json:"is_offering"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// SkillWithOwner is a skill row joined with its owner's public identity.
type SkillWithOwner struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Level       *string   `json:"level"`
	IsOffering  bool      `json:"is_offering"`
	CreatedAt   time.Time `json:"created_at"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Rating      float64   `json:"rating"`
}
