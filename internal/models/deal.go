package models

import "time"

// Deal is a group-buy offer. A deal is open while its deadline is in the
// future; participants join through DealParticipant rows.
type Deal struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatorID     uint      `gorm:"index;not null" json:"creator_id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   *string   `json:"description"`
	Product       *string   `json:"product"`
	OriginalPrice float64   `json:"original_price"`
	GroupPrice    float64   `json:"group_price"`
	MinimumPeople int       `json:"minimum_people"`
	Deadline      time.Time `json:"deadline"`
	Category      *string   `json:"category"`
	CreatedAt     time.Time `json:"created_at"`

	Creator User `gorm:"foreignKey:CreatorID" json:"-"`
}

type DealParticipant struct {
	ID     uint `gorm:"primarykey" json:"id"`
	DealID uint `gorm:"uniqueIndex:idx_deal_participant;not null" json:"deal_id"`
	UserID uint `gorm:"uniqueIndex:idx_deal_participant;not null" json:"user_id"`
}

type DealWithCreator struct {
	ID            uint      `json:"id"`
	CreatorID     uint      `json:"creator_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Product       *string   `json:"product"`
	OriginalPrice float64   `json:"original_price"`
	GroupPrice    float64   `json:"group_price"`
	MinimumPeople int       `json:"minimum_people"`
	Deadline      time.Time `json:"deadline"`
	Category      *string   `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	CurrentPeople int64     `json:"current_people"`
}
