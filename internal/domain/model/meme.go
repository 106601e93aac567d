package model

import (
	"time"

	"github.com/google/uuid"
)

type Meme struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description *string   `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"not null;uniqueIndex" json:"image_url"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Meme) TableName() string {
	return "memes"
}
