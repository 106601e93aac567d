package model

import "github.com/google/uuid"

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name           string    `gorm:"not null" json:"name"`
	Surname        string    `gorm:"not null" json:"surname"`
	Email          string    `gorm:"not null;uniqueIndex" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
