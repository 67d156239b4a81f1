package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UUID     uuid.UUID `gorm:"type:uuid"`
	Username string
	Email    string `gorm:"uniqueIndex"`
	IsAdmin  bool
}

type Favorite struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	DrinkID   uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time

	Drink Drink `gorm:"constraint:OnDelete:CASCADE;"`
}
