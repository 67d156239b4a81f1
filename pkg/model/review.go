package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"gorm.io/gorm"
)

const (
	MinReviewScore = 1
	MaxReviewScore = 5
)

type Review struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index"`
	DrinkID   uint `gorm:"not null;index"`
	Score     int  `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment   string
	CreatedAt time.Time

	Drink Drink `gorm:"constraint:OnDelete:CASCADE;"`
}

func (r Review) Validate() error {
	return wrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.DrinkID, validation.Required),
		validation.Field(&r.Score, validation.Required, validation.Min(MinReviewScore), validation.Max(MaxReviewScore)),
	))
}

func (r *Review) BeforeSave(_ *gorm.DB) error {
	return r.Validate()
}
