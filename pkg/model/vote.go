package model

import "time"

// FeaturedDrinkSlot is the primary key of the only featured drink row.
const FeaturedDrinkSlot = 1

type Vote struct {
	ID      uint      `gorm:"primaryKey"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_vote_user_day"`
	DrinkID uint      `gorm:"not null;index"`
	Day     time.Time `gorm:"type:date;not null;uniqueIndex:idx_vote_user_day;index"`
	VotedAt time.Time `gorm:"not null"`

	Drink Drink `gorm:"constraint:OnDelete:CASCADE;"`
}

type FeaturedDrink struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false"`
	DrinkID   uint      `gorm:"not null"`
	AsOf      time.Time `gorm:"type:date;not null"`
	UpdatedAt time.Time
}

// VoteTally is the number of votes a drink received on a single day.
type VoteTally struct {
	DrinkID uint
	Votes   int64
}

// UTCDay truncates t to midnight of its UTC calendar day.
func UTCDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameUTCDay reports whether a and b fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	return UTCDay(a).Equal(UTCDay(b))
}
