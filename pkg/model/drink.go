package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"gorm.io/gorm"
)

const (
	MinAlcoholContent = 0.0
	MaxAlcoholContent = 100.0
)

var ErrValidation = errors.New("validation failed")

type Brand struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Brand) Validate() error {
	return wrapValidation(validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required),
	))
}

type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (c Category) Validate() error {
	return wrapValidation(validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
	))
}

type Drink struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	ImageURL       string
	AlcoholContent float64 `gorm:"not null;check:alcohol_content >= 0 AND alcohol_content <= 100"`
	BrandID        uint    `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Brand      Brand      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Categories []Category `gorm:"many2many:drink_categories;"`
}

// DrinkCategory is the join row between a drink and one of its categories.
type DrinkCategory struct {
	DrinkID    uint `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false"`
}

// NewDrink builds a drink and validates it; an invalid drink is never returned.
func NewDrink(name, imageURL string, alcoholContent float64, brand Brand, categories []Category) (*Drink, error) {
	drink := &Drink{
		Name:           strings.TrimSpace(name),
		ImageURL:       imageURL,
		AlcoholContent: alcoholContent,
		BrandID:        brand.ID,
		Brand:          brand,
		Categories:     categories,
	}

	if drink.Categories == nil {
		drink.Categories = []Category{}
	}

	if err := drink.Validate(); err != nil {
		return nil, err
	}

	return drink, nil
}

func (d Drink) Validate() error {
	return wrapValidation(validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&d.AlcoholContent, validation.Min(MinAlcoholContent), validation.Max(MaxAlcoholContent)),
	))
}

func (d *Drink) BeforeSave(_ *gorm.DB) error {
	return d.Validate()
}

// CategoryIDs returns the ids of the drink's categories in their current order.
func (d Drink) CategoryIDs() []uint {
	ids := make([]uint, 0, len(d.Categories))
	for _, category := range d.Categories {
		ids = append(ids, category.ID)
	}

	return ids
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}

	return nil
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrValidation, err)
}
