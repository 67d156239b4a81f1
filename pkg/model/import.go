package model

// ImportedDrink is a drink found by an external catalog source, not yet resolved against ours.
type ImportedDrink struct {
	Name           string
	Description    string
	BrandName      string
	Style          string
	ImageURL       string
	AlcoholContent *float64
	ExternalID     *uint64
	ExternalSource *string
	ExternalRating *float64
}
