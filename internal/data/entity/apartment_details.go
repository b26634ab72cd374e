package entity

import "github.com/google/uuid"

// ApartmentDetails extends an Apartment with pricing, descriptions and
// image references. Exactly one record per apartment; it lives and dies
// with its parent.
type ApartmentDetails struct {
	Base
	ApartmentID      uuid.UUID `db:"apartment_id"`
	ShortDescription string    `db:"short_description"`
	LongDescription  string    `db:"long_description"`
	Amenities        []string  `db:"amenities"`
	HouseRules       []string  `db:"house_rules"`
	CoverImage       *string   `db:"cover_image"`
	Images           []string  `db:"images"`
	BasePrice        float64   `db:"base_price"`
	CleaningFee      float64   `db:"cleaning_fee"`
	ServiceFee       float64   `db:"service_fee"`
}
