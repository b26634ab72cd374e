package entity

type ApartmentType string

const (
	ApartmentTypeStudio ApartmentType = "studio"
	ApartmentTypeOneBed ApartmentType = "1bed"
	ApartmentTypeTwoBed ApartmentType = "2bed"
	ApartmentTypeThree  ApartmentType = "3bed"
)

type Apartment struct {
	Base
	Name        string        `db:"name"`
	Type        ApartmentType `db:"type"`
	Location    string        `db:"location"`
	Bedrooms    int           `db:"bedrooms"`
	Bathrooms   int           `db:"bathrooms"`
	MaxGuests   int           `db:"max_guests"`
	IsAvailable bool          `db:"is_available"`
}
