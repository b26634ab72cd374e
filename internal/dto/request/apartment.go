package request

type ApartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=studio 1bed 2bed 3bed"`
	Location    string `json:"location" validate:"required"`
	Bedrooms    int    `json:"bedrooms" validate:"min=0"`
	Bathrooms   int    `json:"bathrooms" validate:"min=0"`
	MaxGuests   int    `json:"maxGuests" validate:"required,min=1"`
	IsAvailable bool   `json:"isAvailable"`
}

type ApartmentDetailsRequest struct {
	ShortDescription string   `json:"shortDescription" validate:"omitempty,max=500"`
	LongDescription  string   `json:"longDescription"`
	Amenities        []string `json:"amenities"`
	HouseRules       []string `json:"houseRules"`
	BasePrice        float64  `json:"basePrice" validate:"min=0"`
	CleaningFee      float64  `json:"cleaningFee" validate:"min=0"`
	ServiceFee       float64  `json:"serviceFee" validate:"min=0"`
}
