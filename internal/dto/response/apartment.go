package response

import (
	"time"

	"rental-admin/internal/data/entity"
)

type ApartmentResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Type        entity.ApartmentType `json:"type"`
	Location    string               `json:"location"`
	Bedrooms    int                  `json:"bedrooms"`
	Bathrooms   int                  `json:"bathrooms"`
	MaxGuests   int                  `json:"maxGuests"`
	IsAvailable bool                 `json:"isAvailable"`
	CreatedAt   time.Time            `json:"createdAt"`
}

type ApartmentDetailsResponse struct {
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Amenities        []string `json:"amenities"`
	HouseRules       []string `json:"houseRules"`
	CoverImage       *string  `json:"coverImage,omitempty"`
	Images           []string `json:"images"`
	BasePrice        float64  `json:"basePrice"`
	CleaningFee      float64  `json:"cleaningFee"`
	ServiceFee       float64  `json:"serviceFee"`
}

type ApartmentDetailResponse struct {
	ApartmentResponse
	Details *ApartmentDetailsResponse `json:"details,omitempty"`
}

type ImageUploadResponse struct {
	CoverImage *string  `json:"coverImage,omitempty"`
	Images     []string `json:"images"`
}

func ApartmentToResponse(apartment *entity.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:          apartment.ID.String(),
		Name:        apartment.Name,
		Type:        apartment.Type,
		Location:    apartment.Location,
		Bedrooms:    apartment.Bedrooms,
		Bathrooms:   apartment.Bathrooms,
		MaxGuests:   apartment.MaxGuests,
		IsAvailable: apartment.IsAvailable,
		CreatedAt:   apartment.CreatedAt,
	}
}

func ApartmentDetailsToResponse(details *entity.ApartmentDetails) *ApartmentDetailsResponse {
	if details == nil {
		return nil
	}
	return &ApartmentDetailsResponse{
		ShortDescription: details.ShortDescription,
		LongDescription:  details.LongDescription,
		Amenities:        details.Amenities,
		HouseRules:       details.HouseRules,
		CoverImage:       details.CoverImage,
		Images:           details.Images,
		BasePrice:        details.BasePrice,
		CleaningFee:      details.CleaningFee,
		ServiceFee:       details.ServiceFee,
	}
}
