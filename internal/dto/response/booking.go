package response

import (
	"time"

	"rental-admin/internal/data/entity"
)

// BookingResponse is the camelCase wire shape consumed by the dashboard.
// ApartmentName is resolved by lookup at the response boundary; the
// stored reference is always the apartment ID.
type BookingResponse struct {
	ID            string               `json:"id"`
	GuestName     string               `json:"guestName"`
	GuestEmail    string               `json:"guestEmail"`
	GuestPhone    string               `json:"guestPhone"`
	CheckIn       string               `json:"checkIn"`
	CheckOut      string               `json:"checkOut"`
	ApartmentID   string               `json:"apartmentId"`
	ApartmentName string               `json:"apartmentName,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	TotalAmount   float64              `json:"totalAmount"`
	Guests        int                  `json:"guests"`
	Notes         *string              `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

const dateLayout = "2006-01-02"

func BookingToResponse(booking *entity.Booking, apartmentName string) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		GuestPhone:    booking.GuestPhone,
		CheckIn:       booking.CheckIn.Format(dateLayout),
		CheckOut:      booking.CheckOut.Format(dateLayout),
		ApartmentID:   booking.ApartmentID.String(),
		ApartmentName: apartmentName,
		Status:        booking.Status,
		TotalAmount:   booking.TotalAmount,
		Guests:        booking.Guests,
		Notes:         booking.Notes,
		CreatedAt:     booking.CreatedAt,
	}
}
