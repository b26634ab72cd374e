package request

// BookingRequest is the JSON shape for both create and update. Dates are
// calendar days, no time component.
type BookingRequest struct {
	GuestName   string  `json:"guestName" validate:"required"`
	GuestEmail  string  `json:"guestEmail" validate:"required,email"`
	GuestPhone  string  `json:"guestPhone" validate:"omitempty"`
	CheckIn     string  `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut    string  `json:"checkOut" validate:"required,datetime=2006-01-02"`
	ApartmentID string  `json:"apartmentId" validate:"required,uuid4"`
	Status      string  `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	TotalAmount float64 `json:"totalAmount" validate:"min=0"`
	Guests      int     `json:"guests" validate:"required,min=1"`
	Notes       *string `json:"notes,omitempty"`
}
