package response

// CalendarDay is one rendered cell: the day plus every booking whose
// stay interval contains it. The client decides how many to show.
type CalendarDay struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

type CalendarResponse struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}
