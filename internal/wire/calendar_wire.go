package wire

import (
	"rental-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCalendar(r chi.Router, calendarHandler *adaptor.CalendarHandler) {
	// GET /api/calendar?month=YYYY-MM - occupancy per day of month
	r.Get("/api/calendar", calendarHandler.GetMonth)
}
