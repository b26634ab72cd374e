package wire

import (
	"rental-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - paginated list, optional ?status= filter
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings - create booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/{id} - booking details
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id} - edit booking
		r.Put("/{id}", bookingHandler.UpdateBooking)

		// DELETE /api/bookings/{id} - delete booking
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})
}
