package adaptor

import (
	"rental-admin/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking   *BookingHandler
	Apartment *ApartmentHandler
	Calendar  *CalendarHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:   NewBookingHandler(service.Booking, log),
		Apartment: NewApartmentHandler(service.Apartment, log),
		Calendar:  NewCalendarHandler(service.Calendar, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
