package usecase

import (
	"rental-admin/internal/data/repository"
	"rental-admin/pkg/storage"

	"go.uber.org/zap"
)

type Service struct {
	Booking   BookingService
	Apartment ApartmentService
	Calendar  CalendarService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, store storage.ImageStore, log *zap.Logger) *Service {
	return &Service{
		Booking:   NewBookingService(repo, log),
		Apartment: NewApartmentService(repo, store, log),
		Calendar:  NewCalendarService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
