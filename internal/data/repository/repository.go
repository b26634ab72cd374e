package repository

import (
	"rental-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking          BookingRepository
	Apartment        ApartmentRepository
	ApartmentDetails ApartmentDetailsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:          NewBookingRepository(db, log),
		Apartment:        NewApartmentRepository(db, log),
		ApartmentDetails: NewApartmentDetailsRepository(db, log),
	}
}
