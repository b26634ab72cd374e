package usecase

import (
	"context"
	"testing"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newBookingService(repo *repository.Repository, now time.Time) *bookingService {
	svc := NewBookingService(repo, zap.NewNop()).(*bookingService)
	svc.now = func() time.Time { return now }
	return svc
}

func validBookingRequest(apartmentID uuid.UUID) *request.BookingRequest {
	return &request.BookingRequest{
		GuestName:   "Sarah Johnson",
		GuestEmail:  "sarah.johnson@email.com",
		GuestPhone:  "+1 (555) 123-4567",
		CheckIn:     "2025-01-15",
		CheckOut:    "2025-01-18",
		ApartmentID: apartmentID.String(),
		Status:      "confirmed",
		TotalAmount: 450,
		Guests:      2,
	}
}

func storedApartment(id uuid.UUID, name string) *entity.Apartment {
	return &entity.Apartment{
		Base:        entity.Base{ID: id, CreatedAt: day(2024, 12, 1)},
		Name:        name,
		Type:        entity.ApartmentTypeStudio,
		Location:    "Downtown",
		MaxGuests:   2,
		IsAvailable: true,
	}
}

func TestCreateBookingRejectsInvertedInterval(t *testing.T) {
	apartmentID := uuid.New()
	repo := &repository.Repository{
		Booking:   &bookingRepoMock{},
		Apartment: &apartmentRepoMock{},
	}
	svc := newBookingService(repo, day(2025, 1, 10))

	req := validBookingRequest(apartmentID)
	req.CheckIn = "2025-01-18"
	req.CheckOut = "2025-01-15"

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid stay interval")
}

func TestCreateBookingRejectsUnknownApartment(t *testing.T) {
	repo := &repository.Repository{
		Booking:   &bookingRepoMock{},
		Apartment: &apartmentRepoMock{}, // FindByID returns nil
	}
	svc := newBookingService(repo, day(2025, 1, 10))

	_, err := svc.CreateBooking(context.Background(), validBookingRequest(uuid.New()))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestCreateBookingPersistsAndResolvesName(t *testing.T) {
	apartmentID := uuid.New()
	var saved *entity.Booking

	repo := &repository.Repository{
		Booking: &bookingRepoMock{
			createFn: func(ctx context.Context, booking *entity.Booking) error {
				saved = booking
				return nil
			},
		},
		Apartment: &apartmentRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
				require.Equal(t, apartmentID, id)
				return storedApartment(apartmentID, "Downtown Studio"), nil
			},
		},
	}
	svc := newBookingService(repo, day(2025, 1, 10))

	resp, err := svc.CreateBooking(context.Background(), validBookingRequest(apartmentID))
	require.NoError(t, err)
	require.NotNil(t, saved)

	require.Equal(t, "Sarah Johnson", saved.GuestName)
	require.Equal(t, apartmentID, saved.ApartmentID)
	require.Equal(t, entity.BookingStatusConfirmed, saved.Status)
	require.True(t, saved.CheckIn.Equal(day(2025, 1, 15)))
	require.True(t, saved.CheckOut.Equal(day(2025, 1, 18)))

	require.Equal(t, "Downtown Studio", resp.ApartmentName)
	require.Equal(t, "2025-01-15", resp.CheckIn)
	require.Equal(t, entity.BookingStatusConfirmed, resp.Status)
}

func TestListBookingsDerivesCompletedStatus(t *testing.T) {
	apartmentID := uuid.New()
	stored := &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: day(2025, 1, 1)},
		GuestName:   "Michael Chen",
		CheckIn:     day(2025, 1, 15),
		CheckOut:    day(2025, 1, 18),
		ApartmentID: apartmentID,
		Status:      entity.BookingStatusConfirmed,
		TotalAmount: 625,
		Guests:      2,
	}

	repo := &repository.Repository{
		Booking: &bookingRepoMock{
			findAllFn: func(ctx context.Context) ([]*entity.Booking, error) {
				return []*entity.Booking{stored}, nil
			},
		},
		Apartment: &apartmentRepoMock{
			findAllFn: func(ctx context.Context) ([]*entity.Apartment, error) {
				return []*entity.Apartment{storedApartment(apartmentID, "Riverside 1BR")}, nil
			},
		},
	}
	svc := newBookingService(repo, day(2025, 1, 20))

	resp, err := svc.ListBookings(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	// Check-out on the 18th, reference date the 20th: promoted on read.
	require.Equal(t, entity.BookingStatusCompleted, resp.Data[0].Status)
	require.Equal(t, "Riverside 1BR", resp.Data[0].ApartmentName)
	// The stored record itself is never rewritten.
	require.Equal(t, entity.BookingStatusConfirmed, stored.Status)
}

func TestListBookingsFiltersOnDerivedStatus(t *testing.T) {
	apartmentID := uuid.New()
	// Stored confirmed, but checked out before the reference date: the
	// list must treat it as completed when filtering.
	derivablyCompleted := &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: day(2025, 1, 1)},
		GuestName:   "Michael Chen",
		CheckIn:     day(2025, 1, 15),
		CheckOut:    day(2025, 1, 18),
		ApartmentID: apartmentID,
		Status:      entity.BookingStatusConfirmed,
		Guests:      2,
	}
	stillConfirmed := &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: day(2025, 1, 2)},
		GuestName:   "Emma Wilson",
		CheckIn:     day(2025, 1, 22),
		CheckOut:    day(2025, 1, 25),
		ApartmentID: apartmentID,
		Status:      entity.BookingStatusConfirmed,
		Guests:      2,
	}

	repo := &repository.Repository{
		Booking: &bookingRepoMock{
			findAllFn: func(ctx context.Context) ([]*entity.Booking, error) {
				return []*entity.Booking{derivablyCompleted, stillConfirmed}, nil
			},
		},
		Apartment: &apartmentRepoMock{},
	}
	svc := newBookingService(repo, day(2025, 1, 20))
	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	completed := "completed"
	resp, err := svc.ListBookings(context.Background(), page, &completed)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.Equal(t, derivablyCompleted.ID.String(), resp.Data[0].ID)
	require.Equal(t, int64(1), resp.Pagination.Total)

	confirmed := "confirmed"
	resp, err = svc.ListBookings(context.Background(), page, &confirmed)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.Equal(t, stillConfirmed.ID.String(), resp.Data[0].ID)
}

func TestGetBookingSameDayCheckoutStaysConfirmed(t *testing.T) {
	apartmentID := uuid.New()
	stored := &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: day(2025, 1, 1)},
		CheckIn:     day(2025, 1, 18),
		CheckOut:    day(2025, 1, 20),
		ApartmentID: apartmentID,
		Status:      entity.BookingStatusConfirmed,
		Guests:      1,
	}

	repo := &repository.Repository{
		Booking: &bookingRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return stored, nil
			},
		},
		Apartment: &apartmentRepoMock{},
	}
	svc := newBookingService(repo, day(2025, 1, 20))

	resp, err := svc.GetBooking(context.Background(), stored.ID.String())
	require.NoError(t, err)
	require.Equal(t, entity.BookingStatusConfirmed, resp.Status)
}

func TestGetBookingNotFound(t *testing.T) {
	repo := &repository.Repository{
		Booking:   &bookingRepoMock{},
		Apartment: &apartmentRepoMock{},
	}
	svc := newBookingService(repo, day(2025, 1, 20))

	_, err := svc.GetBooking(context.Background(), uuid.New().String())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestUpdateBookingRejectsInvertedInterval(t *testing.T) {
	id := uuid.New()
	repo := &repository.Repository{
		Booking:   &bookingRepoMock{},
		Apartment: &apartmentRepoMock{},
	}
	svc := newBookingService(repo, day(2025, 1, 10))

	req := validBookingRequest(uuid.New())
	req.CheckIn = "2025-02-01"
	req.CheckOut = "2025-01-01"

	_, err := svc.UpdateBooking(context.Background(), id.String(), req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid stay interval")
}

func TestDeleteBooking(t *testing.T) {
	stored := &entity.Booking{Base: entity.Base{ID: uuid.New()}}
	deleted := false

	repo := &repository.Repository{
		Booking: &bookingRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return stored, nil
			},
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				require.Equal(t, stored.ID, id)
				deleted = true
				return nil
			},
		},
		Apartment: &apartmentRepoMock{},
	}
	svc := newBookingService(repo, day(2025, 1, 10))

	require.NoError(t, svc.DeleteBooking(context.Background(), stored.ID.String()))
	require.True(t, deleted)
}
