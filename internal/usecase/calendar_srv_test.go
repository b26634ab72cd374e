package usecase

import (
	"context"
	"testing"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCalendarService(repo *repository.Repository, now time.Time) *calendarService {
	svc := NewCalendarService(repo, zap.NewNop()).(*calendarService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetMonthMembership(t *testing.T) {
	apartmentID := uuid.New()
	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: day(2025, 1, 1)},
		GuestName:   "Emma Wilson",
		CheckIn:     day(2025, 1, 15),
		CheckOut:    day(2025, 1, 18),
		ApartmentID: apartmentID,
		Status:      entity.BookingStatusPending,
		Guests:      2,
	}

	repo := &repository.Repository{
		Booking: &bookingRepoMock{
			findOverlappingFn: func(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
				require.True(t, from.Equal(day(2025, 1, 1)))
				require.True(t, to.Equal(day(2025, 1, 31)))
				return []*entity.Booking{booking}, nil
			},
		},
		Apartment: &apartmentRepoMock{
			findAllFn: func(ctx context.Context) ([]*entity.Apartment, error) {
				return []*entity.Apartment{storedApartment(apartmentID, "Central Park 2BR")}, nil
			},
		},
	}
	svc := newCalendarService(repo, day(2025, 1, 10))

	resp, err := svc.GetMonth(context.Background(), "2025-01")
	require.NoError(t, err)
	require.Equal(t, "2025-01", resp.Month)
	require.Len(t, resp.Days, 31)

	byDate := make(map[string]int)
	for i, cell := range resp.Days {
		byDate[cell.Date] = i
	}

	// Inclusive both ends: the 15th through the 18th, nothing outside.
	for _, date := range []string{"2025-01-15", "2025-01-16", "2025-01-18"} {
		cell := resp.Days[byDate[date]]
		require.Len(t, cell.Bookings, 1, date)
		require.Equal(t, "Central Park 2BR", cell.Bookings[0].ApartmentName)
	}
	require.Empty(t, resp.Days[byDate["2025-01-14"]].Bookings)
	require.Empty(t, resp.Days[byDate["2025-01-19"]].Bookings)
}

func TestGetMonthDerivesStatusesFirst(t *testing.T) {
	booking := &entity.Booking{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: day(2025, 1, 1)},
		CheckIn:  day(2025, 1, 5),
		CheckOut: day(2025, 1, 8),
		Status:   entity.BookingStatusConfirmed,
		Guests:   1,
	}

	repo := &repository.Repository{
		Booking: &bookingRepoMock{
			findOverlappingFn: func(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
				return []*entity.Booking{booking}, nil
			},
		},
		Apartment: &apartmentRepoMock{},
	}
	svc := newCalendarService(repo, day(2025, 1, 20))

	resp, err := svc.GetMonth(context.Background(), "2025-01")
	require.NoError(t, err)

	// Stay ended before the reference date: the calendar shows it
	// completed even though the stored status is still confirmed.
	cell := resp.Days[4] // 2025-01-05
	require.Len(t, cell.Bookings, 1)
	require.Equal(t, entity.BookingStatusCompleted, cell.Bookings[0].Status)
}

func TestGetMonthRejectsBadMonth(t *testing.T) {
	repo := &repository.Repository{
		Booking:   &bookingRepoMock{},
		Apartment: &apartmentRepoMock{},
	}
	svc := newCalendarService(repo, day(2025, 1, 10))

	_, err := svc.GetMonth(context.Background(), "January 2025")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid month")
}
