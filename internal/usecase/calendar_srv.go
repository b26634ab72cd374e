package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CalendarService interface {
	GetMonth(ctx context.Context, month string) (*response.CalendarResponse, error)
}

type calendarService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewCalendarService(repo *repository.Repository, log *zap.Logger) CalendarService {
	return &calendarService{
		repo: repo,
		log:  log.With(zap.String("service", "calendar")),
		now:  time.Now,
	}
}

const monthLayout = "2006-01"

// GetMonth builds one cell per day of the month, each listing the
// bookings whose stay interval contains that day. Statuses are derived
// before the membership test so the calendar shows completed stays as
// completed.
func (s *calendarService) GetMonth(ctx context.Context, month string) (*response.CalendarResponse, error) {
	firstDay, err := time.ParseInLocation(monthLayout, month, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid month %s, expected YYYY-MM: %w", month, err)
	}
	lastDay := firstDay.AddDate(0, 1, -1)

	bookings, err := s.repo.Booking.FindOverlapping(ctx, firstDay, lastDay)
	if err != nil {
		s.log.Error("Failed to load bookings for month",
			zap.Error(err),
			zap.String("month", month),
		)
		return nil, fmt.Errorf("load bookings for %s: %w", month, err)
	}

	derived := entity.DeriveStatuses(bookings, s.now())

	names := make(map[uuid.UUID]string)
	if apartments, err := s.repo.Apartment.FindAll(ctx); err == nil {
		for _, a := range apartments {
			names[a.ID] = a.Name
		}
	} else {
		s.log.Warn("Failed to resolve apartment names", zap.Error(err))
	}

	days := make([]response.CalendarDay, 0, lastDay.Day())
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		matched := entity.BookingsForDate(derived, day)

		cell := response.CalendarDay{
			Date:     day.Format("2006-01-02"),
			Bookings: make([]response.BookingResponse, len(matched)),
		}
		for i, b := range matched {
			cell.Bookings[i] = response.BookingToResponse(b, names[b.ApartmentID])
		}
		days = append(days, cell)
	}

	s.log.Info("Calendar month built",
		zap.String("month", month),
		zap.Int("bookings", len(derived)),
	)

	return &response.CalendarResponse{
		Month: month,
		Days:  days,
	}, nil
}
