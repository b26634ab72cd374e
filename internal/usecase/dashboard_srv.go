package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
		now:  time.Now,
	}
}

const dashboardListSize = 5

func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load bookings for dashboard", zap.Error(err))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	now := s.now()
	derived := entity.DeriveStatuses(bookings, now)

	names := make(map[uuid.UUID]string)
	if apartments, err := s.repo.Apartment.FindAll(ctx); err == nil {
		for _, a := range apartments {
			names[a.ID] = a.Name
		}
	} else {
		s.log.Warn("Failed to resolve apartment names", zap.Error(err))
	}

	stats := &response.DashboardResponse{
		TotalBookings:    len(derived),
		RecentBookings:   []response.BookingResponse{},
		UpcomingCheckIns: []response.BookingResponse{},
	}

	var upcoming []*entity.Booking
	for _, b := range derived {
		switch b.Status {
		case entity.BookingStatusConfirmed:
			stats.ConfirmedBookings++
		case entity.BookingStatusPending:
			stats.PendingBookings++
		}
		if b.Status != entity.BookingStatusCancelled {
			stats.TotalRevenue += b.TotalAmount
		}
		if b.Status == entity.BookingStatusConfirmed && entity.NormalizeDate(b.CheckIn).After(entity.NormalizeDate(now)) {
			upcoming = append(upcoming, b)
		}
	}

	// FindAll returns newest first, so the first five are the recent list.
	for i, b := range derived {
		if i == dashboardListSize {
			break
		}
		stats.RecentBookings = append(stats.RecentBookings, response.BookingToResponse(b, names[b.ApartmentID]))
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].CheckIn.Before(upcoming[j].CheckIn)
	})
	for i, b := range upcoming {
		if i == dashboardListSize {
			break
		}
		stats.UpcomingCheckIns = append(stats.UpcomingCheckIns, response.BookingToResponse(b, names[b.ApartmentID]))
	}

	s.log.Info("Dashboard stats computed",
		zap.Int("total", stats.TotalBookings),
		zap.Int("confirmed", stats.ConfirmedBookings),
		zap.Int("pending", stats.PendingBookings),
		zap.Float64("revenue", stats.TotalRevenue),
	)

	return stats, nil
}
