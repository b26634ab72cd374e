package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/dto/request"
	"rental-admin/internal/dto/response"
	"rental-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	ListBookings(ctx context.Context, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.BookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

// parseStayInterval validates and parses the check-in/check-out pair.
// An inverted interval is rejected here, at the construction boundary,
// since nothing downstream enforces it.
func parseStayInterval(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-in date %s: %w", checkIn, err)
	}

	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-out date %s: %w", checkOut, err)
	}

	if in.After(out) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid stay interval: check-in %s is after check-out %s", checkIn, checkOut)
	}

	return in, out, nil
}

// apartmentName resolves the display name for a booking's apartment
// reference. Resolution failures degrade to an empty name; the booking
// itself is still returned.
func (s *bookingService) apartmentName(ctx context.Context, apartmentID uuid.UUID) string {
	apartment, err := s.repo.Apartment.FindByID(ctx, apartmentID)
	if err != nil || apartment == nil {
		return ""
	}
	return apartment.Name
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	names := make(map[uuid.UUID]string)
	if apartments, err := s.repo.Apartment.FindAll(ctx); err == nil {
		for _, a := range apartments {
			names[a.ID] = a.Name
		}
	} else {
		s.log.Warn("Failed to resolve apartment names", zap.Error(err))
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = response.BookingToResponse(b, names[b.ApartmentID])
	}
	return out
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
			zap.Stringp("status", status),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	// Status promotion is computed on every read, never persisted. The
	// filter applies to the derived status, so a confirmed stay whose
	// checkout has passed lands on the completed page, not the
	// confirmed one.
	derived := entity.DeriveStatuses(bookings, s.now())

	filtered := derived
	if status != nil {
		want := entity.BookingStatus(*status)
		filtered = make([]*entity.Booking, 0, len(derived))
		for _, b := range derived {
			if b.Status == want {
				filtered = append(filtered, b)
			}
		}
	}

	total := int64(len(filtered))
	offset, limit := req.Offset(), req.Limit()
	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	page := filtered[offset:end]

	s.log.Info("Bookings listed",
		zap.Int("count", len(page)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Stringp("status", status),
	)

	return response.NewPaginatedResponse(s.toResponses(ctx, page), req.Page, limit, total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	derived := entity.DeriveStatuses([]*entity.Booking{booking}, s.now())[0]

	resp := response.BookingToResponse(derived, s.apartmentName(ctx, derived.ApartmentID))
	return &resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, checkOut, err := parseStayInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	apartmentID, err := uuid.Parse(req.ApartmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid apartment ID format %s: %w", req.ApartmentID, err)
	}

	apartment, err := s.repo.Apartment.FindByID(ctx, apartmentID)
	if err != nil || apartment == nil {
		return nil, fmt.Errorf("apartment %s not found", req.ApartmentID)
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		ApartmentID: apartmentID,
		Status:      entity.BookingStatus(req.Status),
		TotalAmount: req.TotalAmount,
		Guests:      req.Guests,
		Notes:       req.Notes,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("guest_name", req.GuestName),
			zap.String("apartment_id", req.ApartmentID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("apartment_id", apartmentID.String()),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
		zap.String("status", req.Status),
	)

	derived := entity.DeriveStatuses([]*entity.Booking{booking}, now)[0]
	resp := response.BookingToResponse(derived, apartment.Name)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.BookingRequest) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, checkOut, err := parseStayInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	apartmentID, err := uuid.Parse(req.ApartmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid apartment ID format %s: %w", req.ApartmentID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	apartment, err := s.repo.Apartment.FindByID(ctx, apartmentID)
	if err != nil || apartment == nil {
		return nil, fmt.Errorf("apartment %s not found", req.ApartmentID)
	}

	// Terminal states stay freely editable; the edit form is allowed to
	// move a cancelled or completed booking back to any status.
	booking.GuestName = req.GuestName
	booking.GuestEmail = req.GuestEmail
	booking.GuestPhone = req.GuestPhone
	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	booking.ApartmentID = apartmentID
	booking.Status = entity.BookingStatus(req.Status)
	booking.TotalAmount = req.TotalAmount
	booking.Guests = req.Guests
	booking.Notes = req.Notes
	booking.UpdatedAt = s.now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	derived := entity.DeriveStatuses([]*entity.Booking{booking}, s.now())[0]
	resp := response.BookingToResponse(derived, apartment.Name)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	return nil
}
