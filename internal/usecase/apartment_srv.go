package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/dto/request"
	"rental-admin/internal/dto/response"
	"rental-admin/pkg/storage"
	"rental-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageUpload is one file from a multipart upload request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
	IsCover     bool
}

type ApartmentService interface {
	ListApartments(ctx context.Context) ([]response.ApartmentResponse, error)
	GetApartment(ctx context.Context, apartmentID string) (*response.ApartmentDetailResponse, error)
	CreateApartment(ctx context.Context, req *request.ApartmentRequest) (*response.ApartmentResponse, error)
	UpdateApartment(ctx context.Context, apartmentID string, req *request.ApartmentRequest) (*response.ApartmentResponse, error)
	DeleteApartment(ctx context.Context, apartmentID string) error
	UpsertDetails(ctx context.Context, apartmentID string, req *request.ApartmentDetailsRequest) (*response.ApartmentDetailsResponse, error)
	UploadImages(ctx context.Context, apartmentID string, uploads []ImageUpload) (*response.ImageUploadResponse, error)
}

type apartmentService struct {
	repo  *repository.Repository
	store storage.ImageStore
	log   *zap.Logger
	now   func() time.Time
}

func NewApartmentService(repo *repository.Repository, store storage.ImageStore, log *zap.Logger) ApartmentService {
	return &apartmentService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "apartment")),
		now:   time.Now,
	}
}

func (s *apartmentService) ListApartments(ctx context.Context) ([]response.ApartmentResponse, error) {
	apartments, err := s.repo.Apartment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list apartments", zap.Error(err))
		return nil, fmt.Errorf("list apartments: %w", err)
	}

	responses := make([]response.ApartmentResponse, len(apartments))
	for i, apartment := range apartments {
		responses[i] = response.ApartmentToResponse(apartment)
	}

	s.log.Info("Apartments listed", zap.Int("count", len(responses)))
	return responses, nil
}

func (s *apartmentService) GetApartment(ctx context.Context, apartmentID string) (*response.ApartmentDetailResponse, error) {
	id, err := uuid.Parse(apartmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid apartment ID format %s: %w", apartmentID, err)
	}

	apartment, err := s.repo.Apartment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get apartment %s: %w", apartmentID, err)
	}
	if apartment == nil {
		return nil, fmt.Errorf("apartment %s not found", apartmentID)
	}

	details, err := s.repo.ApartmentDetails.FindByApartmentID(ctx, id)
	if err != nil {
		// A missing or unreadable details record should not hide the
		// apartment itself.
		s.log.Warn("Failed to load apartment details",
			zap.Error(err),
			zap.String("apartment_id", apartmentID),
		)
	}

	return &response.ApartmentDetailResponse{
		ApartmentResponse: response.ApartmentToResponse(apartment),
		Details:           response.ApartmentDetailsToResponse(details),
	}, nil
}

func (s *apartmentService) CreateApartment(ctx context.Context, req *request.ApartmentRequest) (*response.ApartmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create apartment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := s.now()
	apartment := &entity.Apartment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Type:        entity.ApartmentType(req.Type),
		Location:    req.Location,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		MaxGuests:   req.MaxGuests,
		IsAvailable: req.IsAvailable,
	}

	if err := s.repo.Apartment.Create(ctx, apartment); err != nil {
		s.log.Error("Failed to create apartment",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create apartment: %w", err)
	}

	s.log.Info("Apartment created",
		zap.String("apartment_id", apartment.ID.String()),
		zap.String("name", apartment.Name),
		zap.String("type", string(apartment.Type)),
	)

	resp := response.ApartmentToResponse(apartment)
	return &resp, nil
}

func (s *apartmentService) UpdateApartment(ctx context.Context, apartmentID string, req *request.ApartmentRequest) (*response.ApartmentResponse, error) {
	id, err := uuid.Parse(apartmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid apartment ID format %s: %w", apartmentID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update apartment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	apartment, err := s.repo.Apartment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get apartment %s: %w", apartmentID, err)
	}
	if apartment == nil {
		return nil, fmt.Errorf("apartment %s not found", apartmentID)
	}

	apartment.Name = req.Name
	apartment.Type = entity.ApartmentType(req.Type)
	apartment.Location = req.Location
	apartment.Bedrooms = req.Bedrooms
	apartment.Bathrooms = req.Bathrooms
	apartment.MaxGuests = req.MaxGuests
	apartment.IsAvailable = req.IsAvailable
	apartment.UpdatedAt = s.now()

	if err := s.repo.Apartment.Update(ctx, apartment); err != nil {
		s.log.Error("Failed to update apartment",
			zap.Error(err),
			zap.String("apartment_id", apartmentID),
		)
		return nil, fmt.Errorf("update apartment %s: %w", apartmentID, err)
	}

	s.log.Info("Apartment updated", zap.String("apartment_id", apartmentID))

	resp := response.ApartmentToResponse(apartment)
	return &resp, nil
}

func (s *apartmentService) DeleteApartment(ctx context.Context, apartmentID string) error {
	id, err := uuid.Parse(apartmentID)
	if err != nil {
		return fmt.Errorf("invalid apartment ID format %s: %w", apartmentID, err)
	}

	apartment, err := s.repo.Apartment.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get apartment %s: %w", apartmentID, err)
	}
	if apartment == nil {
		return fmt.Errorf("apartment %s not found", apartmentID)
	}

	bookings, err := s.repo.Booking.FindByApartmentID(ctx, id)
	if err != nil {
		return fmt.Errorf("check bookings for apartment %s: %w", apartmentID, err)
	}
	if len(bookings) > 0 {
		return fmt.Errorf("cannot delete apartment %s: %d bookings reference it", apartmentID, len(bookings))
	}

	// Details record first; it has no life of its own.
	if err := s.repo.ApartmentDetails.DeleteByApartmentID(ctx, id); err != nil {
		return fmt.Errorf("delete details for apartment %s: %w", apartmentID, err)
	}

	if err := s.repo.Apartment.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete apartment",
			zap.Error(err),
			zap.String("apartment_id", apartmentID),
		)
		return fmt.Errorf("delete apartment %s: %w", apartmentID, err)
	}

	return nil
}

func (s *apartmentService) UpsertDetails(ctx context.Context, apartmentID string, req *request.ApartmentDetailsRequest) (*response.ApartmentDetailsResponse, error) {
	id, err := uuid.Parse(apartmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid apartment ID format %s: %w", apartmentID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert details validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	apartment, err := s.repo.Apartment.FindByID(ctx, id)
	if err != nil || apartment == nil {
		return nil, fmt.Errorf("apartment %s not found", apartmentID)
	}

	now := s.now()
	details := &entity.ApartmentDetails{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ApartmentID:      id,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Amenities:        req.Amenities,
		HouseRules:       req.HouseRules,
		Images:           []string{},
		BasePrice:        req.BasePrice,
		CleaningFee:      req.CleaningFee,
		ServiceFee:       req.ServiceFee,
	}

	if err := s.repo.ApartmentDetails.Upsert(ctx, details); err != nil {
		s.log.Error("Failed to upsert apartment details",
			zap.Error(err),
			zap.String("apartment_id", apartmentID),
		)
		return nil, fmt.Errorf("upsert details for apartment %s: %w", apartmentID, err)
	}

	// Re-read: on conflict the stored record keeps its original images
	// and timestamps, which the request does not carry.
	stored, err := s.repo.ApartmentDetails.FindByApartmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload details for apartment %s: %w", apartmentID, err)
	}

	s.log.Info("Apartment details saved", zap.String("apartment_id", apartmentID))
	return response.ApartmentDetailsToResponse(stored), nil
}

// UploadImages stores each file sequentially under the apartment's key
// prefix. There is no retry and no rollback: if a later file fails,
// objects already uploaded stay in the store, and only URLs uploaded so
// far before the failure are not recorded. The caller retries manually.
func (s *apartmentService) UploadImages(ctx context.Context, apartmentID string, uploads []ImageUpload) (*response.ImageUploadResponse, error) {
	id, err := uuid.Parse(apartmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid apartment ID format %s: %w", apartmentID, err)
	}

	apartment, err := s.repo.Apartment.FindByID(ctx, id)
	if err != nil || apartment == nil {
		return nil, fmt.Errorf("apartment %s not found", apartmentID)
	}

	details, err := s.repo.ApartmentDetails.FindByApartmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load details for apartment %s: %w", apartmentID, err)
	}
	if details == nil {
		return nil, fmt.Errorf("details for apartment %s not found", apartmentID)
	}

	var cover *string
	images := details.Images

	for _, upload := range uploads {
		key := path.Join("apartments", id.String(), upload.Filename)

		url, err := s.store.Upload(ctx, key, upload.ContentType, upload.Body)
		if err != nil {
			s.log.Error("Image upload failed",
				zap.Error(err),
				zap.String("apartment_id", apartmentID),
				zap.String("filename", upload.Filename),
			)
			return nil, fmt.Errorf("upload image %s: %w", upload.Filename, err)
		}

		if upload.IsCover {
			cover = &url
		} else {
			images = append(images, url)
		}
	}

	if err := s.repo.ApartmentDetails.UpdateImages(ctx, id, cover, images); err != nil {
		return nil, fmt.Errorf("record images for apartment %s: %w", apartmentID, err)
	}

	s.log.Info("Images uploaded",
		zap.String("apartment_id", apartmentID),
		zap.Int("count", len(uploads)),
	)

	return &response.ImageUploadResponse{
		CoverImage: cover,
		Images:     images,
	}, nil
}
