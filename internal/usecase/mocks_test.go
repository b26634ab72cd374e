package usecase

import (
	"context"
	"io"
	"time"

	"rental-admin/internal/data/entity"

	"github.com/google/uuid"
)

// Function-field fakes for the repository interfaces. Unset fields
// return zero values so each test only wires what it exercises.

type bookingRepoMock struct {
	createFn          func(ctx context.Context, booking *entity.Booking) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	findAllFn         func(ctx context.Context) ([]*entity.Booking, error)
	updateFn          func(ctx context.Context, booking *entity.Booking) error
	deleteFn          func(ctx context.Context, id uuid.UUID) error
	findOverlappingFn func(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)
	findByApartmentFn func(ctx context.Context, apartmentID uuid.UUID) ([]*entity.Booking, error)
}

func (m *bookingRepoMock) Create(ctx context.Context, booking *entity.Booking) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, booking)
}

func (m *bookingRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *bookingRepoMock) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *bookingRepoMock) Update(ctx context.Context, booking *entity.Booking) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, booking)
}

func (m *bookingRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *bookingRepoMock) FindOverlapping(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	if m.findOverlappingFn == nil {
		return nil, nil
	}
	return m.findOverlappingFn(ctx, from, to)
}

func (m *bookingRepoMock) FindByApartmentID(ctx context.Context, apartmentID uuid.UUID) ([]*entity.Booking, error) {
	if m.findByApartmentFn == nil {
		return nil, nil
	}
	return m.findByApartmentFn(ctx, apartmentID)
}

type apartmentRepoMock struct {
	createFn   func(ctx context.Context, apartment *entity.Apartment) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Apartment, error)
	findAllFn  func(ctx context.Context) ([]*entity.Apartment, error)
	updateFn   func(ctx context.Context, apartment *entity.Apartment) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (m *apartmentRepoMock) Create(ctx context.Context, apartment *entity.Apartment) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, apartment)
}

func (m *apartmentRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *apartmentRepoMock) FindAll(ctx context.Context) ([]*entity.Apartment, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *apartmentRepoMock) Update(ctx context.Context, apartment *entity.Apartment) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, apartment)
}

func (m *apartmentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type detailsRepoMock struct {
	findByApartmentFn func(ctx context.Context, apartmentID uuid.UUID) (*entity.ApartmentDetails, error)
	upsertFn          func(ctx context.Context, details *entity.ApartmentDetails) error
	updateImagesFn    func(ctx context.Context, apartmentID uuid.UUID, coverImage *string, images []string) error
	deleteFn          func(ctx context.Context, apartmentID uuid.UUID) error
}

func (m *detailsRepoMock) FindByApartmentID(ctx context.Context, apartmentID uuid.UUID) (*entity.ApartmentDetails, error) {
	if m.findByApartmentFn == nil {
		return nil, nil
	}
	return m.findByApartmentFn(ctx, apartmentID)
}

func (m *detailsRepoMock) Upsert(ctx context.Context, details *entity.ApartmentDetails) error {
	if m.upsertFn == nil {
		return nil
	}
	return m.upsertFn(ctx, details)
}

func (m *detailsRepoMock) UpdateImages(ctx context.Context, apartmentID uuid.UUID, coverImage *string, images []string) error {
	if m.updateImagesFn == nil {
		return nil
	}
	return m.updateImagesFn(ctx, apartmentID, coverImage, images)
}

func (m *detailsRepoMock) DeleteByApartmentID(ctx context.Context, apartmentID uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, apartmentID)
}

type imageStoreMock struct {
	uploadFn func(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	deleteFn func(ctx context.Context, key string) error

	uploaded []string
}

func (m *imageStoreMock) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	m.uploaded = append(m.uploaded, key)
	if m.uploadFn == nil {
		return "https://img.example.com/" + key, nil
	}
	return m.uploadFn(ctx, key, contentType, body)
}

func (m *imageStoreMock) Delete(ctx context.Context, key string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, key)
}
