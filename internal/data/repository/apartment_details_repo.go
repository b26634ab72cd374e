package repository

import (
	"context"
	"fmt"

	"rental-admin/internal/data/entity"
	"rental-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ApartmentDetailsRepository interface {
	FindByApartmentID(ctx context.Context, apartmentID uuid.UUID) (*entity.ApartmentDetails, error)
	Upsert(ctx context.Context, details *entity.ApartmentDetails) error
	UpdateImages(ctx context.Context, apartmentID uuid.UUID, coverImage *string, images []string) error
	DeleteByApartmentID(ctx context.Context, apartmentID uuid.UUID) error
}

type apartmentDetailsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewApartmentDetailsRepository(db database.PgxIface, log *zap.Logger) ApartmentDetailsRepository {
	return &apartmentDetailsRepository{
		db:  db,
		log: log.With(zap.String("repository", "apartment_details")),
	}
}

func (r *apartmentDetailsRepository) FindByApartmentID(ctx context.Context, apartmentID uuid.UUID) (*entity.ApartmentDetails, error) {
	query := `
		SELECT id, apartment_id, short_description, long_description, amenities, house_rules,
		       cover_image, images, base_price, cleaning_fee, service_fee, created_at, updated_at
		FROM apartment_details
		WHERE apartment_id = $1
	`

	var details entity.ApartmentDetails
	err := r.db.QueryRow(ctx, query, apartmentID).Scan(
		&details.ID,
		&details.ApartmentID,
		&details.ShortDescription,
		&details.LongDescription,
		&details.Amenities,
		&details.HouseRules,
		&details.CoverImage,
		&details.Images,
		&details.BasePrice,
		&details.CleaningFee,
		&details.ServiceFee,
		&details.CreatedAt,
		&details.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find apartment details",
			zap.Error(err),
			zap.String("apartment_id", apartmentID.String()),
		)
		return nil, fmt.Errorf("find details for apartment %s: %w", apartmentID.String(), err)
	}

	return &details, nil
}

// Upsert inserts the details record or, if one already exists for the
// apartment, overwrites its descriptive and pricing fields. Image
// references are managed separately through UpdateImages.
func (r *apartmentDetailsRepository) Upsert(ctx context.Context, details *entity.ApartmentDetails) error {
	query := `
		INSERT INTO apartment_details (id, apartment_id, short_description, long_description, amenities,
		                               house_rules, cover_image, images, base_price, cleaning_fee,
		                               service_fee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (apartment_id) DO UPDATE
		SET short_description = EXCLUDED.short_description,
		    long_description = EXCLUDED.long_description,
		    amenities = EXCLUDED.amenities,
		    house_rules = EXCLUDED.house_rules,
		    base_price = EXCLUDED.base_price,
		    cleaning_fee = EXCLUDED.cleaning_fee,
		    service_fee = EXCLUDED.service_fee,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		details.ID,
		details.ApartmentID,
		details.ShortDescription,
		details.LongDescription,
		details.Amenities,
		details.HouseRules,
		details.CoverImage,
		details.Images,
		details.BasePrice,
		details.CleaningFee,
		details.ServiceFee,
		details.CreatedAt,
		details.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert apartment details",
			zap.Error(err),
			zap.String("apartment_id", details.ApartmentID.String()),
		)
		return fmt.Errorf("upsert details for apartment %s: %w", details.ApartmentID.String(), err)
	}

	return nil
}

func (r *apartmentDetailsRepository) UpdateImages(ctx context.Context, apartmentID uuid.UUID, coverImage *string, images []string) error {
	query := `
		UPDATE apartment_details
		SET cover_image = COALESCE($2, cover_image), images = $3, updated_at = NOW()
		WHERE apartment_id = $1
	`

	result, err := r.db.Exec(ctx, query, apartmentID, coverImage, images)
	if err != nil {
		r.log.Error("Failed to update apartment images",
			zap.Error(err),
			zap.String("apartment_id", apartmentID.String()),
			zap.Int("image_count", len(images)),
		)
		return fmt.Errorf("update images for apartment %s: %w", apartmentID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("details for apartment %s not found", apartmentID.String())
	}

	return nil
}

func (r *apartmentDetailsRepository) DeleteByApartmentID(ctx context.Context, apartmentID uuid.UUID) error {
	query := `DELETE FROM apartment_details WHERE apartment_id = $1`

	// No RowsAffected check: an apartment without a details record is a
	// valid state and its deletion is a no-op.
	if _, err := r.db.Exec(ctx, query, apartmentID); err != nil {
		r.log.Error("Failed to delete apartment details",
			zap.Error(err),
			zap.String("apartment_id", apartmentID.String()),
		)
		return fmt.Errorf("delete details for apartment %s: %w", apartmentID.String(), err)
	}

	return nil
}
