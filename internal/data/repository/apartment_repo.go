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

type ApartmentRepository interface {
	Create(ctx context.Context, apartment *entity.Apartment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error)
	FindAll(ctx context.Context) ([]*entity.Apartment, error)
	Update(ctx context.Context, apartment *entity.Apartment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type apartmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewApartmentRepository(db database.PgxIface, log *zap.Logger) ApartmentRepository {
	return &apartmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "apartment")),
	}
}

const apartmentColumns = `id, name, type, location, bedrooms, bathrooms, max_guests, is_available,
	       created_at, updated_at`

func scanApartment(row pgx.Row) (*entity.Apartment, error) {
	var apartment entity.Apartment
	err := row.Scan(
		&apartment.ID,
		&apartment.Name,
		&apartment.Type,
		&apartment.Location,
		&apartment.Bedrooms,
		&apartment.Bathrooms,
		&apartment.MaxGuests,
		&apartment.IsAvailable,
		&apartment.CreatedAt,
		&apartment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &apartment, nil
}

func (r *apartmentRepository) Create(ctx context.Context, apartment *entity.Apartment) error {
	query := `
		INSERT INTO apartments (id, name, type, location, bedrooms, bathrooms, max_guests, is_available,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		apartment.ID,
		apartment.Name,
		apartment.Type,
		apartment.Location,
		apartment.Bedrooms,
		apartment.Bathrooms,
		apartment.MaxGuests,
		apartment.IsAvailable,
		apartment.CreatedAt,
		apartment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create apartment",
			zap.Error(err),
			zap.String("apartment_id", apartment.ID.String()),
			zap.String("name", apartment.Name),
		)
		return fmt.Errorf("create apartment %s: %w", apartment.ID.String(), err)
	}

	return nil
}

func (r *apartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments WHERE id = $1`

	apartment, err := scanApartment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find apartment by ID",
			zap.Error(err),
			zap.String("apartment_id", id.String()),
		)
		return nil, fmt.Errorf("find apartment by ID %s: %w", id.String(), err)
	}

	return apartment, nil
}

func (r *apartmentRepository) FindAll(ctx context.Context) ([]*entity.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all apartments", zap.Error(err))
		return nil, fmt.Errorf("find all apartments: %w", err)
	}
	defer rows.Close()

	var apartments []*entity.Apartment
	for rows.Next() {
		apartment, err := scanApartment(rows)
		if err != nil {
			r.log.Error("Failed to scan apartment row", zap.Error(err))
			return nil, fmt.Errorf("scan apartment row: %w", err)
		}
		apartments = append(apartments, apartment)
	}

	return apartments, rows.Err()
}

func (r *apartmentRepository) Update(ctx context.Context, apartment *entity.Apartment) error {
	query := `
		UPDATE apartments
		SET name = $2, type = $3, location = $4, bedrooms = $5, bathrooms = $6,
		    max_guests = $7, is_available = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		apartment.ID,
		apartment.Name,
		apartment.Type,
		apartment.Location,
		apartment.Bedrooms,
		apartment.Bathrooms,
		apartment.MaxGuests,
		apartment.IsAvailable,
		apartment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update apartment",
			zap.Error(err),
			zap.String("apartment_id", apartment.ID.String()),
		)
		return fmt.Errorf("update apartment %s: %w", apartment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("apartment %s not found", apartment.ID.String())
	}

	return nil
}

func (r *apartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM apartments WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete apartment",
			zap.Error(err),
			zap.String("apartment_id", id.String()),
		)
		return fmt.Errorf("delete apartment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("apartment %s not found", id.String())
	}

	r.log.Info("Apartment deleted", zap.String("apartment_id", id.String()))
	return nil
}
