package accommodations

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository defines the contract for accommodation persistence.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Accommodation, error)
	GetByID(ctx context.Context, accommodationID uuid.UUID) (*models.Accommodation, error)
	Create(ctx context.Context, params AccommodationParams) (*models.Accommodation, error)
	Update(ctx context.Context, accommodationID uuid.UUID, params AccommodationParams) (*models.Accommodation, error)
	Delete(ctx context.Context, accommodationID uuid.UUID) error
}

// AccommodationParams carries the admin form fields for create and update.
type AccommodationParams struct {
	Name          string
	Description   *string
	Location      string
	Municipality  *string
	ContactNumber *string
	ImageURL      *string
	PriceRange    *string
	Amenities     []string
	Rating        float64
}

type RepositoryImpl struct {
	logger *zap.Logger
	pgpool *pgxpool.Pool
}

func NewRepositoryImpl(pgxpool *pgxpool.Pool, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		pgpool: pgxpool,
	}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const accommodationColumns = "id, name, description, location, municipality, contact_number, image_url, price_range, amenities, rating, created_at, updated_at"

func scanAccommodation(row pgx.Row) (*models.Accommodation, error) {
	var a models.Accommodation
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Location, &a.Municipality, &a.ContactNumber,
		&a.ImageURL, &a.PriceRange, &a.Amenities, &a.Rating, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAll returns every accommodation ordered by name.
func (r *RepositoryImpl) GetAll(ctx context.Context) ([]models.Accommodation, error) {
	ctx, span := otel.Tracer("AccommodationRepo").Start(ctx, "GetAll", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "accommodations"),
	))
	defer span.End()

	query, args, err := psql.Select(accommodationColumns).From("accommodations").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building accommodation list query: %w", err)
	}

	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list accommodations", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error listing accommodations: %w", err)
	}
	defer rows.Close()

	accommodations := make([]models.Accommodation, 0)
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			return nil, fmt.Errorf("database error scanning accommodation: %w", err)
		}
		accommodations = append(accommodations, *a)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading accommodations: %w", err)
	}
	span.SetStatus(codes.Ok, "Accommodations listed")
	return accommodations, nil
}

// GetByID fetches one accommodation.
func (r *RepositoryImpl) GetByID(ctx context.Context, accommodationID uuid.UUID) (*models.Accommodation, error) {
	ctx, span := otel.Tracer("AccommodationRepo").Start(ctx, "GetByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "accommodations"),
		attribute.String("db.accommodation.id", accommodationID.String()),
	))
	defer span.End()

	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE id = $1`
	a, err := scanAccommodation(r.pgpool.QueryRow(ctx, query, accommodationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Accommodation not found")
			return nil, fmt.Errorf("accommodation %s not found: %w", accommodationID, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch accommodation", zap.String("accommodationID", accommodationID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching accommodation: %w", err)
	}
	span.SetStatus(codes.Ok, "Accommodation fetched")
	return a, nil
}

// Create inserts a new accommodation from the admin panel.
func (r *RepositoryImpl) Create(ctx context.Context, params AccommodationParams) (*models.Accommodation, error) {
	ctx, span := otel.Tracer("AccommodationRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "accommodations"),
		attribute.String("accommodation.name", params.Name),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "Create"), zap.String("name", params.Name))

	amenities := params.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	query, args, err := psql.Insert("accommodations").
		Columns("name", "description", "location", "municipality", "contact_number", "image_url", "price_range", "amenities", "rating").
		Values(params.Name, params.Description, params.Location, params.Municipality, params.ContactNumber,
			params.ImageURL, params.PriceRange, amenities, params.Rating).
		Suffix("RETURNING " + accommodationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building accommodation insert query: %w", err)
	}

	a, err := scanAccommodation(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		l.Error("Failed to insert accommodation", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating accommodation: %w", err)
	}

	l.Info("Accommodation created", zap.String("accommodationID", a.ID.String()))
	span.SetStatus(codes.Ok, "Accommodation created")
	return a, nil
}

// Update rewrites an existing accommodation's fields.
func (r *RepositoryImpl) Update(ctx context.Context, accommodationID uuid.UUID, params AccommodationParams) (*models.Accommodation, error) {
	ctx, span := otel.Tracer("AccommodationRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "accommodations"),
		attribute.String("db.accommodation.id", accommodationID.String()),
	))
	defer span.End()

	amenities := params.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	query, args, err := psql.Update("accommodations").
		Set("name", params.Name).
		Set("description", params.Description).
		Set("location", params.Location).
		Set("municipality", params.Municipality).
		Set("contact_number", params.ContactNumber).
		Set("image_url", params.ImageURL).
		Set("price_range", params.PriceRange).
		Set("amenities", amenities).
		Set("rating", params.Rating).
		Set("updated_at", sq.Expr("Now()")).
		Where(sq.Eq{"id": accommodationID}).
		Suffix("RETURNING " + accommodationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building accommodation update query: %w", err)
	}

	a, err := scanAccommodation(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Accommodation not found")
			return nil, fmt.Errorf("accommodation %s not found: %w", accommodationID, models.ErrNotFound)
		}
		r.logger.Error("Failed to update accommodation", zap.String("accommodationID", accommodationID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, fmt.Errorf("database error updating accommodation: %w", err)
	}
	span.SetStatus(codes.Ok, "Accommodation updated")
	return a, nil
}

// Delete removes an accommodation.
func (r *RepositoryImpl) Delete(ctx context.Context, accommodationID uuid.UUID) error {
	ctx, span := otel.Tracer("AccommodationRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "accommodations"),
		attribute.String("db.accommodation.id", accommodationID.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM accommodations WHERE id = $1`, accommodationID)
	if err != nil {
		r.logger.Error("Failed to delete accommodation", zap.String("accommodationID", accommodationID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting accommodation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Accommodation not found")
		return fmt.Errorf("accommodation %s not found: %w", accommodationID, models.ErrNotFound)
	}
	span.SetStatus(codes.Ok, "Accommodation deleted")
	return nil
}
