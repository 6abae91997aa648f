package spots

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

// Repository defines the contract for tourist spot persistence.
type Repository interface {
	GetAll(ctx context.Context) ([]models.TouristSpot, error)
	GetByID(ctx context.Context, spotID uuid.UUID) (*models.TouristSpot, error)
	GetByIDs(ctx context.Context, spotIDs []uuid.UUID) ([]models.TouristSpot, error)
	GetByCategoryOverlap(ctx context.Context, categories []string) ([]models.TouristSpot, error)
	GetMapMarkers(ctx context.Context) ([]models.MapMarker, error)
	Create(ctx context.Context, params SpotParams) (*models.TouristSpot, error)
	Update(ctx context.Context, spotID uuid.UUID, params SpotParams) (*models.TouristSpot, error)
	Delete(ctx context.Context, spotID uuid.UUID) error
}

// SpotParams carries the admin form fields for create and update.
type SpotParams struct {
	Name          string
	Description   *string
	Location      string
	Municipality  *string
	Category      []string
	ContactNumber *string
	ImageURL      *string
	Latitude      *float64
	Longitude     *float64
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

const spotColumns = "id, name, description, location, municipality, category, contact_number, image_url, rating, latitude, longitude, created_at, updated_at"

func scanSpot(row pgx.Row) (*models.TouristSpot, error) {
	var s models.TouristSpot
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Location, &s.Municipality, &s.Category,
		&s.ContactNumber, &s.ImageURL, &s.Rating, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RepositoryImpl) querySpots(ctx context.Context, query string, args ...any) ([]models.TouristSpot, error) {
	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spots := make([]models.TouristSpot, 0)
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		spots = append(spots, *s)
	}
	return spots, rows.Err()
}

// GetAll returns every spot ordered by name, the explore listing's base set.
func (r *RepositoryImpl) GetAll(ctx context.Context) ([]models.TouristSpot, error) {
	ctx, span := otel.Tracer("SpotRepo").Start(ctx, "GetAll", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "tourist_spots"),
	))
	defer span.End()

	query, args, err := psql.Select(spotColumns).From("tourist_spots").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building spot list query: %w", err)
	}

	spots, err := r.querySpots(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list tourist spots", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error listing spots: %w", err)
	}
	span.SetStatus(codes.Ok, "Spots listed")
	return spots, nil
}

// GetByID fetches one spot; a missing row maps to ErrNotFound so the detail
// page can render its empty state instead of an error.
func (r *RepositoryImpl) GetByID(ctx context.Context, spotID uuid.UUID) (*models.TouristSpot, error) {
	ctx, span := otel.Tracer("SpotRepo").Start(ctx, "GetByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "tourist_spots"),
		attribute.String("db.spot.id", spotID.String()),
	))
	defer span.End()

	query := `SELECT ` + spotColumns + ` FROM tourist_spots WHERE id = $1`
	s, err := scanSpot(r.pgpool.QueryRow(ctx, query, spotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Spot not found")
			return nil, fmt.Errorf("spot %s not found: %w", spotID, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch tourist spot", zap.String("spotID", spotID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching spot: %w", err)
	}
	span.SetStatus(codes.Ok, "Spot fetched")
	return s, nil
}

// GetByIDs fetches the selected candidates in one round trip when an
// itinerary snapshot is assembled.
func (r *RepositoryImpl) GetByIDs(ctx context.Context, spotIDs []uuid.UUID) ([]models.TouristSpot, error) {
	ctx, span := otel.Tracer("SpotRepo").Start(ctx, "GetByIDs", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "tourist_spots"),
		attribute.Int("spot.count", len(spotIDs)),
	))
	defer span.End()

	query := `SELECT ` + spotColumns + ` FROM tourist_spots WHERE id = ANY($1) ORDER BY name`
	spots, err := r.querySpots(ctx, query, spotIDs)
	if err != nil {
		r.logger.Error("Failed to fetch spots by ids", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching spots: %w", err)
	}
	span.SetStatus(codes.Ok, "Spots fetched")
	return spots, nil
}

// GetByCategoryOverlap returns spots sharing at least one tag with the
// selection (array overlap, not subset).
func (r *RepositoryImpl) GetByCategoryOverlap(ctx context.Context, categories []string) ([]models.TouristSpot, error) {
	ctx, span := otel.Tracer("SpotRepo").Start(ctx, "GetByCategoryOverlap", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "tourist_spots"),
		attribute.StringSlice("categories", categories),
	))
	defer span.End()

	query := `SELECT ` + spotColumns + ` FROM tourist_spots WHERE category && $1 ORDER BY name`
	spots, err := r.querySpots(ctx, query, categories)
	if err != nil {
		r.logger.Error("Failed to fetch spots by category overlap", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching recommendations: %w", err)
	}
	span.SetStatus(codes.Ok, "Spots fetched")
	return spots, nil
}

// GetMapMarkers returns the spots that can be pinned, i.e. both coordinates present.
func (r *RepositoryImpl) GetMapMarkers(ctx context.Context) ([]models.MapMarker, error) {
	ctx, span := otel.Tracer("SpotRepo").Start(ctx, "GetMapMarkers", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "tourist_spots"),
	))
	defer span.End()

	query := `
        SELECT id, name, category, latitude, longitude
        FROM tourist_spots
        WHERE latitude IS NOT NULL AND longitude IS NOT NULL
        ORDER BY name`
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to fetch map markers", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching map markers: %w", err)
	}
	defer rows.Close()

	markers := make([]models.MapMarker, 0)
	for rows.Next() {
		var m models.MapMarker
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Latitude, &m.Longitude); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			return nil, fmt.Errorf("database error scanning map marker: %w", err)
		}
		markers = append(markers, m)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading map markers: %w", err)
	}
	span.SetStatus(codes.Ok, "Markers fetched")
	return markers, nil
}

// Create inserts a new spot from the admin panel.
func (r *RepositoryImpl) Create(ctx context.Context, params SpotParams) (*models.TouristSpot, error) {
	ctx, span := otel.Tracer("SpotRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "tourist_spots"),
		attribute.String("spot.name", params.Name),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "Create"), zap.String("name", params.Name))

	query, args, err := psql.Insert("tourist_spots").
		Columns("name", "description", "location", "municipality", "category", "contact_number", "image_url", "latitude", "longitude").
		Values(params.Name, params.Description, params.Location, params.Municipality, params.Category,
			params.ContactNumber, params.ImageURL, params.Latitude, params.Longitude).
		Suffix("RETURNING " + spotColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building spot insert query: %w", err)
	}

	s, err := scanSpot(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		l.Error("Failed to insert tourist spot", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating spot: %w", err)
	}

	l.Info("Tourist spot created", zap.String("spotID", s.ID.String()))
	span.SetStatus(codes.Ok, "Spot created")
	return s, nil
}

// Update rewrites an existing spot's fields.
func (r *RepositoryImpl) Update(ctx context.Context, spotID uuid.UUID, params SpotParams) (*models.TouristSpot, error) {
	ctx, span := otel.Tracer("SpotRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "tourist_spots"),
		attribute.String("db.spot.id", spotID.String()),
	))
	defer span.End()

	query, args, err := psql.Update("tourist_spots").
		Set("name", params.Name).
		Set("description", params.Description).
		Set("location", params.Location).
		Set("municipality", params.Municipality).
		Set("category", params.Category).
		Set("contact_number", params.ContactNumber).
		Set("image_url", params.ImageURL).
		Set("latitude", params.Latitude).
		Set("longitude", params.Longitude).
		Set("updated_at", sq.Expr("Now()")).
		Where(sq.Eq{"id": spotID}).
		Suffix("RETURNING " + spotColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building spot update query: %w", err)
	}

	s, err := scanSpot(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Spot not found")
			return nil, fmt.Errorf("spot %s not found: %w", spotID, models.ErrNotFound)
		}
		r.logger.Error("Failed to update tourist spot", zap.String("spotID", spotID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, fmt.Errorf("database error updating spot: %w", err)
	}
	span.SetStatus(codes.Ok, "Spot updated")
	return s, nil
}

// Delete removes a spot. Reviews cascade at the schema level.
func (r *RepositoryImpl) Delete(ctx context.Context, spotID uuid.UUID) error {
	ctx, span := otel.Tracer("SpotRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "tourist_spots"),
		attribute.String("db.spot.id", spotID.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM tourist_spots WHERE id = $1`, spotID)
	if err != nil {
		r.logger.Error("Failed to delete tourist spot", zap.String("spotID", spotID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting spot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Spot not found")
		return fmt.Errorf("spot %s not found: %w", spotID, models.ErrNotFound)
	}
	span.SetStatus(codes.Ok, "Spot deleted")
	return nil
}
