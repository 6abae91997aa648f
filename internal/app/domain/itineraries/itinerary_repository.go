package itineraries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

// Repository defines the contract for itinerary persistence. Itineraries are
// insert-only: there is no update operation.
type Repository interface {
	Insert(ctx context.Context, itinerary *models.Itinerary) (*models.Itinerary, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Itinerary, error)
	GetByID(ctx context.Context, itineraryID uuid.UUID) (*models.Itinerary, error)
	DeleteOwned(ctx context.Context, userID, itineraryID uuid.UUID) error
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

// Insert stores a new itinerary with its embedded spot snapshots.
func (r *RepositoryImpl) Insert(ctx context.Context, itinerary *models.Itinerary) (*models.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "Insert", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "itineraries"),
		attribute.String("db.user.id", itinerary.UserID.String()),
		attribute.Int("itinerary.spots", len(itinerary.Spots)),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "Insert"), zap.String("userID", itinerary.UserID.String()))

	spotsJSON, err := json.Marshal(itinerary.Spots)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Snapshot marshal failed")
		return nil, fmt.Errorf("encoding itinerary spots: %w", err)
	}

	query := `
        INSERT INTO itineraries (user_id, name, selected_categories, spots, created_at)
        VALUES ($1, $2, $3, $4, Now())
        RETURNING id, created_at`
	err = r.pgpool.QueryRow(ctx, query, itinerary.UserID, itinerary.Name, itinerary.SelectedCategories, spotsJSON).
		Scan(&itinerary.ID, &itinerary.CreatedAt)
	if err != nil {
		l.Error("Failed to insert itinerary", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error saving itinerary: %w", err)
	}

	l.Info("Itinerary saved", zap.String("itineraryID", itinerary.ID.String()), zap.Int("spots", len(itinerary.Spots)))
	span.SetStatus(codes.Ok, "Itinerary saved")
	return itinerary, nil
}

// GetByUser lists the caller's itineraries, newest first.
func (r *RepositoryImpl) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "GetByUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "itineraries"),
		attribute.String("db.user.id", userID.String()),
	))
	defer span.End()

	query := `
        SELECT id, user_id, name, selected_categories, spots, created_at
        FROM itineraries
        WHERE user_id = $1
        ORDER BY created_at DESC`
	rows, err := r.pgpool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list itineraries", zap.String("userID", userID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error listing itineraries: %w", err)
	}
	defer rows.Close()

	itineraries := make([]models.Itinerary, 0)
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			return nil, err
		}
		itineraries = append(itineraries, *it)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading itineraries: %w", err)
	}
	span.SetStatus(codes.Ok, "Itineraries listed")
	return itineraries, nil
}

// GetByID fetches one itinerary regardless of owner; the service layer
// decides what the caller may do with it.
func (r *RepositoryImpl) GetByID(ctx context.Context, itineraryID uuid.UUID) (*models.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "GetByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "itineraries"),
		attribute.String("db.itinerary.id", itineraryID.String()),
	))
	defer span.End()

	query := `
        SELECT id, user_id, name, selected_categories, spots, created_at
        FROM itineraries
        WHERE id = $1`
	it, err := scanItinerary(r.pgpool.QueryRow(ctx, query, itineraryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Itinerary not found")
			return nil, fmt.Errorf("itinerary %s not found: %w", itineraryID, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch itinerary", zap.String("itineraryID", itineraryID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Itinerary fetched")
	return it, nil
}

// DeleteOwned removes an itinerary only when it belongs to userID, so one
// user's delete can never touch another user's plans.
func (r *RepositoryImpl) DeleteOwned(ctx context.Context, userID, itineraryID uuid.UUID) error {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "DeleteOwned", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "itineraries"),
		attribute.String("db.user.id", userID.String()),
		attribute.String("db.itinerary.id", itineraryID.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM itineraries WHERE id = $1 AND user_id = $2`, itineraryID, userID)
	if err != nil {
		r.logger.Error("Failed to delete itinerary", zap.String("itineraryID", itineraryID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting itinerary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Itinerary not found for owner")
		return fmt.Errorf("itinerary %s not found: %w", itineraryID, models.ErrNotFound)
	}
	span.SetStatus(codes.Ok, "Itinerary deleted")
	return nil
}

func scanItinerary(row pgx.Row) (*models.Itinerary, error) {
	var it models.Itinerary
	var spotsJSON []byte
	if err := row.Scan(&it.ID, &it.UserID, &it.Name, &it.SelectedCategories, &spotsJSON, &it.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(spotsJSON, &it.Spots); err != nil {
		return nil, fmt.Errorf("decoding itinerary spots: %w", err)
	}
	return &it, nil
}
