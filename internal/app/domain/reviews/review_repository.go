package reviews

import (
	"context"
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

// Repository defines the contract for review persistence.
type Repository interface {
	GetBySpot(ctx context.Context, spotID uuid.UUID) ([]models.Review, error)
	GetByID(ctx context.Context, reviewID uuid.UUID) (*models.Review, error)
	GetAuthorNames(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error)
	Insert(ctx context.Context, review *models.Review) (*models.Review, error)
	Delete(ctx context.Context, reviewID uuid.UUID) error
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

// GetBySpot lists a spot's reviews newest first. Author names are not joined
// here; the service enriches them with one batched lookup.
func (r *RepositoryImpl) GetBySpot(ctx context.Context, spotID uuid.UUID) ([]models.Review, error) {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "GetBySpot", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "reviews"),
		attribute.String("db.spot.id", spotID.String()),
	))
	defer span.End()

	query := `
        SELECT id, spot_id, user_id, rating, comment, created_at
        FROM reviews
        WHERE spot_id = $1
        ORDER BY created_at DESC`
	rows, err := r.pgpool.Query(ctx, query, spotID)
	if err != nil {
		r.logger.Error("Failed to list reviews", zap.String("spotID", spotID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error listing reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.SpotID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			return nil, fmt.Errorf("database error scanning review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading reviews: %w", err)
	}
	span.SetStatus(codes.Ok, "Reviews listed")
	return reviews, nil
}

// GetByID fetches one review, used for the ownership check before delete.
func (r *RepositoryImpl) GetByID(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "GetByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "reviews"),
		attribute.String("db.review.id", reviewID.String()),
	))
	defer span.End()

	var rv models.Review
	query := `SELECT id, spot_id, user_id, rating, comment, created_at FROM reviews WHERE id = $1`
	err := r.pgpool.QueryRow(ctx, query, reviewID).Scan(&rv.ID, &rv.SpotID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Review not found")
			return nil, fmt.Errorf("review %s not found: %w", reviewID, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch review", zap.String("reviewID", reviewID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching review: %w", err)
	}
	span.SetStatus(codes.Ok, "Review fetched")
	return &rv, nil
}

// GetAuthorNames resolves display names for a set of user ids in one query.
func (r *RepositoryImpl) GetAuthorNames(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "GetAuthorNames", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "profiles"),
		attribute.Int("author.count", len(userIDs)),
	))
	defer span.End()

	names := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) == 0 {
		span.SetStatus(codes.Ok, "No authors to resolve")
		return names, nil
	}

	rows, err := r.pgpool.Query(ctx, `SELECT id, full_name FROM profiles WHERE id = ANY($1)`, userIDs)
	if err != nil {
		r.logger.Error("Failed to fetch review author names", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching author names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var fullName *string
		if err := rows.Scan(&id, &fullName); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning author name: %w", err)
		}
		if fullName != nil {
			names[id] = *fullName
		}
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading author names: %w", err)
	}
	span.SetStatus(codes.Ok, "Author names fetched")
	return names, nil
}

// Insert stores a new review.
func (r *RepositoryImpl) Insert(ctx context.Context, review *models.Review) (*models.Review, error) {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "Insert", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "reviews"),
		attribute.String("db.spot.id", review.SpotID.String()),
		attribute.Int("review.rating", review.Rating),
	))
	defer span.End()

	query := `
        INSERT INTO reviews (spot_id, user_id, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, Now())
        RETURNING id, created_at`
	err := r.pgpool.QueryRow(ctx, query, review.SpotID, review.UserID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert review", zap.String("spotID", review.SpotID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating review: %w", err)
	}

	span.SetStatus(codes.Ok, "Review created")
	return review, nil
}

// Delete removes a review. The service has already verified ownership.
func (r *RepositoryImpl) Delete(ctx context.Context, reviewID uuid.UUID) error {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "reviews"),
		attribute.String("db.review.id", reviewID.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		r.logger.Error("Failed to delete review", zap.String("reviewID", reviewID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Review not found")
		return fmt.Errorf("review %s not found: %w", reviewID, models.ErrNotFound)
	}
	span.SetStatus(codes.Ok, "Review deleted")
	return nil
}
