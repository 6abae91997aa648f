package restaurants

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

// Repository defines the contract for restaurant persistence.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, restaurantID uuid.UUID) (*models.Restaurant, error)
	Create(ctx context.Context, params RestaurantParams) (*models.Restaurant, error)
	Update(ctx context.Context, restaurantID uuid.UUID, params RestaurantParams) (*models.Restaurant, error)
	Delete(ctx context.Context, restaurantID uuid.UUID) error
}

// RestaurantParams carries the admin form fields for create and update.
type RestaurantParams struct {
	Name          string
	Description   *string
	FoodType      *string
	Location      string
	Municipality  *string
	ContactNumber *string
	ImageURL      *string
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

const restaurantColumns = "id, name, description, food_type, location, municipality, contact_number, image_url, created_at, updated_at"

func scanRestaurant(row pgx.Row) (*models.Restaurant, error) {
	var rt models.Restaurant
	err := row.Scan(&rt.ID, &rt.Name, &rt.Description, &rt.FoodType, &rt.Location, &rt.Municipality,
		&rt.ContactNumber, &rt.ImageURL, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// GetAll returns every restaurant ordered by name.
func (r *RepositoryImpl) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	ctx, span := otel.Tracer("RestaurantRepo").Start(ctx, "GetAll", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "restaurants"),
	))
	defer span.End()

	query, args, err := psql.Select(restaurantColumns).From("restaurants").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building restaurant list query: %w", err)
	}

	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list restaurants", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error listing restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]models.Restaurant, 0)
	for rows.Next() {
		rt, err := scanRestaurant(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			return nil, fmt.Errorf("database error scanning restaurant: %w", err)
		}
		restaurants = append(restaurants, *rt)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading restaurants: %w", err)
	}
	span.SetStatus(codes.Ok, "Restaurants listed")
	return restaurants, nil
}

// GetByID fetches one restaurant.
func (r *RepositoryImpl) GetByID(ctx context.Context, restaurantID uuid.UUID) (*models.Restaurant, error) {
	ctx, span := otel.Tracer("RestaurantRepo").Start(ctx, "GetByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "restaurants"),
		attribute.String("db.restaurant.id", restaurantID.String()),
	))
	defer span.End()

	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`
	rt, err := scanRestaurant(r.pgpool.QueryRow(ctx, query, restaurantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Restaurant not found")
			return nil, fmt.Errorf("restaurant %s not found: %w", restaurantID, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch restaurant", zap.String("restaurantID", restaurantID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching restaurant: %w", err)
	}
	span.SetStatus(codes.Ok, "Restaurant fetched")
	return rt, nil
}

// Create inserts a new restaurant from the admin panel.
func (r *RepositoryImpl) Create(ctx context.Context, params RestaurantParams) (*models.Restaurant, error) {
	ctx, span := otel.Tracer("RestaurantRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "restaurants"),
		attribute.String("restaurant.name", params.Name),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "Create"), zap.String("name", params.Name))

	query, args, err := psql.Insert("restaurants").
		Columns("name", "description", "food_type", "location", "municipality", "contact_number", "image_url").
		Values(params.Name, params.Description, params.FoodType, params.Location, params.Municipality,
			params.ContactNumber, params.ImageURL).
		Suffix("RETURNING " + restaurantColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building restaurant insert query: %w", err)
	}

	rt, err := scanRestaurant(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		l.Error("Failed to insert restaurant", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating restaurant: %w", err)
	}

	l.Info("Restaurant created", zap.String("restaurantID", rt.ID.String()))
	span.SetStatus(codes.Ok, "Restaurant created")
	return rt, nil
}

// Update rewrites an existing restaurant's fields.
func (r *RepositoryImpl) Update(ctx context.Context, restaurantID uuid.UUID, params RestaurantParams) (*models.Restaurant, error) {
	ctx, span := otel.Tracer("RestaurantRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "restaurants"),
		attribute.String("db.restaurant.id", restaurantID.String()),
	))
	defer span.End()

	query, args, err := psql.Update("restaurants").
		Set("name", params.Name).
		Set("description", params.Description).
		Set("food_type", params.FoodType).
		Set("location", params.Location).
		Set("municipality", params.Municipality).
		Set("contact_number", params.ContactNumber).
		Set("image_url", params.ImageURL).
		Set("updated_at", sq.Expr("Now()")).
		Where(sq.Eq{"id": restaurantID}).
		Suffix("RETURNING " + restaurantColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building restaurant update query: %w", err)
	}

	rt, err := scanRestaurant(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Restaurant not found")
			return nil, fmt.Errorf("restaurant %s not found: %w", restaurantID, models.ErrNotFound)
		}
		r.logger.Error("Failed to update restaurant", zap.String("restaurantID", restaurantID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, fmt.Errorf("database error updating restaurant: %w", err)
	}
	span.SetStatus(codes.Ok, "Restaurant updated")
	return rt, nil
}

// Delete removes a restaurant.
func (r *RepositoryImpl) Delete(ctx context.Context, restaurantID uuid.UUID) error {
	ctx, span := otel.Tracer("RestaurantRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "restaurants"),
		attribute.String("db.restaurant.id", restaurantID.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, restaurantID)
	if err != nil {
		r.logger.Error("Failed to delete restaurant", zap.String("restaurantID", restaurantID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Restaurant not found")
		return fmt.Errorf("restaurant %s not found: %w", restaurantID, models.ErrNotFound)
	}
	span.SetStatus(codes.Ok, "Restaurant deleted")
	return nil
}
