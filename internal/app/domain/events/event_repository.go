package events

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// Repository defines the contract for event persistence.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, eventID uuid.UUID) (*models.Event, error)
	Create(ctx context.Context, params EventParams) (*models.Event, error)
	Update(ctx context.Context, eventID uuid.UUID, params EventParams) (*models.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
}

// EventParams carries the admin form fields for create and update.
type EventParams struct {
	Name         string
	Description  *string
	EventType    *string
	Location     string
	Municipality *string
	EventDate    *time.Time
	ImageURL     *string
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

const eventColumns = "id, name, description, event_type, location, municipality, event_date, image_url, created_at, updated_at"

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.EventType, &e.Location, &e.Municipality,
		&e.EventDate, &e.ImageURL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetAll returns every event, soonest date first with undated events last.
func (r *RepositoryImpl) GetAll(ctx context.Context) ([]models.Event, error) {
	ctx, span := otel.Tracer("EventRepo").Start(ctx, "GetAll", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "events"),
	))
	defer span.End()

	query, args, err := psql.Select(eventColumns).From("events").
		OrderBy("event_date ASC NULLS LAST", "name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building event list query: %w", err)
	}

	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list events", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error listing events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			return nil, fmt.Errorf("database error scanning event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading events: %w", err)
	}
	span.SetStatus(codes.Ok, "Events listed")
	return events, nil
}

// GetByID fetches one event.
func (r *RepositoryImpl) GetByID(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	ctx, span := otel.Tracer("EventRepo").Start(ctx, "GetByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "events"),
		attribute.String("db.event.id", eventID.String()),
	))
	defer span.End()

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.pgpool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Event not found")
			return nil, fmt.Errorf("event %s not found: %w", eventID, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch event", zap.String("eventID", eventID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching event: %w", err)
	}
	span.SetStatus(codes.Ok, "Event fetched")
	return e, nil
}

// Create inserts a new event from the admin panel.
func (r *RepositoryImpl) Create(ctx context.Context, params EventParams) (*models.Event, error) {
	ctx, span := otel.Tracer("EventRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "events"),
		attribute.String("event.name", params.Name),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "Create"), zap.String("name", params.Name))

	query, args, err := psql.Insert("events").
		Columns("name", "description", "event_type", "location", "municipality", "event_date", "image_url").
		Values(params.Name, params.Description, params.EventType, params.Location, params.Municipality,
			params.EventDate, params.ImageURL).
		Suffix("RETURNING " + eventColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building event insert query: %w", err)
	}

	e, err := scanEvent(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		l.Error("Failed to insert event", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB INSERT failed")
		return nil, fmt.Errorf("database error creating event: %w", err)
	}

	l.Info("Event created", zap.String("eventID", e.ID.String()))
	span.SetStatus(codes.Ok, "Event created")
	return e, nil
}

// Update rewrites an existing event's fields.
func (r *RepositoryImpl) Update(ctx context.Context, eventID uuid.UUID, params EventParams) (*models.Event, error) {
	ctx, span := otel.Tracer("EventRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "events"),
		attribute.String("db.event.id", eventID.String()),
	))
	defer span.End()

	query, args, err := psql.Update("events").
		Set("name", params.Name).
		Set("description", params.Description).
		Set("event_type", params.EventType).
		Set("location", params.Location).
		Set("municipality", params.Municipality).
		Set("event_date", params.EventDate).
		Set("image_url", params.ImageURL).
		Set("updated_at", sq.Expr("Now()")).
		Where(sq.Eq{"id": eventID}).
		Suffix("RETURNING " + eventColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building event update query: %w", err)
	}

	e, err := scanEvent(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Event not found")
			return nil, fmt.Errorf("event %s not found: %w", eventID, models.ErrNotFound)
		}
		r.logger.Error("Failed to update event", zap.String("eventID", eventID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, fmt.Errorf("database error updating event: %w", err)
	}
	span.SetStatus(codes.Ok, "Event updated")
	return e, nil
}

// Delete removes an event.
func (r *RepositoryImpl) Delete(ctx context.Context, eventID uuid.UUID) error {
	ctx, span := otel.Tracer("EventRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "events"),
		attribute.String("db.event.id", eventID.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		r.logger.Error("Failed to delete event", zap.String("eventID", eventID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB DELETE failed")
		return fmt.Errorf("database error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Event not found")
		return fmt.Errorf("event %s not found: %w", eventID, models.ErrNotFound)
	}
	span.SetStatus(codes.Ok, "Event deleted")
	return nil
}
