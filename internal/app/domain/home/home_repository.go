package home

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository counts the catalog tables for the landing page stat strip.
type Repository interface {
	CountTable(ctx context.Context, table string) (int, error)
}

// querier is the slice of pgxpool.Pool this repository needs; it is also
// satisfied by pgxmock pools in tests.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RepositoryImpl struct {
	logger *zap.Logger
	pgpool querier
}

func NewRepositoryImpl(pgxpool *pgxpool.Pool, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		pgpool: pgxpool,
	}
}

// countableTables guards the identifier interpolation below; only these four
// catalog tables may be counted.
var countableTables = map[string]struct{}{
	"tourist_spots":  {},
	"restaurants":    {},
	"events":         {},
	"accommodations": {},
}

func (r *RepositoryImpl) CountTable(ctx context.Context, table string) (int, error) {
	ctx, span := otel.Tracer("HomeRepo").Start(ctx, "CountTable", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", table),
	))
	defer span.End()

	if _, ok := countableTables[table]; !ok {
		err := fmt.Errorf("table %q is not countable", table)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unknown table")
		return 0, err
	}

	var count int
	if err := r.pgpool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count); err != nil {
		r.logger.Error("Failed to count table", zap.String("table", table), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return 0, fmt.Errorf("database error counting %s: %w", table, err)
	}
	span.SetStatus(codes.Ok, "Table counted")
	return count, nil
}
