package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

// Repository defines the contract for user credential persistence. The
// profile row is created inside Register so signup stays one transaction.
type Repository interface {
	Register(ctx context.Context, username, email, hashedPassword string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserAuth, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error)
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
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

// Register stores a new user with a hashed password and creates the empty
// profile row that onboarding and the profile editor later fill in.
func (r *RepositoryImpl) Register(ctx context.Context, username, email, hashedPassword string) (uuid.UUID, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "Register", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "Register"), zap.String("email", email))

	tx, err := r.pgpool.Begin(ctx)
	if err != nil {
		l.Error("Failed to begin transaction", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "BEGIN failed")
		return uuid.Nil, fmt.Errorf("database error registering user: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID uuid.UUID
	query := `
        INSERT INTO users (username, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, Now(), Now())
        RETURNING id`
	err = tx.QueryRow(ctx, query, username, email, hashedPassword).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			l.Warn("Attempted to register duplicate email")
			span.SetStatus(codes.Error, "Duplicate email")
			return uuid.Nil, fmt.Errorf("account with email '%s' already exists: %w", email, models.ErrConflict)
		}
		l.Error("Failed to insert user", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB INSERT failed")
		return uuid.Nil, fmt.Errorf("database error registering user: %w", err)
	}

	// Profile is created implicitly at signup.
	_, err = tx.Exec(ctx, `INSERT INTO profiles (id, full_name, created_at, updated_at) VALUES ($1, $2, Now(), Now())`, userID, username)
	if err != nil {
		l.Error("Failed to insert profile", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB INSERT failed")
		return uuid.Nil, fmt.Errorf("database error creating profile: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		l.Error("Failed to commit registration", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "COMMIT failed")
		return uuid.Nil, fmt.Errorf("database error registering user: %w", err)
	}

	l.Info("User registered", zap.String("userID", userID.String()))
	span.SetStatus(codes.Ok, "User registered")
	return userID, nil
}

// GetUserByEmail fetches user details needed for validation and token generation.
func (r *RepositoryImpl) GetUserByEmail(ctx context.Context, email string) (*models.UserAuth, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "GetUserByEmail", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	var user models.UserAuth
	query := `SELECT id, username, email, password_hash, is_active, created_at FROM users WHERE email = $1 AND is_active = TRUE`
	err := r.pgpool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "User not found")
			return nil, fmt.Errorf("user with email %s not found: %w", email, models.ErrNotFound)
		}
		r.logger.Error("Error fetching user by email", zap.Error(err), zap.String("email", email))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}
	span.SetStatus(codes.Ok, "User fetched")
	return &user, nil
}

// GetUserByID fetches user details by id.
func (r *RepositoryImpl) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "GetUserByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	var user models.UserAuth
	query := `SELECT id, username, email, password_hash, is_active, created_at FROM users WHERE id = $1 AND is_active = TRUE`
	err := r.pgpool.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "User not found")
			return nil, fmt.Errorf("user %s not found: %w", userID, models.ErrNotFound)
		}
		r.logger.Error("Error fetching user by id", zap.Error(err), zap.String("userID", userID.String()))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}
	span.SetStatus(codes.Ok, "User fetched")
	return &user, nil
}

// HasRole checks the user_roles table. Used by the admin middleware.
func (r *RepositoryImpl) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "HasRole", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "user_roles"),
		attribute.String("db.user.id", userID.String()),
		attribute.String("role", role),
	))
	defer span.End()

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`
	err := r.pgpool.QueryRow(ctx, query, userID, role).Scan(&exists)
	if err != nil {
		r.logger.Error("Error checking user role", zap.Error(err), zap.String("userID", userID.String()))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return false, fmt.Errorf("database error checking role: %w", err)
	}
	span.SetStatus(codes.Ok, "Role checked")
	return exists, nil
}
