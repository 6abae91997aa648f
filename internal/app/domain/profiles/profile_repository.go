package profiles

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

// Repository defines the contract for profile persistence.
type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error)
	SaveOnboardingAnswers(ctx context.Context, userID uuid.UUID, answers *models.OnboardingAnswers) error
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

const profileColumns = `id, full_name, bio, avatar_url, onboarding_answers, created_at, updated_at`

// GetProfile fetches the caller's profile row.
func (r *RepositoryImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	ctx, span := otel.Tracer("ProfileRepo").Start(ctx, "GetProfile", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "profiles"),
		attribute.String("db.user.id", userID.String()),
	))
	defer span.End()

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	profile, err := scanProfile(r.pgpool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Profile not found")
			return nil, fmt.Errorf("profile for user %s not found: %w", userID, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch profile", zap.String("userID", userID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Profile fetched")
	return profile, nil
}

// UpdateProfile overwrites the display fields and returns the fresh row.
func (r *RepositoryImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	ctx, span := otel.Tracer("ProfileRepo").Start(ctx, "UpdateProfile", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "profiles"),
		attribute.String("db.user.id", userID.String()),
	))
	defer span.End()

	query := `
        UPDATE profiles
        SET full_name = $2, bio = $3, avatar_url = $4, updated_at = Now()
        WHERE id = $1
        RETURNING ` + profileColumns
	profile, err := scanProfile(r.pgpool.QueryRow(ctx, query, userID, req.FullName, req.Bio, req.AvatarURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Profile not found")
			return nil, fmt.Errorf("profile for user %s not found: %w", userID, models.ErrNotFound)
		}
		r.logger.Error("Failed to update profile", zap.String("userID", userID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Profile updated")
	return profile, nil
}

// SaveOnboardingAnswers records the wizard result exactly once. The WHERE
// clause only matches a profile whose answers are still NULL, so a second
// submission affects zero rows and maps to ErrOnboardingDone.
func (r *RepositoryImpl) SaveOnboardingAnswers(ctx context.Context, userID uuid.UUID, answers *models.OnboardingAnswers) error {
	ctx, span := otel.Tracer("ProfileRepo").Start(ctx, "SaveOnboardingAnswers", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "profiles"),
		attribute.String("db.user.id", userID.String()),
	))
	defer span.End()

	payload, err := json.Marshal(answers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Answers marshal failed")
		return fmt.Errorf("encoding onboarding answers: %w", err)
	}

	query := `
        UPDATE profiles
        SET onboarding_answers = $2, updated_at = Now()
        WHERE id = $1 AND onboarding_answers IS NULL`
	tag, err := r.pgpool.Exec(ctx, query, userID, payload)
	if err != nil {
		r.logger.Error("Failed to save onboarding answers", zap.String("userID", userID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB UPDATE failed")
		return fmt.Errorf("database error saving onboarding answers: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if checkErr := r.pgpool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`, userID).Scan(&exists); checkErr == nil && !exists {
			span.SetStatus(codes.Error, "Profile not found")
			return fmt.Errorf("profile for user %s not found: %w", userID, models.ErrNotFound)
		}
		span.SetStatus(codes.Error, "Onboarding already completed")
		return fmt.Errorf("onboarding already completed: %w", models.ErrOnboardingDone)
	}

	r.logger.Info("Onboarding answers saved", zap.String("userID", userID.String()))
	span.SetStatus(codes.Ok, "Onboarding answers saved")
	return nil
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	var answersJSON []byte
	if err := row.Scan(&p.ID, &p.FullName, &p.Bio, &p.AvatarURL, &answersJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(answersJSON) > 0 {
		p.OnboardingAnswers = &models.OnboardingAnswers{}
		if err := json.Unmarshal(answersJSON, p.OnboardingAnswers); err != nil {
			return nil, fmt.Errorf("decoding onboarding answers: %w", err)
		}
	}
	return &p, nil
}
