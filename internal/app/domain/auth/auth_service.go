package auth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the business logic contract for account registration and login.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*models.UserAuth, string, error)
	Login(ctx context.Context, email, password string) (*models.UserAuth, string, error)
}

type ServiceImpl struct {
	repo   Repository
	jwt    *JWTService
	jwtCfg JWTConfig
	logger *zap.Logger
}

func NewServiceImpl(repo Repository, jwtCfg JWTConfig, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		jwt:    NewJWTService(),
		jwtCfg: jwtCfg,
		logger: logger,
	}
}

// Register creates the account and returns the user with a fresh token so
// signup logs the user straight in.
func (s *ServiceImpl) Register(ctx context.Context, username, email, password string) (*models.UserAuth, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" || email == "" {
		return nil, "", fmt.Errorf("username and email are required: %w", models.ErrValidation)
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters: %w", models.ErrValidation)
	}

	hashed, err := s.jwt.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.repo.Register(ctx, username, email, hashed)
	if err != nil {
		return nil, "", err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(s.jwtCfg, user.ID.String(), user.Email, user.Username)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Account created", zap.String("userID", user.ID.String()))
	return user, token, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password collapse into the same ErrUnauthenticated so the response does
// not leak which one failed.
func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*models.UserAuth, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid email or password: %w", models.ErrUnauthenticated)
	}

	if !s.jwt.CheckPassword(user.PasswordHash, password) {
		return nil, "", fmt.Errorf("invalid email or password: %w", models.ErrUnauthenticated)
	}

	token, err := s.jwt.GenerateToken(s.jwtCfg, user.ID.String(), user.Email, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
