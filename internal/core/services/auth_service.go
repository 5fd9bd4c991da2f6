package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/platform/config"
	"github.com/courierdesk/merchant_admin_app/internal/utils"
	"github.com/google/uuid"
)

type authService struct {
	BaseService
	adminRepo portsrepo.AdminUserRepositoryFacade
	cfg       *config.Config
	now       func() time.Time
}

// AuthOption is a functional option for the auth service
type AuthOption func(*authService)

// WithAuthClock overrides the clock, used by tests.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates a new auth service for dashboard operators.
func NewAuthService(
	adminRepo portsrepo.AdminUserRepositoryFacade,
	cfg *config.Config,
	options ...AuthOption,
) portssvc.AuthSvcFacade {
	svc := &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate verifies an admin's credentials. Unknown username and wrong
// password both map to ErrValidation so the response does not reveal which
// half failed.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	admin, err := s.adminRepo.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		s.LogInfo(ctx, "Failed login attempt", slog.String("username", username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}
	return admin, nil
}

func (s *authService) GenerateAccessToken(ctx context.Context, admin *domain.AdminUser) (string, time.Time, error) {
	token, err := utils.GenerateJWT(admin.AdminUserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, s.now().Add(s.cfg.JWTExpiryDuration), nil
}

func (s *authService) GenerateRefreshToken(ctx context.Context, admin *domain.AdminUser) (string, time.Time, error) {
	token, err := utils.GenerateJWT(admin.AdminUserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return token, s.now().Add(s.cfg.RefreshTokenExpiryDuration), nil
}

func (s *authService) ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.AdminUser, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrValidation)
	}
	admin, err := s.adminRepo.FindAdminByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// EnsureSeedAdmin creates the seed operator account if the username is free.
// A blank password generates a random one and logs it once, so a fresh
// deployment is never left without a way in.
func (s *authService) EnsureSeedAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}
	if _, err := s.adminRepo.FindAdminByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	generated := false
	if password == "" {
		random, err := utils.GenerateSecureRandomString(16)
		if err != nil {
			return fmt.Errorf("failed to generate seed admin password: %w", err)
		}
		password = random
		generated = true
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	now := s.now()
	admin := domain.AdminUser{
		AdminUserID:  uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.adminRepo.SaveAdminUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to save seed admin: %w", err)
	}

	if generated {
		s.LogInfo(ctx, "Seed admin created with generated password",
			slog.String("username", username),
			slog.String("password", password),
		)
	} else {
		s.LogInfo(ctx, "Seed admin created", slog.String("username", username))
	}
	return nil
}
