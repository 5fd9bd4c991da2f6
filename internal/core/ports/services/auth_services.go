package services

import (
	"context"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// AuthSvcFacade defines the interface for admin authentication and token
// management.
type AuthSvcFacade interface {
	// Authenticate verifies an admin's credentials.
	Authenticate(ctx context.Context, username, password string) (*domain.AdminUser, error)

	// GenerateAccessToken issues a short-lived access JWT for the admin.
	GenerateAccessToken(ctx context.Context, admin *domain.AdminUser) (string, time.Time, error)

	// GenerateRefreshToken issues a long-lived refresh JWT for the admin.
	GenerateRefreshToken(ctx context.Context, admin *domain.AdminUser) (string, time.Time, error)

	// ValidateRefreshToken validates a refresh token string and returns the
	// admin it was issued to.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.AdminUser, error)

	// EnsureSeedAdmin creates the configured seed admin account at startup if
	// that username does not exist yet.
	EnsureSeedAdmin(ctx context.Context, username, password string) error
}
