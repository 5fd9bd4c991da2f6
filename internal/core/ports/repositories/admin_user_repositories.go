package repositories

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// AdminUserReader defines read operations for dashboard operator accounts
type AdminUserReader interface {
	// FindAdminByID retrieves an admin user by ID.
	FindAdminByID(ctx context.Context, adminUserID string) (*domain.AdminUser, error)

	// FindAdminByUsername retrieves an admin user by username.
	FindAdminByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}

// AdminUserWriter defines write operations for dashboard operator accounts
type AdminUserWriter interface {
	// SaveAdminUser persists a new admin user.
	SaveAdminUser(ctx context.Context, admin domain.AdminUser) error
}

// AdminUserRepositoryFacade combines the admin user repository interfaces
type AdminUserRepositoryFacade interface {
	AdminUserReader
	AdminUserWriter
}
