package memory

import (
	"context"
	"fmt"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
)

type adminUserRepository struct {
	store *Store
}

var _ portsrepo.AdminUserRepositoryFacade = (*adminUserRepository)(nil)

func (r *adminUserRepository) SaveAdminUser(_ context.Context, admin domain.AdminUser) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.admins {
		if existing.Username == admin.Username {
			return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, admin.Username)
		}
	}
	r.store.admins[admin.AdminUserID] = admin
	return nil
}

func (r *adminUserRepository) FindAdminByID(_ context.Context, adminUserID string) (*domain.AdminUser, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	admin, exists := r.store.admins[adminUserID]
	if !exists {
		return nil, fmt.Errorf("%w: admin %s", apperrors.ErrNotFound, adminUserID)
	}
	return &admin, nil
}

func (r *adminUserRepository) FindAdminByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, admin := range r.store.admins {
		if admin.Username == username {
			return &admin, nil
		}
	}
	return nil, fmt.Errorf("%w: username %s", apperrors.ErrNotFound, username)
}
