package memory

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
)

type settingsRepository struct {
	store *Store
}

var _ portsrepo.SettingsRepositoryFacade = (*settingsRepository)(nil)

// GetFinancialSettings returns the stored thresholds, or the defaults when
// nothing has been saved yet.
func (r *settingsRepository) GetFinancialSettings(_ context.Context) (*domain.FinancialSettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.financial == nil {
		defaults := domain.DefaultFinancialSettings()
		return &defaults, nil
	}
	settings := *r.store.financial
	return &settings, nil
}

func (r *settingsRepository) SaveFinancialSettings(_ context.Context, settings domain.FinancialSettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.financial = &settings
	return nil
}

func (r *settingsRepository) GetNotificationSettings(_ context.Context) (*domain.NotificationSettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.notification == nil {
		defaults := domain.DefaultNotificationSettings()
		return &defaults, nil
	}
	settings := *r.store.notification
	return &settings, nil
}

func (r *settingsRepository) SaveNotificationSettings(_ context.Context, settings domain.NotificationSettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notification = &settings
	return nil
}
