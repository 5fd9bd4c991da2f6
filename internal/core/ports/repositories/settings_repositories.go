package repositories

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// SettingsReader defines read operations for the singleton settings rows
type SettingsReader interface {
	// GetFinancialSettings retrieves the aging thresholds.
	GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error)

	// GetNotificationSettings retrieves the notification toggles.
	GetNotificationSettings(ctx context.Context) (*domain.NotificationSettings, error)
}

// SettingsWriter defines write operations for the singleton settings rows
type SettingsWriter interface {
	// SaveFinancialSettings replaces the aging thresholds wholesale.
	SaveFinancialSettings(ctx context.Context, settings domain.FinancialSettings) error

	// SaveNotificationSettings replaces the notification toggles wholesale.
	SaveNotificationSettings(ctx context.Context, settings domain.NotificationSettings) error
}

// SettingsRepositoryFacade combines the settings repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
