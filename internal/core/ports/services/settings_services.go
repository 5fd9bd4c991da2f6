package services

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
)

// SettingsSvcFacade manages the financial thresholds and notification toggles.
// Updating financial settings triggers a full reconciliation: status is a pure
// function of balances, dates and thresholds, so new thresholds must be applied
// to every merchant atomically.
type SettingsSvcFacade interface {
	GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error)
	UpdateFinancialSettings(ctx context.Context, req dto.UpdateFinancialSettingsRequest, actorUserID string) (*domain.FinancialSettings, error)
	GetNotificationSettings(ctx context.Context) (*domain.NotificationSettings, error)
	UpdateNotificationSettings(ctx context.Context, req dto.UpdateNotificationSettingsRequest, actorUserID string) (*domain.NotificationSettings, error)
}
