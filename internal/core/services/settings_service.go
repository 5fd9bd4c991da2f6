package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	reconciler   portssvc.ReconcilerSvc
	now          func() time.Time
}

// SettingsOption is a functional option for the settings service
type SettingsOption func(*settingsService)

// WithSettingsClock overrides the clock, used by tests.
func WithSettingsClock(now func() time.Time) SettingsOption {
	return func(s *settingsService) {
		s.now = now
	}
}

// NewSettingsService creates a new settings service.
func NewSettingsService(
	settingsRepo portsrepo.SettingsRepositoryFacade,
	reconciler portssvc.ReconcilerSvc,
	options ...SettingsOption,
) portssvc.SettingsSvcFacade {
	svc := &settingsService{
		settingsRepo: settingsRepo,
		reconciler:   reconciler,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error) {
	settings, err := s.settingsRepo.GetFinancialSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load financial settings: %w", err)
	}
	return settings, nil
}

// UpdateFinancialSettings replaces the aging thresholds and reruns
// reconciliation so every merchant's status reflects the new thresholds
// immediately. Binding validation already enforces positivity; the ordering
// chain is re-checked here because the service is also called outside HTTP.
func (s *settingsService) UpdateFinancialSettings(ctx context.Context, req dto.UpdateFinancialSettingsRequest, actorUserID string) (*domain.FinancialSettings, error) {
	if req.DueWarningDays <= 0 ||
		req.LateWarningDays <= req.DueWarningDays ||
		req.VeryLateWarningDays <= req.LateWarningDays ||
		req.SuspensionDays <= req.VeryLateWarningDays {
		return nil, fmt.Errorf("%w: thresholds must be positive and strictly ascending", apperrors.ErrValidation)
	}

	current, err := s.settingsRepo.GetFinancialSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load financial settings: %w", err)
	}

	now := s.now()
	updated := domain.FinancialSettings{
		DueWarningDays:      req.DueWarningDays,
		LateWarningDays:     req.LateWarningDays,
		VeryLateWarningDays: req.VeryLateWarningDays,
		SuspensionDays:      req.SuspensionDays,
		AuditFields: domain.AuditFields{
			CreatedAt:     current.CreatedAt,
			CreatedBy:     current.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.settingsRepo.SaveFinancialSettings(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save financial settings: %w", err)
	}
	if err := s.reconciler.Recompute(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Financial settings updated",
		slog.Int("due_warning_days", updated.DueWarningDays),
		slog.Int("suspension_days", updated.SuspensionDays),
		slog.String("actor", actorUserID),
	)
	return &updated, nil
}

func (s *settingsService) GetNotificationSettings(ctx context.Context) (*domain.NotificationSettings, error) {
	settings, err := s.settingsRepo.GetNotificationSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification settings: %w", err)
	}
	return settings, nil
}

// UpdateNotificationSettings applies the provided toggle changes. Nil fields
// leave the current value in place.
func (s *settingsService) UpdateNotificationSettings(ctx context.Context, req dto.UpdateNotificationSettingsRequest, actorUserID string) (*domain.NotificationSettings, error) {
	current, err := s.settingsRepo.GetNotificationSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification settings: %w", err)
	}

	updated := *current
	if req.NewMerchantAlerts != nil {
		updated.NewMerchantAlerts = *req.NewMerchantAlerts
	}
	if req.PaymentAlerts != nil {
		updated.PaymentAlerts = *req.PaymentAlerts
	}
	if req.MessageAlerts != nil {
		updated.MessageAlerts = *req.MessageAlerts
	}
	updated.LastUpdatedAt = s.now()
	updated.LastUpdatedBy = actorUserID

	if err := s.settingsRepo.SaveNotificationSettings(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save notification settings: %w", err)
	}

	s.LogInfo(ctx, "Notification settings updated", slog.String("actor", actorUserID))
	return &updated, nil
}
