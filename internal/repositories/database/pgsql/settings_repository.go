package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	"github.com/courierdesk/merchant_admin_app/internal/models"
	"github.com/courierdesk/merchant_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettingsRepository stores the two singleton settings rows. Both tables
// hold exactly one row keyed by settings_id = 1; a missing row yields the
// seeded defaults rather than an error, so a fresh database behaves the same
// as one that has been explicitly configured.
type PgxSettingsRepository struct {
	db *pgxpool.Pool
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{db: db}
}

// Ensure PgxSettingsRepository implements the facade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error) {
	query := `
		SELECT due_warning_days, late_warning_days, very_late_warning_days, suspension_days,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM financial_settings
		WHERE settings_id = 1;
	`
	var m models.FinancialSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&m.DueWarningDays,
		&m.LateWarningDays,
		&m.VeryLateWarningDays,
		&m.SuspensionDays,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := domain.DefaultFinancialSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to get financial settings: %w", err)
	}
	settings := mapping.ToDomainFinancialSettings(m)
	return &settings, nil
}

func (r *PgxSettingsRepository) SaveFinancialSettings(ctx context.Context, settings domain.FinancialSettings) error {
	m := mapping.ToModelFinancialSettings(settings)
	query := `
		INSERT INTO financial_settings (settings_id, due_warning_days, late_warning_days, very_late_warning_days, suspension_days,
		                                created_at, created_by, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (settings_id) DO UPDATE SET
			due_warning_days = EXCLUDED.due_warning_days,
			late_warning_days = EXCLUDED.late_warning_days,
			very_late_warning_days = EXCLUDED.very_late_warning_days,
			suspension_days = EXCLUDED.suspension_days,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		m.DueWarningDays,
		m.LateWarningDays,
		m.VeryLateWarningDays,
		m.SuspensionDays,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save financial settings: %w", err)
	}
	return nil
}

func (r *PgxSettingsRepository) GetNotificationSettings(ctx context.Context) (*domain.NotificationSettings, error) {
	query := `
		SELECT new_merchant_alerts, payment_alerts, message_alerts,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM notification_settings
		WHERE settings_id = 1;
	`
	var m models.NotificationSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&m.NewMerchantAlerts,
		&m.PaymentAlerts,
		&m.MessageAlerts,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := domain.DefaultNotificationSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	settings := mapping.ToDomainNotificationSettings(m)
	return &settings, nil
}

func (r *PgxSettingsRepository) SaveNotificationSettings(ctx context.Context, settings domain.NotificationSettings) error {
	m := mapping.ToModelNotificationSettings(settings)
	query := `
		INSERT INTO notification_settings (settings_id, new_merchant_alerts, payment_alerts, message_alerts,
		                                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (settings_id) DO UPDATE SET
			new_merchant_alerts = EXCLUDED.new_merchant_alerts,
			payment_alerts = EXCLUDED.payment_alerts,
			message_alerts = EXCLUDED.message_alerts,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		m.NewMerchantAlerts,
		m.PaymentAlerts,
		m.MessageAlerts,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification settings: %w", err)
	}
	return nil
}
