package mapping

import (
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/models"
)

// ToModelFinancialSettings converts domain FinancialSettings to the model row
func ToModelFinancialSettings(d domain.FinancialSettings) models.FinancialSettings {
	return models.FinancialSettings{
		DueWarningDays:      d.DueWarningDays,
		LateWarningDays:     d.LateWarningDays,
		VeryLateWarningDays: d.VeryLateWarningDays,
		SuspensionDays:      d.SuspensionDays,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialSettings converts the model row to domain FinancialSettings
func ToDomainFinancialSettings(m models.FinancialSettings) domain.FinancialSettings {
	return domain.FinancialSettings{
		DueWarningDays:      m.DueWarningDays,
		LateWarningDays:     m.LateWarningDays,
		VeryLateWarningDays: m.VeryLateWarningDays,
		SuspensionDays:      m.SuspensionDays,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelNotificationSettings converts domain toggles to the model row
func ToModelNotificationSettings(d domain.NotificationSettings) models.NotificationSettings {
	return models.NotificationSettings{
		NewMerchantAlerts: d.NewMerchantAlerts,
		PaymentAlerts:     d.PaymentAlerts,
		MessageAlerts:     d.MessageAlerts,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainNotificationSettings converts the model row to domain toggles
func ToDomainNotificationSettings(m models.NotificationSettings) domain.NotificationSettings {
	return domain.NotificationSettings{
		NewMerchantAlerts: m.NewMerchantAlerts,
		PaymentAlerts:     m.PaymentAlerts,
		MessageAlerts:     m.MessageAlerts,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
