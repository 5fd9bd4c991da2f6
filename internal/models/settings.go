package models

// FinancialSettings is the singleton thresholds row (settings_id is always 1).
type FinancialSettings struct {
	DueWarningDays      int `db:"due_warning_days"`
	LateWarningDays     int `db:"late_warning_days"`
	VeryLateWarningDays int `db:"very_late_warning_days"`
	SuspensionDays      int `db:"suspension_days"`
	AuditFields
}

// NotificationSettings is the singleton notification toggles row.
type NotificationSettings struct {
	NewMerchantAlerts bool `db:"new_merchant_alerts"`
	PaymentAlerts     bool `db:"payment_alerts"`
	MessageAlerts     bool `db:"message_alerts"`
	AuditFields
}
