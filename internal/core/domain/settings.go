package domain

// FinancialSettings holds the aging thresholds, in days since last payment, that
// drive merchant account status. Thresholds are strictly ascending:
// due < late < veryLate < suspension. The late and veryLate tiers are
// display-only severity levels consumed by the dashboard; only DueWarningDays
// and SuspensionDays affect the status transition.
type FinancialSettings struct {
	DueWarningDays      int `json:"dueWarningDays"`
	LateWarningDays     int `json:"lateWarningDays"`
	VeryLateWarningDays int `json:"veryLateWarningDays"`
	SuspensionDays      int `json:"suspensionDays"`
	AuditFields
}

// DefaultFinancialSettings are the thresholds seeded at first boot.
func DefaultFinancialSettings() FinancialSettings {
	return FinancialSettings{
		DueWarningDays:      15,
		LateWarningDays:     30,
		VeryLateWarningDays: 45,
		SuspensionDays:      60,
	}
}

// WarningThresholds returns the three warning tiers in ascending order.
// The notification deriver emits an alert when a merchant's days since payment
// exactly equals one of these.
func (s FinancialSettings) WarningThresholds() [3]int {
	return [3]int{s.DueWarningDays, s.LateWarningDays, s.VeryLateWarningDays}
}

// NotificationSettings gates each class of derived notification independently.
type NotificationSettings struct {
	NewMerchantAlerts bool `json:"newMerchantAlerts"`
	PaymentAlerts     bool `json:"paymentAlerts"`
	MessageAlerts     bool `json:"messageAlerts"`
	AuditFields
}

// DefaultNotificationSettings enables every alert class.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		NewMerchantAlerts: true,
		PaymentAlerts:     true,
		MessageAlerts:     true,
	}
}
