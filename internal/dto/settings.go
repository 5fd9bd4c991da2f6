package dto

import (
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// UpdateFinancialSettingsRequest replaces the aging thresholds wholesale.
// Threshold ordering (due < late < veryLate < suspension) is enforced by the
// gtfield bindings; every threshold must be positive.
type UpdateFinancialSettingsRequest struct {
	DueWarningDays      int `json:"dueWarningDays" binding:"required,gt=0"`
	LateWarningDays     int `json:"lateWarningDays" binding:"required,gtfield=DueWarningDays"`
	VeryLateWarningDays int `json:"veryLateWarningDays" binding:"required,gtfield=LateWarningDays"`
	SuspensionDays      int `json:"suspensionDays" binding:"required,gtfield=VeryLateWarningDays"`
}

// FinancialSettingsResponse defines the thresholds returned to the dashboard.
type FinancialSettingsResponse struct {
	DueWarningDays      int `json:"dueWarningDays"`
	LateWarningDays     int `json:"lateWarningDays"`
	VeryLateWarningDays int `json:"veryLateWarningDays"`
	SuspensionDays      int `json:"suspensionDays"`
}

// ToFinancialSettingsResponse converts domain settings to the response DTO.
func ToFinancialSettingsResponse(s domain.FinancialSettings) FinancialSettingsResponse {
	return FinancialSettingsResponse{
		DueWarningDays:      s.DueWarningDays,
		LateWarningDays:     s.LateWarningDays,
		VeryLateWarningDays: s.VeryLateWarningDays,
		SuspensionDays:      s.SuspensionDays,
	}
}

// UpdateNotificationSettingsRequest replaces the notification toggles.
// Pointers distinguish "leave unchanged" from an explicit false.
type UpdateNotificationSettingsRequest struct {
	NewMerchantAlerts *bool `json:"newMerchantAlerts"`
	PaymentAlerts     *bool `json:"paymentAlerts"`
	MessageAlerts     *bool `json:"messageAlerts"`
}

// NotificationSettingsResponse defines the toggles returned to the dashboard.
type NotificationSettingsResponse struct {
	NewMerchantAlerts bool `json:"newMerchantAlerts"`
	PaymentAlerts     bool `json:"paymentAlerts"`
	MessageAlerts     bool `json:"messageAlerts"`
}

// ToNotificationSettingsResponse converts domain toggles to the response DTO.
func ToNotificationSettingsResponse(s domain.NotificationSettings) NotificationSettingsResponse {
	return NotificationSettingsResponse{
		NewMerchantAlerts: s.NewMerchantAlerts,
		PaymentAlerts:     s.PaymentAlerts,
		MessageAlerts:     s.MessageAlerts,
	}
}
