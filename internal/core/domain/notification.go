package domain

import (
	"fmt"
	"time"
)

// NotificationKind classifies a derived notification.
type NotificationKind string

const (
	NotifyNewMerchant    NotificationKind = "NEW_MERCHANT"
	NotifySuspended      NotificationKind = "MERCHANT_SUSPENDED"
	NotifyPaymentDue     NotificationKind = "PAYMENT_DUE"
	NotifyUnreadMessages NotificationKind = "UNREAD_MESSAGES"
)

// Notification is a transient entry derived from merchant, balance and
// conversation state. The list is regenerated wholesale on every fetch; only the
// read flag (keyed by the deterministic ID) survives regeneration.
type Notification struct {
	// ID is deterministic: "<kind>:<subject>:<YYYY-MM-DD>". Regenerating the list
	// yields the same ID for the same underlying condition on the same day.
	ID             string           `json:"id"`
	Kind           NotificationKind `json:"kind"`
	Title          string           `json:"title"`
	Body           string           `json:"body"`
	MerchantID     string           `json:"merchantID,omitempty"`
	ConversationID string           `json:"conversationID,omitempty"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// NotificationID builds the deterministic identity for a notification.
func NotificationID(kind NotificationKind, subjectID string, day time.Time) string {
	return fmt.Sprintf("%s:%s:%s", kind, subjectID, day.Format("2006-01-02"))
}
