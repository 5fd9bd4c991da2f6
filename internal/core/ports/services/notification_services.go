package services

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// NotificationSvcFacade derives the transient notification list from merchant,
// balance and conversation state. The list is regenerated wholesale on every
// fetch; read flags are tracked by deterministic notification identity so they
// survive regeneration.
type NotificationSvcFacade interface {
	// ListNotifications regenerates and returns the current notification list.
	ListNotifications(ctx context.Context) ([]domain.Notification, error)

	// MarkNotificationRead flags a notification from the most recent list.
	MarkNotificationRead(ctx context.Context, notificationID string) error
}
