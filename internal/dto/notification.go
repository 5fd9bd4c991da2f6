package dto

import (
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// NotificationResponse defines a derived notification entry.
type NotificationResponse struct {
	ID             string                  `json:"id"`
	Kind           domain.NotificationKind `json:"kind"`
	Title          string                  `json:"title"`
	Body           string                  `json:"body"`
	MerchantID     string                  `json:"merchantID,omitempty"`
	ConversationID string                  `json:"conversationID,omitempty"`
	Read           bool                    `json:"read"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to the response DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:             n.ID,
		Kind:           n.Kind,
		Title:          n.Title,
		Body:           n.Body,
		MerchantID:     n.MerchantID,
		ConversationID: n.ConversationID,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationResponse converts a slice of domain.Notification to DTOs.
func ToListNotificationResponse(notifications []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		res[i] = ToNotificationResponse(&notifications[i])
	}
	return res
}
