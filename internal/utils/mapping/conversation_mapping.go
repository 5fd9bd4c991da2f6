package mapping

import (
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/models"
)

// ToDomainConversation converts a model Conversation to a domain Conversation
func ToDomainConversation(m models.Conversation) domain.Conversation {
	return domain.Conversation{
		ConversationID: m.ConversationID,
		MerchantID:     m.MerchantID,
		Subject:        m.Subject,
		UnreadCount:    m.UnreadCount,
		LastMessageAt:  m.LastMessageAt,
	}
}

// ToModelConversation converts a domain Conversation to a model Conversation
func ToModelConversation(d domain.Conversation) models.Conversation {
	return models.Conversation{
		ConversationID: d.ConversationID,
		MerchantID:     d.MerchantID,
		Subject:        d.Subject,
		UnreadCount:    d.UnreadCount,
		LastMessageAt:  d.LastMessageAt,
	}
}
