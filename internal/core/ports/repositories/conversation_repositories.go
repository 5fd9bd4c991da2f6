package repositories

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// ConversationReader exposes the read-side conversation view consumed by the
// notification deriver. The messaging service owns the write side; this
// service only mirrors unread counts.
type ConversationReader interface {
	// ListConversations retrieves every conversation summary.
	ListConversations(ctx context.Context) ([]domain.Conversation, error)
}

// ConversationWriter defines the upsert used by the messaging-sync ingest.
type ConversationWriter interface {
	// UpsertConversation creates or replaces a conversation summary.
	UpsertConversation(ctx context.Context, conversation domain.Conversation) error
}

// ConversationRepositoryFacade combines the conversation repository interfaces
type ConversationRepositoryFacade interface {
	ConversationReader
	ConversationWriter
}
