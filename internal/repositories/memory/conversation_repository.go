package memory

import (
	"context"
	"sort"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
)

type conversationRepository struct {
	store *Store
}

var _ portsrepo.ConversationRepositoryFacade = (*conversationRepository)(nil)

func (r *conversationRepository) ListConversations(_ context.Context) ([]domain.Conversation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	conversations := make([]domain.Conversation, 0, len(r.store.conversations))
	for _, c := range r.store.conversations {
		conversations = append(conversations, c)
	}
	sort.Slice(conversations, func(i, j int) bool {
		if conversations[i].LastMessageAt.Equal(conversations[j].LastMessageAt) {
			return conversations[i].ConversationID < conversations[j].ConversationID
		}
		return conversations[i].LastMessageAt.After(conversations[j].LastMessageAt)
	})
	return conversations, nil
}

func (r *conversationRepository) UpsertConversation(_ context.Context, conversation domain.Conversation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.conversations[conversation.ConversationID] = conversation
	return nil
}
