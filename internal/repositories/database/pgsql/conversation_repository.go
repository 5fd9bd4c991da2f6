package pgsql

import (
	"context"
	"fmt"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	"github.com/courierdesk/merchant_admin_app/internal/models"
	"github.com/courierdesk/merchant_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConversationRepository struct {
	db *pgxpool.Pool
}

func newPgxConversationRepository(db *pgxpool.Pool) portsrepo.ConversationRepositoryFacade {
	return &PgxConversationRepository{db: db}
}

// Ensure PgxConversationRepository implements the facade
var _ portsrepo.ConversationRepositoryFacade = (*PgxConversationRepository)(nil)

func (r *PgxConversationRepository) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	query := `
		SELECT conversation_id, merchant_id, subject, unread_count, last_message_at
		FROM conversations
		ORDER BY last_message_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []domain.Conversation
	for rows.Next() {
		var m models.Conversation
		if err := rows.Scan(&m.ConversationID, &m.MerchantID, &m.Subject, &m.UnreadCount, &m.LastMessageAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation row: %w", err)
		}
		conversations = append(conversations, mapping.ToDomainConversation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating conversation rows: %w", err)
	}
	return conversations, nil
}

func (r *PgxConversationRepository) UpsertConversation(ctx context.Context, conversation domain.Conversation) error {
	m := mapping.ToModelConversation(conversation)
	query := `
		INSERT INTO conversations (conversation_id, merchant_id, subject, unread_count, last_message_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (conversation_id) DO UPDATE SET
			merchant_id = EXCLUDED.merchant_id,
			subject = EXCLUDED.subject,
			unread_count = EXCLUDED.unread_count,
			last_message_at = EXCLUDED.last_message_at;
	`
	_, err := r.db.Exec(ctx, query, m.ConversationID, m.MerchantID, m.Subject, m.UnreadCount, m.LastMessageAt)
	if err != nil {
		return fmt.Errorf("failed to upsert conversation: %w", err)
	}
	return nil
}
