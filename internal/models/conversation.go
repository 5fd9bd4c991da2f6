package models

import "time"

// Conversation is the read-side conversation row consumed by the notification
// deriver. Message contents live with the messaging service.
type Conversation struct {
	ConversationID string    `db:"conversation_id"`
	MerchantID     string    `db:"merchant_id"`
	Subject        string    `db:"subject"`
	UnreadCount    int       `db:"unread_count"`
	LastMessageAt  time.Time `db:"last_message_at"`
}
