package domain

import "time"

// Conversation is the read-side view of a support thread with a merchant.
// The messaging feature itself lives outside this service; the core only needs
// unread counts to derive message notifications.
type Conversation struct {
	ConversationID string    `json:"conversationID"` // Primary key (UUID)
	MerchantID     string    `json:"merchantID"`
	Subject        string    `json:"subject"`
	UnreadCount    int       `json:"unreadCount"`
	LastMessageAt  time.Time `json:"lastMessageAt"`
}
