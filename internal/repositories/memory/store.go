package memory

import (
	"sync"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
)

// Store is an in-memory implementation of every repository, used by tests and
// as a demo-mode fallback when no database URL is configured. One mutex guards
// all maps; repository methods copy data in and out so callers never share
// slices or map entries with the store.
type Store struct {
	mu sync.RWMutex

	merchants     map[string]domain.Merchant
	orders        map[string]domain.Order
	receipts      map[string]domain.Receipt
	receiptSeq    int64
	financial     *domain.FinancialSettings
	notification  *domain.NotificationSettings
	conversations map[string]domain.Conversation
	admins        map[string]domain.AdminUser
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		merchants:     make(map[string]domain.Merchant),
		orders:        make(map[string]domain.Order),
		receipts:      make(map[string]domain.Receipt),
		conversations: make(map[string]domain.Conversation),
		admins:        make(map[string]domain.AdminUser),
	}
}

// NewRepositoryProvider wires every repository facade onto one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MerchantRepo:     &merchantRepository{store},
		OrderRepo:        &orderRepository{store},
		ReceiptRepo:      &receiptRepository{store},
		SettingsRepo:     &settingsRepository{store},
		ConversationRepo: &conversationRepository{store},
		AdminUserRepo:    &adminUserRepository{store},
	}
}
