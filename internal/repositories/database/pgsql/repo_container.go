package pgsql

import (
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MerchantRepo:     newPgxMerchantRepository(dbPool),
		OrderRepo:        newPgxOrderRepository(dbPool),
		ReceiptRepo:      newPgxReceiptRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		ConversationRepo: newPgxConversationRepository(dbPool),
		AdminUserRepo:    newPgxAdminUserRepository(dbPool),
	}
}
