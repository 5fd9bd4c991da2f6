package services

import (
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/platform/config"
)

// NewServiceContainer initializes all application services with their
// dependencies. The balance (reconciliation) service is built first because
// every mutating service funnels through it.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	balanceSvc := NewReconciliationService(
		repos.MerchantRepo,
		repos.OrderRepo,
		repos.ReceiptRepo,
		repos.SettingsRepo,
	)

	return &portssvc.ServiceContainer{
		Merchant:     NewMerchantService(repos.MerchantRepo, balanceSvc),
		Balance:      balanceSvc,
		Order:        NewOrderService(repos.OrderRepo, repos.MerchantRepo, balanceSvc),
		Settings:     NewSettingsService(repos.SettingsRepo, balanceSvc),
		Notification: NewNotificationService(repos.MerchantRepo, repos.ConversationRepo, repos.SettingsRepo, balanceSvc),
		Auth:         NewAuthService(repos.AdminUserRepo, cfg),
	}
}
