package repositories

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// MerchantReader defines read operations for merchant data
type MerchantReader interface {
	// FindMerchantByID retrieves a specific merchant by its unique identifier.
	FindMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error)

	// ListMerchants retrieves every merchant account, including DELETION_PENDING
	// ones; the expiry sweep happens in the service layer.
	ListMerchants(ctx context.Context) ([]domain.Merchant, error)
}

// MerchantWriter defines write operations for merchant data
type MerchantWriter interface {
	// SaveMerchant persists a new merchant.
	SaveMerchant(ctx context.Context, merchant domain.Merchant) error

	// UpdateMerchant updates an existing merchant's details, including status
	// annotations written back by the reconciler.
	UpdateMerchant(ctx context.Context, merchant domain.Merchant) error

	// DeleteMerchant removes a merchant record permanently (deletion-pending
	// retention expiry only).
	DeleteMerchant(ctx context.Context, merchantID string) error
}

// MerchantRepositoryFacade combines all merchant-related repository interfaces
type MerchantRepositoryFacade interface {
	MerchantReader
	MerchantWriter
}
