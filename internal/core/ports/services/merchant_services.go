package services

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
)

// MerchantReaderSvc defines read operations for merchant accounts
type MerchantReaderSvc interface {
	// ListMerchants retrieves every merchant. Reading the collection sweeps
	// DELETION_PENDING accounts past the retention window before returning.
	ListMerchants(ctx context.Context) ([]domain.Merchant, error)

	// GetMerchantByID retrieves a specific merchant.
	GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error)
}

// MerchantWriterSvc defines onboarding for merchant accounts
type MerchantWriterSvc interface {
	// OnboardMerchant registers a new merchant and triggers reconciliation.
	OnboardMerchant(ctx context.Context, req dto.CreateMerchantRequest, creatorUserID string) (*domain.Merchant, error)
}

// MerchantOverrideSvc defines the manual status overrides
type MerchantOverrideSvc interface {
	// DisableMerchant force-ages the merchant's last payment date so the next
	// reconciliation suspends the account.
	DisableMerchant(ctx context.Context, merchantID string, actorUserID string) error

	// ScheduleMerchantDeletion marks the account DELETION_PENDING. The record is
	// purged automatically once the retention window elapses.
	ScheduleMerchantDeletion(ctx context.Context, merchantID string, actorUserID string) error

	// CancelMerchantDeletion clears the DELETION_PENDING override and resets the
	// last payment date to today so the account is not instantly re-suspended.
	CancelMerchantDeletion(ctx context.Context, merchantID string, actorUserID string) error
}

// MerchantSvcFacade combines all merchant-related service interfaces
type MerchantSvcFacade interface {
	MerchantReaderSvc
	MerchantWriterSvc
	MerchantOverrideSvc
}
