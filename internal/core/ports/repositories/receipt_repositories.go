package repositories

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// ReceiptReader defines read operations over the payout receipt ledger
type ReceiptReader interface {
	// ListAllReceipts retrieves the full ledger for pipeline recomputation.
	ListAllReceipts(ctx context.Context) ([]domain.Receipt, error)

	// ListReceiptsByMerchant retrieves a merchant's receipts in ledger order
	// (created_at, seq ascending).
	ListReceiptsByMerchant(ctx context.Context, merchantID string) ([]domain.Receipt, error)

	// FindReceiptsByIDs retrieves receipts by their IDs. Every requested ID must
	// exist; a missing one yields apperrors.ErrNotFound.
	FindReceiptsByIDs(ctx context.Context, receiptIDs []string) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations over the payout receipt ledger
type ReceiptWriter interface {
	// SaveReceipt appends a receipt to the ledger and returns it with the
	// store-assigned monotonic sequence number populated.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error)

	// DeleteReceipts removes receipts from the ledger. All-or-nothing: if any ID
	// is unknown the ledger is left untouched.
	DeleteReceipts(ctx context.Context, receiptIDs []string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
