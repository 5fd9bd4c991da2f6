package services

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
)

// BalanceReaderSvc defines read access to derived tip balances
type BalanceReaderSvc interface {
	// GetTipBalance retrieves the derived balance for one merchant.
	GetTipBalance(ctx context.Context, merchantID string) (*domain.TipBalance, error)

	// GetAllTipBalances retrieves the derived balances for every merchant.
	GetAllTipBalances(ctx context.Context) ([]domain.TipBalance, error)
}

// ReceiptReaderSvc defines read access to the payout receipt ledger
type ReceiptReaderSvc interface {
	// ListReceipts retrieves receipts, optionally scoped to one merchant, in
	// ledger order.
	ListReceipts(ctx context.Context, merchantID string) ([]domain.Receipt, error)
}

// PaymentWriterSvc defines the ledger mutations
type PaymentWriterSvc interface {
	// ConfirmTipPayment appends a payout receipt, recomputes all derived state
	// and returns the new receipt snapshot.
	ConfirmTipPayment(ctx context.Context, merchantID string, req dto.ConfirmTipPaymentRequest, actorUserID string) (*domain.Receipt, error)

	// DeleteReceipts removes receipts from the ledger and recomputes. There is
	// no inverse operation; the remaining ledger is replayed in full.
	DeleteReceipts(ctx context.Context, receiptIDs []string, actorUserID string) error
}

// ReconcilerSvc triggers a full pipeline recomputation. Every ledger mutation,
// manual override and settings change funnels through this.
type ReconcilerSvc interface {
	Recompute(ctx context.Context) error
}

// BalanceSvcFacade combines all balance-related service interfaces
type BalanceSvcFacade interface {
	BalanceReaderSvc
	ReceiptReaderSvc
	PaymentWriterSvc
	ReconcilerSvc
}
