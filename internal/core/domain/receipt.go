package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt records an admin-confirmed payout event settling some or all of a
// merchant's accrued tip balance. The receipt ledger is append-only per merchant;
// deleting a receipt forces a full replay of the remaining ledger.
type Receipt struct {
	ReceiptID      string          `json:"receiptID"` // Primary key (UUID)
	MerchantID     string          `json:"merchantID"`
	PendingBalance decimal.Decimal `json:"pendingBalance"` // Balance before this payment
	AmountReceived decimal.Decimal `json:"amountReceived"`
	Difference     decimal.Decimal `json:"difference"` // PendingBalance - AmountReceived
	CreatedBy      string          `json:"createdBy"`  // AdminUserID reference
	CreatedAt      time.Time       `json:"createdAt"`
	// Seq is a monotonic sequence number assigned by the store. Receipts sharing
	// an identical timestamp are ordered by Seq, which reproduces insertion order
	// deterministically across store implementations.
	Seq int64 `json:"seq"`
}

// Before reports whether r precedes other in the ledger's chronological order,
// using Seq as the tie-break on equal timestamps.
func (r *Receipt) Before(other *Receipt) bool {
	if r.CreatedAt.Equal(other.CreatedAt) {
		return r.Seq < other.Seq
	}
	return r.CreatedAt.Before(other.CreatedAt)
}
