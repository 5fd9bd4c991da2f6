package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt represents a payout receipt row. The seq column is a BIGSERIAL that
// fixes the ledger order for receipts sharing an identical timestamp.
type Receipt struct {
	ReceiptID      string          `db:"receipt_id"`
	MerchantID     string          `db:"merchant_id"`
	PendingBalance decimal.Decimal `db:"pending_balance"`
	AmountReceived decimal.Decimal `db:"amount_received"`
	Difference     decimal.Decimal `db:"difference"`
	CreatedBy      string          `db:"created_by"`
	CreatedAt      time.Time       `db:"created_at"`
	Seq            int64           `db:"seq"`
}
