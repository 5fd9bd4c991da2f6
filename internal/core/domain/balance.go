package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipBalance is the derived per-merchant tip position. It is never stored
// independently; it is recomputed from the order set and the receipt ledger on
// every mutation of either, so it always reflects a full ledger replay.
type TipBalance struct {
	MerchantID        string          `json:"merchantID"`
	TotalTipsReceived decimal.Decimal `json:"totalTipsReceived"` // Lifetime accrued
	TotalTipsPaid     decimal.Decimal `json:"totalTipsPaid"`     // Lifetime receipted
	// PreviousBalance is the pendingBalance recorded on the chronologically last
	// receipt. Nil when the merchant has never been paid; "never paid" is
	// distinct from "paid zero".
	PreviousBalance *decimal.Decimal `json:"previousBalance"`
	// CurrentBalance = max(0, TotalTipsReceived - TotalTipsPaid).
	CurrentBalance    decimal.Decimal  `json:"currentBalance"`
	LastPaymentAmount *decimal.Decimal `json:"lastPaymentAmount"` // Nil when never paid
	LastPaymentDate   time.Time        `json:"lastPaymentDate"`
	// NewTipsSinceLastPayment sums platform tips from completed orders dated
	// strictly after LastPaymentDate (day granularity). It can disagree with
	// CurrentBalance when historic receipts were edited; that discrepancy is
	// surfaced, not reconciled.
	NewTipsSinceLastPayment decimal.Decimal `json:"newTipsSinceLastPayment"`
	DaysSincePayment        int             `json:"daysSincePayment"` // Floored at 0
	Status                  AccountStatus   `json:"status"`           // Mirrors the owning merchant
}
