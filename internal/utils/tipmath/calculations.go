// Package tipmath holds the pure calculation steps of the tip reconciliation
// pipeline: accrual, payment history resolution, balance synthesis and status
// derivation. Every function is a side-effect-free fold over its inputs so the
// reconciliation service can replay the full ledger deterministically.
package tipmath

import (
	"sort"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// CalculateTotalTips sums platform tips per merchant over completed orders.
// Orders in any status other than SHIPPED or DELIVERED contribute zero.
func CalculateTotalTips(orders []domain.Order) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for i := range orders {
		o := &orders[i]
		if !o.Accrues() {
			continue
		}
		totals[o.MerchantID] = totals[o.MerchantID].Add(o.PlatformTip)
	}
	return totals
}

// PaymentHistory is the per-merchant result of walking the receipt ledger.
// LastPaymentAmount and PreviousBalance stay nil when no receipts exist;
// "never paid" must remain distinguishable from "paid zero".
type PaymentHistory struct {
	TotalPaid         decimal.Decimal
	LastPaymentAmount *decimal.Decimal
	PreviousBalance   *decimal.Decimal
	LastPaymentDate   time.Time
}

// ResolvePaymentHistory walks the receipt ledger chronologically per merchant.
// Receipts are ordered by (createdAt, seq); the seq tie-break reproduces
// insertion order when two receipts share a timestamp. The last payment date
// is always read from the merchant record, which ledger mutations keep in
// sync with the newest receipt: manual overrides of that date (the disable
// sentinel, the post-cancellation reset) must stand even when the merchant
// has receipts.
func ResolvePaymentHistory(receipts []domain.Receipt, merchants []domain.Merchant) map[string]PaymentHistory {
	byMerchant := make(map[string][]domain.Receipt)
	for _, r := range receipts {
		byMerchant[r.MerchantID] = append(byMerchant[r.MerchantID], r)
	}

	history := make(map[string]PaymentHistory, len(merchants))
	for i := range merchants {
		m := &merchants[i]
		ledger := byMerchant[m.MerchantID]
		if len(ledger) == 0 {
			history[m.MerchantID] = PaymentHistory{
				TotalPaid:       decimal.Zero,
				LastPaymentDate: m.LastPaymentDate,
			}
			continue
		}

		sort.SliceStable(ledger, func(a, b int) bool {
			return ledger[a].Before(&ledger[b])
		})

		totalPaid := decimal.Zero
		for _, r := range ledger {
			totalPaid = totalPaid.Add(r.AmountReceived)
		}

		last := ledger[len(ledger)-1]
		lastAmount := last.AmountReceived
		prevBalance := last.PendingBalance
		history[m.MerchantID] = PaymentHistory{
			TotalPaid:         totalPaid,
			LastPaymentAmount: &lastAmount,
			PreviousBalance:   &prevBalance,
			LastPaymentDate:   m.LastPaymentDate,
		}
	}
	return history
}

// SynthesizeBalance combines accrual and payment history into the merchant's
// derived balance record. The current balance is clamped at zero; new tips
// since last payment only count orders dated on a strictly later calendar day
// than the last payment. Status is left at the merchant's stored value and is
// finalized by DeriveStatus.
func SynthesizeBalance(m *domain.Merchant, orders []domain.Order, accrued decimal.Decimal, hist PaymentHistory, now time.Time) domain.TipBalance {
	current := accrued.Sub(hist.TotalPaid)
	if current.IsNegative() {
		current = decimal.Zero
	}

	newTips := decimal.Zero
	for i := range orders {
		o := &orders[i]
		if o.MerchantID != m.MerchantID || !o.Accrues() {
			continue
		}
		if dates.AfterDay(o.OrderDate, hist.LastPaymentDate) {
			newTips = newTips.Add(o.PlatformTip)
		}
	}

	return domain.TipBalance{
		MerchantID:              m.MerchantID,
		TotalTipsReceived:       accrued,
		TotalTipsPaid:           hist.TotalPaid,
		PreviousBalance:         hist.PreviousBalance,
		CurrentBalance:          current,
		LastPaymentAmount:       hist.LastPaymentAmount,
		LastPaymentDate:         hist.LastPaymentDate,
		NewTipsSinceLastPayment: newTips,
		DaysSincePayment:        dates.DaysBetween(hist.LastPaymentDate, now),
		Status:                  m.AccountStatus,
	}
}

// DeriveStatus applies the aging thresholds to a synthesized balance.
// The DELETION_PENDING manual override wins over every derived rule. A zero
// balance is always ACTIVE with zero days due. Otherwise the day count against
// the suspension and due-warning thresholds decides; the late and very-late
// tiers are dashboard severity colors only and never change the status.
func DeriveStatus(m *domain.Merchant, balance *domain.TipBalance, settings domain.FinancialSettings) domain.AccountStatus {
	if m.IsDeletionPending() {
		return domain.StatusDeletionPending
	}
	if balance.CurrentBalance.IsZero() {
		balance.DaysSincePayment = 0
		return domain.StatusActive
	}
	switch {
	case balance.DaysSincePayment >= settings.SuspensionDays:
		return domain.StatusSuspended
	case balance.DaysSincePayment >= settings.DueWarningDays:
		return domain.StatusPending
	default:
		return domain.StatusActive
	}
}
