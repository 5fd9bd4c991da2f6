package dto

import (
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TipBalanceResponse defines the derived balance data returned per merchant.
// PreviousBalance and LastPaymentAmount are null when the merchant has never
// been paid; the dashboard distinguishes "never paid" from "paid zero".
type TipBalanceResponse struct {
	MerchantID              string               `json:"merchantID"`
	TotalTipsReceived       decimal.Decimal      `json:"totalTipsReceived"`
	TotalTipsPaid           decimal.Decimal      `json:"totalTipsPaid"`
	PreviousBalance         *decimal.Decimal     `json:"previousBalance"`
	CurrentBalance          decimal.Decimal      `json:"currentBalance"`
	LastPaymentAmount       *decimal.Decimal     `json:"lastPaymentAmount"`
	LastPaymentDate         time.Time            `json:"lastPaymentDate"`
	NewTipsSinceLastPayment decimal.Decimal      `json:"newTipsSinceLastPayment"`
	DaysSincePayment        int                  `json:"daysSincePayment"`
	Status                  domain.AccountStatus `json:"status"`
}

// ToTipBalanceResponse converts a domain.TipBalance to TipBalanceResponse.
func ToTipBalanceResponse(b *domain.TipBalance) TipBalanceResponse {
	return TipBalanceResponse{
		MerchantID:              b.MerchantID,
		TotalTipsReceived:       b.TotalTipsReceived,
		TotalTipsPaid:           b.TotalTipsPaid,
		PreviousBalance:         b.PreviousBalance,
		CurrentBalance:          b.CurrentBalance,
		LastPaymentAmount:       b.LastPaymentAmount,
		LastPaymentDate:         b.LastPaymentDate,
		NewTipsSinceLastPayment: b.NewTipsSinceLastPayment,
		DaysSincePayment:        b.DaysSincePayment,
		Status:                  b.Status,
	}
}

// ToListTipBalanceResponse converts a slice of domain.TipBalance to DTOs.
func ToListTipBalanceResponse(balances []domain.TipBalance) []TipBalanceResponse {
	res := make([]TipBalanceResponse, len(balances))
	for i := range balances {
		res[i] = ToTipBalanceResponse(&balances[i])
	}
	return res
}

// ConfirmTipPaymentRequest defines the data needed to record a payout receipt.
// Difference is supplied by the caller (pendingBalance - amountReceived as the
// admin confirmed it) and stored verbatim on the receipt.
type ConfirmTipPaymentRequest struct {
	AmountReceived decimal.Decimal `json:"amountReceived" binding:"required"`
	Difference     decimal.Decimal `json:"difference"`
}
