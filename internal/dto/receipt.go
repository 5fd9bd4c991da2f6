package dto

import (
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiptResponse defines the data returned for a payout receipt.
type ReceiptResponse struct {
	ReceiptID      string          `json:"receiptID"`
	MerchantID     string          `json:"merchantID"`
	PendingBalance decimal.Decimal `json:"pendingBalance"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
	Difference     decimal.Decimal `json:"difference"`
	CreatedBy      string          `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:      r.ReceiptID,
		MerchantID:     r.MerchantID,
		PendingBalance: r.PendingBalance,
		AmountReceived: r.AmountReceived,
		Difference:     r.Difference,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
	}
}

// ToListReceiptResponse converts a slice of domain.Receipt to DTOs.
func ToListReceiptResponse(receipts []domain.Receipt) []ReceiptResponse {
	res := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		res[i] = ToReceiptResponse(&receipts[i])
	}
	return res
}

// DeleteReceiptsRequest defines the data needed to delete receipts from the
// ledger. The whole request fails if any ID is unknown.
type DeleteReceiptsRequest struct {
	ReceiptIDs []string `json:"receiptIDs" binding:"required,min=1"`
}

// ListReceiptsParams defines query parameters for listing receipts.
type ListReceiptsParams struct {
	MerchantID string `form:"merchantID"`
}
