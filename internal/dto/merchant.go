package dto

import (
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMerchantRequest defines the data needed to onboard a new merchant.
type CreateMerchantRequest struct {
	Name              string          `json:"name" binding:"required"`
	Address           string          `json:"address" binding:"required"`
	TipPerTransaction decimal.Decimal `json:"tipPerTransaction" binding:"required,gte=0"`
	Lat               float64         `json:"lat"`
	Lng               float64         `json:"lng"`
}

// MerchantResponse defines the data returned for a merchant account.
type MerchantResponse struct {
	MerchantID          string               `json:"merchantID"`
	Name                string               `json:"name"`
	Address             string               `json:"address"`
	TipPerTransaction   decimal.Decimal      `json:"tipPerTransaction"`
	Location            domain.GeoPoint      `json:"location"`
	LastPaymentDate     time.Time            `json:"lastPaymentDate"`
	AccountStatus       domain.AccountStatus `json:"accountStatus"`
	DeletionScheduledAt *time.Time           `json:"deletionScheduledAt,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	LastUpdatedAt       time.Time            `json:"lastUpdatedAt"`
}

// ToMerchantResponse converts a domain.Merchant to MerchantResponse.
func ToMerchantResponse(m *domain.Merchant) MerchantResponse {
	return MerchantResponse{
		MerchantID:          m.MerchantID,
		Name:                m.Name,
		Address:             m.Address,
		TipPerTransaction:   m.TipPerTransaction,
		Location:            m.Location,
		LastPaymentDate:     m.LastPaymentDate,
		AccountStatus:       m.AccountStatus,
		DeletionScheduledAt: m.DeletionScheduledAt,
		CreatedAt:           m.CreatedAt,
		LastUpdatedAt:       m.LastUpdatedAt,
	}
}

// ToListMerchantResponse converts a slice of domain.Merchant to DTOs.
func ToListMerchantResponse(merchants []domain.Merchant) []MerchantResponse {
	res := make([]MerchantResponse, len(merchants))
	for i := range merchants {
		res[i] = ToMerchantResponse(&merchants[i])
	}
	return res
}
