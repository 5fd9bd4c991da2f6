package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle status of a merchant account.
//
// ACTIVE, PENDING and SUSPENDED are derived from the merchant's tip balance and
// days since last payment. DELETION_PENDING is a manual override that suppresses
// the derived status until it is cancelled or the account is purged.
type AccountStatus string

const (
	StatusActive          AccountStatus = "ACTIVE"
	StatusPending         AccountStatus = "PENDING"
	StatusSuspended       AccountStatus = "SUSPENDED"
	StatusDeletionPending AccountStatus = "DELETION_PENDING"
)

// GeoPoint is a merchant's store location.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Merchant represents a merchant account on the platform.
// This is the primary representation used by services.
type Merchant struct {
	MerchantID          string          `json:"merchantID"` // Primary key (UUID)
	Name                string          `json:"name"`
	Address             string          `json:"address"`
	TipPerTransaction   decimal.Decimal `json:"tipPerTransaction"` // Platform tip rate charged per order
	Location            GeoPoint        `json:"location"`
	LastPaymentDate     time.Time       `json:"lastPaymentDate"` // Registration-seeded default until the first receipt
	AccountStatus       AccountStatus   `json:"accountStatus"`
	DeletionScheduledAt *time.Time      `json:"deletionScheduledAt,omitempty"` // Set only while DELETION_PENDING
	AuditFields
}

// IsDeletionPending reports whether the manual deletion override is in effect.
func (m *Merchant) IsDeletionPending() bool {
	return m.AccountStatus == StatusDeletionPending
}
