package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus mirrors domain.AccountStatus for persistence.
type AccountStatus string

const (
	StatusActive          AccountStatus = "ACTIVE"
	StatusPending         AccountStatus = "PENDING"
	StatusSuspended       AccountStatus = "SUSPENDED"
	StatusDeletionPending AccountStatus = "DELETION_PENDING"
)

// Merchant represents a merchant account row.
// DeletionScheduledAt is NULL except while the account is DELETION_PENDING.
type Merchant struct {
	MerchantID          string          `db:"merchant_id"`
	Name                string          `db:"name"`
	Address             string          `db:"address"`
	TipPerTransaction   decimal.Decimal `db:"tip_per_transaction"`
	Lat                 float64         `db:"lat"`
	Lng                 float64         `db:"lng"`
	LastPaymentDate     time.Time       `db:"last_payment_date"`
	AccountStatus       AccountStatus   `db:"account_status"`
	DeletionScheduledAt *time.Time      `db:"deletion_scheduled_at"` // Nullable
	AuditFields
}
