package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus mirrors domain.OrderStatus for persistence.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Order represents an order row. Orders are insert-only.
type Order struct {
	OrderID     string          `db:"order_id"`
	MerchantID  string          `db:"merchant_id"`
	OrderDate   time.Time       `db:"order_date"`
	Status      OrderStatus     `db:"status"`
	MerchantTip decimal.Decimal `db:"merchant_tip"`
	PlatformTip decimal.Decimal `db:"platform_tip"`
	AuditFields
}

// OrderItem represents a line item row belonging to an order.
type OrderItem struct {
	OrderItemID string          `db:"order_item_id"`
	OrderID     string          `db:"order_id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Quantity    int             `db:"quantity"`
}
