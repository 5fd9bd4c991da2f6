package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment status of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// OrderItem is a single line item on an order.
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order represents a customer order placed with a merchant.
// Orders are immutable once created; there is no update path.
type Order struct {
	OrderID     string          `json:"orderID"` // Primary key (UUID)
	MerchantID  string          `json:"merchantID"`
	OrderDate   time.Time       `json:"orderDate"`
	Status      OrderStatus     `json:"status"`
	Items       []OrderItem     `json:"items"`
	MerchantTip decimal.Decimal `json:"merchantTip"` // Tip kept by the merchant
	PlatformTip decimal.Decimal `json:"platformTip"` // Tip owed to the platform
	AuditFields
}

// Accrues reports whether this order contributes to the merchant's platform-tip
// accrual. Only completed orders count; CANCELLED (and any other status) never do.
func (o *Order) Accrues() bool {
	return o.Status == OrderShipped || o.Status == OrderDelivered
}

// Total returns the sum of price*quantity over the order's line items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
