package dto

import (
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is a line item in an order intake request.
type OrderItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest defines the data needed to record a new order.
// Orders are immutable after creation.
type CreateOrderRequest struct {
	MerchantID  string             `json:"merchantID" binding:"required"`
	OrderDate   time.Time          `json:"orderDate" binding:"required"`
	Status      domain.OrderStatus `json:"status" binding:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	MerchantTip decimal.Decimal    `json:"merchantTip" binding:"gte=0"`
	PlatformTip decimal.Decimal    `json:"platformTip" binding:"gte=0"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID     string             `json:"orderID"`
	MerchantID  string             `json:"merchantID"`
	OrderDate   time.Time          `json:"orderDate"`
	Status      domain.OrderStatus `json:"status"`
	Items       []domain.OrderItem `json:"items"`
	Total       decimal.Decimal    `json:"total"`
	MerchantTip decimal.Decimal    `json:"merchantTip"`
	PlatformTip decimal.Decimal    `json:"platformTip"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToOrderResponse converts a domain.Order to OrderResponse.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.OrderID,
		MerchantID:  o.MerchantID,
		OrderDate:   o.OrderDate,
		Status:      o.Status,
		Items:       o.Items,
		Total:       o.Total(),
		MerchantTip: o.MerchantTip,
		PlatformTip: o.PlatformTip,
		CreatedAt:   o.CreatedAt,
	}
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	MerchantID string `form:"merchantID"`
	Limit      int    `form:"limit,default=50"`
	NextToken  string `form:"nextToken"`
}

// ListOrdersResponse is a page of orders with an opaque continuation token.
type ListOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	NextToken string          `json:"nextToken,omitempty"`
}
