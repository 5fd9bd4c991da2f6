package services

import (
	"context"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
)

// OrderSvcFacade defines order intake and listing. Orders are immutable once
// recorded; there are no update or delete operations.
type OrderSvcFacade interface {
	// CreateOrder records a new order and triggers reconciliation when the
	// order contributes to tip accrual.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error)

	// GetOrderByID retrieves a specific order.
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves a cursor-paginated page of orders, newest first.
	ListOrders(ctx context.Context, params dto.ListOrdersParams) (*dto.ListOrdersResponse, error)
}
