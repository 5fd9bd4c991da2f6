package repositories

import (
	"context"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
)

// ListOrdersFilter carries the keyset-pagination cursor and optional merchant
// scope for order listing. Zero-value After* fields mean "from the beginning".
type ListOrdersFilter struct {
	MerchantID     string
	Limit          int
	AfterOrderDate time.Time
	AfterCreatedAt time.Time
}

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its unique identifier.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves a keyset-paginated page of orders, newest first.
	ListOrders(ctx context.Context, filter ListOrdersFilter) ([]domain.Order, error)

	// ListAllOrders retrieves the full order set for pipeline recomputation.
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data.
// Orders are immutable: there is no update or delete.
type OrderWriter interface {
	// SaveOrder persists a new order with its line items.
	SaveOrder(ctx context.Context, order domain.Order) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
