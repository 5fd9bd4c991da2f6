package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
)

type orderRepository struct {
	store *Store
}

var _ portsrepo.OrderRepositoryFacade = (*orderRepository)(nil)

func (r *orderRepository) SaveOrder(_ context.Context, order domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.orders[order.OrderID]; exists {
		return fmt.Errorf("%w: order %s", apperrors.ErrDuplicate, order.OrderID)
	}
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	r.store.orders[order.OrderID] = order
	return nil
}

func (r *orderRepository) FindOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	order, exists := r.store.orders[orderID]
	if !exists {
		return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
	}
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order, nil
}

func (r *orderRepository) ListOrders(_ context.Context, filter portsrepo.ListOrdersFilter) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var orders []domain.Order
	for _, o := range r.store.orders {
		if filter.MerchantID != "" && o.MerchantID != filter.MerchantID {
			continue
		}
		if !filter.AfterOrderDate.IsZero() {
			// Keyset cursor: keep rows strictly older than (orderDate, createdAt).
			if o.OrderDate.After(filter.AfterOrderDate) {
				continue
			}
			if o.OrderDate.Equal(filter.AfterOrderDate) && !o.CreatedAt.Before(filter.AfterCreatedAt) {
				continue
			}
		}
		o.Items = append([]domain.OrderItem(nil), o.Items...)
		orders = append(orders, o)
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})

	if filter.Limit > 0 && len(orders) > filter.Limit {
		orders = orders[:filter.Limit]
	}
	return orders, nil
}

func (r *orderRepository) ListAllOrders(_ context.Context) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		o.Items = append([]domain.OrderItem(nil), o.Items...)
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].OrderDate.Before(orders[j].OrderDate)
	})
	return orders, nil
}
