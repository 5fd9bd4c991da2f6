package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	"github.com/courierdesk/merchant_admin_app/internal/models"
	"github.com/courierdesk/merchant_admin_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository{Pool: db}}
}

// Ensure PgxOrderRepository implements the facade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, merchant_id, order_date, status, merchant_tip, platform_tip, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.OrderID,
		&o.MerchantID,
		&o.OrderDate,
		&o.Status,
		&o.MerchantTip,
		&o.PlatformTip,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	return o, err
}

// SaveOrder inserts the order row and its line items in one transaction.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelOrder(order)
	orderQuery := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, orderQuery,
		m.OrderID,
		m.MerchantID,
		m.OrderDate,
		m.Status,
		m.MerchantTip,
		m.PlatformTip,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_item_id, order_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, itemQuery, uuid.NewString(), order.OrderID, item.Name, item.Price, item.Quantity); err != nil {
			return fmt.Errorf("failed to save order item: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}

	items, err := r.loadItems(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}
	order := mapping.ToDomainOrder(m, items[orderID])
	return &order, nil
}

// ListOrders pages newest-first by (order_date, created_at) keyset. The cursor
// fields are exclusive: rows strictly older than the cursor are returned.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, filter portsrepo.ListOrdersFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	where := ""
	argN := 1

	if filter.MerchantID != "" {
		where = fmt.Sprintf(" WHERE merchant_id = $%d", argN)
		args = append(args, filter.MerchantID)
		argN++
	}
	if !filter.AfterOrderDate.IsZero() {
		clause := fmt.Sprintf("(order_date, created_at) < ($%d, $%d)", argN, argN+1)
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
		args = append(args, filter.AfterOrderDate, filter.AfterCreatedAt)
		argN += 2
	}

	query += where + " ORDER BY order_date DESC, created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argN)
		args = append(args, filter.Limit)
	}

	return r.queryOrders(ctx, query, args...)
}

func (r *PgxOrderRepository) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date, created_at;`
	return r.queryOrders(ctx, query)
}

func (r *PgxOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var modelOrders []models.Order
	var orderIDs []string
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		modelOrders = append(modelOrders, o)
		orderIDs = append(orderIDs, o.OrderID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating order rows: %w", err)
	}

	items, err := r.loadItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, len(modelOrders))
	for i, o := range modelOrders {
		orders[i] = mapping.ToDomainOrder(o, items[o.OrderID])
	}
	return orders, nil
}

// loadItems fetches line items for a batch of orders in one query, keyed by
// order ID, preserving item insertion order.
func (r *PgxOrderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]models.OrderItem, error) {
	result := make(map[string][]models.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT order_item_id, order_id, name, price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.OrderItemID, &item.OrderID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating order item rows: %w", err)
	}
	return result, nil
}
