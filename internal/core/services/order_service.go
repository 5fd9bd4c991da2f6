package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const maxOrderPageSize = 200

type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	merchantRepo portsrepo.MerchantRepositoryFacade
	reconciler   portssvc.ReconcilerSvc
	now          func() time.Time
}

// OrderOption is a functional option for the order service
type OrderOption func(*orderService)

// WithOrderClock overrides the clock, used by tests.
func WithOrderClock(now func() time.Time) OrderOption {
	return func(s *orderService) {
		s.now = now
	}
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo portsrepo.OrderRepositoryFacade,
	merchantRepo portsrepo.MerchantRepositoryFacade,
	reconciler portssvc.ReconcilerSvc,
	options ...OrderOption,
) portssvc.OrderSvcFacade {
	svc := &orderService{
		orderRepo:    orderRepo,
		merchantRepo: merchantRepo,
		reconciler:   reconciler,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder records a new order against an existing merchant. Completed
// orders change the merchant's accrued tips, so reconciliation runs after the
// write regardless of status; CANCELLED orders simply contribute nothing.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error) {
	if req.PlatformTip.IsNegative() || req.MerchantTip.IsNegative() {
		return nil, fmt.Errorf("%w: tips must not be negative", apperrors.ErrValidation)
	}
	if _, err := s.merchantRepo.FindMerchantByID(ctx, req.MerchantID); err != nil {
		s.LogError(ctx, err, "Merchant not found for order", slog.String("merchant_id", req.MerchantID))
		return nil, err
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	now := s.now()
	order := domain.Order{
		OrderID:     uuid.NewString(),
		MerchantID:  req.MerchantID,
		OrderDate:   req.OrderDate,
		Status:      req.Status,
		Items:       items,
		MerchantTip: req.MerchantTip,
		PlatformTip: req.PlatformTip,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("merchant_id", req.MerchantID))
		return nil, err
	}
	if err := s.reconciler.Recompute(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Order recorded",
		slog.String("order_id", order.OrderID),
		slog.String("merchant_id", order.MerchantID),
		slog.String("status", string(order.Status)),
	)
	return &order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns a page of orders, newest first, with an opaque
// continuation token. The page is fetched with limit+1 to detect whether more
// rows remain without a separate count query.
func (s *orderService) ListOrders(ctx context.Context, params dto.ListOrdersParams) (*dto.ListOrdersResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > maxOrderPageSize {
		limit = maxOrderPageSize
	}

	filter := portsrepo.ListOrdersFilter{
		MerchantID: params.MerchantID,
		Limit:      limit + 1,
	}
	if params.NextToken != "" {
		afterOrderDate, afterCreatedAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter.AfterOrderDate = afterOrderDate
		filter.AfterCreatedAt = afterCreatedAt
	}

	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	nextToken := ""
	if len(orders) > limit {
		orders = orders[:limit]
		last := orders[len(orders)-1]
		nextToken = pagination.EncodeToken(last.OrderDate, last.CreatedAt)
	}

	responses := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = dto.ToOrderResponse(&orders[i])
	}
	return &dto.ListOrdersResponse{Orders: responses, NextToken: nextToken}, nil
}
