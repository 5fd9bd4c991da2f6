package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/core/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	repos    portsrepo.RepositoryProvider
	balances portssvc.BalanceSvcFacade
	service  portssvc.OrderSvcFacade
	now      time.Time
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())
	suite.now = testNow
	clock := func() time.Time { return suite.now }
	suite.balances = services.NewReconciliationService(
		suite.repos.MerchantRepo,
		suite.repos.OrderRepo,
		suite.repos.ReceiptRepo,
		suite.repos.SettingsRepo,
		services.WithReconciliationClock(clock),
	)
	suite.service = services.NewOrderService(
		suite.repos.OrderRepo,
		suite.repos.MerchantRepo,
		suite.balances,
		services.WithOrderClock(clock),
	)

	err := suite.repos.MerchantRepo.SaveMerchant(context.Background(), domain.Merchant{
		MerchantID:        "m1",
		Name:              "Merchant m1",
		TipPerTransaction: dec("0.50"),
		LastPaymentDate:   testNow.AddDate(0, 0, -5),
		AccountStatus:     domain.StatusActive,
		AuditFields:       domain.AuditFields{CreatedAt: testNow.AddDate(0, 0, -5)},
	})
	suite.Require().NoError(err)
}

func (suite *OrderServiceTestSuite) createOrder(orderDate time.Time, status domain.OrderStatus, tip string) *domain.Order {
	order, err := suite.service.CreateOrder(context.Background(), dto.CreateOrderRequest{
		MerchantID: "m1",
		OrderDate:  orderDate,
		Status:     status,
		Items: []dto.OrderItemRequest{
			{Name: "Widget", Price: dec("9.99"), Quantity: 1},
		},
		PlatformTip: dec(tip),
	}, "admin-1")
	suite.Require().NoError(err)
	return order
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrder() {
	order := suite.createOrder(suite.now.AddDate(0, 0, -1), domain.OrderDelivered, "0.50")

	suite.NotEmpty(order.OrderID)
	suite.Equal("m1", order.MerchantID)
	suite.Len(order.Items, 1)
	suite.Equal("admin-1", order.CreatedBy)

	stored, err := suite.service.GetOrderByID(context.Background(), order.OrderID)
	suite.Require().NoError(err)
	suite.Equal(order.OrderID, stored.OrderID)

	balance, err := suite.balances.GetTipBalance(context.Background(), "m1")
	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.Equal(dec("0.50")))
}

func (suite *OrderServiceTestSuite) TestCreateOrder_CancelledDoesNotAccrue() {
	suite.createOrder(suite.now.AddDate(0, 0, -1), domain.OrderCancelled, "0.50")

	balance, err := suite.balances.GetTipBalance(context.Background(), "m1")
	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.IsZero())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownMerchant() {
	order, err := suite.service.CreateOrder(context.Background(), dto.CreateOrderRequest{
		MerchantID: "ghost",
		OrderDate:  suite.now,
		Status:     domain.OrderDelivered,
		Items:      []dto.OrderItemRequest{{Name: "Widget", Price: dec("9.99"), Quantity: 1}},
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_NegativeTip() {
	order, err := suite.service.CreateOrder(context.Background(), dto.CreateOrderRequest{
		MerchantID:  "m1",
		OrderDate:   suite.now,
		Status:      domain.OrderDelivered,
		Items:       []dto.OrderItemRequest{{Name: "Widget", Price: dec("9.99"), Quantity: 1}},
		PlatformTip: dec("-0.50"),
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestListOrders_PagesNewestFirst() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		date := suite.now.AddDate(0, 0, -i)
		suite.createOrder(date, domain.OrderDelivered, "0.50")
		// Distinct creation times keep the keyset cursor unambiguous.
		suite.now = suite.now.Add(time.Second)
	}

	page, err := suite.service.ListOrders(ctx, dto.ListOrdersParams{MerchantID: "m1", Limit: 2})
	suite.Require().NoError(err)
	suite.Len(page.Orders, 2)
	suite.NotEmpty(page.NextToken)
	suite.True(page.Orders[0].OrderDate.After(page.Orders[1].OrderDate))

	seen := map[string]bool{}
	for _, o := range page.Orders {
		seen[o.OrderID] = true
	}

	for page.NextToken != "" {
		page, err = suite.service.ListOrders(ctx, dto.ListOrdersParams{MerchantID: "m1", Limit: 2, NextToken: page.NextToken})
		suite.Require().NoError(err)
		for _, o := range page.Orders {
			suite.False(seen[o.OrderID], "order %s appeared on two pages", o.OrderID)
			seen[o.OrderID] = true
		}
	}
	suite.Len(seen, 5)
}

func (suite *OrderServiceTestSuite) TestListOrders_LastFullPageEndsPagination() {
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		suite.createOrder(suite.now.AddDate(0, 0, -i), domain.OrderDelivered, "0.50")
		suite.now = suite.now.Add(time.Second)
	}

	page, err := suite.service.ListOrders(ctx, dto.ListOrdersParams{Limit: 4})

	suite.Require().NoError(err)
	suite.Len(page.Orders, 4)
	suite.Empty(page.NextToken)
}

func (suite *OrderServiceTestSuite) TestListOrders_InvalidToken() {
	page, err := suite.service.ListOrders(context.Background(), dto.ListOrdersParams{NextToken: "not-base64!"})

	suite.Require().Error(err)
	suite.Nil(page)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestGetOrderByID_NotFound() {
	order, err := suite.service.GetOrderByID(context.Background(), fmt.Sprintf("missing-%d", suite.now.Unix()))

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
