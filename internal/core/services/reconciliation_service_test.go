package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/core/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Test Suite ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	repos   portsrepo.RepositoryProvider
	service portssvc.BalanceSvcFacade
	now     time.Time
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())
	suite.now = testNow
	suite.service = services.NewReconciliationService(
		suite.repos.MerchantRepo,
		suite.repos.OrderRepo,
		suite.repos.ReceiptRepo,
		suite.repos.SettingsRepo,
		services.WithReconciliationClock(func() time.Time { return suite.now }),
	)
}

func (suite *ReconciliationServiceTestSuite) addMerchant(id string, lastPayment time.Time) {
	err := suite.repos.MerchantRepo.SaveMerchant(context.Background(), domain.Merchant{
		MerchantID:        id,
		Name:              "Merchant " + id,
		TipPerTransaction: dec("0.50"),
		LastPaymentDate:   lastPayment,
		AccountStatus:     domain.StatusActive,
		AuditFields:       domain.AuditFields{CreatedAt: lastPayment},
	})
	suite.Require().NoError(err)
}

func (suite *ReconciliationServiceTestSuite) addOrder(merchantID string, status domain.OrderStatus, tip string, orderDate time.Time) {
	err := suite.repos.OrderRepo.SaveOrder(context.Background(), domain.Order{
		OrderID:     merchantID + "-" + tip + "-" + orderDate.String(),
		MerchantID:  merchantID,
		OrderDate:   orderDate,
		Status:      status,
		PlatformTip: dec(tip),
		AuditFields: domain.AuditFields{CreatedAt: orderDate},
	})
	suite.Require().NoError(err)
}

// --- Test Cases ---

func (suite *ReconciliationServiceTestSuite) TestBalancesFromOrdersOnly() {
	ctx := context.Background()
	registered := testNow.AddDate(0, 0, -5)
	suite.addMerchant("m1", registered)
	suite.addOrder("m1", domain.OrderDelivered, "2.00", testNow.AddDate(0, 0, -3))
	suite.addOrder("m1", domain.OrderShipped, "1.50", testNow.AddDate(0, 0, -2))
	suite.addOrder("m1", domain.OrderCancelled, "9.00", testNow.AddDate(0, 0, -1))

	balance, err := suite.service.GetTipBalance(ctx, "m1")

	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.Equal(dec("3.50")))
	suite.True(balance.TotalTipsReceived.Equal(dec("3.50")))
	suite.True(balance.TotalTipsPaid.IsZero())
	suite.Nil(balance.PreviousBalance)
	suite.Nil(balance.LastPaymentAmount)
	suite.Equal(registered, balance.LastPaymentDate)
	suite.Equal(5, balance.DaysSincePayment)
	suite.Equal(domain.StatusActive, balance.Status)
}

func (suite *ReconciliationServiceTestSuite) TestGetTipBalance_UnknownMerchant() {
	balance, err := suite.service.GetTipBalance(context.Background(), "ghost")

	suite.Require().Error(err)
	suite.Nil(balance)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestConfirmTipPayment_RecordsPendingBalance() {
	ctx := context.Background()
	suite.addMerchant("m1", testNow.AddDate(0, 0, -10))
	suite.addOrder("m1", domain.OrderDelivered, "6.00", testNow.AddDate(0, 0, -9))

	receipt, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{
		AmountReceived: dec("6.00"),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.True(receipt.PendingBalance.Equal(dec("6.00")), "pendingBalance captures the balance before the payment")
	suite.Positive(receipt.Seq)

	balance, err := suite.service.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.IsZero())
	suite.Require().NotNil(balance.LastPaymentAmount)
	suite.True(balance.LastPaymentAmount.Equal(dec("6.00")))
	suite.Require().NotNil(balance.PreviousBalance)
	suite.True(balance.PreviousBalance.Equal(dec("6.00")))
	suite.Equal(0, balance.DaysSincePayment)
	suite.Equal(domain.StatusActive, balance.Status)

	merchant, err := suite.repos.MerchantRepo.FindMerchantByID(ctx, "m1")
	suite.Require().NoError(err)
	suite.True(merchant.LastPaymentDate.Equal(receipt.CreatedAt), "merchant record tracks the newest receipt")
}

func (suite *ReconciliationServiceTestSuite) TestConfirmTipPayment_NegativeAmount() {
	suite.addMerchant("m1", testNow)

	receipt, err := suite.service.ConfirmTipPayment(context.Background(), "m1", dto.ConfirmTipPaymentRequest{
		AmountReceived: dec("-1.00"),
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestConfirmTipPayment_UnknownMerchant() {
	receipt, err := suite.service.ConfirmTipPayment(context.Background(), "ghost", dto.ConfirmTipPaymentRequest{
		AmountReceived: dec("1.00"),
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestOverpaymentClampsAtZero() {
	ctx := context.Background()
	suite.addMerchant("m1", testNow.AddDate(0, 0, -10))
	suite.addOrder("m1", domain.OrderDelivered, "3.00", testNow.AddDate(0, 0, -9))

	_, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{
		AmountReceived: dec("10.00"),
	}, "admin-1")
	suite.Require().NoError(err)

	balance, err := suite.service.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.IsZero())
	suite.True(balance.TotalTipsPaid.Equal(dec("10.00")))
}

func (suite *ReconciliationServiceTestSuite) TestStatusWrittenBackToMerchant() {
	ctx := context.Background()
	settings := domain.DefaultFinancialSettings()
	suite.addMerchant("m1", testNow.AddDate(0, 0, -settings.SuspensionDays))
	suite.addOrder("m1", domain.OrderDelivered, "4.00", testNow.AddDate(0, 0, -settings.SuspensionDays))

	suite.Require().NoError(suite.service.Recompute(ctx))

	merchant, err := suite.repos.MerchantRepo.FindMerchantByID(ctx, "m1")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusSuspended, merchant.AccountStatus)
}

func (suite *ReconciliationServiceTestSuite) TestRecomputeIsIdempotent() {
	ctx := context.Background()
	suite.addMerchant("m1", testNow.AddDate(0, 0, -20))
	suite.addOrder("m1", domain.OrderDelivered, "5.00", testNow.AddDate(0, 0, -15))
	_, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{AmountReceived: dec("2.00")}, "admin-1")
	suite.Require().NoError(err)

	first, err := suite.service.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.Recompute(ctx))
	second, err := suite.service.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *ReconciliationServiceTestSuite) TestDeleteReceipts_ReplaysRemainingLedger() {
	ctx := context.Background()
	suite.addMerchant("m1", testNow.AddDate(0, 0, -30))
	suite.addOrder("m1", domain.OrderDelivered, "10.00", testNow.AddDate(0, 0, -25))

	first, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{AmountReceived: dec("4.00")}, "admin-1")
	suite.Require().NoError(err)
	second, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{AmountReceived: dec("3.00")}, "admin-1")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteReceipts(ctx, []string{second.ReceiptID}, "admin-1"))

	balance, err := suite.service.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)
	suite.True(balance.TotalTipsPaid.Equal(dec("4.00")))
	suite.True(balance.CurrentBalance.Equal(dec("6.00")))
	suite.Require().NotNil(balance.LastPaymentAmount)
	suite.True(balance.LastPaymentAmount.Equal(first.AmountReceived))
}

func (suite *ReconciliationServiceTestSuite) TestDeleteReceipts_UnknownIDLeavesLedgerIntact() {
	ctx := context.Background()
	suite.addMerchant("m1", testNow.AddDate(0, 0, -30))
	receipt, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{AmountReceived: dec("1.00")}, "admin-1")
	suite.Require().NoError(err)

	err = suite.service.DeleteReceipts(ctx, []string{receipt.ReceiptID, "ghost"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	receipts, err := suite.service.ListReceipts(ctx, "m1")
	suite.Require().NoError(err)
	suite.Len(receipts, 1)
}

func (suite *ReconciliationServiceTestSuite) TestDeleteReceipts_DuplicateIDsDeleteOnce() {
	ctx := context.Background()
	suite.addMerchant("m1", testNow.AddDate(0, 0, -30))
	receipt, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{AmountReceived: dec("1.00")}, "admin-1")
	suite.Require().NoError(err)

	err = suite.service.DeleteReceipts(ctx, []string{receipt.ReceiptID, receipt.ReceiptID}, "admin-1")

	suite.Require().NoError(err)
	receipts, err := suite.service.ListReceipts(ctx, "m1")
	suite.Require().NoError(err)
	suite.Empty(receipts)
}

func (suite *ReconciliationServiceTestSuite) TestDeleteReceipts_RestoresPriorPaymentDate() {
	ctx := context.Background()
	registered := testNow.AddDate(0, 0, -30)
	suite.addMerchant("m1", registered)
	suite.addOrder("m1", domain.OrderDelivered, "10.00", testNow.AddDate(0, 0, -25))

	suite.now = testNow.AddDate(0, 0, -20)
	first, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{AmountReceived: dec("4.00")}, "admin-1")
	suite.Require().NoError(err)
	suite.now = testNow.AddDate(0, 0, -3)
	second, err := suite.service.ConfirmTipPayment(ctx, "m1", dto.ConfirmTipPaymentRequest{AmountReceived: dec("3.00")}, "admin-1")
	suite.Require().NoError(err)
	suite.now = testNow

	suite.Require().NoError(suite.service.DeleteReceipts(ctx, []string{second.ReceiptID}, "admin-1"))

	balance, err := suite.service.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)
	suite.True(balance.LastPaymentDate.Equal(first.CreatedAt), "date falls back to the surviving receipt")
	suite.Equal(20, balance.DaysSincePayment)

	suite.Require().NoError(suite.service.DeleteReceipts(ctx, []string{first.ReceiptID}, "admin-1"))

	balance, err = suite.service.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)
	suite.True(balance.LastPaymentDate.Equal(registered), "empty ledger reverts to the registration date")
	suite.Equal(30, balance.DaysSincePayment)
}

func (suite *ReconciliationServiceTestSuite) TestRecompute_WriteBackFailureLeavesRecordsUntouched() {
	ctx := context.Background()
	settings := domain.DefaultFinancialSettings()
	aged := testNow.AddDate(0, 0, -settings.DueWarningDays-5)
	suite.addMerchant("m1", aged)
	suite.addOrder("m1", domain.OrderDelivered, "4.00", aged)
	suite.addMerchant("m2", aged)
	suite.addOrder("m2", domain.OrderDelivered, "4.00", aged)

	flaky := &flakyMerchantRepo{MerchantRepositoryFacade: suite.repos.MerchantRepo, failFor: "m2"}
	service := services.NewReconciliationService(
		flaky,
		suite.repos.OrderRepo,
		suite.repos.ReceiptRepo,
		suite.repos.SettingsRepo,
		services.WithReconciliationClock(func() time.Time { return suite.now }),
	)

	err := service.Recompute(ctx)

	suite.Require().Error(err)
	for _, id := range []string{"m1", "m2"} {
		merchant, findErr := suite.repos.MerchantRepo.FindMerchantByID(ctx, id)
		suite.Require().NoError(findErr)
		suite.Equal(domain.StatusActive, merchant.AccountStatus, "a failed pass must not leave partial status writes")
	}

	flaky.failFor = ""
	suite.Require().NoError(service.Recompute(ctx))
	for _, id := range []string{"m1", "m2"} {
		merchant, findErr := suite.repos.MerchantRepo.FindMerchantByID(ctx, id)
		suite.Require().NoError(findErr)
		suite.Equal(domain.StatusPending, merchant.AccountStatus)
	}
}

// flakyMerchantRepo fails status write-backs for one merchant so tests can
// exercise the reconciliation error branch.
type flakyMerchantRepo struct {
	portsrepo.MerchantRepositoryFacade
	failFor string
}

func (r *flakyMerchantRepo) UpdateMerchant(ctx context.Context, merchant domain.Merchant) error {
	if r.failFor != "" && merchant.MerchantID == r.failFor {
		return errors.New("storage offline")
	}
	return r.MerchantRepositoryFacade.UpdateMerchant(ctx, merchant)
}

func (suite *ReconciliationServiceTestSuite) TestGetAllTipBalances_SortedByMerchantID() {
	ctx := context.Background()
	suite.addMerchant("m2", testNow)
	suite.addMerchant("m1", testNow)

	balances, err := suite.service.GetAllTipBalances(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 2)
	suite.Equal("m1", balances[0].MerchantID)
	suite.Equal("m2", balances[1].MerchantID)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
