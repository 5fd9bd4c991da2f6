package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/core/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/repositories/memory"
	"github.com/courierdesk/merchant_admin_app/internal/utils/dates"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type MerchantServiceTestSuite struct {
	suite.Suite
	repos    portsrepo.RepositoryProvider
	balances portssvc.BalanceSvcFacade
	service  portssvc.MerchantSvcFacade
	now      time.Time
}

func (suite *MerchantServiceTestSuite) SetupTest() {
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
	suite.service = services.NewMerchantService(
		suite.repos.MerchantRepo,
		suite.balances,
		services.WithMerchantClock(clock),
	)
}

func (suite *MerchantServiceTestSuite) onboard(name string) *domain.Merchant {
	merchant, err := suite.service.OnboardMerchant(context.Background(), dto.CreateMerchantRequest{
		Name:              name,
		Address:           "1 Main St",
		TipPerTransaction: dec("0.50"),
	}, "admin-1")
	suite.Require().NoError(err)
	return merchant
}

// --- Test Cases ---

func (suite *MerchantServiceTestSuite) TestOnboardMerchant() {
	merchant := suite.onboard("Corner Shop")

	suite.NotEmpty(merchant.MerchantID)
	suite.Equal(domain.StatusActive, merchant.AccountStatus)
	suite.Equal(suite.now, merchant.LastPaymentDate)
	suite.Equal("admin-1", merchant.CreatedBy)

	balance, err := suite.balances.GetTipBalance(context.Background(), merchant.MerchantID)
	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.IsZero())
}

func (suite *MerchantServiceTestSuite) TestOnboardMerchant_NegativeTipRate() {
	merchant, err := suite.service.OnboardMerchant(context.Background(), dto.CreateMerchantRequest{
		Name:              "Bad Rate",
		Address:           "1 Main St",
		TipPerTransaction: dec("-0.10"),
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(merchant)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MerchantServiceTestSuite) TestDisableMerchant_SuspendedOnNextPass() {
	ctx := context.Background()
	merchant := suite.onboard("Corner Shop")

	err := suite.service.DisableMerchant(ctx, merchant.MerchantID, "admin-1")
	suite.Require().NoError(err)

	// The aged payment date alone is not enough; there must be an outstanding
	// balance for the suspension to take hold.
	suite.Require().NoError(suite.repos.OrderRepo.SaveOrder(ctx, domain.Order{
		OrderID:     "o1",
		MerchantID:  merchant.MerchantID,
		OrderDate:   suite.now,
		Status:      domain.OrderDelivered,
		PlatformTip: dec("1.00"),
		AuditFields: domain.AuditFields{CreatedAt: suite.now},
	}))
	suite.Require().NoError(suite.balances.Recompute(ctx))

	updated, err := suite.repos.MerchantRepo.FindMerchantByID(ctx, merchant.MerchantID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusSuspended, updated.AccountStatus)
	suite.Equal(2000, updated.LastPaymentDate.Year())
}

func (suite *MerchantServiceTestSuite) TestDisableMerchant_SuspendsDespitePaymentHistory() {
	ctx := context.Background()
	merchant := suite.onboard("Corner Shop")
	suite.Require().NoError(suite.repos.OrderRepo.SaveOrder(ctx, domain.Order{
		OrderID:     "o1",
		MerchantID:  merchant.MerchantID,
		OrderDate:   suite.now,
		Status:      domain.OrderDelivered,
		PlatformTip: dec("10.00"),
		AuditFields: domain.AuditFields{CreatedAt: suite.now},
	}))
	_, err := suite.balances.ConfirmTipPayment(ctx, merchant.MerchantID, dto.ConfirmTipPaymentRequest{
		AmountReceived: dec("4.00"),
	}, "admin-1")
	suite.Require().NoError(err)

	balance, err := suite.balances.GetTipBalance(ctx, merchant.MerchantID)
	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.Equal(dec("6.00")))
	suite.Equal(domain.StatusActive, balance.Status)

	// The receipt in the ledger must not shadow the forced aging.
	suite.Require().NoError(suite.service.DisableMerchant(ctx, merchant.MerchantID, "admin-1"))

	balance, err = suite.balances.GetTipBalance(ctx, merchant.MerchantID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusSuspended, balance.Status)

	updated, err := suite.repos.MerchantRepo.FindMerchantByID(ctx, merchant.MerchantID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusSuspended, updated.AccountStatus)
	suite.Equal(2000, updated.LastPaymentDate.Year())
}

func (suite *MerchantServiceTestSuite) TestDisableMerchant_RejectedWhileDeletionPending() {
	ctx := context.Background()
	merchant := suite.onboard("Corner Shop")
	suite.Require().NoError(suite.service.ScheduleMerchantDeletion(ctx, merchant.MerchantID, "admin-1"))

	err := suite.service.DisableMerchant(ctx, merchant.MerchantID, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MerchantServiceTestSuite) TestScheduleMerchantDeletion() {
	ctx := context.Background()
	merchant := suite.onboard("Corner Shop")

	err := suite.service.ScheduleMerchantDeletion(ctx, merchant.MerchantID, "admin-1")
	suite.Require().NoError(err)

	updated, err := suite.repos.MerchantRepo.FindMerchantByID(ctx, merchant.MerchantID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeletionPending, updated.AccountStatus)
	suite.Require().NotNil(updated.DeletionScheduledAt)
	suite.Equal(suite.now, *updated.DeletionScheduledAt)

	err = suite.service.ScheduleMerchantDeletion(ctx, merchant.MerchantID, "admin-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MerchantServiceTestSuite) TestCancelMerchantDeletion() {
	ctx := context.Background()
	merchant := suite.onboard("Corner Shop")
	suite.Require().NoError(suite.service.ScheduleMerchantDeletion(ctx, merchant.MerchantID, "admin-1"))

	suite.now = suite.now.Add(48 * time.Hour)
	err := suite.service.CancelMerchantDeletion(ctx, merchant.MerchantID, "admin-1")
	suite.Require().NoError(err)

	updated, err := suite.repos.MerchantRepo.FindMerchantByID(ctx, merchant.MerchantID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusActive, updated.AccountStatus)
	suite.Nil(updated.DeletionScheduledAt)
	suite.Equal(dates.StartOfDay(suite.now), updated.LastPaymentDate)
}

func (suite *MerchantServiceTestSuite) TestCancelMerchantDeletion_NotPending() {
	ctx := context.Background()
	merchant := suite.onboard("Corner Shop")

	err := suite.service.CancelMerchantDeletion(ctx, merchant.MerchantID, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MerchantServiceTestSuite) TestListMerchants_PurgesExpiredDeletions() {
	ctx := context.Background()
	doomed := suite.onboard("Doomed")
	kept := suite.onboard("Kept")
	suite.Require().NoError(suite.service.ScheduleMerchantDeletion(ctx, doomed.MerchantID, "admin-1"))

	suite.now = suite.now.Add(72 * time.Hour)
	merchants, err := suite.service.ListMerchants(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(merchants, 1)
	suite.Equal(kept.MerchantID, merchants[0].MerchantID)

	_, err = suite.repos.MerchantRepo.FindMerchantByID(ctx, doomed.MerchantID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MerchantServiceTestSuite) TestListMerchants_KeepsPendingWithinRetention() {
	ctx := context.Background()
	merchant := suite.onboard("Pending")
	suite.Require().NoError(suite.service.ScheduleMerchantDeletion(ctx, merchant.MerchantID, "admin-1"))

	suite.now = suite.now.Add(71 * time.Hour)
	merchants, err := suite.service.ListMerchants(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(merchants, 1)
	suite.Equal(domain.StatusDeletionPending, merchants[0].AccountStatus)
}

func TestMerchantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MerchantServiceTestSuite))
}
