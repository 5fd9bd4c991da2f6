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
	"github.com/stretchr/testify/suite"
)

func boolPtr(b bool) *bool { return &b }

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	repos    portsrepo.RepositoryProvider
	balances portssvc.BalanceSvcFacade
	service  portssvc.SettingsSvcFacade
	now      time.Time
}

func (suite *SettingsServiceTestSuite) SetupTest() {
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
	suite.service = services.NewSettingsService(
		suite.repos.SettingsRepo,
		suite.balances,
		services.WithSettingsClock(clock),
	)
}

// --- Test Cases ---

func (suite *SettingsServiceTestSuite) TestGetFinancialSettings_Defaults() {
	settings, err := suite.service.GetFinancialSettings(context.Background())

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultFinancialSettings(), *settings)
}

func (suite *SettingsServiceTestSuite) TestUpdateFinancialSettings() {
	settings, err := suite.service.UpdateFinancialSettings(context.Background(), dto.UpdateFinancialSettingsRequest{
		DueWarningDays:      10,
		LateWarningDays:     20,
		VeryLateWarningDays: 30,
		SuspensionDays:      40,
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(10, settings.DueWarningDays)
	suite.Equal(40, settings.SuspensionDays)
	suite.Equal("admin-1", settings.LastUpdatedBy)
	suite.Equal(suite.now, settings.LastUpdatedAt)

	stored, err := suite.repos.SettingsRepo.GetFinancialSettings(context.Background())
	suite.Require().NoError(err)
	suite.Equal(40, stored.SuspensionDays)
}

func (suite *SettingsServiceTestSuite) TestUpdateFinancialSettings_OrderingEnforced() {
	cases := []struct {
		name string
		req  dto.UpdateFinancialSettingsRequest
	}{
		{"zero due", dto.UpdateFinancialSettingsRequest{DueWarningDays: 0, LateWarningDays: 20, VeryLateWarningDays: 30, SuspensionDays: 40}},
		{"late not above due", dto.UpdateFinancialSettingsRequest{DueWarningDays: 20, LateWarningDays: 20, VeryLateWarningDays: 30, SuspensionDays: 40}},
		{"very late not above late", dto.UpdateFinancialSettingsRequest{DueWarningDays: 10, LateWarningDays: 20, VeryLateWarningDays: 15, SuspensionDays: 40}},
		{"suspension not above very late", dto.UpdateFinancialSettingsRequest{DueWarningDays: 10, LateWarningDays: 20, VeryLateWarningDays: 30, SuspensionDays: 30}},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			settings, err := suite.service.UpdateFinancialSettings(context.Background(), tc.req, "admin-1")
			suite.Require().Error(err)
			suite.Nil(settings)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (suite *SettingsServiceTestSuite) TestUpdateFinancialSettings_TriggersReconciliation() {
	ctx := context.Background()
	lastPayment := suite.now.AddDate(0, 0, -20)
	suite.Require().NoError(suite.repos.MerchantRepo.SaveMerchant(ctx, domain.Merchant{
		MerchantID:        "m1",
		Name:              "Merchant m1",
		TipPerTransaction: dec("0.50"),
		LastPaymentDate:   lastPayment,
		AccountStatus:     domain.StatusActive,
		AuditFields:       domain.AuditFields{CreatedAt: lastPayment},
	}))
	suite.Require().NoError(suite.repos.OrderRepo.SaveOrder(ctx, domain.Order{
		OrderID:     "o1",
		MerchantID:  "m1",
		OrderDate:   suite.now.AddDate(0, 0, -10),
		Status:      domain.OrderDelivered,
		PlatformTip: dec("2.00"),
		AuditFields: domain.AuditFields{CreatedAt: suite.now.AddDate(0, 0, -10)},
	}))

	balance, err := suite.balances.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, balance.Status)

	// Lowering the suspension threshold under the merchant's 20 day gap must
	// suspend it on the settings-triggered recompute.
	_, err = suite.service.UpdateFinancialSettings(ctx, dto.UpdateFinancialSettingsRequest{
		DueWarningDays:      5,
		LateWarningDays:     10,
		VeryLateWarningDays: 12,
		SuspensionDays:      15,
	}, "admin-1")
	suite.Require().NoError(err)

	balance, err = suite.balances.GetTipBalance(ctx, "m1")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusSuspended, balance.Status)
}

func (suite *SettingsServiceTestSuite) TestUpdateNotificationSettings_PartialUpdate() {
	settings, err := suite.service.UpdateNotificationSettings(context.Background(), dto.UpdateNotificationSettingsRequest{
		PaymentAlerts: boolPtr(false),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.True(settings.NewMerchantAlerts)
	suite.False(settings.PaymentAlerts)
	suite.True(settings.MessageAlerts)
	suite.Equal("admin-1", settings.LastUpdatedBy)
}

func (suite *SettingsServiceTestSuite) TestUpdateNotificationSettings_NoFieldsIsNoOp() {
	settings, err := suite.service.UpdateNotificationSettings(context.Background(), dto.UpdateNotificationSettingsRequest{}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultNotificationSettings().NewMerchantAlerts, settings.NewMerchantAlerts)
	suite.Equal(domain.DefaultNotificationSettings().PaymentAlerts, settings.PaymentAlerts)
	suite.Equal(domain.DefaultNotificationSettings().MessageAlerts, settings.MessageAlerts)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
