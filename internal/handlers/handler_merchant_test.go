package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/handlers"
	"github.com/courierdesk/merchant_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MerchantService ---
type MockMerchantService struct {
	mock.Mock
}

func (m *MockMerchantService) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Merchant), args.Error(1)
}
func (m *MockMerchantService) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}
func (m *MockMerchantService) OnboardMerchant(ctx context.Context, req dto.CreateMerchantRequest, creatorUserID string) (*domain.Merchant, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}
func (m *MockMerchantService) DisableMerchant(ctx context.Context, merchantID string, actorUserID string) error {
	args := m.Called(ctx, merchantID, actorUserID)
	return args.Error(0)
}
func (m *MockMerchantService) ScheduleMerchantDeletion(ctx context.Context, merchantID string, actorUserID string) error {
	args := m.Called(ctx, merchantID, actorUserID)
	return args.Error(0)
}
func (m *MockMerchantService) CancelMerchantDeletion(ctx context.Context, merchantID string, actorUserID string) error {
	args := m.Called(ctx, merchantID, actorUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.MerchantSvcFacade = (*MockMerchantService)(nil)

// --- Test Suite ---
type MerchantHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockMerchantService *MockMerchantService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *MerchantHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "maa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *MerchantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockMerchantService = new(MockMerchantService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterMerchantRoutes(v1, suite.mockMerchantService)
}

func (suite *MerchantHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *MerchantHandlerTestSuite) TestListMerchants_Success() {
	userID := uuid.NewString()
	expected := []domain.Merchant{
		{
			MerchantID:        uuid.NewString(),
			Name:              "Corner Shop",
			TipPerTransaction: decimal.NewFromFloat(0.5),
			AccountStatus:     domain.StatusActive,
		},
	}
	suite.mockMerchantService.On("ListMerchants", mock.Anything).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/merchants", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var response []dto.MerchantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response, 1)
	suite.Equal(expected[0].MerchantID, response[0].MerchantID)
	suite.Equal("Corner Shop", response[0].Name)
	suite.mockMerchantService.AssertExpectations(suite.T())
}

func (suite *MerchantHandlerTestSuite) TestListMerchants_Unauthorized() {
	req, err := http.NewRequest(http.MethodGet, "/api/v1/merchants", nil)
	suite.Require().NoError(err)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockMerchantService.AssertNotCalled(suite.T(), "ListMerchants")
}

func (suite *MerchantHandlerTestSuite) TestCreateMerchant_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateMerchantRequest{
		Name:              "Corner Shop",
		Address:           "1 Main St",
		TipPerTransaction: decimal.NewFromFloat(0.5),
	}
	created := &domain.Merchant{
		MerchantID:        uuid.NewString(),
		Name:              reqBody.Name,
		Address:           reqBody.Address,
		TipPerTransaction: reqBody.TipPerTransaction,
		AccountStatus:     domain.StatusActive,
	}
	suite.mockMerchantService.On("OnboardMerchant",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateMerchantRequest) bool { return r.Name == reqBody.Name }),
		userID,
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/merchants", userID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var response dto.MerchantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(created.MerchantID, response.MerchantID)
	suite.mockMerchantService.AssertExpectations(suite.T())
}

func (suite *MerchantHandlerTestSuite) TestCreateMerchant_MissingName() {
	userID := uuid.NewString()
	w := suite.doRequest(http.MethodPost, "/api/v1/merchants", userID, map[string]any{
		"address": "1 Main St",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMerchantService.AssertNotCalled(suite.T(), "OnboardMerchant")
}

func (suite *MerchantHandlerTestSuite) TestGetMerchant_NotFound() {
	userID := uuid.NewString()
	merchantID := uuid.NewString()
	suite.mockMerchantService.On("GetMerchantByID", mock.Anything, merchantID).
		Return(nil, fmt.Errorf("%w: merchant", apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/merchants/"+merchantID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockMerchantService.AssertExpectations(suite.T())
}

func (suite *MerchantHandlerTestSuite) TestDisableMerchant_Success() {
	userID := uuid.NewString()
	merchantID := uuid.NewString()
	suite.mockMerchantService.On("DisableMerchant", mock.Anything, merchantID, userID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/merchants/"+merchantID+"/disable", userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockMerchantService.AssertExpectations(suite.T())
}

func (suite *MerchantHandlerTestSuite) TestScheduleDeletion_AlreadyPending() {
	userID := uuid.NewString()
	merchantID := uuid.NewString()
	suite.mockMerchantService.On("ScheduleMerchantDeletion", mock.Anything, merchantID, userID).
		Return(fmt.Errorf("%w: already pending", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/merchants/"+merchantID+"/schedule-deletion", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMerchantService.AssertExpectations(suite.T())
}

func (suite *MerchantHandlerTestSuite) TestCancelDeletion_NotFound() {
	userID := uuid.NewString()
	merchantID := uuid.NewString()
	suite.mockMerchantService.On("CancelMerchantDeletion", mock.Anything, merchantID, userID).
		Return(fmt.Errorf("%w: merchant", apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/merchants/"+merchantID+"/cancel-deletion", userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockMerchantService.AssertExpectations(suite.T())
}

func TestMerchantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MerchantHandlerTestSuite))
}
