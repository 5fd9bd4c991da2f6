package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles HTTP requests for derived tip balances and payments.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers routes related to tip balances.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.listBalances)
		balances.GET("/:merchantID", h.getBalance)
		balances.POST("/:merchantID/payments", h.confirmPayment)
	}
}

// listBalances godoc
// @Summary List tip balances
// @Description Retrieves the derived tip balance of every merchant.
// @Tags balances
// @Produce json
// @Success 200 {array} dto.TipBalanceResponse
// @Failure 500 {object} map[string]string "Failed to list balances"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.balanceService.GetAllTipBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balances"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListTipBalanceResponse(balances))
}

// getBalance godoc
// @Summary Get a merchant's tip balance
// @Description Retrieves the derived tip balance for one merchant.
// @Tags balances
// @Produce json
// @Param merchantID path string true "Merchant ID"
// @Success 200 {object} dto.TipBalanceResponse
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /balances/{merchantID} [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	merchantID := c.Param("merchantID")

	balance, err := h.balanceService.GetTipBalance(c.Request.Context(), merchantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchant not found"})
			return
		}
		logger.Error("Failed to get balance", slog.String("merchant_id", merchantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTipBalanceResponse(balance))
}

// confirmPayment godoc
// @Summary Confirm a tip payment
// @Description Records a payout receipt for the merchant and recomputes all derived balances.
// @Tags balances
// @Accept json
// @Produce json
// @Param merchantID path string true "Merchant ID"
// @Param payment body dto.ConfirmTipPaymentRequest true "Payment details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to confirm payment"
// @Security BearerAuth
// @Router /balances/{merchantID}/payments [post]
func (h *balanceHandler) confirmPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	merchantID := c.Param("merchantID")

	var req dto.ConfirmTipPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for confirmPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	receipt, err := h.balanceService.ConfirmTipPayment(c.Request.Context(), merchantID, req, actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchant not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to confirm payment", slog.String("merchant_id", merchantID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm payment"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}
