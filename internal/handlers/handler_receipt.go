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

// receiptHandler handles HTTP requests for the payout receipt ledger.
type receiptHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newReceiptHandler(bs portssvc.BalanceSvcFacade) *receiptHandler {
	return &receiptHandler{balanceService: bs}
}

// registerReceiptRoutes registers routes related to payout receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newReceiptHandler(balanceService)

	receipts := rg.Group("/receipts")
	{
		receipts.GET("", h.listReceipts)
		receipts.DELETE("", h.deleteReceipts)
	}
}

// listReceipts godoc
// @Summary List payout receipts
// @Description Retrieves receipts in ledger order, optionally scoped to one merchant.
// @Tags receipts
// @Produce json
// @Param merchantID query string false "Merchant ID"
// @Success 200 {array} dto.ReceiptResponse
// @Failure 500 {object} map[string]string "Failed to list receipts"
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	receipts, err := h.balanceService.ListReceipts(c.Request.Context(), params.MerchantID)
	if err != nil {
		logger.Error("Failed to list receipts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receipts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListReceiptResponse(receipts))
}

// deleteReceipts godoc
// @Summary Delete payout receipts
// @Description Removes receipts from the ledger and replays the remainder. Fails whole if any ID is unknown.
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipts body dto.DeleteReceiptsRequest true "Receipt IDs to delete"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "One or more receipts not found"
// @Failure 500 {object} map[string]string "Failed to delete receipts"
// @Security BearerAuth
// @Router /receipts [delete]
func (h *receiptHandler) deleteReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DeleteReceiptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deleteReceipts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.balanceService.DeleteReceipts(c.Request.Context(), req.ReceiptIDs, actorUserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "One or more receipts not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to delete receipts", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete receipts"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
