package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// merchantHandler handles HTTP requests related to merchant accounts.
type merchantHandler struct {
	merchantService portssvc.MerchantSvcFacade
}

func newMerchantHandler(ms portssvc.MerchantSvcFacade) *merchantHandler {
	return &merchantHandler{merchantService: ms}
}

// RegisterMerchantRoutes registers routes related to merchant accounts.
func RegisterMerchantRoutes(rg *gin.RouterGroup, merchantService portssvc.MerchantSvcFacade) {
	h := newMerchantHandler(merchantService)

	merchants := rg.Group("/merchants")
	{
		merchants.GET("", h.listMerchants)
		merchants.POST("", h.createMerchant)
		merchants.GET("/:merchantID", h.getMerchant)
		merchants.POST("/:merchantID/disable", h.disableMerchant)
		merchants.POST("/:merchantID/schedule-deletion", h.scheduleDeletion)
		merchants.POST("/:merchantID/cancel-deletion", h.cancelDeletion)
	}
}

// listMerchants godoc
// @Summary List merchants
// @Description Retrieves all merchant accounts with their current status. Accounts whose deletion retention expired are purged first.
// @Tags merchants
// @Produce json
// @Success 200 {array} dto.MerchantResponse
// @Failure 500 {object} map[string]string "Failed to list merchants"
// @Security BearerAuth
// @Router /merchants [get]
func (h *merchantHandler) listMerchants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	merchants, err := h.merchantService.ListMerchants(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list merchants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list merchants"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListMerchantResponse(merchants))
}

// createMerchant godoc
// @Summary Onboard a new merchant
// @Description Registers a merchant account. Aging starts from the registration time.
// @Tags merchants
// @Accept json
// @Produce json
// @Param merchant body dto.CreateMerchantRequest true "Merchant details"
// @Success 201 {object} dto.MerchantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Merchant already exists"
// @Failure 500 {object} map[string]string "Failed to create merchant"
// @Security BearerAuth
// @Router /merchants [post]
func (h *merchantHandler) createMerchant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createMerchant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	merchant, err := h.merchantService.OnboardMerchant(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Merchant already exists"})
			return
		}
		logger.Error("Failed to onboard merchant", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create merchant"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToMerchantResponse(merchant))
}

// getMerchant godoc
// @Summary Get a merchant
// @Description Retrieves a single merchant account by ID.
// @Tags merchants
// @Produce json
// @Param merchantID path string true "Merchant ID"
// @Success 200 {object} dto.MerchantResponse
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve merchant"
// @Security BearerAuth
// @Router /merchants/{merchantID} [get]
func (h *merchantHandler) getMerchant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	merchantID := c.Param("merchantID")

	merchant, err := h.merchantService.GetMerchantByID(c.Request.Context(), merchantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchant not found"})
			return
		}
		logger.Error("Failed to get merchant", slog.String("merchant_id", merchantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve merchant"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMerchantResponse(merchant))
}

// disableMerchant godoc
// @Summary Disable a merchant
// @Description Force-suspends the merchant by aging its last payment date past the suspension threshold.
// @Tags merchants
// @Produce json
// @Param merchantID path string true "Merchant ID"
// @Success 204 "Disabled"
// @Failure 400 {object} map[string]string "Merchant is pending deletion"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to disable merchant"
// @Security BearerAuth
// @Router /merchants/{merchantID}/disable [post]
func (h *merchantHandler) disableMerchant(c *gin.Context) {
	h.runOverride(c, h.merchantService.DisableMerchant, "disable merchant")
}

// scheduleDeletion godoc
// @Summary Schedule merchant deletion
// @Description Marks the account DELETION_PENDING; it is purged after the retention window.
// @Tags merchants
// @Produce json
// @Param merchantID path string true "Merchant ID"
// @Success 204 "Scheduled"
// @Failure 400 {object} map[string]string "Already pending deletion"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to schedule deletion"
// @Security BearerAuth
// @Router /merchants/{merchantID}/schedule-deletion [post]
func (h *merchantHandler) scheduleDeletion(c *gin.Context) {
	h.runOverride(c, h.merchantService.ScheduleMerchantDeletion, "schedule deletion")
}

// cancelDeletion godoc
// @Summary Cancel merchant deletion
// @Description Clears the DELETION_PENDING override and resets the aging clock to today.
// @Tags merchants
// @Produce json
// @Param merchantID path string true "Merchant ID"
// @Success 204 "Cancelled"
// @Failure 400 {object} map[string]string "Not pending deletion"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to cancel deletion"
// @Security BearerAuth
// @Router /merchants/{merchantID}/cancel-deletion [post]
func (h *merchantHandler) cancelDeletion(c *gin.Context) {
	h.runOverride(c, h.merchantService.CancelMerchantDeletion, "cancel deletion")
}

// runOverride shares the request plumbing of the three status override endpoints.
func (h *merchantHandler) runOverride(c *gin.Context, op func(ctx context.Context, merchantID, actorUserID string) error, name string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	merchantID := c.Param("merchantID")

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := op(c.Request.Context(), merchantID, actorUserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchant not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to "+name, slog.String("merchant_id", merchantID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + name})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
