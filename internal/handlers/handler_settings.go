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

// settingsHandler handles HTTP requests for the singleton settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("/financial", h.getFinancialSettings)
		settings.PUT("/financial", h.updateFinancialSettings)
		settings.GET("/notifications", h.getNotificationSettings)
		settings.PUT("/notifications", h.updateNotificationSettings)
	}
}

// getFinancialSettings godoc
// @Summary Get financial settings
// @Description Retrieves the aging thresholds driving merchant status.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.FinancialSettingsResponse
// @Failure 500 {object} map[string]string "Failed to retrieve settings"
// @Security BearerAuth
// @Router /settings/financial [get]
func (h *settingsHandler) getFinancialSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetFinancialSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get financial settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialSettingsResponse(*settings))
}

// updateFinancialSettings godoc
// @Summary Update financial settings
// @Description Replaces the aging thresholds and recomputes every merchant's status.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateFinancialSettingsRequest true "New thresholds"
// @Success 200 {object} dto.FinancialSettingsResponse
// @Failure 400 {object} map[string]string "Invalid thresholds"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Security BearerAuth
// @Router /settings/financial [put]
func (h *settingsHandler) updateFinancialSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateFinancialSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateFinancialSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.settingsService.UpdateFinancialSettings(c.Request.Context(), req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update financial settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialSettingsResponse(*settings))
}

// getNotificationSettings godoc
// @Summary Get notification settings
// @Description Retrieves the per-class notification toggles.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.NotificationSettingsResponse
// @Failure 500 {object} map[string]string "Failed to retrieve settings"
// @Security BearerAuth
// @Router /settings/notifications [get]
func (h *settingsHandler) getNotificationSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetNotificationSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get notification settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationSettingsResponse(*settings))
}

// updateNotificationSettings godoc
// @Summary Update notification settings
// @Description Applies the provided toggle changes; omitted fields are left unchanged.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateNotificationSettingsRequest true "Toggle changes"
// @Success 200 {object} dto.NotificationSettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Security BearerAuth
// @Router /settings/notifications [put]
func (h *settingsHandler) updateNotificationSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateNotificationSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.settingsService.UpdateNotificationSettings(c.Request.Context(), req, actorUserID)
	if err != nil {
		logger.Error("Failed to update notification settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationSettingsResponse(*settings))
}
