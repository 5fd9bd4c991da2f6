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

// notificationHandler handles HTTP requests for derived notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:notificationID/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Regenerates and returns the current notification list from merchant, balance and conversation state.
// @Tags notifications
// @Produce json
// @Success 200 {array} dto.NotificationResponse
// @Failure 500 {object} map[string]string "Failed to list notifications"
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	notifications, err := h.notificationService.ListNotifications(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list notifications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListNotificationResponse(notifications))
}

// markRead godoc
// @Summary Mark a notification as read
// @Description Flags a notification from the most recently fetched list as read.
// @Tags notifications
// @Produce json
// @Param notificationID path string true "Notification ID"
// @Success 204 "Marked"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Failed to mark notification"
// @Security BearerAuth
// @Router /notifications/{notificationID}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("notificationID")

	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), notificationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		logger.Error("Failed to mark notification read", slog.String("notification_id", notificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification"})
		return
	}
	c.Status(http.StatusNoContent)
}
