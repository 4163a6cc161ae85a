// internal/interfaces/http/handlers/notifications.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/config"
)

// NotificationHandler exposes the session's transient notification
type NotificationHandler struct {
	registry *Registry
	config   *config.Config
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(registry *Registry, cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{
		registry: registry,
		config:   cfg,
	}
}

// GetCurrent handles GET /notifications/current
func (h *NotificationHandler) GetCurrent(c *gin.Context) {
	sc, _ := h.registry.Resolve(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Current notification",
		"data": gin.H{
			"notification": sc.Notifier.Current(),
		},
	})
}

// Dismiss handles DELETE /notifications/current
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	sc, _ := h.registry.Resolve(c)
	sc.Notifier.Dismiss()

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification dismissed",
	})
}
