// Package controllers file: controllers/notification_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"stream-music-portal/logger"
	"stream-music-portal/services"
)

// NotificationController serves the inbox dropdown. The audience shown
// follows the active page: the master panel reads the admin inbox, every
// other page reads the artist inbox.
type NotificationController struct {
	Notifications services.NotificationServiceInterface
}

// NewNotificationController creates an instance of NotificationController.
func NewNotificationController(notifications services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// Inbox returns the active audience's notifications, most recent first.
func (nc *NotificationController) Inbox(c *gin.Context) {
	audience := services.AudienceForPage(activePage(c))
	c.JSON(http.StatusOK, gin.H{
		"audience":      string(audience),
		"notifications": nc.Notifications.ListByAudience(audience),
		"unread":        nc.Notifications.UnreadCount(audience),
	})
}

// MarkRead marks the active audience's whole inbox as read, mirroring the
// dropdown's open action.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	audience := services.AudienceForPage(activePage(c))
	nc.Notifications.MarkAudienceRead(audience)
	logger.Debug.Printf("MarkRead: %s inbox cleared", audience)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// activePage reads the session's active page, defaulting to the dashboard.
func activePage(c *gin.Context) string {
	session := sessions.Default(c)
	if page, ok := session.Get("activePage").(string); ok && page != "" {
		return page
	}
	return services.DefaultPage
}
