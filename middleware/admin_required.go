// Package middleware checks if the logged-in user holds the master role.
// file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"stream-music-portal/logger"
	"stream-music-portal/models"
)

// AdminRequired is a middleware that checks if the user is a master admin.
// Non-admins are not shown an error page; they are sent back to their own
// dashboard, exactly like every other attempt to reach the master panel.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		role, ok := session.Get("role").(string)

		logger.Debug.Printf("AdminRequired Middleware - role=%q, ok=%v", role, ok)

		if !ok || role != string(models.RoleAdmin) {
			logger.Warn.Println("AdminRequired Middleware - Unauthorized attempt blocked")
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}

		logger.Debug.Println("AdminRequired Middleware - Passed, continuing request")
		c.Next()
	}
}
