// Package middleware provides request filters and security checks for the portal.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"stream-music-portal/logger"
)

// -------------- authentication middleware --------------

// AuthRequired is a middleware that ensures the user is logged in.
// How it works:
// - Retrieves the session from the request context.
// - Checks if the "userID" session variable is set.
// - If no user is found, redirects to "/login" and aborts execution.
// - Otherwise, the request proceeds.
// Usage:
//
//	router.Use(AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("userID")

	// block request if user session is missing
	if userID == nil {
		logger.Warn.Printf("AuthRequired: No user found in session for %s", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	logger.Debug.Println("[AuthRequired] User authenticated - proceeding with request")
	c.Next()
}
