// main_test.go
package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"stream-music-portal/controllers"
	"stream-music-portal/middleware"
)

// setupTestTemplates creates a temporary templates directory with a dummy file.
func setupTestTemplates(t *testing.T) string {
	tempDir := t.TempDir()

	dummyFile := filepath.Join(tempDir, "dummy.html")
	content := []byte("<html><body>Dummy Template</body></html>")
	if err := os.WriteFile(dummyFile, content, 0644); err != nil {
		t.Fatalf("Failed to write dummy template: %v", err)
	}
	return tempDir
}

// TestHealthEndpoint tests the /health endpoint.
func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	templatesDir := setupTestTemplates(t)
	router := gin.Default()

	router.LoadHTMLGlob(filepath.Join(templatesDir, "*.html"))
	router.GET("/health", controllers.Health)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /health, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Fatalf("Unexpected /health body: %q", w.Body.String())
	}
}

// TestProtectedRoutesRedirectAnonymous ensures the auth gate fronts the shell.
func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	templatesDir := setupTestTemplates(t)
	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))
	router.LoadHTMLGlob(filepath.Join(templatesDir, "*.html"))

	protected := router.Group("/", middleware.AuthRequired)
	protected.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	req, _ := http.NewRequest("GET", "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected redirect for anonymous request, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("Expected redirect to /login, got %q", loc)
	}
}
