// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// setupTestRouter creates a new Gin engine with session middleware and fake
// HTML templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes minimal HTML templates so renders do not panic.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"nav.html":       `{{define "nav"}}nav{{end}}{{define "toasts"}}toasts{{end}}`,
		"login.html":     `<html><body>{{.Error}}</body></html>`,
		"signup.html":    `<html><body>{{.Error}}</body></html>`,
		"dashboard.html": `<html><body>Dashboard {{.PageTitle}}</body></html>`,
		"upload.html":    `<html><body>Upload step {{.Step}}</body></html>`,
		"catalog.html":   `<html><body>Catalog {{len .Releases}}</body></html>`,
		"royalties.html": `<html><body>Royalties</body></html>`,
		"support.html":   `<html><body>Support</body></html>`,
		"settings.html":  `<html><body>Settings</body></html>`,
		"artists.html":   `<html><body>Artists</body></html>`,
		"analytics.html": `<html><body>Analytics</body></html>`,
		"labels.html":    `<html><body>Labels</body></html>`,
		"admin.html":     `<html><body>Admin {{.Tab}}</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// loginSession primes a session via a throwaway route and returns the cookies
// to attach to subsequent requests.
func loginSession(t *testing.T, router *gin.Engine, userID, artistName, role string) []*http.Cookie {
	t.Helper()

	router.GET("/test/prime-session", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("userID", userID)
		session.Set("artistName", artistName)
		session.Set("role", role)
		session.Set("activePage", "dashboard")
		if err := session.Save(); err != nil {
			t.Fatalf("failed to save test session: %v", err)
		}
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("GET", "/test/prime-session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result().Cookies()
}

// withCookies attaches session cookies to a request.
func withCookies(req *http.Request, cookies []*http.Cookie) *http.Request {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// mergeCookies folds a response's Set-Cookie headers into the jar, replacing
// same-named cookies. Session writes mid-flow re-issue the cookie, so every
// step's response has to feed the next request.
func mergeCookies(cookies []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	for _, fresh := range w.Result().Cookies() {
		replaced := false
		for i, existing := range cookies {
			if existing.Name == fresh.Name {
				cookies[i] = fresh
				replaced = true
				break
			}
		}
		if !replaced {
			cookies = append(cookies, fresh)
		}
	}
	return cookies
}
