//go:build unit
// +build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAdminTestRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.GET("/test/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("userID", "user-1")
		session.Set("role", role)
		_ = session.Save()
		c.String(http.StatusOK, "ok")
	})

	admin := router.Group("/admin", AdminRequired())
	admin.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "master panel")
	})

	return router
}

func adminRequestWithRole(t *testing.T, role string) *httptest.ResponseRecorder {
	t.Helper()
	router := setupAdminTestRouter(role)

	loginReq, _ := http.NewRequest("GET", "/test/login", nil)
	loginW := httptest.NewRecorder()
	router.ServeHTTP(loginW, loginReq)

	req, _ := http.NewRequest("GET", "/admin", nil)
	for _, c := range loginW.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestAdminRequired_AllowsAdmin ensures the master role reaches the panel
func TestAdminRequired_AllowsAdmin(t *testing.T) {
	w := adminRequestWithRole(t, "admin")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "master panel")
}

// TestAdminRequired_RedirectsArtist ensures non-admins land on their dashboard
func TestAdminRequired_RedirectsArtist(t *testing.T) {
	w := adminRequestWithRole(t, "artist")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"), "no error page, just the dashboard")
}

// TestAdminRequired_RedirectsMissingRole covers sessions with no role at all
func TestAdminRequired_RedirectsMissingRole(t *testing.T) {
	router := setupAdminTestRouter("admin")

	req, _ := http.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}
