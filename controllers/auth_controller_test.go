// controllers/auth_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stream-music-portal/services"
)

func newAuthTestController() *AuthController {
	notifications := services.NewNotificationService(nil, nil)
	auth := services.NewAuthService(services.DemoCredentialVerifier{})
	presence := services.NewPresenceService()
	return NewAuthController(auth, notifications, presence, nil)
}

func postForm(router http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPerformLogin_AdminNumber(t *testing.T) {
	router := setupTestRouter(t)
	ac := newAuthTestController()
	router.POST("/login", ac.PerformLogin)

	w := postForm(router, "/login", url.Values{
		"identifier": {"957729023"},
		"password":   {""},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestPerformLogin_ArtistWithValidPassword(t *testing.T) {
	router := setupTestRouter(t)
	ac := newAuthTestController()
	router.POST("/login", ac.PerformLogin)

	w := postForm(router, "/login", url.Values{
		"identifier": {"923000111"},
		"password":   {"1234"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestPerformLogin_RejectedStaysOnForm(t *testing.T) {
	router := setupTestRouter(t)
	ac := newAuthTestController()
	router.POST("/login", ac.PerformLogin)

	w := postForm(router, "/login", url.Values{
		"identifier": {"923000111"},
		"password":   {"12"},
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Credenciais inválidas")
	assert.Empty(t, w.Header().Get("Location"), "failed logins never redirect")
}

func TestPerformLogin_ArtistGetsWelcomeNotification(t *testing.T) {
	router := setupTestRouter(t)
	notifications := services.NewNotificationService(nil, nil)
	ac := NewAuthController(services.NewAuthService(services.DemoCredentialVerifier{}), notifications, services.NewPresenceService(), nil)
	router.POST("/login", ac.PerformLogin)

	postForm(router, "/login", url.Values{
		"identifier": {"923000111"},
		"password":   {"1234"},
	}, nil)

	assert.Equal(t, 1, notifications.Len(), "artist login emits one welcome notification")
}

func TestPerformLogin_AdminGetsNoWelcomeNotification(t *testing.T) {
	router := setupTestRouter(t)
	notifications := services.NewNotificationService(nil, nil)
	ac := NewAuthController(services.NewAuthService(services.DemoCredentialVerifier{}), notifications, services.NewPresenceService(), nil)
	router.POST("/login", ac.PerformLogin)

	postForm(router, "/login", url.Values{
		"identifier": {"957729023"},
		"password":   {""},
	}, nil)

	assert.Equal(t, 0, notifications.Len())
}

func TestPerformSignUp_CreatesAccountAndLogsIn(t *testing.T) {
	router := setupTestRouter(t)
	ac := newAuthTestController()
	router.POST("/signup", ac.PerformSignUp)

	w := postForm(router, "/signup", url.Values{
		"fullName":        {"Maria Manuel"},
		"artistName":      {"MM Star"},
		"phone":           {"911222333"},
		"password":        {"segredo9"},
		"confirmPassword": {"segredo9"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestPerformSignUp_MismatchShowsInlineError(t *testing.T) {
	router := setupTestRouter(t)
	ac := newAuthTestController()
	router.POST("/signup", ac.PerformSignUp)

	w := postForm(router, "/signup", url.Values{
		"fullName":        {"Maria Manuel"},
		"artistName":      {"MM Star"},
		"phone":           {"911222333"},
		"password":        {"um"},
		"confirmPassword": {"dois"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "As senhas não coincidem")
}

func TestLogout_ClearsSessionAndRedirects(t *testing.T) {
	router := setupTestRouter(t)
	ac := newAuthTestController()
	router.GET("/logout", ac.Logout)

	cookies := loginSession(t, router, "user-1", "MM Star", "artist")

	req, _ := http.NewRequest("GET", "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, withCookies(req, cookies))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
