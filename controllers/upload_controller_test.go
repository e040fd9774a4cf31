// controllers/upload_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"stream-music-portal/services"
)

// newUploadTestStack wires a real catalog behind the wizard endpoints.
func newUploadTestStack() (*UploadController, *services.CatalogService, *services.NotificationService) {
	notifications := services.NewNotificationService(nil, nil)
	catalog := services.NewCatalogService(nil, notifications)
	uc := NewUploadController(catalog, services.MockArtistSearcher{})
	return uc, catalog, notifications
}

func uploadRouter(t *testing.T) (*UploadController, *services.CatalogService, http.Handler, []*http.Cookie) {
	t.Helper()
	router := setupTestRouter(t)
	uc, catalog, _ := newUploadTestStack()

	notifications := services.NewNotificationService(nil, nil)
	pc := NewPageController(catalog,
		services.NewPayoutService(nil, notifications),
		services.NewTicketService(nil, notifications),
		notifications, nil, services.NewPresenceService())

	router.GET("/upload", uc.Page(pc))
	router.POST("/upload/metadata", uc.SaveMetadata)
	router.POST("/upload/assets", uc.StageAssets)
	router.POST("/upload/plan", uc.ChoosePlan)
	router.POST("/upload/back", uc.Back)
	router.POST("/upload/submit", uc.Submit)
	router.GET("/upload/artists/search", uc.SearchArtists)

	cookies := loginSession(t, router, "user-1", "MM Star", "artist")
	return uc, catalog, router, cookies
}

func TestUploadFlow_HappyPath(t *testing.T) {
	uc, catalog, router, cookies := uploadRouter(t)

	// step 1: metadata
	w := postForm(router, "/upload/metadata", url.Values{
		"title":          {"Nova Música"},
		"primaryArtists": {"MM Star"},
		"releaseType":    {"Single"},
	}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	cookies = mergeCookies(cookies, w)

	// step 2: stage both assets and advance
	w = postForm(router, "/upload/assets", url.Values{
		"cover":   {"capa.jpg"},
		"audio":   {"master.wav"},
		"advance": {"true"},
	}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	cookies = mergeCookies(cookies, w)

	// step 3: pick a plan
	w = postForm(router, "/upload/plan", url.Values{"plan": {"single"}}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	cookies = mergeCookies(cookies, w)

	// step 4: accept terms and submit
	w = postForm(router, "/upload/submit", url.Values{
		"proof": {"comprovativo.pdf"},
		"terms": {"on"},
	}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)

	assert.Len(t, uc.wizards, 1, "all four steps drive the same wizard")

	releases := catalog.Releases()
	assert.Len(t, releases, 1)
	assert.Equal(t, "Nova Música", releases[0].Title)
	assert.Equal(t, "MM Star", releases[0].Artist)
}

func TestUploadFlow_CannotSkipAssets(t *testing.T) {
	uc, catalog, router, cookies := uploadRouter(t)

	w := postForm(router, "/upload/metadata", url.Values{"title": {"X"}}, cookies)
	cookies = mergeCookies(cookies, w)

	// try to advance without staging anything
	w = postForm(router, "/upload/assets", url.Values{"advance": {"true"}}, cookies)
	cookies = mergeCookies(cookies, w)

	// the plan step should not accept a selection yet; submit must fail too
	w = postForm(router, "/upload/plan", url.Values{"plan": {"single"}}, cookies)
	cookies = mergeCookies(cookies, w)
	postForm(router, "/upload/submit", url.Values{"terms": {"on"}}, cookies)

	assert.Len(t, uc.wizards, 1, "every step reuses the session's wizard")
	assert.Empty(t, catalog.Releases(), "nothing reaches the catalog when steps are skipped")
}

func TestUploadFlow_SubmitWithoutTerms(t *testing.T) {
	_, catalog, router, cookies := uploadRouter(t)

	w := postForm(router, "/upload/metadata", url.Values{"title": {"X"}}, cookies)
	cookies = mergeCookies(cookies, w)
	w = postForm(router, "/upload/assets", url.Values{
		"cover": {"c.jpg"}, "audio": {"a.wav"}, "advance": {"true"},
	}, cookies)
	cookies = mergeCookies(cookies, w)
	w = postForm(router, "/upload/plan", url.Values{"plan": {"album"}}, cookies)
	cookies = mergeCookies(cookies, w)

	postForm(router, "/upload/submit", url.Values{}, cookies)

	assert.Empty(t, catalog.Releases(), "unticked terms block the submit")
}

// TestLogout_DiscardsSessionWizard pins the cleanup: a half-finished wizard
// does not outlive its session.
func TestLogout_DiscardsSessionWizard(t *testing.T) {
	router := setupTestRouter(t)
	uc, _, _ := newUploadTestStack()
	ac := NewAuthController(
		services.NewAuthService(services.DemoCredentialVerifier{}),
		services.NewNotificationService(nil, nil),
		services.NewPresenceService(),
		uc)
	router.POST("/upload/metadata", uc.SaveMetadata)
	router.GET("/logout", ac.Logout)

	cookies := loginSession(t, router, "user-1", "MM Star", "artist")
	w := postForm(router, "/upload/metadata", url.Values{"title": {"X"}}, cookies)
	cookies = mergeCookies(cookies, w)
	assert.Len(t, uc.wizards, 1)

	req, _ := http.NewRequest("GET", "/logout", nil)
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, withCookies(req, cookies))

	assert.Equal(t, http.StatusFound, lw.Code)
	assert.Empty(t, uc.wizards, "logout drops the abandoned wizard")
}

func TestUploadPage_RendersCurrentStep(t *testing.T) {
	_, _, router, cookies := uploadRouter(t)

	req, _ := http.NewRequest("GET", "/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, withCookies(req, cookies))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Upload step 1")
}

func TestSearchArtists_ReturnsVariantsPlusNewProfile(t *testing.T) {
	_, _, router, cookies := uploadRouter(t)

	req, _ := http.NewRequest("GET", "/upload/artists/search?q=Gerilson", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, withCookies(req, cookies))

	assert.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Results []services.ArtistProfile `json:"results"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Len(t, payload.Results, 4, "three store variants plus the new-profile entry")
	assert.True(t, payload.Results[3].IsNew)
}
