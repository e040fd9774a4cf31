// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"stream-music-portal/logger"
	"stream-music-portal/models"
	"stream-music-portal/services"
)

var (
	ApplicationURL string
	WebsocketURL   string
)

// SetConfig installs the externally visible URLs the templates embed.
func SetConfig(applicationURL, websocketURL string) {
	ApplicationURL = applicationURL
	WebsocketURL = websocketURL
}

// PageController renders the authenticated shell pages.
type PageController struct {
	Catalog       services.CatalogServiceInterface
	Payouts       services.PayoutServiceInterface
	Tickets       services.TicketServiceInterface
	Notifications services.NotificationServiceInterface
	Artists       []models.Artist
	Presence      *services.PresenceService
}

// NewPageController creates an instance of PageController.
func NewPageController(
	catalog services.CatalogServiceInterface,
	payouts services.PayoutServiceInterface,
	tickets services.TicketServiceInterface,
	notifications services.NotificationServiceInterface,
	artists []models.Artist,
	presence *services.PresenceService,
) *PageController {
	return &PageController{
		Catalog:       catalog,
		Payouts:       payouts,
		Tickets:       tickets,
		Notifications: notifications,
		Artists:       artists,
		Presence:      presence,
	}
}

// Health reports liveness.
func Health(c *gin.Context) {
	logger.Info.Println("Health: Health check requested")
	c.String(http.StatusOK, "OK")
}

// Heartbeat records activity for the logged-in user so the master panel's
// online counter stays fresh.
func (pc *PageController) Heartbeat(c *gin.Context) {
	session := sessions.Default(c)
	if userID, ok := session.Get("userID").(string); ok {
		pc.Presence.Touch(userID)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sessionRole reads the role back out of the session.
func sessionRole(c *gin.Context) models.Role {
	session := sessions.Default(c)
	if role, ok := session.Get("role").(string); ok {
		return models.Role(role)
	}
	return models.RoleArtist
}

// renderPage is the single navigation transition for the shell: it resolves
// the requested page against the session role, records it as the active page
// and renders the template with the shared chrome data. Every transition goes
// through the same guard, so deep links to the master panel fall back to the
// dashboard like any other attempt.
func (pc *PageController) renderPage(c *gin.Context, page string, data gin.H) {
	session := sessions.Default(c)
	role := sessionRole(c)

	resolved := services.ResolvePage(page, role)
	if resolved != page {
		logger.Warn.Printf("renderPage: %q not allowed for role %s; redirecting to /%s", page, role, resolved)
		c.Redirect(http.StatusFound, "/"+resolved)
		return
	}

	session.Set("activePage", resolved)
	if err := session.Save(); err != nil {
		logger.Error.Printf("renderPage: failed to save active page: %v", err)
	}

	if userID, ok := session.Get("userID").(string); ok {
		pc.Presence.Touch(userID)
	}

	audience := services.AudienceForPage(resolved)
	if data == nil {
		data = gin.H{}
	}
	data["WebsocketURL"] = WebsocketURL
	data["ActivePage"] = resolved
	data["PageTitle"] = services.PageTitle(resolved)
	data["ArtistName"] = session.Get("artistName")
	data["Role"] = string(role)
	data["Navigation"] = services.NavigationItems(role)
	data["UnreadCount"] = pc.Notifications.UnreadCount(audience)

	c.HTML(http.StatusOK, resolved+".html", data)
}

// ShowDashboard renders the landing page with the catalog summary cards.
func (pc *PageController) ShowDashboard(c *gin.Context) {
	releases := pc.Catalog.Releases()

	var distributed, pending int
	var revenue float64
	for _, r := range releases {
		switch {
		case r.Status == models.StatusDistributed:
			distributed++
		case r.Pending():
			pending++
		}
		revenue += r.Revenue
	}

	pc.renderPage(c, "dashboard", gin.H{
		"Releases":    releases,
		"Distributed": distributed,
		"Pending":     pending,
		"Revenue":     revenue,
	})
}

// ShowCatalog renders the release list with optional text filtering.
func (pc *PageController) ShowCatalog(c *gin.Context) {
	term := c.Query("q")
	var releases []models.Release
	if term != "" {
		releases = pc.Catalog.SearchReleases(term)
	} else {
		releases = pc.Catalog.Releases()
	}
	pc.renderPage(c, "catalog", gin.H{
		"Releases": releases,
		"Query":    term,
	})
}

// ExportCatalog streams the catalog as a CSV download.
func (pc *PageController) ExportCatalog(c *gin.Context) {
	logger.Info.Println("ExportCatalog: exporting catalog as CSV")
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="meu_catalogo_stream_music.csv"`)
	if err := pc.Catalog.ExportCSV(c.Writer); err != nil {
		logger.Error.Printf("ExportCatalog: export failed: %v", err)
		c.String(http.StatusInternalServerError, "export failed")
	}
}

// ShowRoyalties renders the financial page with the payout history.
func (pc *PageController) ShowRoyalties(c *gin.Context) {
	payouts := pc.Payouts.Payouts()

	var available float64
	for _, r := range pc.Catalog.Releases() {
		available += r.Revenue
	}
	for _, p := range payouts {
		if p.Status != models.PayoutCancelled {
			available -= p.Amount
		}
	}
	if available < 0 {
		available = 0
	}

	pc.renderPage(c, "royalties", gin.H{
		"Payouts":   payouts,
		"Methods":   pc.Payouts.Methods(),
		"Available": available,
	})
}

// ShowSupport renders the help desk page with the ticket history.
func (pc *PageController) ShowSupport(c *gin.Context) {
	pc.renderPage(c, "support", gin.H{
		"Tickets":         pc.Tickets.Tickets(),
		"SupportWhatsApp": services.DefaultSupportNumber,
	})
}

// ShowSettings renders the account settings page.
func (pc *PageController) ShowSettings(c *gin.Context) {
	pc.renderPage(c, "settings", nil)
}

// ShowArtists renders the artist roster.
func (pc *PageController) ShowArtists(c *gin.Context) {
	pc.renderPage(c, "artists", gin.H{"Artists": pc.Artists})
}

// ShowAnalytics renders the reports placeholder.
func (pc *PageController) ShowAnalytics(c *gin.Context) {
	pc.renderPage(c, "analytics", nil)
}

// ShowLabels renders the labels placeholder.
func (pc *PageController) ShowLabels(c *gin.Context) {
	pc.renderPage(c, "labels", nil)
}
