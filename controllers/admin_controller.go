// Package controllers file: controllers/admin_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stream-music-portal/logger"
	"stream-music-portal/models"
	"stream-music-portal/services"
)

// AdminController drives the master panel: moderation queue, payout
// processing, support queue and the artist CRM tab.
type AdminController struct {
	Catalog       services.CatalogServiceInterface
	Payouts       services.PayoutServiceInterface
	Tickets       services.TicketServiceInterface
	Notifications services.NotificationServiceInterface
	Artists       []models.Artist
	Presence      *services.PresenceService
	Page          *PageController
}

// NewAdminController creates an instance of AdminController.
func NewAdminController(
	catalog services.CatalogServiceInterface,
	payouts services.PayoutServiceInterface,
	tickets services.TicketServiceInterface,
	notifications services.NotificationServiceInterface,
	artists []models.Artist,
	presence *services.PresenceService,
	page *PageController,
) *AdminController {
	logger.Debug.Println("NewAdminController: Initializing AdminController")
	return &AdminController{
		Catalog:       catalog,
		Payouts:       payouts,
		Tickets:       tickets,
		Notifications: notifications,
		Artists:       artists,
		Presence:      presence,
		Page:          page,
	}
}

// AdminPanel renders the master panel with every queue on its tab.
func (ac *AdminController) AdminPanel(c *gin.Context) {
	tab := c.Query("tab")
	if tab == "" {
		tab = "moderation"
	}

	pendingPayouts := 0
	for _, p := range ac.Payouts.Payouts() {
		if p.Status == models.PayoutPending {
			pendingPayouts++
		}
	}

	ac.Page.renderPage(c, "admin", gin.H{
		"Tab":            tab,
		"PendingQueue":   ac.Catalog.PendingReleases(),
		"AllReleases":    ac.Catalog.Releases(),
		"Payouts":        ac.Payouts.Payouts(),
		"PendingPayouts": pendingPayouts,
		"OpenTickets":    ac.Tickets.OpenTickets(),
		"AllTickets":     ac.Tickets.Tickets(),
		"Artists":        ac.Artists,
		"ActiveArtists":  ac.Presence.ActiveCount(5 * time.Minute),
	})
}

// ApproveRelease moves a pending release to distributed.
func (ac *AdminController) ApproveRelease(c *gin.Context) {
	id := c.PostForm("id")
	if _, err := ac.Catalog.Approve(id); err != nil {
		logger.Warn.Printf("ApproveRelease: %s: %v", id, err)
	}
	c.Redirect(http.StatusFound, "/admin?tab=moderation")
}

// RejectRelease moves a pending release to rejected.
func (ac *AdminController) RejectRelease(c *gin.Context) {
	id := c.PostForm("id")
	if _, err := ac.Catalog.Reject(id); err != nil {
		logger.Warn.Printf("RejectRelease: %s: %v", id, err)
	}
	c.Redirect(http.StatusFound, "/admin?tab=moderation")
}

// RequestCorrection flags an in-review release for metadata fixes.
func (ac *AdminController) RequestCorrection(c *gin.Context) {
	id := c.PostForm("id")
	if _, err := ac.Catalog.RequestCorrection(id); err != nil {
		logger.Warn.Printf("RequestCorrection: %s: %v", id, err)
	}
	c.Redirect(http.StatusFound, "/admin?tab=moderation")
}

// ProcessPayout completes a pending payout request.
func (ac *AdminController) ProcessPayout(c *gin.Context) {
	id := c.PostForm("id")
	if _, err := ac.Payouts.Process(id); err != nil {
		logger.Warn.Printf("ProcessPayout: %s: %v", id, err)
	}
	c.Redirect(http.StatusFound, "/admin?tab=finance")
}

// ReplyTicket posts an administrative reply onto a ticket.
func (ac *AdminController) ReplyTicket(c *gin.Context) {
	id := c.PostForm("id")
	reply := c.PostForm("reply")
	if _, err := ac.Tickets.Reply(id, reply); err != nil {
		logger.Warn.Printf("ReplyTicket: %s: %v", id, err)
	}
	c.Redirect(http.StatusFound, "/admin?tab=support")
}

// ResolveTicket closes a ticket.
func (ac *AdminController) ResolveTicket(c *gin.Context) {
	id := c.PostForm("id")
	if _, err := ac.Tickets.Resolve(id); err != nil {
		logger.Warn.Printf("ResolveTicket: %s: %v", id, err)
	}
	c.Redirect(http.StatusFound, "/admin?tab=support")
}
