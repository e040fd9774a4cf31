// Package controllers file: controllers/support_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"stream-music-portal/logger"
	"stream-music-portal/models"
	"stream-music-portal/services"
)

// SupportController handles the help desk: ticket creation and the WhatsApp
// escape hatch.
type SupportController struct {
	Tickets services.TicketServiceInterface
}

// NewSupportController creates an instance of SupportController.
func NewSupportController(tickets services.TicketServiceInterface) *SupportController {
	return &SupportController{Tickets: tickets}
}

// CreateTicket opens a new support ticket for the logged-in artist.
func (sc *SupportController) CreateTicket(c *gin.Context) {
	session := sessions.Default(c)
	user, _ := session.Get("artistName").(string)

	subject := c.PostForm("subject")
	priority := models.TicketPriority(c.PostForm("priority"))
	phone := c.PostForm("phone")

	if _, err := sc.Tickets.Open(subject, priority, user, phone); err != nil {
		logger.Warn.Printf("CreateTicket: rejected: %v", err)
	}
	c.Redirect(http.StatusFound, "/support")
}

// WhatsAppRedirect sends the browser to the wa.me deep link for the given
// phone, falling back to the support desk number.
func (sc *SupportController) WhatsAppRedirect(c *gin.Context) {
	phone := c.Query("phone")
	link := services.WhatsAppLink(phone)
	logger.Info.Printf("WhatsAppRedirect: redirecting to %s", link)
	c.Redirect(http.StatusFound, link)
}

// WhatsAppQRCode renders the wa.me deep link as a PNG QR code so the desk
// number can be scanned from another device.
func (sc *SupportController) WhatsAppQRCode(c *gin.Context) {
	logger.Info.Println("WhatsAppQRCode: generating QR code")

	png, err := services.GenerateWhatsAppQRCode(c.Query("phone"), 300, services.QRCodeEncoder(qrcode.Encode))
	if err != nil {
		logger.Error.Printf("WhatsAppQRCode: error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
