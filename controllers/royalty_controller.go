// Package controllers file: controllers/royalty_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"stream-music-portal/logger"
	"stream-music-portal/services"
)

// RoyaltyController handles artist-side payout requests.
type RoyaltyController struct {
	Payouts services.PayoutServiceInterface
}

// NewRoyaltyController creates an instance of RoyaltyController.
func NewRoyaltyController(payouts services.PayoutServiceInterface) *RoyaltyController {
	return &RoyaltyController{Payouts: payouts}
}

// RequestPayout registers a pending withdrawal for the logged-in artist.
func (rc *RoyaltyController) RequestPayout(c *gin.Context) {
	session := sessions.Default(c)
	artist, _ := session.Get("artistName").(string)

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		logger.Warn.Printf("RequestPayout: invalid amount %q", c.PostForm("amount"))
		c.Redirect(http.StatusFound, "/royalties")
		return
	}
	method := c.PostForm("method")

	if _, err := rc.Payouts.Request(artist, amount, method); err != nil {
		logger.Warn.Printf("RequestPayout: rejected: %v", err)
	}
	c.Redirect(http.StatusFound, "/royalties")
}

// AddPayoutMethod saves a new withdrawal method for the artist.
func (rc *RoyaltyController) AddPayoutMethod(c *gin.Context) {
	label := c.PostForm("label")
	if err := rc.Payouts.AddMethod(label); err != nil {
		logger.Warn.Printf("AddPayoutMethod: rejected: %v", err)
	}
	c.Redirect(http.StatusFound, "/royalties")
}
