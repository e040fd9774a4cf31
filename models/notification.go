// Package models File: models/notification.go
package models

import "time"

// ----------------------- audience -----------------------

// Audience tags a notification for one side of the portal. The admin panel
// reads admin-tagged items; every other page reads artist-tagged items.
type Audience string

const (
	AudienceAdmin  Audience = "admin"
	AudienceArtist Audience = "artist"
)

// ----------------------- notification model -----------------------

// Notification is an inbox entry. Notifications are only ever appended and
// marked read, never deleted.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Audience  Audience  `json:"audience"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
