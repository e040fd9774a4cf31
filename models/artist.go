// Package models File: models/artist.go
package models

// Artist is a roster entry shown on the artist profile page and the admin
// CRM tab. Read-only display data; not part of the mutable collections.
type Artist struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	LegalName        string `json:"legalName"`
	Photo            string `json:"photo"`
	Country          string `json:"country"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Facebook         string `json:"facebook,omitempty"`
	Instagram        string `json:"instagram,omitempty"`
	Streams          string `json:"streams"`
	MonthlyListeners string `json:"monthlyListeners"`
	ReleasesCount    int    `json:"releasesCount"`
}
