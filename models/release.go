// Package models File: models/release.go
package models

// ----------------------- release status -----------------------

// ReleaseStatus is the moderation state of a release. Status labels are the
// Portuguese strings the portal displays; they are also the wire values.
type ReleaseStatus string

const (
	StatusInReview        ReleaseStatus = "Em análise"
	StatusApproved        ReleaseStatus = "Aprovado"
	StatusDistributed     ReleaseStatus = "Distribuído"
	StatusRejected        ReleaseStatus = "Rejeitado"
	StatusNeedsCorrection ReleaseStatus = "Correção Necessária"
)

// ReleaseType is the format of a release.
type ReleaseType string

const (
	TypeSingle ReleaseType = "Single"
	TypeAlbum  ReleaseType = "Album"
	TypeEP     ReleaseType = "EP"
)

// ----------------------- release model -----------------------

// Release is one catalog entry. Releases are created by the upload wizard in
// StatusInReview and only ever change status through the admin moderation
// actions; they are never deleted.
type Release struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Artist      string        `json:"artist"`
	Cover       string        `json:"cover"`
	Type        ReleaseType   `json:"type"`
	Status      ReleaseStatus `json:"status"`
	ReleaseDate string        `json:"releaseDate"` // YYYY-MM-DD
	UPC         string        `json:"upc"`
	ISRC        string        `json:"isrc,omitempty"`
	Genre       string        `json:"genre"`
	Platforms   []string      `json:"platforms"`
	Revenue     float64       `json:"revenue"`
}

// Pending reports whether the release still needs a moderation decision.
func (r Release) Pending() bool {
	return r.Status == StatusInReview || r.Status == StatusNeedsCorrection
}
