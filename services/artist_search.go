// Package services: services/artist_search.go
package services

import (
	"fmt"

	"github.com/google/uuid"
)

// ArtistProfile is one result of the store-profile lookup used by the upload
// wizard's artist pickers.
type ArtistProfile struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	Followers string `json:"followers"`
	Img       string `json:"img"`
	IsNew     bool   `json:"isNew,omitempty"`
}

// ArtistSearcher resolves a free-text query to store profiles. The real
// store API is an external collaborator; the mock searcher below fabricates
// plausible matches like the original portal.
type ArtistSearcher interface {
	Search(query string) []ArtistProfile
}

// MockArtistSearcher fabricates three profile candidates for any query of
// two or more characters.
type MockArtistSearcher struct{}

var _ ArtistSearcher = MockArtistSearcher{}

// Search implements ArtistSearcher.
func (MockArtistSearcher) Search(query string) []ArtistProfile {
	if len(query) < 2 {
		return nil
	}
	variants := []struct {
		suffix    string
		followers string
	}{
		{"", "412.3K"},
		{" Official", "38.1K"},
		{" Beats", "7.4K"},
	}
	var out []ArtistProfile
	for _, v := range variants {
		name := query + v.suffix
		out = append(out, ArtistProfile{
			Name:      name,
			ID:        "sp-" + uuid.NewString()[:8],
			Followers: v.followers,
			Img:       fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", name),
		})
	}
	return out
}

// NewArtistProfile stages a brand-new profile for a name that has no store
// presence yet.
func NewArtistProfile(name string) ArtistProfile {
	return ArtistProfile{
		Name:  name,
		ID:    "new",
		Img:   fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", name),
		IsNew: true,
	}
}
