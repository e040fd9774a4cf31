// Package services: services/catalog_service.go
package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"stream-music-portal/logger"
	"stream-music-portal/models"
)

var (
	// ErrReleaseNotFound is returned when no release matches the given id.
	ErrReleaseNotFound = errors.New("release not found")
	// ErrInvalidTransition is returned when a moderation action is not valid
	// for the release's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// fallbackCover is used when the upload flow stages no artwork.
const fallbackCover = "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?auto=format&fit=crop&q=80&w=400"

// ReleaseDraft is the upload wizard's output, everything the catalog needs
// to mint a new release.
type ReleaseDraft struct {
	Title       string
	Artist      string
	Cover       string
	Type        models.ReleaseType
	ReleaseDate string
	UPC         string
	ISRC        string
	Genre       string
	Platforms   []string
}

// CatalogServiceInterface owns the release collection and its moderation
// transitions.
type CatalogServiceInterface interface {
	Releases() []models.Release
	PendingReleases() []models.Release
	Submit(draft ReleaseDraft) (models.Release, error)
	Approve(id string) (models.Release, error)
	Reject(id string) (models.Release, error)
	RequestCorrection(id string) (models.Release, error)
	SearchReleases(term string) []models.Release
	ExportCSV(w io.Writer) error
}

// CatalogService is the in-memory release collection. Mutations go through
// whole-list replacement keyed by id; records are never deleted and order is
// preserved.
type CatalogService struct {
	mu       sync.Mutex
	releases []models.Release
	notifier Notifier
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService seeds the catalog and wires the notifier every mutation
// reports through.
func NewCatalogService(seed []models.Release, notifier Notifier) *CatalogService {
	return &CatalogService{
		releases: append([]models.Release{}, seed...),
		notifier: notifier,
	}
}

// Releases returns a copy of the whole catalog in collection order.
func (s *CatalogService) Releases() []models.Release {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Release{}, s.releases...)
}

// PendingReleases returns the moderation queue: everything still in review
// or flagged for correction.
func (s *CatalogService) PendingReleases() []models.Release {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Release
	for _, r := range s.releases {
		if r.Pending() {
			out = append(out, r)
		}
	}
	return out
}

// Submit appends a new release in review status. Missing title, artist,
// cover and UPC fall back to generated values, matching the upload flow.
// The artist audience is told moderation has started.
func (s *CatalogService) Submit(draft ReleaseDraft) (models.Release, error) {
	title := draft.Title
	if title == "" {
		title = "Sem Título"
	}
	artist := draft.Artist
	if artist == "" {
		artist = "Artista Desconhecido"
	}
	cover := draft.Cover
	if cover == "" {
		cover = fallbackCover
	}
	upc := draft.UPC
	if upc == "" {
		upc = generateUPC()
	}
	releaseDate := draft.ReleaseDate
	if releaseDate == "" {
		releaseDate = time.Now().Format("2006-01-02")
	}
	relType := draft.Type
	if relType == "" {
		relType = models.TypeSingle
	}

	release := models.Release{
		ID:          uuid.NewString(),
		Title:       title,
		Artist:      artist,
		Cover:       cover,
		Type:        relType,
		Status:      models.StatusInReview,
		ReleaseDate: releaseDate,
		UPC:         upc,
		ISRC:        draft.ISRC,
		Genre:       draft.Genre,
		Platforms:   append([]string{}, draft.Platforms...),
		Revenue:     0,
	}

	s.mu.Lock()
	s.releases = append([]models.Release{release}, s.releases...)
	s.mu.Unlock()

	logger.Info.Printf("Release %s (%q) submitted for moderation", release.ID, release.Title)
	s.notifier.Add("Lançamento Recebido",
		fmt.Sprintf("%q foi enviado para moderação técnica.", release.Title),
		models.AudienceArtist)
	return release, nil
}

// Approve moves a pending release to distributed and tells the artist.
func (s *CatalogService) Approve(id string) (models.Release, error) {
	release, err := s.transition(id, models.StatusDistributed, func(r models.Release) bool {
		return r.Pending()
	})
	if err != nil {
		return models.Release{}, err
	}
	s.notifier.Add("Aviso do Sistema",
		fmt.Sprintf("Seu lançamento %q foi aprovado e está sendo enviado para as lojas!", release.Title),
		models.AudienceArtist)
	return release, nil
}

// Reject moves a pending release to rejected and tells the artist.
func (s *CatalogService) Reject(id string) (models.Release, error) {
	release, err := s.transition(id, models.StatusRejected, func(r models.Release) bool {
		return r.Pending()
	})
	if err != nil {
		return models.Release{}, err
	}
	s.notifier.Add("Aviso do Sistema",
		fmt.Sprintf("Infelizmente seu lançamento %q foi rejeitado. Consulte seu e-mail para detalhes técnicos.", release.Title),
		models.AudienceArtist)
	return release, nil
}

// RequestCorrection flags an in-review release for metadata fixes.
func (s *CatalogService) RequestCorrection(id string) (models.Release, error) {
	release, err := s.transition(id, models.StatusNeedsCorrection, func(r models.Release) bool {
		return r.Status == models.StatusInReview
	})
	if err != nil {
		return models.Release{}, err
	}
	s.notifier.Add("Aviso do Sistema",
		fmt.Sprintf("Atenção: Seu lançamento %q requer correção nos metadados antes de prosseguir.", release.Title),
		models.AudienceArtist)
	return release, nil
}

// transition rebuilds the collection with the matching record's status
// replaced, leaving every other record and the overall order untouched.
// Invalid transitions mutate nothing and emit nothing.
func (s *CatalogService) transition(id string, to models.ReleaseStatus, allowed func(models.Release) bool) (models.Release, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated models.Release
	found := false
	next := make([]models.Release, len(s.releases))
	for i, r := range s.releases {
		if r.ID == id {
			if !allowed(r) {
				logger.Warn.Printf("Rejected transition of release %s from %s to %s", id, r.Status, to)
				return models.Release{}, ErrInvalidTransition
			}
			r.Status = to
			updated = r
			found = true
		}
		next[i] = r
	}
	if !found {
		return models.Release{}, ErrReleaseNotFound
	}
	s.releases = next
	logger.Info.Printf("Release %s moved to status %s", id, to)
	return updated, nil
}

// ExportCSV serializes the catalog, one row per release in collection order.
// The column order is part of the export contract.
func (s *CatalogService) ExportCSV(w io.Writer) error {
	s.mu.Lock()
	releases := append([]models.Release{}, s.releases...)
	s.mu.Unlock()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Titulo", "Artista", "Status", "Data", "UPC"}); err != nil {
		return err
	}
	for _, r := range releases {
		row := []string{r.ID, r.Title, r.Artist, string(r.Status), r.ReleaseDate, r.UPC}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SearchReleases filters by title, artist or UPC, case-insensitive on the
// text fields.
func (s *CatalogService) SearchReleases(term string) []models.Release {
	s.mu.Lock()
	defer s.mu.Unlock()

	if term == "" {
		return append([]models.Release{}, s.releases...)
	}
	lower := strings.ToLower(term)
	var out []models.Release
	for _, r := range s.releases {
		if strings.Contains(strings.ToLower(r.Title), lower) ||
			strings.Contains(strings.ToLower(r.Artist), lower) ||
			strings.Contains(r.UPC, term) {
			out = append(out, r)
		}
	}
	return out
}

// generateUPC fabricates a 12-digit code for uploads that supply none.
func generateUPC() string {
	return fmt.Sprintf("%012d", rand.Int63n(1_000_000_000_000)) // #nosec G404
}
