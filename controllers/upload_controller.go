// Package controllers file: controllers/upload_controller.go
package controllers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stream-music-portal/logger"
	"stream-music-portal/models"
	"stream-music-portal/services"
)

// UploadController drives the four-step release wizard. Each session gets
// its own wizard instance, discarded on logout; nothing is shared until the
// final submit hands the draft to the catalog.
type UploadController struct {
	Submitter services.ReleaseSubmitter
	Searcher  services.ArtistSearcher

	mu      sync.Mutex
	wizards map[string]*services.UploadWizard
}

// NewUploadController creates an instance of UploadController.
func NewUploadController(submitter services.ReleaseSubmitter, searcher services.ArtistSearcher) *UploadController {
	logger.Debug.Println("NewUploadController: Initializing UploadController")
	return &UploadController{
		Submitter: submitter,
		Searcher:  searcher,
		wizards:   make(map[string]*services.UploadWizard),
	}
}

// wizardFor returns the session's wizard, creating one on first use.
func (uc *UploadController) wizardFor(c *gin.Context) *services.UploadWizard {
	session := sessions.Default(c)
	id, ok := session.Get("wizardID").(string)
	if !ok || id == "" {
		id = uuid.NewString()
		session.Set("wizardID", id)
		if err := session.Save(); err != nil {
			logger.Error.Printf("wizardFor: failed to save wizard id: %v", err)
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	w, ok := uc.wizards[id]
	if !ok {
		w = services.NewUploadWizard(uc.Submitter)
		uc.wizards[id] = w
		logger.Info.Printf("wizardFor: new upload wizard %s", id)
	}
	return w
}

// resetWizard discards the session's wizard so a fresh upload starts over.
func (uc *UploadController) resetWizard(c *gin.Context) {
	session := sessions.Default(c)
	if id, ok := session.Get("wizardID").(string); ok {
		uc.mu.Lock()
		delete(uc.wizards, id)
		uc.mu.Unlock()
	}
	session.Delete("wizardID")
	if err := session.Save(); err != nil {
		logger.Error.Printf("resetWizard: failed to save session: %v", err)
	}
}

// uploadData assembles the template payload for the current wizard state.
func uploadData(w *services.UploadWizard, errMsg string) gin.H {
	return gin.H{
		"Step":      int(w.Step()),
		"StepName":  w.Step().String(),
		"Metadata":  w.Metadata(),
		"Platforms": w.Platforms(),
		"Plans":     services.Plans(),
		"PlanID":    w.PlanID(),
		"Result":    w.Result(),
		"Error":     errMsg,
	}
}

// Page renders the wizard at its current step.
func (uc *UploadController) Page(pc *PageController) gin.HandlerFunc {
	return func(c *gin.Context) {
		w := uc.wizardFor(c)
		pc.renderPage(c, "upload", uploadData(w, ""))
	}
}

// SaveMetadata stores the step-one form and advances to the asset step.
func (uc *UploadController) SaveMetadata(c *gin.Context) {
	w := uc.wizardFor(c)

	meta := services.WizardMetadata{
		Title:           c.PostForm("title"),
		Version:         c.PostForm("version"),
		Genre:           c.PostForm("genre"),
		Subgenre:        c.PostForm("subgenre"),
		Language:        c.PostForm("language"),
		Country:         c.PostForm("country"),
		ReleaseDate:     c.PostForm("releaseDate"),
		Label:           c.PostForm("label"),
		UPC:             c.PostForm("upc"),
		ISRC:            c.PostForm("isrc"),
		ReleaseType:     models.ReleaseType(c.DefaultPostForm("releaseType", string(models.TypeSingle))),
		PrimaryArtists:  splitArtists(c.PostForm("primaryArtists")),
		FeaturedArtists: splitArtists(c.PostForm("featuredArtists")),
	}
	if err := w.SetMetadata(meta); err != nil {
		logger.Warn.Printf("SaveMetadata: %v", err)
	}
	if err := w.Next(); err != nil {
		logger.Warn.Printf("SaveMetadata: cannot advance: %v", err)
	}
	c.Redirect(http.StatusFound, "/upload")
}

// StageAssets records the staged file names and advances when both the cover
// and the audio master are present.
func (uc *UploadController) StageAssets(c *gin.Context) {
	w := uc.wizardFor(c)

	if cover := c.PostForm("cover"); cover != "" {
		w.StageCover(cover)
	}
	if audio := c.PostForm("audio"); audio != "" {
		w.StageAudio(audio)
	}
	for _, platform := range c.PostFormArray("togglePlatform") {
		w.TogglePlatform(platform)
	}

	if c.PostForm("advance") == "true" {
		if err := w.Next(); err != nil {
			logger.Warn.Printf("StageAssets: cannot advance: %v", err)
		}
	}
	c.Redirect(http.StatusFound, "/upload")
}

// ChoosePlan selects a distribution plan and advances to checkout.
func (uc *UploadController) ChoosePlan(c *gin.Context) {
	w := uc.wizardFor(c)

	if err := w.ChoosePlan(c.PostForm("plan")); err != nil {
		logger.Warn.Printf("ChoosePlan: %v", err)
		c.Redirect(http.StatusFound, "/upload")
		return
	}
	if err := w.Next(); err != nil {
		logger.Warn.Printf("ChoosePlan: cannot advance: %v", err)
	}
	c.Redirect(http.StatusFound, "/upload")
}

// Back walks the wizard one step backwards.
func (uc *UploadController) Back(c *gin.Context) {
	w := uc.wizardFor(c)
	if err := w.Back(); err != nil {
		logger.Warn.Printf("Back: %v", err)
	}
	c.Redirect(http.StatusFound, "/upload")
}

// Submit finalizes the upload: stages the payment proof, records the terms
// checkbox and hands the draft to the catalog.
func (uc *UploadController) Submit(c *gin.Context) {
	w := uc.wizardFor(c)

	if proof := c.PostForm("proof"); proof != "" {
		w.StageProof(proof)
	}
	w.AcceptTerms(c.PostForm("terms") == "on" || c.PostForm("terms") == "true")

	if _, err := w.Submit(); err != nil {
		logger.Warn.Printf("Submit: upload rejected: %v", err)
	}
	c.Redirect(http.StatusFound, "/upload")
}

// StartOver discards the finished wizard so the next visit begins at step one.
func (uc *UploadController) StartOver(c *gin.Context) {
	uc.resetWizard(c)
	c.Redirect(http.StatusFound, "/upload")
}

// SearchArtists resolves a store-profile query for the artist pickers. Always
// appends the "create new profile" entry so unknown names stay selectable.
func (uc *UploadController) SearchArtists(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	results := uc.Searcher.Search(query)
	if query != "" {
		results = append(results, services.NewArtistProfile(query))
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// splitArtists parses a comma-separated artist list from the form.
func splitArtists(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
