// Package services: services/upload_wizard.go
package services

import (
	"errors"
	"strings"
	"sync"

	"stream-music-portal/models"
)

// ------------------ wizard steps ------------------

// WizardStep enumerates the four ordered upload steps plus the terminal
// success state. Transitions only move one step at a time; each forward
// edge has a precondition, so skipping ahead is unrepresentable.
type WizardStep int

const (
	StepMetadata WizardStep = iota + 1
	StepAssets
	StepPlan
	StepCheckout
	StepDone
)

// String names the step for templates and logs.
func (s WizardStep) String() string {
	switch s {
	case StepMetadata:
		return "Metadados"
	case StepAssets:
		return "Upload"
	case StepPlan:
		return "Plano"
	case StepCheckout:
		return "Checkout"
	case StepDone:
		return "Concluído"
	}
	return "?"
}

var (
	// ErrAssetsIncomplete blocks Assets→Plan until cover and audio are staged.
	ErrAssetsIncomplete = errors.New("cover image and audio master are required")
	// ErrNoPlanSelected blocks Plan→Checkout until a plan is chosen.
	ErrNoPlanSelected = errors.New("a distribution plan must be selected")
	// ErrTermsNotAccepted blocks submission until the terms box is ticked.
	ErrTermsNotAccepted = errors.New("terms must be accepted before submitting")
	// ErrWizardFinished rejects transitions after the terminal success view.
	ErrWizardFinished = errors.New("upload already submitted")
	// ErrUnknownPlan rejects plan ids outside the catalogue.
	ErrUnknownPlan = errors.New("unknown distribution plan")
	// ErrAtFirstStep rejects Back from the first step.
	ErrAtFirstStep = errors.New("already at the first step")
)

// ------------------ plans ------------------

// Plan is one distribution offer shown at the plan step.
type Plan struct {
	ID          string
	Label       string
	Price       string
	Description string
	Promo       bool
}

// Plans lists the distribution offers in display order.
func Plans() []Plan {
	return []Plan{
		{ID: "single", Label: "Single", Price: "2.500 Kz", Description: "1 música em todas as plataformas"},
		{ID: "album", Label: "Álbum / EP", Price: "13.000 Kz", Description: "Até 25 músicas no mesmo lançamento"},
		{ID: "unlimited", Label: "Lançamentos Ilimitados", Price: "30.000 Kz", Description: "Lance quantas músicas quiser por 1 ano", Promo: true},
	}
}

func validPlan(id string) bool {
	for _, p := range Plans() {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ------------------ release submitter ------------------

// ReleaseSubmitter is the wizard's async boundary to the catalog. Tests
// substitute deterministic fakes to exercise both success and failure.
type ReleaseSubmitter interface {
	Submit(draft ReleaseDraft) (models.Release, error)
}

// ------------------ wizard metadata ------------------

// WizardMetadata is the step-one form state.
type WizardMetadata struct {
	Title           string
	Version         string
	Genre           string
	Subgenre        string
	Language        string
	Country         string
	ReleaseDate     string
	Label           string
	UPC             string
	ISRC            string
	ReleaseType     models.ReleaseType
	PrimaryArtists  []string
	FeaturedArtists []string
}

// ------------------ wizard ------------------

// UploadWizard is the per-session upload state machine. It is throwaway
// local state: discarded on logout, never part of the shared collections.
type UploadWizard struct {
	mu sync.Mutex

	step      WizardStep
	metadata  WizardMetadata
	coverName string
	audioName string
	proofName string
	platforms []string
	planID    string
	terms     bool

	submitter ReleaseSubmitter
	result    models.Release
}

// DefaultPlatforms is the initial store selection, everything on.
var DefaultPlatforms = []string{
	"Spotify", "Apple Music", "YouTube music", "Shazam", "Tik tok",
	"Facebook", "Instagram", "SoundCloud", "Bloomplay", "Amazon Music", "WhatsApp",
}

// NewUploadWizard starts a wizard at the metadata step with every platform
// selected.
func NewUploadWizard(submitter ReleaseSubmitter) *UploadWizard {
	return &UploadWizard{
		step:      StepMetadata,
		platforms: append([]string{}, DefaultPlatforms...),
		submitter: submitter,
	}
}

// Step reports the current step.
func (w *UploadWizard) Step() WizardStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Metadata returns the staged step-one form state.
func (w *UploadWizard) Metadata() WizardMetadata {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metadata
}

// SetMetadata stages the step-one form state. Allowed at any pre-terminal
// step so Back edits keep working.
func (w *UploadWizard) SetMetadata(m WizardMetadata) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepDone {
		return ErrWizardFinished
	}
	w.metadata = m
	return nil
}

// StageCover records the staged cover file name.
func (w *UploadWizard) StageCover(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.coverName = name
}

// StageAudio records the staged audio master file name.
func (w *UploadWizard) StageAudio(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.audioName = name
}

// StageProof records the staged payment proof file name.
func (w *UploadWizard) StageProof(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.proofName = name
}

// TogglePlatform flips one store in or out of the target list.
func (w *UploadWizard) TogglePlatform(platform string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, p := range w.platforms {
		if p == platform {
			w.platforms = append(w.platforms[:i], w.platforms[i+1:]...)
			return
		}
	}
	w.platforms = append(w.platforms, platform)
}

// Platforms returns the current store selection.
func (w *UploadWizard) Platforms() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string{}, w.platforms...)
}

// ChoosePlan selects a distribution plan by id.
func (w *UploadWizard) ChoosePlan(id string) error {
	if !validPlan(id) {
		return ErrUnknownPlan
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.planID = id
	return nil
}

// PlanID reports the selected plan, empty if none yet.
func (w *UploadWizard) PlanID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.planID
}

// AcceptTerms records the terms checkbox.
func (w *UploadWizard) AcceptTerms(accepted bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.terms = accepted
}

// Next advances one step if the current step's minimum is satisfied.
func (w *UploadWizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepMetadata:
		w.step = StepAssets
	case StepAssets:
		if w.coverName == "" || w.audioName == "" {
			return ErrAssetsIncomplete
		}
		w.step = StepPlan
	case StepPlan:
		if w.planID == "" {
			return ErrNoPlanSelected
		}
		w.step = StepCheckout
	case StepCheckout, StepDone:
		return ErrWizardFinished
	}
	return nil
}

// Back walks one step backwards; the terminal success view has no way back.
func (w *UploadWizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepMetadata:
		return ErrAtFirstStep
	case StepDone:
		return ErrWizardFinished
	default:
		w.step--
	}
	return nil
}

// Submit hands the draft to the catalog through the injected submitter. It
// requires the checkout step and accepted terms; success moves the wizard to
// its terminal view and keeps the created release for display. The wizard
// does not return to step one.
func (w *UploadWizard) Submit() (models.Release, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepDone {
		return models.Release{}, ErrWizardFinished
	}
	if w.step != StepCheckout {
		return models.Release{}, ErrNoPlanSelected
	}
	if !w.terms {
		return models.Release{}, ErrTermsNotAccepted
	}

	draft := ReleaseDraft{
		Title:       w.metadata.Title,
		Artist:      strings.Join(nonEmpty(w.metadata.PrimaryArtists), " & "),
		Cover:       w.coverName,
		Type:        w.metadata.ReleaseType,
		ReleaseDate: w.metadata.ReleaseDate,
		UPC:         w.metadata.UPC,
		ISRC:        w.metadata.ISRC,
		Genre:       w.metadata.Genre,
		Platforms:   append([]string{}, w.platforms...),
	}

	release, err := w.submitter.Submit(draft)
	if err != nil {
		return models.Release{}, err
	}
	w.step = StepDone
	w.result = release
	return release, nil
}

// Result returns the created release after a successful submit.
func (w *UploadWizard) Result() models.Release {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

func nonEmpty(names []string) []string {
	var out []string
	for _, n := range names {
		if strings.TrimSpace(n) != "" {
			out = append(out, n)
		}
	}
	return out
}
