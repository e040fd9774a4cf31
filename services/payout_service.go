// Package services: services/payout_service.go
package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"stream-music-portal/logger"
	"stream-music-portal/models"
)

var (
	// ErrPayoutNotFound is returned when no payout matches the given id.
	ErrPayoutNotFound = errors.New("payout request not found")
	// ErrPayoutFinalized is returned when processing anything that is not
	// pending; completed payouts are irreversible.
	ErrPayoutFinalized = errors.New("payout request already finalized")
	// ErrInvalidPayoutAmount is returned for zero or negative amounts.
	ErrInvalidPayoutAmount = errors.New("payout amount must be positive")
	// ErrMissingMethodLabel is returned when adding a payout method with no
	// label.
	ErrMissingMethodLabel = errors.New("payout method label is required")
)

// PayoutServiceInterface owns the payout-request collection and the artist's
// saved withdrawal methods.
type PayoutServiceInterface interface {
	Payouts() []models.PayoutRequest
	Request(artist string, amount float64, method string) (models.PayoutRequest, error)
	Process(id string) (models.PayoutRequest, error)
	Methods() []string
	AddMethod(label string) error
}

// PayoutService is the in-memory payout collection. Same replace-by-id
// discipline as the catalog: order preserved, no deletes.
type PayoutService struct {
	mu       sync.Mutex
	payouts  []models.PayoutRequest
	methods  []string
	nextID   int
	notifier Notifier
}

var _ PayoutServiceInterface = (*PayoutService)(nil)

// NewPayoutService seeds the collection and picks the id counter up after
// the highest seeded P-number.
func NewPayoutService(seed []models.PayoutRequest, notifier Notifier) *PayoutService {
	next := 101
	for _, p := range seed {
		var n int
		if _, err := fmt.Sscanf(p.ID, "P-%d", &n); err == nil && n >= next {
			next = n + 1
		}
	}
	return &PayoutService{
		payouts:  append([]models.PayoutRequest{}, seed...),
		methods:  []string{"IBAN Angola", "PayPal"},
		nextID:   next,
		notifier: notifier,
	}
}

// Methods returns the saved withdrawal methods.
func (s *PayoutService) Methods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.methods...)
}

// AddMethod saves a new withdrawal method and confirms to the artist. A
// duplicate label is a silent no-op with no second notification.
func (s *PayoutService) AddMethod(label string) error {
	if label == "" {
		return ErrMissingMethodLabel
	}

	s.mu.Lock()
	for _, m := range s.methods {
		if m == label {
			s.mu.Unlock()
			return nil
		}
	}
	s.methods = append(s.methods, label)
	s.mu.Unlock()

	logger.Info.Printf("Payout method %q added", label)
	s.notifier.Add("Método de Pagamento",
		fmt.Sprintf("Método %q adicionado com sucesso.", label),
		models.AudienceArtist)
	return nil
}

// Payouts returns a copy of the collection in order.
func (s *PayoutService) Payouts() []models.PayoutRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PayoutRequest{}, s.payouts...)
}

// Request creates a pending withdrawal for the artist and confirms receipt
// to the artist audience.
func (s *PayoutService) Request(artist string, amount float64, method string) (models.PayoutRequest, error) {
	if amount <= 0 {
		return models.PayoutRequest{}, ErrInvalidPayoutAmount
	}
	if method == "" {
		return models.PayoutRequest{}, errors.New("payout method is required")
	}

	s.mu.Lock()
	payout := models.PayoutRequest{
		ID:     fmt.Sprintf("P-%d", s.nextID),
		Artist: artist,
		Amount: amount,
		Method: method,
		Date:   time.Now().Format("2006-01-02"),
		Status: models.PayoutPending,
	}
	s.nextID++
	s.payouts = append([]models.PayoutRequest{payout}, s.payouts...)
	s.mu.Unlock()

	logger.Info.Printf("Payout %s requested by %s for %.2f via %s", payout.ID, artist, amount, method)
	s.notifier.Add("Levantamento Solicitado",
		fmt.Sprintf("O seu pedido de levantamento de $%.2f foi registado e aguarda processamento.", amount),
		models.AudienceArtist)
	return payout, nil
}

// Process completes a pending payout. The artist-facing message carries the
// exact amount to two decimal places. Anything not pending is an error and
// mutates nothing.
func (s *PayoutService) Process(id string) (models.PayoutRequest, error) {
	s.mu.Lock()
	var updated models.PayoutRequest
	found := false
	next := make([]models.PayoutRequest, len(s.payouts))
	for i, p := range s.payouts {
		if p.ID == id {
			if p.Status != models.PayoutPending {
				s.mu.Unlock()
				logger.Warn.Printf("Refusing to process payout %s in status %s", id, p.Status)
				return models.PayoutRequest{}, ErrPayoutFinalized
			}
			p.Status = models.PayoutCompleted
			updated = p
			found = true
		}
		next[i] = p
	}
	if !found {
		s.mu.Unlock()
		return models.PayoutRequest{}, ErrPayoutNotFound
	}
	s.payouts = next
	s.mu.Unlock()

	logger.Info.Printf("Payout %s processed (%.2f to %s)", id, updated.Amount, updated.Artist)
	s.notifier.Add("Aviso do Sistema",
		fmt.Sprintf("O seu pedido de saque de $%.2f foi processado e o valor já está a caminho da sua conta!", updated.Amount),
		models.AudienceArtist)
	return updated, nil
}
