// Package services: services/ticket_service.go
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
	// ErrTicketNotFound is returned when no ticket matches the given id.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrMissingSubject is returned when an artist opens a ticket without a
	// subject.
	ErrMissingSubject = errors.New("ticket subject is required")
	// ErrEmptyReply is returned for a blank admin reply.
	ErrEmptyReply = errors.New("reply message is required")
	// ErrTicketClosed is returned when replying to a resolved ticket.
	ErrTicketClosed = errors.New("ticket is already resolved")
)

// TicketServiceInterface owns the support-ticket collection.
type TicketServiceInterface interface {
	Tickets() []models.Ticket
	OpenTickets() []models.Ticket
	Open(subject string, priority models.TicketPriority, user, phone string) (models.Ticket, error)
	Reply(id, reply string) (models.Ticket, error)
	Resolve(id string) (models.Ticket, error)
}

// TicketService is the in-memory ticket collection with the same
// replace-by-id discipline as the other collections.
type TicketService struct {
	mu       sync.Mutex
	tickets  []models.Ticket
	nextID   int
	notifier Notifier
	now      func() time.Time
}

var _ TicketServiceInterface = (*TicketService)(nil)

// NewTicketService seeds the collection and picks the id counter up after
// the highest seeded T-number.
func NewTicketService(seed []models.Ticket, notifier Notifier) *TicketService {
	next := 1001
	for _, t := range seed {
		var n int
		if _, err := fmt.Sscanf(t.ID, "T-%d", &n); err == nil && n >= next {
			next = n + 1
		}
	}
	return &TicketService{
		tickets:  append([]models.Ticket{}, seed...),
		nextID:   next,
		notifier: notifier,
		now:      time.Now,
	}
}

// Tickets returns a copy of the whole collection in order.
func (s *TicketService) Tickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Ticket{}, s.tickets...)
}

// OpenTickets returns everything not yet resolved, the admin work queue.
func (s *TicketService) OpenTickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Ticket
	for _, t := range s.tickets {
		if t.Status != models.TicketResolved {
			out = append(out, t)
		}
	}
	return out
}

// Open creates a new ticket in Open status, stamps the current date, and
// confirms to the artist with the generated id.
func (s *TicketService) Open(subject string, priority models.TicketPriority, user, phone string) (models.Ticket, error) {
	if subject == "" {
		return models.Ticket{}, ErrMissingSubject
	}
	if priority == "" {
		priority = models.PriorityMedium
	}

	s.mu.Lock()
	ticket := models.Ticket{
		ID:        fmt.Sprintf("T-%d", s.nextID),
		Subject:   subject,
		Status:    models.TicketOpen,
		Date:      s.now().Format("2006-01-02"),
		Priority:  priority,
		User:      user,
		UserPhone: phone,
	}
	s.nextID++
	s.tickets = append([]models.Ticket{ticket}, s.tickets...)
	s.mu.Unlock()

	logger.Info.Printf("Ticket %s opened by %s (%s)", ticket.ID, user, priority)
	s.notifier.Add("Suporte Solicitado",
		fmt.Sprintf("Chamado #%s aberto com sucesso.", ticket.ID),
		models.AudienceArtist)
	return ticket, nil
}

// Reply moves an open ticket to In Progress and carries the reply text into
// the artist notification. Replying to a resolved ticket is an error.
func (s *TicketService) Reply(id, reply string) (models.Ticket, error) {
	if reply == "" {
		return models.Ticket{}, ErrEmptyReply
	}

	s.mu.Lock()
	var updated models.Ticket
	found := false
	next := make([]models.Ticket, len(s.tickets))
	for i, t := range s.tickets {
		if t.ID == id {
			if t.Status == models.TicketResolved {
				s.mu.Unlock()
				return models.Ticket{}, ErrTicketClosed
			}
			t.Status = models.TicketInProgress
			updated = t
			found = true
		}
		next[i] = t
	}
	if !found {
		s.mu.Unlock()
		return models.Ticket{}, ErrTicketNotFound
	}
	s.tickets = next
	s.mu.Unlock()

	logger.Info.Printf("Ticket %s replied to, now in progress", id)
	s.notifier.Add("Aviso do Sistema",
		fmt.Sprintf("Nova resposta administrativa para o ticket %q: %s", updated.Subject, reply),
		models.AudienceArtist)
	return updated, nil
}

// Resolve moves a ticket to Resolved from any state, reachable directly
// from Open too. Resolving an already resolved ticket is a no-op: the state
// is unchanged and no second notification is emitted.
func (s *TicketService) Resolve(id string) (models.Ticket, error) {
	s.mu.Lock()
	var updated models.Ticket
	found := false
	alreadyResolved := false
	next := make([]models.Ticket, len(s.tickets))
	for i, t := range s.tickets {
		if t.ID == id {
			found = true
			if t.Status == models.TicketResolved {
				alreadyResolved = true
			}
			t.Status = models.TicketResolved
			updated = t
		}
		next[i] = t
	}
	if !found {
		s.mu.Unlock()
		return models.Ticket{}, ErrTicketNotFound
	}
	s.tickets = next
	s.mu.Unlock()

	if alreadyResolved {
		logger.Debug.Printf("Ticket %s already resolved; no-op", id)
		return updated, nil
	}

	logger.Info.Printf("Ticket %s resolved", id)
	s.notifier.Add("Aviso do Sistema",
		fmt.Sprintf("O seu chamado sobre %q foi marcado como resolvido.", updated.Subject),
		models.AudienceArtist)
	return updated, nil
}
