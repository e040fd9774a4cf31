// Package services: services/notification_service.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"stream-music-portal/logger"
	"stream-music-portal/models"
)

// Toaster surfaces a freshly added notification as a transient toast. The
// WebSocket hub implements it; tests substitute a fake.
type Toaster interface {
	ShowToast(n models.Notification)
}

// Notifier is the narrow dependency the domain services use to emit exactly
// one notification per user-visible mutation.
type Notifier interface {
	Add(title, message string, audience models.Audience) models.Notification
}

// NotificationServiceInterface is the full inbox contract.
type NotificationServiceInterface interface {
	Notifier
	MarkAudienceRead(audience models.Audience)
	ListByAudience(audience models.Audience) []models.Notification
	UnreadCount(audience models.Audience) int
}

// NotificationService keeps the append-only notification list,
// most-recent-first. Items are only ever added and marked read.
type NotificationService struct {
	mu      sync.Mutex
	items   []models.Notification
	toaster Toaster
	now     func() time.Time
}

var _ NotificationServiceInterface = (*NotificationService)(nil)

// NewNotificationService creates the inbox. toaster may be nil (tests,
// headless runs); seed items are installed as-is.
func NewNotificationService(toaster Toaster, seed []models.Notification) *NotificationService {
	return &NotificationService{
		items:   append([]models.Notification{}, seed...),
		toaster: toaster,
		now:     time.Now,
	}
}

// Add assigns an id and creation time, prepends the notification, and
// surfaces it as a toast. The toast auto-dismisses on the client side after
// a fixed delay without touching the persistent list.
func (s *NotificationService) Add(title, message string, audience models.Audience) models.Notification {
	s.mu.Lock()
	n := models.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Audience:  audience,
		Read:      false,
		CreatedAt: s.now(),
	}
	s.items = append([]models.Notification{n}, s.items...)
	s.mu.Unlock()

	logger.Info.Printf("Notification added for %s audience: %s", audience, title)
	if s.toaster != nil {
		s.toaster.ShowToast(n)
	}
	return n
}

// MarkAudienceRead flips the read flag on every item for the given audience
// and leaves the other audience untouched.
func (s *NotificationService) MarkAudienceRead(audience models.Audience) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Notification, len(s.items))
	for i, n := range s.items {
		if n.Audience == audience {
			n.Read = true
		}
		next[i] = n
	}
	s.items = next
	logger.Debug.Printf("Marked %s notifications as read", audience)
}

// ListByAudience returns the inbox subsequence for one audience,
// most-recent-first.
func (s *NotificationService) ListByAudience(audience models.Audience) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Notification
	for _, n := range s.items {
		if n.Audience == audience {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount reports how many items the audience has not read yet.
func (s *NotificationService) UnreadCount(audience models.Audience) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.items {
		if n.Audience == audience && !n.Read {
			count++
		}
	}
	return count
}

// Len reports the total size of the persistent list, both audiences.
func (s *NotificationService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
