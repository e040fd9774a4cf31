// Package services: services/presence_service.go
package services

import (
	"sync"
	"time"

	"stream-music-portal/logger"
)

// PresenceService tracks the last-seen timestamp of logged-in users so the
// master panel can show how many artists are currently active.
type PresenceService struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// NewPresenceService creates an empty presence tracker.
func NewPresenceService() *PresenceService {
	return &PresenceService{
		lastSeen: make(map[string]time.Time),
	}
}

// Touch marks a user as active now.
func (p *PresenceService) Touch(userID string) {
	if userID == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen[userID] = time.Now()
	logger.Debug.Printf("Presence: updated heartbeat for user=%s", userID)
}

// Forget drops a user on logout.
func (p *PresenceService) Forget(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.lastSeen, userID)
}

// ActiveCount reports users seen within the window.
func (p *PresenceService) ActiveCount(window time.Duration) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	count := 0
	cutoff := time.Now().Add(-window)
	for _, seen := range p.lastSeen {
		if seen.After(cutoff) {
			count++
		}
	}
	return count
}

// StartCleanup removes stale entries in the background every interval.
func (p *PresenceService) StartCleanup(interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			p.mu.Lock()
			for id, seen := range p.lastSeen {
				if time.Since(seen) > maxAge {
					logger.Info.Printf("Presence: removing inactive user=%s", id)
					delete(p.lastSeen, id)
				}
			}
			p.mu.Unlock()
		}
	}()
}
