// file: services/testutil_test.go
package services_test

import (
	"sync"

	"stream-music-portal/models"
	"stream-music-portal/services"
)

// recordingNotifier captures every emitted notification so tests can assert
// exactly one notification per mutation.
type recordingNotifier struct {
	mu    sync.Mutex
	items []models.Notification
}

func (r *recordingNotifier) Add(title, message string, audience models.Audience) models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := models.Notification{Title: title, Message: message, Audience: audience}
	r.items = append(r.items, n)
	return n
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *recordingNotifier) last() models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return models.Notification{}
	}
	return r.items[len(r.items)-1]
}

var _ services.Notifier = (*recordingNotifier)(nil)

// recordingToaster captures toasts pushed by the notification service.
type recordingToaster struct {
	mu     sync.Mutex
	toasts []models.Notification
}

func (r *recordingToaster) ShowToast(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, n)
}

func (r *recordingToaster) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.toasts)
}

var _ services.Toaster = (*recordingToaster)(nil)
