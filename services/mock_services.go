// Package services: services/mock_services.go
package services

import (
	"io"

	"github.com/stretchr/testify/mock"

	"stream-music-portal/models"
)

// Ensure the mocks implement their interfaces.
var (
	_ CatalogServiceInterface      = (*MockCatalogService)(nil)
	_ PayoutServiceInterface       = (*MockPayoutService)(nil)
	_ TicketServiceInterface       = (*MockTicketService)(nil)
	_ NotificationServiceInterface = (*MockNotificationService)(nil)
)

// MockCatalogService is a mock implementation for testing and extends `mock.Mock`
type MockCatalogService struct {
	mock.Mock
}

// Releases (Mocked)
func (m *MockCatalogService) Releases() []models.Release {
	args := m.Called()
	return args.Get(0).([]models.Release)
}

// PendingReleases (Mocked)
func (m *MockCatalogService) PendingReleases() []models.Release {
	args := m.Called()
	return args.Get(0).([]models.Release)
}

// Submit (Mocked)
func (m *MockCatalogService) Submit(draft ReleaseDraft) (models.Release, error) {
	args := m.Called(draft)
	return args.Get(0).(models.Release), args.Error(1)
}

// Approve (Mocked)
func (m *MockCatalogService) Approve(id string) (models.Release, error) {
	args := m.Called(id)
	return args.Get(0).(models.Release), args.Error(1)
}

// Reject (Mocked)
func (m *MockCatalogService) Reject(id string) (models.Release, error) {
	args := m.Called(id)
	return args.Get(0).(models.Release), args.Error(1)
}

// RequestCorrection (Mocked)
func (m *MockCatalogService) RequestCorrection(id string) (models.Release, error) {
	args := m.Called(id)
	return args.Get(0).(models.Release), args.Error(1)
}

// SearchReleases (Mocked)
func (m *MockCatalogService) SearchReleases(term string) []models.Release {
	args := m.Called(term)
	return args.Get(0).([]models.Release)
}

// ExportCSV (Mocked)
func (m *MockCatalogService) ExportCSV(w io.Writer) error {
	args := m.Called(w)
	return args.Error(0)
}

// MockPayoutService is a mock implementation for testing and extends `mock.Mock`
type MockPayoutService struct {
	mock.Mock
}

// Payouts (Mocked)
func (m *MockPayoutService) Payouts() []models.PayoutRequest {
	args := m.Called()
	return args.Get(0).([]models.PayoutRequest)
}

// Request (Mocked)
func (m *MockPayoutService) Request(artist string, amount float64, method string) (models.PayoutRequest, error) {
	args := m.Called(artist, amount, method)
	return args.Get(0).(models.PayoutRequest), args.Error(1)
}

// Process (Mocked)
func (m *MockPayoutService) Process(id string) (models.PayoutRequest, error) {
	args := m.Called(id)
	return args.Get(0).(models.PayoutRequest), args.Error(1)
}

// Methods (Mocked)
func (m *MockPayoutService) Methods() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// AddMethod (Mocked)
func (m *MockPayoutService) AddMethod(label string) error {
	args := m.Called(label)
	return args.Error(0)
}

// MockTicketService is a mock implementation for testing and extends `mock.Mock`
type MockTicketService struct {
	mock.Mock
}

// Tickets (Mocked)
func (m *MockTicketService) Tickets() []models.Ticket {
	args := m.Called()
	return args.Get(0).([]models.Ticket)
}

// OpenTickets (Mocked)
func (m *MockTicketService) OpenTickets() []models.Ticket {
	args := m.Called()
	return args.Get(0).([]models.Ticket)
}

// Open (Mocked)
func (m *MockTicketService) Open(subject string, priority models.TicketPriority, user, phone string) (models.Ticket, error) {
	args := m.Called(subject, priority, user, phone)
	return args.Get(0).(models.Ticket), args.Error(1)
}

// Reply (Mocked)
func (m *MockTicketService) Reply(id, reply string) (models.Ticket, error) {
	args := m.Called(id, reply)
	return args.Get(0).(models.Ticket), args.Error(1)
}

// Resolve (Mocked)
func (m *MockTicketService) Resolve(id string) (models.Ticket, error) {
	args := m.Called(id)
	return args.Get(0).(models.Ticket), args.Error(1)
}

// MockNotificationService is a mock implementation for testing and extends `mock.Mock`
type MockNotificationService struct {
	mock.Mock
}

// Add (Mocked)
func (m *MockNotificationService) Add(title, message string, audience models.Audience) models.Notification {
	args := m.Called(title, message, audience)
	return args.Get(0).(models.Notification)
}

// MarkAudienceRead (Mocked)
func (m *MockNotificationService) MarkAudienceRead(audience models.Audience) {
	m.Called(audience)
}

// ListByAudience (Mocked)
func (m *MockNotificationService) ListByAudience(audience models.Audience) []models.Notification {
	args := m.Called(audience)
	return args.Get(0).([]models.Notification)
}

// UnreadCount (Mocked)
func (m *MockNotificationService) UnreadCount(audience models.Audience) int {
	args := m.Called(audience)
	return args.Int(0)
}
