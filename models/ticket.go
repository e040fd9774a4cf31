// Package models File: models/ticket.go
package models

// ----------------------- ticket status -----------------------

// TicketStatus is the support-ticket lifecycle. Resolved is terminal and may
// be reached directly from Open, bypassing In Progress.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
)

// TicketPriority is the artist-selected urgency of a ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

// ----------------------- ticket model -----------------------

// Ticket is one support request opened by an artist and worked by an admin.
type Ticket struct {
	ID        string         `json:"id"`
	Subject   string         `json:"subject"`
	Status    TicketStatus   `json:"status"`
	Date      string         `json:"date"` // YYYY-MM-DD
	Priority  TicketPriority `json:"priority"`
	User      string         `json:"user,omitempty"`
	UserPhone string         `json:"userPhone,omitempty"`
}
