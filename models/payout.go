// Package models File: models/payout.go
package models

// ----------------------- payout status -----------------------

// PayoutStatus tracks a withdrawal request. Pending → Completed is the only
// admin transition and it is irreversible.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "Pending"
	PayoutCompleted PayoutStatus = "Completed"
	PayoutCancelled PayoutStatus = "Cancelled"
)

// ----------------------- payout model -----------------------

// PayoutRequest is an artist withdrawal request processed from the master
// panel.
type PayoutRequest struct {
	ID     string       `json:"id"`
	Artist string       `json:"artist"`
	Amount float64      `json:"amount"`
	Method string       `json:"method"`
	Date   string       `json:"date"` // YYYY-MM-DD
	Status PayoutStatus `json:"status"`
}
