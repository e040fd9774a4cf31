// Package models defines data structures used across the application.
// File: models/user.go
package models

// ----------------------- roles -----------------------

// Role separates the two audiences the portal serves.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleArtist Role = "artist"
)

// ----------------------- user model -----------------------

// User is the session identity fabricated at login or sign-up.
// There is exactly one current user per session, or none.
type User struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	ArtistName string `json:"artistName"`
	Province   string `json:"province"`
	IDNumber   string `json:"idNumber"` // Bilhete de Identidade
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Photo      string `json:"photo,omitempty"`
}

// IsAdmin reports whether the user may reach the master panel.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ----------------------- account model -----------------------

// Account is a stored sign-up credential. Passwords are kept as bcrypt
// hashes; the plain text never leaves the sign-up handler.
type Account struct {
	User         User
	PasswordHash string
}
