// Package services: services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stream-music-portal/logger"
	"stream-music-portal/models"
)

var (
	// ErrInvalidCredentials covers every failed login; the form shows it
	// inline without detail.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingFields is returned when sign-up required fields are blank.
	ErrMissingFields = errors.New("all required fields must be filled")
	// ErrPasswordMismatch is returned when the confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrDuplicateAccount is returned when the phone already has an account.
	ErrDuplicateAccount = errors.New("an account already exists for this contact")
)

// CredentialVerifier decides whether an identifier/password pair maps to a
// user. Real verification against a backend is an external collaborator; the
// portal ships with the demo verifier below.
type CredentialVerifier interface {
	Verify(identifier, password string) (models.User, error)
}

// ------------------ demo verifier ------------------

// adminIdentifiers grants master access to the two support phone numbers.
// Placeholder logic carried from the mock portal, not a security model.
var adminIdentifiers = map[string]bool{
	"957729023": true,
	"957709023": true,
}

// DemoCredentialVerifier fabricates users locally: the two admin numbers map
// to the master admin regardless of password, and any identifier with a
// password of at least four characters becomes an artist session.
type DemoCredentialVerifier struct{}

var _ CredentialVerifier = DemoCredentialVerifier{}

// Verify implements CredentialVerifier.
func (DemoCredentialVerifier) Verify(identifier, password string) (models.User, error) {
	if adminIdentifiers[identifier] {
		return models.User{
			ID:         "admin-master",
			FullName:   "Ibrahim Rabiu",
			ArtistName: "Master Admin",
			Province:   "Luanda",
			IDNumber:   "008391115B043",
			Phone:      identifier,
			Email:      "suporte@stream.ao",
			Role:       models.RoleAdmin,
		}, nil
	}

	if identifier == "" || len(password) < 4 {
		return models.User{}, ErrInvalidCredentials
	}

	return models.User{
		ID:         "user-" + uuid.NewString()[:5],
		FullName:   "Artista Premium",
		ArtistName: identifier,
		Province:   "Luanda",
		IDNumber:   "000000000LA000",
		Phone:      identifier,
		Email:      "user@stream.ao",
		Role:       models.RoleArtist,
		Photo:      fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", identifier),
	}, nil
}

// ------------------ sign-up profile ------------------

// SignUpProfile is the sign-up form payload.
type SignUpProfile struct {
	FullName        string
	ArtistName      string
	Province        string
	IDNumber        string
	Phone           string
	Password        string
	ConfirmPassword string
}

// ------------------ auth service ------------------

// AuthService is the session gate: it resolves logins through registered
// accounts first, then the configured verifier, and registers new artists.
type AuthService struct {
	mu       sync.Mutex
	accounts map[string]models.Account // keyed by phone
	verifier CredentialVerifier
}

// NewAuthService wires the gate with a verifier.
func NewAuthService(verifier CredentialVerifier) *AuthService {
	return &AuthService{
		accounts: make(map[string]models.Account),
		verifier: verifier,
	}
}

// Login authenticates and returns the session user. Registered accounts are
// checked with bcrypt; everything else falls through to the verifier.
func (s *AuthService) Login(identifier, password string) (models.User, error) {
	s.mu.Lock()
	account, registered := s.accounts[identifier]
	s.mu.Unlock()

	if registered {
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
			logger.Warn.Printf("Login: bad password for registered account %s", identifier)
			return models.User{}, ErrInvalidCredentials
		}
		logger.Info.Printf("Login: registered account %s authenticated", identifier)
		return account.User, nil
	}

	user, err := s.verifier.Verify(identifier, password)
	if err != nil {
		logger.Warn.Printf("Login: verifier rejected identifier %q", identifier)
		return models.User{}, err
	}
	logger.Info.Printf("Login: %s authenticated as %s", identifier, user.Role)
	return user, nil
}

// SignUp validates the profile, stores a bcrypt-hashed account, and returns
// the freshly created artist user. Validation failures mutate nothing.
func (s *AuthService) SignUp(profile SignUpProfile) (models.User, error) {
	if profile.FullName == "" || profile.ArtistName == "" || profile.Phone == "" || profile.Password == "" {
		return models.User{}, ErrMissingFields
	}
	if profile.Password != profile.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	email := strings.ToLower(strings.ReplaceAll(profile.ArtistName, " ", "")) + "@stream.ao"
	user := models.User{
		ID:         "user-" + uuid.NewString()[:8],
		FullName:   profile.FullName,
		ArtistName: profile.ArtistName,
		Province:   profile.Province,
		IDNumber:   profile.IDNumber,
		Phone:      profile.Phone,
		Email:      email,
		Role:       models.RoleArtist,
		Photo:      fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", profile.ArtistName),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[profile.Phone]; exists {
		return models.User{}, ErrDuplicateAccount
	}
	s.accounts[profile.Phone] = models.Account{User: user, PasswordHash: string(hash)}

	logger.Info.Printf("SignUp: account created for %s (%s)", profile.ArtistName, profile.Phone)
	return user, nil
}
