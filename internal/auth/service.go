package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorage wraps unexpected store failures so raw driver
	// errors never reach a client.
	ErrStorage = errors.New("credential storage failure")
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError is a rejected input, reported before any store call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Service orchestrates signup and login over a credential store,
// password hasher and token issuer.
type Service struct {
	store  CredentialStore
	issuer *TokenIssuer
	argon  ArgonParams
}

func NewService(store CredentialStore, issuer *TokenIssuer) *Service {
	return &Service{store: store, issuer: issuer, argon: DefaultArgon}
}

// Signup hashes the password and persists a new credential,
// returning its identifier.
func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || !reEmail.MatchString(email) {
		return "", &ValidationError{Msg: "valid email required"}
	}
	if strings.TrimSpace(password) == "" {
		return "", &ValidationError{Msg: "password required"}
	}

	hash, err := HashPassword(s.argon, password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id, err := s.store.Create(ctx, email, hash)
	if errors.Is(err, ErrDuplicateEmail) {
		return "", ErrDuplicateEmail
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return id, nil
}

// Login verifies the password against the stored hash and issues a
// bearer token with the email as subject.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	cred, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrCredentialNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	ok, err := VerifyPassword(password, cred.PassHash)
	if err != nil {
		// Corrupt stored hash reads as an authentication failure.
		return "", ErrInvalidCredentials
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(cred.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
