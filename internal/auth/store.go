package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrDuplicateEmail     = errors.New("email already exists")
)

// Credential is a stored login. The hash is an argon2id encoded
// string; the plaintext password never reaches the store.
type Credential struct {
	ID       string
	Email    string
	PassHash string
}

// CredentialStore persists credentials. Create must enforce email
// uniqueness and report violations as ErrDuplicateEmail.
type CredentialStore interface {
	Create(ctx context.Context, email, passHash string) (string, error)
	FindByEmail(ctx context.Context, email string) (*Credential, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MemoryCredentialStore backs tests and local development.
type MemoryCredentialStore struct {
	mu      sync.Mutex
	byEmail map[string]*Credential
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{byEmail: map[string]*Credential{}}
}

func (s *MemoryCredentialStore) Create(ctx context.Context, email, passHash string) (string, error) {
	email = normalizeEmail(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		return "", ErrDuplicateEmail
	}
	c := &Credential{
		ID:       primitive.NewObjectID().Hex(),
		Email:    email,
		PassHash: passHash,
	}
	s.byEmail[email] = c
	return c.ID, nil
}

func (s *MemoryCredentialStore) FindByEmail(ctx context.Context, email string) (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.byEmail[normalizeEmail(email)]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, ErrCredentialNotFound
}
