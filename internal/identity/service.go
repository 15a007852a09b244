package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a rejected input, reported before any store call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Service applies validation and no-op detection on top of a Store.
// It holds no state of its own; every call round-trips to the store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, name string, age int) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &ValidationError{Msg: "name required"}
	}
	if age < 0 {
		return "", &ValidationError{Msg: "age must not be negative"}
	}
	id, err := s.store.Insert(ctx, name, age)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return id, nil
}

func (s *Service) List(ctx context.Context) ([]Identity, error) {
	out, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Identity, error) {
	rec, err := s.store.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return rec, nil
}

// Update applies a partial update. An empty patch is rejected before
// the store is touched; a patch equal to the stored values yields
// ErrNoChanges.
func (s *Service) Update(ctx context.Context, id string, patch Patch) error {
	if patch.Empty() {
		return &ValidationError{Msg: "at least one of name or age required"}
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return &ValidationError{Msg: "name must not be empty"}
	}
	if patch.Age != nil && *patch.Age < 0 {
		return &ValidationError{Msg: "age must not be negative"}
	}

	modified, err := s.store.Update(ctx, id, patch)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !modified {
		return ErrNoChanges
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
