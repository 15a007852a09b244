// Package identity implements CRUD and partial updates over the
// identity resource, backed by a document store.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrNotFound covers absent ids and ids that do not parse as
	// store identifiers; callers cannot tell the two apart.
	ErrNotFound = errors.New("identity not found")

	// ErrNoChanges reports a patch whose values equal the stored
	// ones. The request still succeeds, with a distinct message.
	ErrNoChanges = errors.New("no changes made")

	// ErrStorage wraps unexpected store failures.
	ErrStorage = errors.New("identity storage failure")
)

type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Patch carries the fields of a partial update; nil means absent.
type Patch struct {
	Name *string
	Age  *int
}

func (p Patch) Empty() bool { return p.Name == nil && p.Age == nil }

// Store is the persistence contract for identities. Update reports
// whether any stored field actually changed, so equal-value patches
// can be distinguished from real updates.
type Store interface {
	Insert(ctx context.Context, name string, age int) (string, error)
	FindAll(ctx context.Context) ([]Identity, error)
	FindByID(ctx context.Context, id string) (*Identity, error)
	Update(ctx context.Context, id string, patch Patch) (modified bool, err error)
	Delete(ctx context.Context, id string) error
}
