package identity

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore backs tests and local development. It mirrors the
// Mongo store's semantics: insertion order on list, malformed ids
// read as absent, and exact value equality for change detection.
type MemoryStore struct {
	mu    sync.Mutex
	byID  map[string]*Identity
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: map[string]*Identity{}}
}

func (s *MemoryStore) Insert(ctx context.Context, name string, age int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	s.byID[id] = &Identity{ID: id, Name: name, Age: age}
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Identity, 0, len(s.order))
	for _, id := range s.order {
		if rec, ok := s.byID[id]; ok {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*Identity, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.byID[id]; ok {
		clone := *rec
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Update(ctx context.Context, id string, patch Patch) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[id]
	if !ok {
		return false, ErrNotFound
	}
	modified := false
	if patch.Name != nil && *patch.Name != rec.Name {
		rec.Name = *patch.Name
		modified = true
	}
	if patch.Age != nil && *patch.Age != rec.Age {
		rec.Age = *patch.Age
		modified = true
	}
	return modified, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
