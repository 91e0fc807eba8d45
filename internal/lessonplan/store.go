package lessonplan

import (
	"context"
	"slices"
	"sync"
)

// Store keeps lesson plans per session. IDs are assigned per session,
// starting at 1, one above the highest ID in the session.
type Store interface {
	Save(ctx context.Context, session string, p Plan) (Plan, error)
	List(ctx context.Context, session string) ([]Plan, error)
	Get(ctx context.Context, session string, id int) (Plan, error)
	Delete(ctx context.Context, session string, id int) error
	Close() error
}

// MemoryStore keeps plans for the lifetime of the process
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string][]Plan
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string][]Plan)}
}

// Save stores p under the next ID of the session
func (s *MemoryStore) Save(_ context.Context, session string, p Plan) (Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, existing := range s.plans[session] {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	p.ID = next
	p.Curriculum = slices.Clone(p.Curriculum)
	s.plans[session] = append(s.plans[session], p)
	return p, nil
}

// List returns the session's plans ordered by ID
func (s *MemoryStore) List(_ context.Context, session string) ([]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Plan, 0, len(s.plans[session]))
	for _, p := range s.plans[session] {
		p.Curriculum = slices.Clone(p.Curriculum)
		out = append(out, p)
	}
	return out, nil
}

// Get returns one plan
func (s *MemoryStore) Get(_ context.Context, session string, id int) (Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.plans[session] {
		if p.ID == id {
			p.Curriculum = slices.Clone(p.Curriculum)
			return p, nil
		}
	}
	return Plan{}, ErrNotFound
}

// Delete removes one plan
func (s *MemoryStore) Delete(_ context.Context, session string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := s.plans[session]
	i := slices.IndexFunc(plans, func(p Plan) bool { return p.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	s.plans[session] = slices.Delete(plans, i, i+1)
	if len(s.plans[session]) == 0 {
		delete(s.plans, session)
	}
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
