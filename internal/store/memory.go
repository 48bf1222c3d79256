// internal/store/memory.go
//
// In-memory store of solve sessions for the HTTP API.
//
// Characteristics:
//   - Entries are keyed by a random UUID.
//   - The map is guarded by an RWMutex; each entry has its own mutex so
//     requests for different sessions never wait on each other.
//   - Sessions are never persisted; Sweep drops entries idle for longer than
//     the configured TTL.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Entry is a stored session. Use Do to access the session.
type Entry struct {
	ID      string
	Created time.Time

	mu      sync.Mutex
	session *solver.Session
	touched time.Time
}

// Do runs fn with exclusive access to the session and marks it as used.
func (e *Entry) Do(fn func(s *solver.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = time.Now()
	return fn(e.session)
}

func (e *Entry) lastUsed() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.touched
}

// Store defines the persistence interface for solve sessions.
type Store interface {
	// Create stores s under a new ID.
	Create(ctx context.Context, s *solver.Session) (*Entry, error)

	// Get retrieves a session entry by ID.
	// Returns ErrNotFound if the ID is unknown or was swept.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Sweep removes entries idle for longer than maxIdle and reports how many.
	Sweep(ctx context.Context, maxIdle time.Duration) int

	// Len reports the number of stored sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries
	entries map[string]*Entry // keyed by Entry.ID
	now     func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry), now: time.Now}
}

func (m *memory) Create(ctx context.Context, s *solver.Session) (*Entry, error) {
	if s == nil {
		return nil, errors.New("nil session")
	}
	now := m.now()
	e := &Entry{ID: uuid.NewString(), Created: now, session: s, touched: now}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return e, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, e := range m.entries {
		if e.lastUsed().Before(cutoff) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
