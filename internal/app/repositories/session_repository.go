package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/pkg/apperrors"
)

// SessionEntry pairs a session id with the router it owns.
// Transitions on the router go through Do so they never interleave.
type SessionEntry struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	router   *navigation.Router
	lastSeen time.Time
	now      func() time.Time
}

// Do runs fn with exclusive access to the session router
func (e *SessionEntry) Do(fn func(r *navigation.Router) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = e.now()
	return fn(e.router)
}

// LastSeen returns when the session was last touched
func (e *SessionEntry) LastSeen() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSeen
}

// SessionRepository keeps live sessions in memory. Nothing survives a restart.
type SessionRepository struct {
	mu      sync.RWMutex
	entries map[string]*SessionEntry
	now     func() time.Time
}

// NewSessionRepository creates an empty session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		entries: make(map[string]*SessionEntry),
		now:     time.Now,
	}
}

// WithClock replaces the time source, used by tests
func (r *SessionRepository) WithClock(now func() time.Time) *SessionRepository {
	r.now = now
	return r
}

// Create stores a new session under id
func (r *SessionRepository) Create(ctx context.Context, id string, router *navigation.Router) (*SessionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return nil, fmt.Errorf("%w: session %q already exists", apperrors.ErrTokenInvalid, id)
	}

	now := r.now()
	entry := &SessionEntry{
		ID:        id,
		CreatedAt: now,
		router:    router,
		lastSeen:  now,
		now:       r.now,
	}
	r.entries[id] = entry
	return entry, nil
}

// Get returns the session stored under id
func (r *SessionRepository) Get(ctx context.Context, id string) (*SessionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return entry, nil
}

// Delete removes the session stored under id
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return apperrors.ErrSessionNotFound
	}
	delete(r.entries, id)
	return nil
}

// Sweep drops sessions idle for longer than ttl and returns their ids
func (r *SessionRepository) Sweep(ctx context.Context, ttl time.Duration) []string {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []string
	for id, entry := range r.entries {
		if entry.LastSeen().Before(cutoff) {
			delete(r.entries, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// Count returns the number of live sessions
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
