package verify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/findit-campus/findit/internal/model"
)

// Session is one claim attempt: the verification machine for a found item
// plus the result of the completion handler once it has run.
type Session struct {
	ID        string
	ItemID    int64
	UserID    int64
	Machine   *Machine
	CreatedAt time.Time

	mu    sync.Mutex
	claim *model.Claim
	err   error
}

// SetResult records the finalized claim. Called by the completion handler.
func (s *Session) SetResult(c *model.Claim) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claim = c
}

// SetError records a completion failure so polling clients can see it.
func (s *Session) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Result returns the finalized claim and completion error, either of which
// may be nil while the handler has not run.
func (s *Session) Result() (*model.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claim, s.err
}

// Registry tracks live verification sessions by ID.
type Registry struct {
	decider Decider
	timing  Timing

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a session registry using the given decider and timing
// for every machine it creates.
func NewRegistry(decider Decider, timing Timing) *Registry {
	return &Registry{
		decider:  decider,
		timing:   timing,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new idle session for a found item. onSuccess, if not
// nil, runs with the session after a successful scan's display delay.
func (r *Registry) Create(itemID, userID int64, itemKey string, onSuccess func(*Session)) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	var cb func()
	if onSuccess != nil {
		cb = func() { onSuccess(s) }
	}
	s.Machine = NewMachine(itemKey, r.decider, r.timing, cb)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns a session by ID, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Sweep removes sessions older than maxAge and returns how many were
// dropped. Active scans finish within seconds, so age alone is a safe
// staleness signal.
func (r *Registry) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper periodically sweeps stale sessions until ctx is cancelled.
func (r *Registry) StartSweeper(ctx context.Context, every, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Sweep(maxAge)
			}
		}
	}()
}
