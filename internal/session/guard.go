// Package session holds the admin session model: a stored (active,
// issuedAt) pair and a guard that validates it with a 24h expiry window.
package session

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is how long a session stays valid after issuance.
const DefaultTTL = 24 * time.Hour

// State is the persisted session record. Both fields are written,
// read and cleared together, never independently.
type State struct {
	Active   bool      `json:"active"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Store is the storage capability behind the guard. Get returns nil
// when no session is stored under id.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Put(ctx context.Context, id string, st State) error
	Clear(ctx context.Context, id string) error
}

// Guard answers whether a stored session is still valid. Detecting an
// expired session is destructive: the stored state is cleared as part
// of the check, so later checks see no session at all.
type Guard struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
	ttl   time.Duration
}

// NewGuard creates a guard over the given store. A nil clock defaults
// to time.Now and a non-positive ttl defaults to DefaultTTL.
func NewGuard(store Store, now func() time.Time, ttl time.Duration) *Guard {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Guard{store: store, now: now, ttl: ttl}
}

// Authorize reports whether the session id is present, active and
// unexpired. The expiry check-and-clear runs under a lock so two
// concurrent checks cannot disagree about a session that just expired.
func (g *Guard) Authorize(ctx context.Context, id string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, err := g.store.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if st == nil || !st.Active {
		return false, nil
	}

	if g.now().Sub(st.IssuedAt) > g.ttl {
		if err := g.store.Clear(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, nil
}

// Issue stores a fresh active session under id, valid from now.
func (g *Guard) Issue(ctx context.Context, id string) (State, error) {
	st := State{Active: true, IssuedAt: g.now()}
	if err := g.store.Put(ctx, id, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Revoke unconditionally clears the stored session state.
func (g *Guard) Revoke(ctx context.Context, id string) error {
	return g.store.Clear(ctx, id)
}

// TTL returns the configured session lifetime.
func (g *Guard) TTL() time.Duration {
	return g.ttl
}
