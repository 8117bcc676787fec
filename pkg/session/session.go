package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session id has no live record; callers treat
// it as an anonymous session, not a failure.
var ErrNotFound = errors.New("session not found")

// Session is the server-side record behind one operator browser session.
// The state machine has two states: anonymous (no record) and authenticated.
type Session struct {
	ID              string
	Username        string
	IsAuthenticated bool
	CreatedAt       time.Time
}

// Store persists session records keyed by session id. Records expire after
// the TTL given at creation or on explicit Destroy.
type Store interface {
	Create(ctx context.Context, sess *Session, ttl time.Duration) error
	Get(ctx context.Context, sid string) (*Session, error)
	Destroy(ctx context.Context, sid string) error
}
