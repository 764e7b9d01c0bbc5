package auth

import (
	"context"

	"github.com/freshbasket/freshbasket-backend/internal/storage"
)

const storageKey = "auth-storage"

// Store holds the current session. Login and logout are the only
// transitions; there is no richer state machine.
type Store struct {
	state *storage.State[Session]
}

func NewStore(backend storage.Backend) *Store {
	return &Store{state: storage.NewState(backend, storageKey, Session{})}
}

// Load restores the persisted session, if any.
func (s *Store) Load(ctx context.Context) error { return s.state.Load(ctx) }

// SetAuth records the logged-in user and marks the session authenticated.
func (s *Store) SetAuth(ctx context.Context, user User, token string) error {
	return s.state.Update(ctx, func(Session) Session {
		u := user
		return Session{User: &u, Token: token, IsAuthenticated: true}
	})
}

// ClearAuth drops the session entirely.
func (s *Store) ClearAuth(ctx context.Context) error {
	return s.state.Update(ctx, func(Session) Session { return Session{} })
}

// Session returns a copy of the current session.
func (s *Store) Session() Session {
	var out Session
	s.state.View(func(sess Session) {
		out = sess
		if sess.User != nil {
			u := *sess.User
			out.User = &u
		}
	})
	return out
}
