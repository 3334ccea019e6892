// Package session tracks the authenticated identity and bearer credential
// for the storefront client.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/loungeshop/storefront/internal/api"
	"github.com/loungeshop/storefront/internal/logging"
	"github.com/loungeshop/storefront/internal/models"
	"github.com/loungeshop/storefront/internal/state"
	"github.com/loungeshop/storefront/internal/tokens"
)

// Authenticator is the slice of the gateway the session store drives.
type Authenticator interface {
	Register(ctx context.Context, username, email, password string) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
}

// Store holds the current session. Both fields are set after a successful
// register or login and cleared by logout; they are never set separately.
//
// Store implements api.TokenSource, so a gateway built over it always sees
// the live credential. Wire the gateway back in through the Gateway field
// once it exists.
type Store struct {
	Gateway Authenticator

	persist state.Persister

	mu    sync.RWMutex
	user  *models.User
	token string
}

// New rehydrates the session from persisted state. A persisted credential
// that is a JWT past its expiry is dropped rather than restored.
func New(persist state.Persister) (*Store, error) {
	s := &Store{persist: persist}

	saved, err := persist.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if saved == nil {
		return s, nil
	}
	if tokens.Expired(saved.Token, time.Now()) {
		if err := persist.DeleteSession(); err != nil {
			return nil, fmt.Errorf("drop expired session: %w", err)
		}
		return s, nil
	}
	user := saved.User
	s.user = &user
	s.token = saved.Token
	return s, nil
}

func (s *Store) Register(ctx context.Context, username, email, password string) (*api.AuthResponse, error) {
	resp, err := s.Gateway.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	s.setSession(ctx, resp)
	return resp, nil
}

func (s *Store) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	resp, err := s.Gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.setSession(ctx, resp)
	return resp, nil
}

// Logout clears the session and removes it from persisted storage. It has
// no network call and no error path.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.persist.DeleteSession(); err != nil {
		logging.FromContext(context.Background()).Warn("session_persist_error", "op", "logout", "error", err)
	}
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Current returns the authenticated user, or nil.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

func (s *Store) setSession(ctx context.Context, resp *api.AuthResponse) {
	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.token = resp.Token
	s.mu.Unlock()

	err := s.persist.SaveSession(&state.SessionState{User: resp.User, Token: resp.Token})
	if err != nil {
		logging.FromContext(ctx).Warn("session_persist_error", "op", "save", "error", err)
	}
}
