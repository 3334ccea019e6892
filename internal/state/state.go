// Package state persists the storefront's local client state: the
// authenticated session and the cart, each under its own storage key,
// rehydrated at startup. Stores receive a Persister at construction so the
// pure state transitions stay testable without a storage backend.
package state

import (
	"github.com/google/uuid"

	"github.com/loungeshop/storefront/internal/models"
)

// SessionState is the persisted session record: identity plus credential.
type SessionState struct {
	User  models.User
	Token string
}

type Persister interface {
	// LoadSession returns nil when no session is persisted.
	LoadSession() (*SessionState, error)
	SaveSession(*SessionState) error
	DeleteSession() error

	LoadCart() ([]models.CartLine, error)
	SaveCart([]models.CartLine) error

	// BrowsingSessionID identifies the browsing session that owns the
	// cart. It is minted on first use and stable afterwards, independent
	// of login state.
	BrowsingSessionID() (uuid.UUID, error)
}
