package state

import (
	"github.com/google/uuid"

	"github.com/loungeshop/storefront/internal/models"
)

// Memory is an ephemeral Persister for tests and one-off runs.
type Memory struct {
	session   *SessionState
	cart      []models.CartLine
	sessionID uuid.UUID
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadSession() (*SessionState, error) {
	if m.session == nil {
		return nil, nil
	}
	cp := *m.session
	return &cp, nil
}

func (m *Memory) SaveSession(sess *SessionState) error {
	cp := *sess
	m.session = &cp
	return nil
}

func (m *Memory) DeleteSession() error {
	m.session = nil
	return nil
}

func (m *Memory) LoadCart() ([]models.CartLine, error) {
	out := make([]models.CartLine, len(m.cart))
	copy(out, m.cart)
	return out, nil
}

func (m *Memory) SaveCart(lines []models.CartLine) error {
	m.cart = make([]models.CartLine, len(lines))
	copy(m.cart, lines)
	return nil
}

func (m *Memory) BrowsingSessionID() (uuid.UUID, error) {
	if m.sessionID == uuid.Nil {
		m.sessionID = uuid.New()
	}
	return m.sessionID, nil
}
