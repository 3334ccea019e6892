// Package cart maintains the local line-item list. It is owned by the
// browsing session rather than the authenticated identity, so it survives
// logins and logouts. No operation here touches the network.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loungeshop/storefront/internal/logging"
	"github.com/loungeshop/storefront/internal/models"
	"github.com/loungeshop/storefront/internal/state"
)

// Store holds the cart lines in insertion order. At most one line exists
// per product id and a line's quantity is always at least one: decrementing
// a quantity-1 line removes it instead of leaving a zero row.
type Store struct {
	persist state.Persister
	ownerID uuid.UUID

	mu    sync.RWMutex
	lines []models.CartLine
}

func New(persist state.Persister) (*Store, error) {
	ownerID, err := persist.BrowsingSessionID()
	if err != nil {
		return nil, fmt.Errorf("browsing session: %w", err)
	}
	lines, err := persist.LoadCart()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Store{persist: persist, ownerID: ownerID, lines: lines}, nil
}

// OwnerID is the browsing-session identity the cart belongs to.
func (s *Store) OwnerID() uuid.UUID {
	return s.ownerID
}

// Add merges the product into the cart: an existing line gains one unit,
// otherwise a new quantity-1 line is appended with the product's display
// fields copied as of now.
func (s *Store) Add(p models.Product) {
	s.mu.Lock()
	if line := s.find(p.ID); line != nil {
		line.Quantity++
	} else {
		s.lines = append(s.lines, models.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Available: p.Available,
			Quantity:  1,
		})
	}
	s.mu.Unlock()
	s.save()
}

// DecreaseQty takes one unit off the line, removing it when the last unit
// goes. Unknown ids are a no-op.
func (s *Store) DecreaseQty(id string) {
	s.mu.Lock()
	line := s.find(id)
	switch {
	case line == nil:
		s.mu.Unlock()
		return
	case line.Quantity > 1:
		line.Quantity--
	default:
		s.removeLocked(id)
	}
	s.mu.Unlock()
	s.save()
}

// Remove drops the line regardless of quantity. Unknown ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if s.find(id) == nil {
		s.mu.Unlock()
		return
	}
	s.removeLocked(id)
	s.mu.Unlock()
	s.save()
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
	s.save()
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of unit price times quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, line := range s.lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		total = total.Add(line.Price.Mul(qty))
	}
	return total
}

// Count is the total number of units across all lines.
func (s *Store) Count() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n uint
	for _, line := range s.lines {
		n += line.Quantity
	}
	return n
}

// CheckoutItems shapes the cart into the order payload item list.
func (s *Store) CheckoutItems() []models.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.OrderItem, 0, len(s.lines))
	for _, line := range s.lines {
		items = append(items, models.OrderItem{
			Product:  line.ProductID,
			Quantity: line.Quantity,
		})
	}
	return items
}

func (s *Store) find(id string) *models.CartLine {
	for i := range s.lines {
		if s.lines[i].ProductID == id {
			return &s.lines[i]
		}
	}
	return nil
}

func (s *Store) removeLocked(id string) {
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ProductID != id {
			kept = append(kept, line)
		}
	}
	s.lines = kept
}

func (s *Store) save() {
	s.mu.RLock()
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	s.mu.RUnlock()

	if err := s.persist.SaveCart(lines); err != nil {
		logging.FromContext(context.Background()).Warn("cart_persist_error", "error", err)
	}
}
