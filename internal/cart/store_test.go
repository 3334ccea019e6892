package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loungeshop/storefront/internal/models"
	"github.com/loungeshop/storefront/internal/state"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(state.NewMemory())
	require.NoError(t, err)
	return s
}

func product(id string, price int64) models.Product {
	return models.Product{
		ID:        id,
		Name:      "product-" + id,
		Price:     decimal.NewFromInt(price),
		Available: true,
	}
}

func TestAdd_SameProductAggregates(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	p := product("p1", 10)
	for i := 0; i < 5; i++ {
		s.Add(p)
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint(5), lines[0].Quantity)
	assert.Equal(t, "p1", lines[0].ProductID)
}

func TestAdd_CopiesDisplayFieldsAtInsert(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	p := product("p1", 10)
	s.Add(p)

	// a later catalog price change must not reach the existing line
	p.Price = decimal.NewFromInt(99)
	s.Add(p)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, uint(2), lines[0].Quantity)
}

func TestDecreaseQty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		startQty  uint
		wantGone  bool
		wantQty   uint
	}{
		{name: "quantity one removes the line", startQty: 1, wantGone: true},
		{name: "higher quantity decrements", startQty: 3, wantQty: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestStore(t)
			p := product("p1", 10)
			for i := uint(0); i < tt.startQty; i++ {
				s.Add(p)
			}

			s.DecreaseQty("p1")

			lines := s.Lines()
			if tt.wantGone {
				assert.Empty(t, lines)
				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantQty, lines[0].Quantity)
		})
	}
}

func TestDecreaseQty_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.Add(product("p1", 10))

	s.DecreaseQty("missing")

	require.Len(t, s.Lines(), 1)
	assert.Equal(t, uint(1), s.Lines()[0].Quantity)
}

func TestRemove_ThenFurtherMutationsAreNoops(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.Add(product("p1", 10))
	s.Add(product("p1", 10))

	s.Remove("p1")
	assert.Empty(t, s.Lines())

	s.DecreaseQty("p1")
	s.Remove("p1")
	assert.Empty(t, s.Lines())
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.Add(product("p1", 10))
	s.Add(product("p2", 5))
	s.Add(product("p3", 1))

	s.Clear()

	assert.Empty(t, s.Lines())
	assert.True(t, s.Total().IsZero())
	assert.Equal(t, uint(0), s.Count())
}

func TestTotalAndCount(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	p1 := product("p1", 10)
	p2 := product("p2", 5)
	s.Add(p1)
	s.Add(p1)
	s.Add(p2)

	assert.True(t, s.Total().Equal(decimal.NewFromInt(25)), "total = %s", s.Total())
	assert.Equal(t, uint(3), s.Count())
}

func TestLines_PreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.Add(product("b", 1))
	s.Add(product("a", 1))
	s.Add(product("c", 1))
	s.Add(product("a", 1))

	lines := s.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "b", lines[0].ProductID)
	assert.Equal(t, "a", lines[1].ProductID)
	assert.Equal(t, "c", lines[2].ProductID)
}

func TestCheckoutItems(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	p1 := product("p1", 10)
	s.Add(p1)
	s.Add(p1)
	s.Add(product("p2", 5))

	items := s.CheckoutItems()
	require.Len(t, items, 2)
	assert.Equal(t, models.OrderItem{Product: "p1", Quantity: 2}, items[0])
	assert.Equal(t, models.OrderItem{Product: "p2", Quantity: 1}, items[1])
}

func TestStore_PersistsAcrossRestarts(t *testing.T) {
	t.Parallel()

	mem := state.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)
	s.Add(product("p1", 10))
	s.Add(product("p1", 10))
	owner := s.OwnerID()

	restored, err := New(mem)
	require.NoError(t, err)

	lines := restored.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].Quantity)
	assert.Equal(t, owner, restored.OwnerID())
}
