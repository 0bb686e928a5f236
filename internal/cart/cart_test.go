package cart

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(name string, price float64) Snapshot {
	return Snapshot{Name: name, UnitPrice: price, ImageRef: "img/" + name + ".png", CategoryRef: "general"}
}

func TestCart_Add(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(c *Cart)
		productID    string
		stock        int
		wantKind     NoticeKind
		wantQuantity int
		wantErr      error
	}{
		{
			name:         "first add creates line with quantity 1",
			productID:    "a",
			stock:        3,
			wantKind:     NoticeAdded,
			wantQuantity: 1,
		},
		{
			name: "second add increments existing line",
			setup: func(c *Cart) {
				_, _ = c.Add("a", snap("a", 20), 3)
			},
			productID:    "a",
			stock:        3,
			wantKind:     NoticeIncremented,
			wantQuantity: 2,
		},
		{
			name: "add at ceiling is rejected",
			setup: func(c *Cart) {
				_, _ = c.Add("a", snap("a", 20), 1)
			},
			productID:    "a",
			stock:        1,
			wantKind:     NoticeOutOfStock,
			wantQuantity: 1,
			wantErr:      ErrOutOfStock,
		},
		{
			name:      "new line with zero stock is rejected",
			productID: "a",
			stock:     0,
			wantKind:  NoticeOutOfStock,
			wantErr:   ErrOutOfStock,
		},
		{
			name:      "negative stock is a validation error",
			productID: "a",
			stock:     -1,
			wantErr:   ErrNegativeStockCeiling,
		},
		{
			name:      "empty product id is a validation error",
			productID: "",
			stock:     5,
			wantErr:   ErrEmptyProductID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if tt.setup != nil {
				tt.setup(c)
			}

			notice, err := c.Add(tt.productID, snap("a", 20), tt.stock)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantKind, notice.Kind)

			line, ok := c.Line(tt.productID)
			if tt.wantQuantity == 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantQuantity, line.Quantity)
		})
	}
}

func TestCart_Add_SameProductTwiceKeepsOneLine(t *testing.T) {
	c := New()
	_, err := c.Add("a", snap("a", 20), 10)
	require.NoError(t, err)
	_, err = c.Add("a", snap("a", 20), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	line, _ := c.Line("a")
	assert.Equal(t, 2, line.Quantity)
}

func TestCart_Add_RefreshesStockCeiling(t *testing.T) {
	c := New()
	_, _ = c.Add("a", snap("a", 20), 10)
	_, err := c.Add("a", snap("a", 20), 4)
	require.NoError(t, err)

	line, _ := c.Line("a")
	assert.Equal(t, 4, line.StockCeiling)
}

func TestCart_Add_OutOfStockReportsAvailable(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		_, err := c.Add("a", snap("a", 20), 3)
		require.NoError(t, err)
	}

	notice, err := c.Add("a", snap("a", 20), 3)

	var oos *OutOfStockError
	require.True(t, errors.As(err, &oos))
	assert.Equal(t, "a", oos.ProductID)
	assert.Equal(t, 4, oos.Requested)
	assert.Equal(t, 3, oos.Available)
	assert.True(t, notice.Rejected())
	assert.Equal(t, 3, notice.Available)

	line, _ := c.Line("a")
	assert.Equal(t, 3, line.Quantity)
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name         string
		productID    string
		quantity     int
		stock        int
		wantKind     NoticeKind
		wantQuantity int
		wantPresent  bool
		wantErr      error
	}{
		{
			name:         "sets quantity within ceiling",
			productID:    "a",
			quantity:     4,
			stock:        5,
			wantKind:     NoticeUpdated,
			wantQuantity: 4,
			wantPresent:  true,
		},
		{
			name:         "quantity equal to ceiling is accepted",
			productID:    "a",
			quantity:     5,
			stock:        5,
			wantKind:     NoticeUpdated,
			wantQuantity: 5,
			wantPresent:  true,
		},
		{
			name:         "quantity above ceiling keeps previous quantity",
			productID:    "a",
			quantity:     6,
			stock:        5,
			wantKind:     NoticeOutOfStock,
			wantQuantity: 2,
			wantPresent:  true,
			wantErr:      ErrOutOfStock,
		},
		{
			name:        "zero removes the line",
			productID:   "a",
			quantity:    0,
			stock:       5,
			wantKind:    NoticeRemoved,
			wantPresent: false,
		},
		{
			name:        "negative removes the line",
			productID:   "a",
			quantity:    -3,
			stock:       5,
			wantKind:    NoticeRemoved,
			wantPresent: false,
		},
		{
			name:        "absent product is a no-op",
			productID:   "missing",
			quantity:    2,
			stock:       5,
			wantKind:    NoticeUnchanged,
			wantPresent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			_, _ = c.Add("a", snap("a", 20), 5)
			_, _ = c.Add("a", snap("a", 20), 5)

			notice, err := c.UpdateQuantity(tt.productID, tt.quantity, tt.stock)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantKind, notice.Kind)

			line, ok := c.Line(tt.productID)
			assert.Equal(t, tt.wantPresent, ok)
			if ok {
				assert.Equal(t, tt.wantQuantity, line.Quantity)
			}
		})
	}
}

func TestCart_UpdateQuantity_AbsentDoesNotAlterTotals(t *testing.T) {
	c := New()
	_, _ = c.Add("a", snap("a", 20), 3)
	before := c.Totals(DefaultPricing())

	_, err := c.UpdateQuantity("b", 2, 10)

	require.NoError(t, err)
	assert.Equal(t, before, c.Totals(DefaultPricing()))
}

func TestCart_Remove(t *testing.T) {
	c := New()
	_, _ = c.Add("a", snap("a", 10), 5)
	_, _ = c.Add("b", snap("b", 20), 5)
	_, _ = c.Add("c", snap("c", 30), 5)

	notice := c.Remove("b")
	assert.Equal(t, NoticeRemoved, notice.Kind)
	assert.Equal(t, "b", notice.Name)

	ids := make([]string, 0, c.Len())
	for _, l := range c.Lines() {
		ids = append(ids, l.ProductID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)

	// index must follow the shifted line
	_, err := c.UpdateQuantity("c", 3, 5)
	require.NoError(t, err)
	line, _ := c.Line("c")
	assert.Equal(t, 3, line.Quantity)

	assert.Equal(t, NoticeUnchanged, c.Remove("b").Kind)
}

func TestCart_Clear(t *testing.T) {
	c := New()
	_, _ = c.Add("a", snap("a", 10), 5)
	_, _ = c.Add("b", snap("b", 20), 5)

	notice := c.Clear()

	assert.Equal(t, NoticeCleared, notice.Kind)
	assert.True(t, c.IsEmpty())
	_, err := c.Add("a", snap("a", 10), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	c := New()
	_, _ = c.Add("a", snap("a", 10), 5)

	lines := c.Lines()
	lines[0].Quantity = 99

	line, _ := c.Line("a")
	assert.Equal(t, 1, line.Quantity)
}

func TestCart_InsertionOrderIsStable(t *testing.T) {
	c := New()
	for _, id := range []string{"z", "a", "m"} {
		_, _ = c.Add(id, snap(id, 1), 5)
	}
	_, _ = c.Add("a", snap("a", 1), 5)
	_, _ = c.UpdateQuantity("z", 3, 5)

	var ids []string
	for _, l := range c.Lines() {
		ids = append(ids, l.ProductID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

// TestCart_RandomSequencesKeepInvariants drives the cart with random
// operations and fresh stock ceilings and checks the line invariants after
// every step.
func TestCart_RandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	products := []string{"p1", "p2", "p3", "p4"}

	for run := 0; run < 200; run++ {
		c := New()
		for step := 0; step < 50; step++ {
			id := products[rng.Intn(len(products))]
			stock := rng.Intn(6)

			switch rng.Intn(4) {
			case 0, 1:
				_, _ = c.Add(id, snap(id, float64(rng.Intn(100))+0.99), stock)
			case 2:
				_, _ = c.UpdateQuantity(id, rng.Intn(8)-1, stock)
			case 3:
				c.Remove(id)
			}

			seen := make(map[string]bool)
			for _, l := range c.Lines() {
				require.False(t, seen[l.ProductID], fmt.Sprintf("run %d step %d: duplicate line %s", run, step, l.ProductID))
				seen[l.ProductID] = true
				require.GreaterOrEqual(t, l.Quantity, 1)
				require.LessOrEqual(t, l.Quantity, l.StockCeiling)
			}
		}
	}
}
