package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, priceCents int64, qty int) Item {
	return Item{ProductID: id, Name: "n-" + id, PriceCents: priceCents, Qty: qty}
}

func TestAddItem(t *testing.T) {
	c := New(nil)

	require.NoError(t, c.AddItem(item("p1", 1000, 2)))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.TotalQty())
	assert.Equal(t, int64(2000), c.TotalPriceCents())
}

func TestAddDuplicateRejected(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.AddItem(item("p1", 1000, 2)))

	err := c.AddItem(item("p1", 1000, 1))
	require.ErrorIs(t, err, ErrDuplicateItem)

	// second add must not touch the cart: same size, same qty
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Items()[0].Qty)
}

func TestAddBadQty(t *testing.T) {
	c := New(nil)
	assert.ErrorIs(t, c.AddItem(item("p1", 1000, 0)), ErrBadQty)
	assert.ErrorIs(t, c.AddItem(item("p1", 1000, -2)), ErrBadQty)
	assert.Equal(t, 0, c.Len())
}

func TestRemoveItem(t *testing.T) {
	c := New([]Item{item("p1", 1000, 1), item("p2", 500, 3)})

	c.RemoveItem("p1")
	assert.Equal(t, []string{"p2"}, productIDs(c))

	// absent removal is a no-op, not an error
	c.RemoveItem("nope")
	assert.Equal(t, 1, c.Len())
}

func TestUpdateQty(t *testing.T) {
	c := New([]Item{item("p1", 1000, 1)})

	require.NoError(t, c.UpdateQty("p1", 5))
	assert.Equal(t, 5, c.TotalQty())
	assert.Equal(t, int64(5000), c.TotalPriceCents())

	assert.ErrorIs(t, c.UpdateQty("p1", 0), ErrBadQty)
	assert.ErrorIs(t, c.UpdateQty("missing", 2), ErrItemNotFound)
	assert.Equal(t, 5, c.TotalQty(), "failed updates must not change state")
}

func TestTotals(t *testing.T) {
	c := New([]Item{
		item("p1", 1099, 2),
		item("p2", 250, 4),
		item("p3", 99900, 1),
	})
	assert.Equal(t, 7, c.TotalQty())
	assert.Equal(t, int64(2*1099+4*250+99900), c.TotalPriceCents())
}

func TestNewDropsCorruptEntries(t *testing.T) {
	c := New([]Item{
		item("p1", 1000, 1),
		item("p1", 1000, 2), // duplicate from a bad persisted payload
		item("p2", 500, 0),  // zero qty
		item("p3", 500, 2),
	})
	assert.Equal(t, []string{"p1", "p3"}, productIDs(c))
	assert.Equal(t, 1, c.Items()[0].Qty)
}

func TestOrderPreserved(t *testing.T) {
	c := New(nil)
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, c.AddItem(item(id, 100, 1)))
	}
	assert.Equal(t, []string{"c", "a", "b"}, productIDs(c))

	c.RemoveItem("a")
	assert.Equal(t, []string{"c", "b"}, productIDs(c))
}

func productIDs(c *Cart) []string {
	items := c.Items()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ProductID
	}
	return out
}
