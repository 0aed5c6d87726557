package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"modakart.com/app/internal/modules/cart"
)

func TestComputeTotals(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		tt := ComputeTotals(nil)
		assert.Zero(t, tt.ItemsCents)
		assert.Zero(t, tt.ShippingCents)
		assert.Zero(t, tt.TotalCents)
	})

	t.Run("flat shipping under threshold", func(t *testing.T) {
		tt := ComputeTotals([]cart.Item{{PriceCents: 2500, Qty: 2}})
		assert.Equal(t, int64(5000), tt.ItemsCents)
		assert.Equal(t, int64(1000), tt.ShippingCents)
		assert.Equal(t, int64(750), tt.TaxCents)
		assert.Equal(t, int64(6750), tt.TotalCents)
	})

	t.Run("free shipping above threshold", func(t *testing.T) {
		tt := ComputeTotals([]cart.Item{{PriceCents: 10001, Qty: 1}})
		assert.Zero(t, tt.ShippingCents)
	})

	t.Run("subtotal sums lines", func(t *testing.T) {
		tt := ComputeTotals([]cart.Item{
			{PriceCents: 1000, Qty: 2},
			{PriceCents: 333, Qty: 3},
		})
		assert.Equal(t, int64(2999), tt.ItemsCents)
	})
}
