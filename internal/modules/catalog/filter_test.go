package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modakart.com/app/internal/shared/apperr"
)

func productList() []Product {
	return []Product{
		{ID: "p1", Brand: "Apple", PriceCents: 99900},
		{ID: "p2", Brand: "Samsung", PriceCents: 79900},
		{ID: "p3", Brand: "Apple", PriceCents: 129900},
		{ID: "p4", Brand: "", PriceCents: 1500},
		{ID: "p5", Brand: "Sony", PriceCents: 49900},
	}
}

func TestApplyFilterNoFilters(t *testing.T) {
	base := productList()
	got := ApplyFilter(base, FilterState{})
	require.Equal(t, base, got)

	// the result must be a copy, not the base slice itself
	got[0].ID = "mutated"
	assert.Equal(t, "p1", base[0].ID)
}

func TestApplyFilterBrands(t *testing.T) {
	base := productList()
	got := ApplyFilter(base, FilterState{SelectedBrands: []string{"Apple"}})
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)
}

func TestApplyFilterMaxPrice(t *testing.T) {
	base := productList()
	got := ApplyFilter(base, FilterState{MaxPriceCents: 79900})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"p2", "p4", "p5"}, ids(got))
}

func TestApplyFilterBrandAndPrice(t *testing.T) {
	base := productList()
	got := ApplyFilter(base, FilterState{
		SelectedBrands: []string{"Apple", "Sony"},
		MaxPriceCents:  100000,
	})
	assert.Equal(t, []string{"p1", "p5"}, ids(got))
}

func TestApplyFilterPreservesOrder(t *testing.T) {
	base := productList()
	got := ApplyFilter(base, FilterState{SelectedBrands: []string{"Sony", "Samsung", "Apple"}})

	// subsequence check: relative order of base must survive
	j := 0
	for _, p := range base {
		if j < len(got) && got[j].ID == p.ID {
			j++
		}
	}
	assert.Equal(t, len(got), j, "filtered list is not a subsequence of base")
}

func TestApplyFilterEmptyBase(t *testing.T) {
	got := ApplyFilter(nil, FilterState{SelectedBrands: []string{"Apple"}})
	assert.Empty(t, got)
}

func TestParseMaxPrice(t *testing.T) {
	t.Run("empty means unset", func(t *testing.T) {
		cents, ok, err := ParseMaxPrice("  ")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, cents)
	})

	t.Run("valid decimal", func(t *testing.T) {
		cents, ok, err := ParseMaxPrice("12.50")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(1250), cents)
	})

	t.Run("non-numeric is a validation error, not a zero filter", func(t *testing.T) {
		cents, ok, err := ParseMaxPrice("abc")
		require.Error(t, err)
		assert.False(t, ok)
		assert.Zero(t, cents)

		ae, isApp := apperr.As(err)
		require.True(t, isApp)
		assert.Equal(t, apperr.Invalid, ae.Kind)
	})

	t.Run("zero and negative rejected", func(t *testing.T) {
		for _, raw := range []string{"0", "-3", "-0.01"} {
			_, ok, err := ParseMaxPrice(raw)
			assert.Error(t, err, raw)
			assert.False(t, ok, raw)
		}
	})
}

func TestBrands(t *testing.T) {
	got := Brands(productList())
	assert.Equal(t, []string{"Apple", "Samsung", "Sony"}, got)
}

func ids(ps []Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
