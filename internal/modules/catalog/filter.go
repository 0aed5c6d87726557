package catalog

import (
	"strconv"
	"strings"

	"modakart.com/app/internal/shared/apperr"
)

// FilterState holds the client-side refinement on top of a base list that the
// backend already scoped by category/price-radio. Pure data.
type FilterState struct {
	CheckedCategoryIDs []string
	SelectedBrands     []string
	MaxPriceCents      int64 // 0 means "no price filter"
}

func (f FilterState) HasBrandFilter() bool { return len(f.SelectedBrands) > 0 }
func (f FilterState) HasPriceFilter() bool { return f.MaxPriceCents > 0 }

// ApplyFilter derives the displayed list: keep products whose brand is in the
// selected set (empty set passes everything) and whose price does not exceed
// the threshold. The result is a stable subsequence of base; base is never
// mutated and never re-sorted.
func ApplyFilter(base []Product, f FilterState) []Product {
	if !f.HasBrandFilter() && !f.HasPriceFilter() {
		out := make([]Product, len(base))
		copy(out, base)
		return out
	}

	brands := make(map[string]struct{}, len(f.SelectedBrands))
	for _, b := range f.SelectedBrands {
		brands[b] = struct{}{}
	}

	out := make([]Product, 0, len(base))
	for _, p := range base {
		if f.HasBrandFilter() {
			if _, ok := brands[p.Brand]; !ok {
				continue
			}
		}
		if f.HasPriceFilter() && p.PriceCents > f.MaxPriceCents {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ParseMaxPrice turns the raw price input into cents. Empty input means the
// filter is off. Bad input (non-numeric, zero, negative) reports a validation
// error; callers must treat that as "filter off" rather than hiding every
// product behind a zero threshold.
func ParseMaxPrice(raw string) (int64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val <= 0 {
		return 0, false, apperr.InvalidErr("Please enter a valid price", map[string]string{
			"max_price": "Please enter a valid price",
		})
	}
	return int64(val*100 + 0.5), true, nil
}

// Brands lists the distinct non-empty brands of the base list in first-seen
// order. The shop sidebar builds its brand checkboxes from this.
func Brands(base []Product) []string {
	seen := make(map[string]struct{}, len(base))
	out := make([]string, 0, len(base))
	for _, p := range base {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	return out
}
