// Package shop owns the state behind the shop listing: the base product list
// fetched for the current server-side scope, the client-side filter
// refinement, and the displayed list derived from both. The displayed list is
// recomputed in full on every input change.
package shop

import (
	"context"
	"log/slog"
	"sync"

	"modakart.com/app/internal/modules/catalog"
)

// ProductSource supplies the base list for a scope. catalog.Repo satisfies
// this; tests plug in fakes.
type ProductSource interface {
	Filtered(ctx context.Context, in catalog.FilteredParams) ([]catalog.Product, error)
}

// State is the observable snapshot. Displayed is always a stable subsequence
// of Base.
type State struct {
	Scope     catalog.FilteredParams
	Base      []catalog.Product
	Displayed []catalog.Product
	Brands    []string
	Filter    catalog.FilterState

	// PriceError carries the inline message for a rejected max-price input;
	// the filter itself stays off in that case.
	PriceError string

	Loading  bool
	LoadErr  bool
	ErrorMsg string
}

type Store struct {
	mu     sync.Mutex
	source ProductSource
	log    *slog.Logger

	state State

	// seq guards against a slow fetch overwriting a newer one: each reload
	// takes a ticket and only the holder of the latest ticket may apply.
	seq       uint64
	latestSeq uint64

	nextSub int
	subs    map[int]func(State)
}

func NewStore(source ProductSource, log *slog.Logger) *Store {
	return &Store{
		source: source,
		log:    log,
		subs:   map[int]func(State){},
	}
}

// Reload fetches the base list for the given server-side scope. A completion
// that lost the race to a newer reload is discarded.
func (s *Store) Reload(ctx context.Context, scope catalog.FilteredParams) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.latestSeq = seq
	s.state.Scope = scope
	s.state.Loading = true
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	base, err := s.source.Filtered(ctx, scope)
	s.complete(seq, base, err)
}

func (s *Store) complete(seq uint64, base []catalog.Product, err error) {
	s.mu.Lock()
	if seq != s.latestSeq {
		s.mu.Unlock()
		s.log.Debug("discarding stale catalog response", "seq", seq, "latest", s.latestSeq)
		return
	}

	s.state.Loading = false
	if err != nil {
		// "error loading" state: empty list, manual reload only
		s.state.LoadErr = true
		s.state.ErrorMsg = "Error loading products"
		s.state.Base = nil
		s.log.Warn("catalog fetch failed", "err", err)
	} else {
		s.state.LoadErr = false
		s.state.ErrorMsg = ""
		s.state.Base = base
	}
	s.recomputeLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// ToggleBrand adds or removes a brand from the selection.
func (s *Store) ToggleBrand(brand string) {
	s.mu.Lock()
	sel := s.state.Filter.SelectedBrands
	found := -1
	for i, b := range sel {
		if b == brand {
			found = i
			break
		}
	}
	if found >= 0 {
		sel = append(sel[:found], sel[found+1:]...)
	} else {
		sel = append(sel, brand)
	}
	s.state.Filter.SelectedBrands = sel
	s.recomputeLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// SetMaxPrice applies the raw price input. Invalid input surfaces a message
// and leaves the price filter off — it never hides the whole list.
func (s *Store) SetMaxPrice(raw string) {
	cents, ok, err := catalog.ParseMaxPrice(raw)
	s.mu.Lock()
	switch {
	case err != nil:
		s.state.PriceError = "Please enter a valid price"
		s.state.Filter.MaxPriceCents = 0
	case !ok:
		s.state.PriceError = ""
		s.state.Filter.MaxPriceCents = 0
	default:
		s.state.PriceError = ""
		s.state.Filter.MaxPriceCents = cents
	}
	s.recomputeLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// ResetFilters clears brand and price refinement but keeps the fetched base
// list and its scope.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	s.state.Filter = catalog.FilterState{CheckedCategoryIDs: s.state.Filter.CheckedCategoryIDs}
	s.state.PriceError = ""
	s.recomputeLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers an observer; the returned func unsubscribes.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) recomputeLocked() {
	s.state.Displayed = catalog.ApplyFilter(s.state.Base, s.state.Filter)
	s.state.Brands = catalog.Brands(s.state.Base)
}

func (s *Store) snapshotLocked() State {
	snap := s.state
	snap.Base = append([]catalog.Product(nil), s.state.Base...)
	snap.Displayed = append([]catalog.Product(nil), s.state.Displayed...)
	snap.Brands = append([]string(nil), s.state.Brands...)
	snap.Filter.SelectedBrands = append([]string(nil), s.state.Filter.SelectedBrands...)
	snap.Filter.CheckedCategoryIDs = append([]string(nil), s.state.Filter.CheckedCategoryIDs...)
	return snap
}

func (s *Store) notify(snap State) {
	s.mu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
