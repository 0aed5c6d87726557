package shop

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modakart.com/app/internal/modules/catalog"
)

type fakeSource struct {
	mu    sync.Mutex
	lists [][]catalog.Product
	errs  []error
	calls int
}

func (f *fakeSource) Filtered(context.Context, catalog.FilteredParams) ([]catalog.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(f.lists) {
		return f.lists[i], nil
	}
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func baseProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Brand: "Apple", PriceCents: 99900},
		{ID: "p2", Brand: "Samsung", PriceCents: 49900},
		{ID: "p3", Brand: "Apple", PriceCents: 19900},
	}
}

func TestReloadPopulatesBaseAndBrands(t *testing.T) {
	src := &fakeSource{lists: [][]catalog.Product{baseProducts()}}
	st := NewStore(src, testLogger())

	st.Reload(context.Background(), catalog.FilteredParams{})

	snap := st.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.LoadErr)
	assert.Len(t, snap.Base, 3)
	assert.Len(t, snap.Displayed, 3)
	assert.Equal(t, []string{"Apple", "Samsung"}, snap.Brands)
}

func TestReloadFailureIsErrorStateNotFatal(t *testing.T) {
	src := &fakeSource{errs: []error{errors.New("db down")}}
	st := NewStore(src, testLogger())

	st.Reload(context.Background(), catalog.FilteredParams{})

	snap := st.Snapshot()
	assert.True(t, snap.LoadErr)
	assert.Equal(t, "Error loading products", snap.ErrorMsg)
	assert.Empty(t, snap.Displayed)

	// manual reload recovers
	src.mu.Lock()
	src.errs = []error{nil, nil}
	src.lists = [][]catalog.Product{nil, baseProducts()}
	src.mu.Unlock()
	st.Reload(context.Background(), catalog.FilteredParams{})
	assert.False(t, st.Snapshot().LoadErr)
}

func TestStaleCompletionDiscarded(t *testing.T) {
	src := &fakeSource{}
	st := NewStore(src, testLogger())

	// simulate two in-flight reloads completing out of order
	st.mu.Lock()
	st.seq++
	oldSeq := st.seq
	st.seq++
	newSeq := st.seq
	st.latestSeq = newSeq
	st.mu.Unlock()

	fresh := baseProducts()
	st.complete(newSeq, fresh, nil)
	st.complete(oldSeq, []catalog.Product{{ID: "stale"}}, nil)

	snap := st.Snapshot()
	require.Len(t, snap.Base, len(fresh))
	assert.Equal(t, "p1", snap.Base[0].ID, "stale response must not overwrite fresh data")
}

func TestToggleBrandRecomputes(t *testing.T) {
	src := &fakeSource{lists: [][]catalog.Product{baseProducts()}}
	st := NewStore(src, testLogger())
	st.Reload(context.Background(), catalog.FilteredParams{})

	st.ToggleBrand("Apple")
	snap := st.Snapshot()
	assert.Equal(t, []string{"p1", "p3"}, displayedIDs(snap))

	st.ToggleBrand("Apple") // toggle off
	assert.Len(t, st.Snapshot().Displayed, 3)
}

func TestSetMaxPrice(t *testing.T) {
	src := &fakeSource{lists: [][]catalog.Product{baseProducts()}}
	st := NewStore(src, testLogger())
	st.Reload(context.Background(), catalog.FilteredParams{})

	st.SetMaxPrice("500")
	snap := st.Snapshot()
	assert.Empty(t, snap.PriceError)
	assert.Equal(t, []string{"p2", "p3"}, displayedIDs(snap))

	// invalid input: message surfaces, filter comes off, nothing hidden
	st.SetMaxPrice("not-a-number")
	snap = st.Snapshot()
	assert.Equal(t, "Please enter a valid price", snap.PriceError)
	assert.Len(t, snap.Displayed, 3)

	// clearing the input clears the message
	st.SetMaxPrice("")
	snap = st.Snapshot()
	assert.Empty(t, snap.PriceError)
	assert.Len(t, snap.Displayed, 3)
}

func TestResetFilters(t *testing.T) {
	src := &fakeSource{lists: [][]catalog.Product{baseProducts()}}
	st := NewStore(src, testLogger())
	st.Reload(context.Background(), catalog.FilteredParams{})

	st.ToggleBrand("Apple")
	st.SetMaxPrice("200")
	require.Len(t, st.Snapshot().Displayed, 1)

	st.ResetFilters()
	snap := st.Snapshot()
	assert.Len(t, snap.Displayed, 3)
	assert.Empty(t, snap.Filter.SelectedBrands)
	assert.Zero(t, snap.Filter.MaxPriceCents)
}

func TestSubscribeNotify(t *testing.T) {
	src := &fakeSource{lists: [][]catalog.Product{baseProducts()}}
	st := NewStore(src, testLogger())

	var events int
	unsub := st.Subscribe(func(State) { events++ })

	st.Reload(context.Background(), catalog.FilteredParams{}) // loading + complete
	st.ToggleBrand("Apple")
	assert.Equal(t, 3, events)

	unsub()
	st.ToggleBrand("Sony")
	assert.Equal(t, 3, events)
}

func displayedIDs(s State) []string {
	out := make([]string, len(s.Displayed))
	for i, p := range s.Displayed {
		out[i] = p.ID
	}
	return out
}
