package favorites

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	data map[string][]Item
}

func (m *memPersister) LoadFavorites(_ context.Context, owner string) ([]Item, error) {
	return m.data[owner], nil
}

func (m *memPersister) SaveFavorites(_ context.Context, owner string, items []Item) error {
	m.data[owner] = items
	return nil
}

func newStore() (*Store, *memPersister) {
	kv := &memPersister{data: map[string][]Item{}}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore("u1", kv, log), kv
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore()

	st.Add(ctx, Item{ProductID: "p1", Name: "Phone"})
	st.Add(ctx, Item{ProductID: "p1", Name: "Phone"})

	assert.Equal(t, 1, st.Count())
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore()
	st.Add(ctx, Item{ProductID: "p1"})
	st.Add(ctx, Item{ProductID: "p2"})

	st.Remove(ctx, "p1")
	require.Len(t, st.List(), 1)
	assert.Equal(t, "p2", st.List()[0].ProductID)

	st.Remove(ctx, "absent") // no-op
	assert.Equal(t, 1, st.Count())
}

func TestPersistedRoundTrip(t *testing.T) {
	// the write key and the read key are the same one — the original app's
	// misspelling meant saved favorites were never seen again
	ctx := context.Background()
	st, kv := newStore()
	st.Add(ctx, Item{ProductID: "p1"})

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reloaded := NewStore("u1", kv, log)
	reloaded.Load(ctx)
	assert.Equal(t, 1, reloaded.Count())
}

func TestCountBadgeSubscription(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore()

	var counts []int
	st.Subscribe(func(n int) { counts = append(counts, n) })

	st.Add(ctx, Item{ProductID: "p1"})
	st.Add(ctx, Item{ProductID: "p1"}) // idempotent, no event
	st.Add(ctx, Item{ProductID: "p2"})
	st.Remove(ctx, "p1")

	assert.Equal(t, []int{1, 2, 1}, counts)
}
