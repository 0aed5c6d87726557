package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	data    map[string][]Item
	loadErr error
	saveErr error
	saves   int
}

func newMemPersister() *memPersister {
	return &memPersister{data: map[string][]Item{}}
}

func (m *memPersister) LoadCart(_ context.Context, id string) ([]Item, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[id], nil
}

func (m *memPersister) SaveCart(_ context.Context, id string, items []Item) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[id] = items
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreLoadAndMutate(t *testing.T) {
	ctx := context.Background()
	kv := newMemPersister()
	kv.data["c1"] = []Item{item("p1", 1000, 2)}

	st := NewStore("c1", kv, discardLogger())
	st.Load(ctx)

	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.TotalQty)

	require.NoError(t, st.Add(ctx, item("p2", 500, 1)))
	assert.Equal(t, int64(2500), st.Snapshot().TotalPriceCents)
	assert.Len(t, kv.data["c1"], 2, "mutation must persist")
}

func TestStoreNotifiesSubscribers(t *testing.T) {
	ctx := context.Background()
	st := NewStore("c1", newMemPersister(), discardLogger())

	var got []int
	unsub := st.Subscribe(func(s Snapshot) { got = append(got, s.TotalQty) })

	require.NoError(t, st.Add(ctx, item("p1", 1000, 2)))
	require.NoError(t, st.UpdateQty(ctx, "p1", 3))
	st.Remove(ctx, "p1")

	assert.Equal(t, []int{2, 3, 0}, got)

	unsub()
	require.NoError(t, st.Add(ctx, item("p2", 100, 1)))
	assert.Equal(t, []int{2, 3, 0}, got, "unsubscribed observer must not fire")
}

func TestStoreRejectedMutationsDoNotNotifyOrSave(t *testing.T) {
	ctx := context.Background()
	kv := newMemPersister()
	st := NewStore("c1", kv, discardLogger())
	require.NoError(t, st.Add(ctx, item("p1", 1000, 1)))
	savesBefore := kv.saves

	fired := 0
	st.Subscribe(func(Snapshot) { fired++ })

	assert.ErrorIs(t, st.Add(ctx, item("p1", 1000, 1)), ErrDuplicateItem)
	assert.ErrorIs(t, st.UpdateQty(ctx, "missing", 2), ErrItemNotFound)
	st.Remove(ctx, "missing")

	assert.Zero(t, fired)
	assert.Equal(t, savesBefore, kv.saves)
}

func TestStoreSaveFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	kv := newMemPersister()
	kv.saveErr = errors.New("redis down")

	st := NewStore("c1", kv, discardLogger())
	require.NoError(t, st.Add(ctx, item("p1", 1000, 1)))
	assert.Equal(t, 1, st.Snapshot().TotalQty, "in-memory state survives a failed save")
}

func TestStoreLoadFailureLeavesEmptyCart(t *testing.T) {
	kv := newMemPersister()
	kv.loadErr = errors.New("redis down")

	st := NewStore("c1", kv, discardLogger())
	st.Load(context.Background())
	assert.Empty(t, st.Snapshot().Items)
}

func TestManagerSharesSessions(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newMemPersister(), discardLogger())

	a := m.Session(ctx, "c1")
	b := m.Session(ctx, "c1")
	assert.Same(t, a, b)

	other := m.Session(ctx, "c2")
	assert.NotSame(t, a, other)

	m.Drop("c1")
	again := m.Session(ctx, "c1")
	assert.NotSame(t, a, again)
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	ctx := context.Background()
	kv := newMemPersister()
	kv.data["c1"] = []Item{item("p1", 1000, 2)}

	m := NewManager(kv, discardLogger())
	base := time.Now()
	m.now = func() time.Time { return base }

	a := m.Session(ctx, "c1")

	// still fresh at the TTL boundary
	m.now = func() time.Time { return base.Add(sessionIdleTTL) }
	assert.Same(t, a, m.Session(ctx, "c1"))

	// idle past the TTL: a new store that reloads from the persister
	m.now = func() time.Time { return base.Add(2*sessionIdleTTL + time.Minute) }
	again := m.Session(ctx, "c1")
	assert.NotSame(t, a, again)
	assert.Equal(t, 2, again.Snapshot().TotalQty)
}

func TestManagerSessionRefreshesIdleClock(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newMemPersister(), discardLogger())
	base := time.Now()
	m.now = func() time.Time { return base }

	a := m.Session(ctx, "c1")

	m.now = func() time.Time { return base.Add(sessionIdleTTL / 2) }
	m.Session(ctx, "c1")

	m.now = func() time.Time { return base.Add(sessionIdleTTL + sessionIdleTTL/4) }
	assert.Same(t, a, m.Session(ctx, "c1"), "use within the TTL must reset the idle clock")
}
