package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Store owns one cart for the lifetime of a session. All mutation goes
// through it; readers observe through Subscribe. Persistence failures are
// logged and swallowed — losing a save must never break the shopping flow.
type Store struct {
	mu     sync.Mutex
	cartID string
	cart   *Cart
	kv     Persister
	log    *slog.Logger

	nextSub int
	subs    map[int]func(Snapshot)
}

// Snapshot is what observers receive on every change.
type Snapshot struct {
	Items           []Item
	TotalQty        int
	TotalPriceCents int64
}

func NewStore(cartID string, kv Persister, log *slog.Logger) *Store {
	return &Store{
		cartID: cartID,
		cart:   New(nil),
		kv:     kv,
		log:    log,
		subs:   map[int]func(Snapshot){},
	}
}

// Load pulls the persisted cart, replacing the in-memory state. A load
// failure leaves an empty cart; the session still works.
func (s *Store) Load(ctx context.Context) {
	items, err := s.kv.LoadCart(ctx, s.cartID)
	if err != nil {
		s.log.Warn("cart load failed", "cart_id", s.cartID, "err", err)
		return
	}
	s.mu.Lock()
	s.cart = New(items)
	s.mu.Unlock()
}

func (s *Store) Add(ctx context.Context, it Item) error {
	s.mu.Lock()
	if err := s.cart.AddItem(it); err != nil {
		s.mu.Unlock()
		return err
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	s.notify(snap)
	return nil
}

func (s *Store) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	before := s.cart.Len()
	s.cart.RemoveItem(productID)
	changed := s.cart.Len() != before
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if !changed {
		return
	}
	s.persist(ctx, snap)
	s.notify(snap)
}

func (s *Store) UpdateQty(ctx context.Context, productID string, qty int) error {
	s.mu.Lock()
	if err := s.cart.UpdateQty(productID, qty); err != nil {
		s.mu.Unlock()
		return err
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	s.notify(snap)
	return nil
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.cart = New(nil)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	s.notify(snap)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers an observer called after every state change. The
// returned func unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
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

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Items:           s.cart.Items(),
		TotalQty:        s.cart.TotalQty(),
		TotalPriceCents: s.cart.TotalPriceCents(),
	}
}

func (s *Store) persist(ctx context.Context, snap Snapshot) {
	if err := s.kv.SaveCart(ctx, s.cartID, snap.Items); err != nil {
		s.log.Warn("cart save failed", "cart_id", s.cartID, "err", err)
	}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// sessionIdleTTL bounds the in-memory session map; the cart itself lives in
// the KV store and is reloaded when the session comes back.
const sessionIdleTTL = time.Hour

type session struct {
	store    *Store
	lastSeen time.Time
}

// Manager hands out session stores keyed by cart ID so every request for the
// same cart shares one owner. Idle sessions are evicted lazily.
type Manager struct {
	mu     sync.Mutex
	kv     Persister
	log    *slog.Logger
	stores map[string]*session
	now    func() time.Time
}

func NewManager(kv Persister, log *slog.Logger) *Manager {
	return &Manager{kv: kv, log: log, stores: map[string]*session{}, now: time.Now}
}

func (m *Manager) Session(ctx context.Context, cartID string) *Store {
	m.mu.Lock()
	now := m.now()
	m.evictIdleLocked(now)

	if s, ok := m.stores[cartID]; ok {
		s.lastSeen = now
		m.mu.Unlock()
		return s.store
	}

	st := NewStore(cartID, m.kv, m.log)
	m.stores[cartID] = &session{store: st, lastSeen: now}
	m.mu.Unlock()
	st.Load(ctx)
	return st
}

func (m *Manager) evictIdleLocked(now time.Time) {
	for id, s := range m.stores {
		if now.Sub(s.lastSeen) > sessionIdleTTL {
			delete(m.stores, id)
		}
	}
}

// Drop releases a finished session (after checkout).
func (m *Manager) Drop(cartID string) {
	m.mu.Lock()
	delete(m.stores, cartID)
	m.mu.Unlock()
}
