// Package favorites keeps a user's favorited products. The original
// implementation wrote under one storage key and read under a misspelled
// other ("favorits"), so favorites never survived a reload; here a single
// key is used for both directions.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"modakart.com/app/internal/modules/catalog"
)

type Item struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Brand      string `json:"brand"`
	ImageURL   string `json:"image_url"`
	PriceCents int64  `json:"price_cents"`
}

func ItemFromProduct(p catalog.Product) Item {
	return Item{
		ProductID:  p.ID,
		Name:       p.Name,
		Slug:       p.Slug,
		Brand:      p.Brand,
		ImageURL:   p.ImageURL,
		PriceCents: p.PriceCents,
	}
}

type Persister interface {
	LoadFavorites(ctx context.Context, ownerID string) ([]Item, error)
	SaveFavorites(ctx context.Context, ownerID string, items []Item) error
}

// the one true key prefix; read and write must agree
const keyPrefix = "favorites:"

const favoritesTTL = 180 * 24 * time.Hour

type RedisPersister struct {
	rdb *redis.Client
}

func NewRedisPersister(rdb *redis.Client) *RedisPersister {
	return &RedisPersister{rdb: rdb}
}

func (p *RedisPersister) LoadFavorites(ctx context.Context, ownerID string) ([]Item, error) {
	raw, err := p.rdb.Get(ctx, keyPrefix+ownerID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

func (p *RedisPersister) SaveFavorites(ctx context.Context, ownerID string, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, keyPrefix+ownerID, raw, favoritesTTL).Err()
}

// Store owns one user's favorites. Persistence is best effort: a failed save
// keeps the in-memory set and logs.
type Store struct {
	mu      sync.Mutex
	ownerID string
	items   []Item
	kv      Persister
	log     *slog.Logger

	nextSub int
	subs    map[int]func(count int)
}

func NewStore(ownerID string, kv Persister, log *slog.Logger) *Store {
	return &Store{ownerID: ownerID, kv: kv, log: log, subs: map[int]func(int){}}
}

func (s *Store) Load(ctx context.Context) {
	items, err := s.kv.LoadFavorites(ctx, s.ownerID)
	if err != nil {
		s.log.Warn("favorites load failed", "owner", s.ownerID, "err", err)
		return
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Add is idempotent: favoriting a product twice keeps one entry.
func (s *Store) Add(ctx context.Context, it Item) {
	s.mu.Lock()
	for _, have := range s.items {
		if have.ProductID == it.ProductID {
			s.mu.Unlock()
			return
		}
	}
	s.items = append(s.items, it)
	items, count := s.copyLocked()
	s.mu.Unlock()

	s.persist(ctx, items)
	s.notify(count)
}

func (s *Store) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	found := -1
	for i, have := range s.items {
		if have.ProductID == productID {
			found = i
			break
		}
	}
	if found < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:found], s.items[found+1:]...)
	items, count := s.copyLocked()
	s.mu.Unlock()

	s.persist(ctx, items)
	s.notify(count)
}

func (s *Store) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, _ := s.copyLocked()
	return items
}

// Count feeds the navbar badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) Subscribe(fn func(count int)) func() {
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

func (s *Store) copyLocked() ([]Item, int) {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, len(out)
}

func (s *Store) persist(ctx context.Context, items []Item) {
	if err := s.kv.SaveFavorites(ctx, s.ownerID, items); err != nil {
		s.log.Warn("favorites save failed", "owner", s.ownerID, "err", err)
	}
}

func (s *Store) notify(count int) {
	s.mu.Lock()
	fns := make([]func(int), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(count)
	}
}

// sessionIdleTTL bounds the in-memory session map; the favorites themselves
// live in the KV store and reload on the next visit.
const sessionIdleTTL = time.Hour

type session struct {
	store    *Store
	lastSeen time.Time
}

// Manager mirrors cart.Manager: one live store per owner, idle sessions
// evicted lazily.
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

func (m *Manager) Session(ctx context.Context, ownerID string) *Store {
	m.mu.Lock()
	now := m.now()
	for id, s := range m.stores {
		if now.Sub(s.lastSeen) > sessionIdleTTL {
			delete(m.stores, id)
		}
	}

	if s, ok := m.stores[ownerID]; ok {
		s.lastSeen = now
		m.mu.Unlock()
		return s.store
	}

	st := NewStore(ownerID, m.kv, m.log)
	m.stores[ownerID] = &session{store: st, lastSeen: now}
	m.mu.Unlock()
	st.Load(ctx)
	return st
}
