package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Persister is the external key-value store the cart survives in between
// visits. Both operations are best effort from the store's point of view.
type Persister interface {
	LoadCart(ctx context.Context, cartID string) ([]Item, error)
	SaveCart(ctx context.Context, cartID string, items []Item) error
}

const cartKeyPrefix = "cart:"

// carts are kept as long as the signed cart cookie stays valid
const cartTTL = 30 * 24 * time.Hour

type RedisPersister struct {
	rdb *redis.Client
}

func NewRedisPersister(rdb *redis.Client) *RedisPersister {
	return &RedisPersister{rdb: rdb}
}

func (p *RedisPersister) LoadCart(ctx context.Context, cartID string) ([]Item, error) {
	raw, err := p.rdb.Get(ctx, cartKeyPrefix+cartID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		// corrupt payload: start the cart over instead of failing the session
		return nil, nil
	}
	return items, nil
}

func (p *RedisPersister) SaveCart(ctx context.Context, cartID string, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, cartKeyPrefix+cartID, raw, cartTTL).Err()
}
