package cart

import "modakart.com/app/internal/modules/catalog"

// Item is a product snapshot plus quantity. At most one Item per product ID
// lives in a cart.
type Item struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Brand        string `json:"brand"`
	ImageURL     string `json:"image_url"`
	PriceCents   int64  `json:"price_cents"`
	CountInStock int    `json:"count_in_stock"`
	Qty          int    `json:"qty"`
}

func ItemFromProduct(p catalog.Product, qty int) Item {
	return Item{
		ProductID:    p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Brand:        p.Brand,
		ImageURL:     p.ImageURL,
		PriceCents:   p.PriceCents,
		CountInStock: p.CountInStock,
		Qty:          qty,
	}
}

// Cart is the in-memory shape: an ordered collection of items. Not safe for
// concurrent use; Store adds the locking and ownership.
type Cart struct {
	items []Item
}

func New(items []Item) *Cart {
	c := &Cart{}
	for _, it := range items {
		if it.Qty < 1 || c.find(it.ProductID) >= 0 {
			continue // drop corrupt persisted entries
		}
		c.items = append(c.items, it)
	}
	return c
}

// AddItem inserts a new line. A product already present is rejected with
// ErrDuplicateItem and the cart stays untouched — no quantity merge.
func (c *Cart) AddItem(it Item) error {
	if it.Qty < 1 {
		return ErrBadQty
	}
	if c.find(it.ProductID) >= 0 {
		return ErrDuplicateItem
	}
	c.items = append(c.items, it)
	return nil
}

// RemoveItem drops the line if present. Removing an absent product is not an
// error.
func (c *Cart) RemoveItem(productID string) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

func (c *Cart) UpdateQty(productID string, qty int) error {
	if qty < 1 {
		return ErrBadQty
	}
	i := c.find(productID)
	if i < 0 {
		return ErrItemNotFound
	}
	c.items[i].Qty = qty
	return nil
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) TotalQty() int {
	n := 0
	for _, it := range c.items {
		n += it.Qty
	}
	return n
}

func (c *Cart) TotalPriceCents() int64 {
	var sum int64
	for _, it := range c.items {
		sum += it.PriceCents * int64(it.Qty)
	}
	return sum
}

func (c *Cart) find(productID string) int {
	for i, it := range c.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
