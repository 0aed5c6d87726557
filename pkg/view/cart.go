package view

import "modakart.com/app/internal/modules/cart"

type CartItem struct {
	ProductID    string `json:"product"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Brand        string `json:"brand"`
	ImageURL     string `json:"image"`
	PriceCents   int64  `json:"priceCents"`
	Price        string `json:"price"`
	CountInStock int    `json:"countInStock"`
	Qty          int    `json:"qty"`
}

type Cart struct {
	Items      []CartItem `json:"cartItems"`
	TotalQty   int        `json:"totalQty"`
	TotalCents int64      `json:"totalCents"`
	Total      string     `json:"total"`
}

func FromCart(snap cart.Snapshot) Cart {
	out := Cart{
		Items:      make([]CartItem, 0, len(snap.Items)),
		TotalQty:   snap.TotalQty,
		TotalCents: snap.TotalPriceCents,
		Total:      MoneyFromCents(snap.TotalPriceCents, "USD"),
	}
	for _, it := range snap.Items {
		out.Items = append(out.Items, CartItem{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Slug:         it.Slug,
			Brand:        it.Brand,
			ImageURL:     it.ImageURL,
			PriceCents:   it.PriceCents,
			Price:        MoneyFromCents(it.PriceCents, "USD"),
			CountInStock: it.CountInStock,
			Qty:          it.Qty,
		})
	}
	return out
}
