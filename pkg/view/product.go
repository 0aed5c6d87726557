// Package view holds the JSON shapes the API returns. Handlers map domain
// structs into these so wire changes stay in one place.
package view

import "modakart.com/app/internal/modules/catalog"

type Review struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Username  string  `json:"username"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"`
}

type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Brand        string   `json:"brand"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image"`
	CategoryID   string   `json:"category"`
	PriceCents   int64    `json:"priceCents"`
	Price        string   `json:"price"`
	CountInStock int      `json:"countInStock"`
	Rating       float64  `json:"rating"`
	NumReviews   int      `json:"numReviews"`
	Reviews      []Review `json:"reviews,omitempty"`
}

func FromProduct(p catalog.Product) Product {
	out := Product{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Brand:        p.Brand,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		CategoryID:   p.CategoryID,
		PriceCents:   p.PriceCents,
		Price:        MoneyFromCents(p.PriceCents, "USD"),
		CountInStock: p.CountInStock,
		Rating:       p.Rating,
		NumReviews:   p.NumReviews,
	}
	for _, r := range p.Reviews {
		out.Reviews = append(out.Reviews, Review{
			ID:        r.ID,
			UserID:    r.UserID,
			Username:  r.Name,
			Rating:    float64(r.Rating),
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}

func FromProducts(ps []catalog.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
