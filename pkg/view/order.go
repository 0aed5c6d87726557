package view

import (
	"time"

	"modakart.com/app/internal/modules/orders"
)

type OrderItem struct {
	ProductID  string `json:"product"`
	Name       string `json:"name"`
	ImageURL   string `json:"image"`
	PriceCents int64  `json:"priceCents"`
	Price      string `json:"price"`
	Qty        int    `json:"qty"`
}

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user"`
	Status        string      `json:"status"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	PostalCode    string      `json:"postalCode"`
	Country       string      `json:"country"`
	PaymentMethod string      `json:"paymentMethod"`
	ItemsCents    int64       `json:"itemsCents"`
	ShippingCents int64       `json:"shippingCents"`
	TaxCents      int64       `json:"taxCents"`
	TotalCents    int64       `json:"totalCents"`
	Total         string      `json:"total"`
	IsPaid        bool        `json:"isPaid"`
	PaidAt        *string     `json:"paidAt,omitempty"`
	IsDelivered   bool        `json:"isDelivered"`
	DeliveredAt   *string     `json:"deliveredAt,omitempty"`
	Items         []OrderItem `json:"orderItems"`
	CreatedAt     string      `json:"createdAt"`
}

func FromOrder(o orders.Order) Order {
	out := Order{
		ID:            o.ID,
		UserID:        o.UserID,
		Status:        o.Status,
		Address:       o.Address,
		City:          o.City,
		PostalCode:    o.PostalCode,
		Country:       o.Country,
		PaymentMethod: o.PaymentMethod,
		ItemsCents:    o.ItemsCents,
		ShippingCents: o.ShippingCents,
		TaxCents:      o.TaxCents,
		TotalCents:    o.TotalCents,
		Total:         MoneyFromCents(o.TotalCents, "USD"),
		IsPaid:        o.IsPaid,
		IsDelivered:   o.IsDelivered,
		PaidAt:        fmtTimePtr(o.PaidAt),
		DeliveredAt:   fmtTimePtr(o.DeliveredAt),
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		Items:         make([]OrderItem, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, OrderItem{
			ProductID:  it.ProductID,
			Name:       it.Name,
			ImageURL:   it.ImageURL,
			PriceCents: it.PriceCents,
			Price:      MoneyFromCents(it.PriceCents, "USD"),
			Qty:        it.Qty,
		})
	}
	return out
}

func FromOrders(os []orders.Order) []Order {
	out := make([]Order, 0, len(os))
	for _, o := range os {
		out = append(out, FromOrder(o))
	}
	return out
}

func fmtTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
