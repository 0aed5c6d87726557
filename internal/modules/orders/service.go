package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modakart.com/app/internal/modules/cart"
	"modakart.com/app/internal/modules/checkout"
)

// free shipping above this subtotal, flat rate below
const (
	freeShippingCents = 10000
	flatShippingCents = 1000
	taxRatePercent    = 15
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service { return &Service{repo: repo} }

// Totals breaks an order's price down the way the storefront displays it.
type Totals struct {
	ItemsCents    int64
	ShippingCents int64
	TaxCents      int64
	TotalCents    int64
}

func ComputeTotals(items []cart.Item) Totals {
	var sub int64
	for _, it := range items {
		sub += it.PriceCents * int64(it.Qty)
	}
	t := Totals{ItemsCents: sub}
	if sub > 0 && sub <= freeShippingCents {
		t.ShippingCents = flatShippingCents
	}
	t.TaxCents = sub * taxRatePercent / 100
	t.TotalCents = t.ItemsCents + t.ShippingCents + t.TaxCents
	return t
}

// PlaceOrder turns a cart plus a completed checkout draft into a persisted
// order. Stock deduction and order insert happen in one transaction; an out
// of stock line aborts everything.
func (s *Service) PlaceOrder(ctx context.Context, userID string, items []cart.Item, draft checkout.Draft) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	totals := ComputeTotals(items)
	now := time.Now()
	o := Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Status:        "pending",
		Address:       draft.Address,
		City:          draft.City,
		PostalCode:    draft.PostalCode,
		Country:       draft.Country,
		PaymentMethod: string(draft.PaymentMethod),
		ItemsCents:    totals.ItemsCents,
		ShippingCents: totals.ShippingCents,
		TaxCents:      totals.TaxCents,
		TotalCents:    totals.TotalCents,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	lines := make([]checkout.StockLine, len(items))
	rows := make([]OrderItem, len(items))
	for i, it := range items {
		lines[i] = checkout.StockLine{ProductID: it.ProductID, Qty: it.Qty}
		rows[i] = OrderItem{
			ID:         uuid.NewString(),
			OrderID:    o.ID,
			ProductID:  it.ProductID,
			Name:       it.Name,
			ImageURL:   it.ImageURL,
			PriceCents: it.PriceCents,
			Qty:        it.Qty,
			LineCents:  it.PriceCents * int64(it.Qty),
			CreatedAt:  now,
		}
	}

	err := checkout.WithTxRetry(ctx, s.repo.DB(), 3, func(tx *gorm.DB) error {
		if err := checkout.DeductStockInTx(ctx, tx, lines); err != nil {
			return err
		}
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return Order{}, err
	}

	o.Items = rows
	return o, nil
}
