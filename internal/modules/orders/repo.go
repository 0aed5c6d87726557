package orders

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// DB returns the underlying connection; Service uses it to run the place-order
// transaction.
func (r *Repo) DB() *gorm.DB { return r.db }

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var items []Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) List(ctx context.Context, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var items []Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&o, "id = ?", id).Error
	return o, err
}

func (r *Repo) MarkPaid(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", id).Error; err != nil {
			return err
		}
		if o.IsPaid {
			return ErrAlreadyPaid
		}
		now := time.Now()
		return tx.Model(&Order{}).Where("id = ?", id).Updates(map[string]any{
			"is_paid":    true,
			"paid_at":    now,
			"status":     "paid",
			"updated_at": now,
		}).Error
	})
}

func (r *Repo) MarkDelivered(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", id).Error; err != nil {
			return err
		}
		if !o.IsPaid {
			return ErrNotPaid
		}
		if o.IsDelivered {
			return ErrAlreadyShipped
		}
		now := time.Now()
		return tx.Model(&Order{}).Where("id = ?", id).Updates(map[string]any{
			"is_delivered": true,
			"delivered_at": now,
			"status":       "delivered",
			"updated_at":   now,
		}).Error
	})
}
