package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

var ErrSlugTaken = errors.New("product slug already taken")

func (r *Repo) List(ctx context.Context, limit, offset int) ([]Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	var items []Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&p, "id = ?", id).Error
	return p, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&p, "slug = ?", slug).Error
	return p, err
}

// FilteredParams is the server-side scope: category checkboxes plus the
// price-radio bracket. Brand and max-price refinement happen client-side on
// the returned base list.
type FilteredParams struct {
	CategoryIDs   []string
	MinPriceCents int64
	MaxPriceCents int64
}

func (r *Repo) Filtered(ctx context.Context, in FilteredParams) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&Product{})
	if len(in.CategoryIDs) > 0 {
		q = q.Where("category_id IN ?", in.CategoryIDs)
	}
	if in.MinPriceCents > 0 {
		q = q.Where("price_cents >= ?", in.MinPriceCents)
	}
	if in.MaxPriceCents > 0 {
		q = q.Where("price_cents <= ?", in.MaxPriceCents)
	}
	var items []Product
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *Repo) TopRated(ctx context.Context, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 4
	}
	var items []Product
	err := r.db.WithContext(ctx).
		Order("rating DESC, num_reviews DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *Repo) NewArrivals(ctx context.Context, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 5
	}
	var items []Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

type ProductInput struct {
	Name         string
	Slug         string
	Brand        string
	Description  string
	ImageURL     string
	CategoryID   string
	PriceCents   int64
	CountInStock int
}

func (r *Repo) Create(ctx context.Context, in ProductInput) (Product, error) {
	p := Product{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Slug:         in.Slug,
		Brand:        in.Brand,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		CategoryID:   in.CategoryID,
		PriceCents:   in.PriceCents,
		CountInStock: in.CountInStock,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isDuplicateEntry(err) {
			return Product{}, ErrSlugTaken
		}
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, id string, in ProductInput) error {
	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":           in.Name,
			"slug":           in.Slug,
			"brand":          in.Brand,
			"description":    in.Description,
			"image_url":      in.ImageURL,
			"category_id":    in.CategoryID,
			"price_cents":    in.PriceCents,
			"count_in_stock": in.CountInStock,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		if isDuplicateEntry(res.Error) {
			return ErrSlugTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}

var ErrAlreadyReviewed = errors.New("product already reviewed")

// AddReview inserts a review and recomputes the denormalized rating fields in
// one transaction. One review per user per product.
func (r *Repo) AddReview(ctx context.Context, productID, userID, userName string, rating int, comment string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&Review{}).
			Where("product_id = ? AND user_id = ?", productID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyReviewed
		}

		rev := Review{
			ID:        uuid.NewString(),
			ProductID: productID,
			UserID:    userID,
			Name:      userName,
			Rating:    rating,
			Comment:   comment,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&rev).Error; err != nil {
			return err
		}

		type agg struct {
			Avg   float64
			Count int64
		}
		var a agg
		if err := tx.Model(&Review{}).
			Select("AVG(rating) AS avg, COUNT(*) AS count").
			Where("product_id = ?", productID).
			Scan(&a).Error; err != nil {
			return err
		}

		return tx.Model(&Product{}).
			Where("id = ?", productID).
			Updates(map[string]any{
				"rating":      a.Avg,
				"num_reviews": a.Count,
				"updated_at":  time.Now(),
			}).Error
	})
}

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
