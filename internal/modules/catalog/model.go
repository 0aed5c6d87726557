package catalog

import "time"

// Product is the catalog row. Prices are stored in cents; the JSON shape the
// SPA consumes is produced by pkg/view.
type Product struct {
	ID          string `gorm:"primaryKey;type:char(36)"`
	Name        string `gorm:"type:varchar(255);not null"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex:ux_products_slug"`
	Brand       string `gorm:"type:varchar(100);not null;index:ix_products_brand"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:varchar(512)"`

	CategoryID string `gorm:"type:char(36);not null;index:ix_products_category_id"`

	PriceCents   int64   `gorm:"not null"`
	CountInStock int     `gorm:"not null;default:0"`
	Rating       float64 `gorm:"not null;default:0"`
	NumReviews   int     `gorm:"not null;default:0"`

	Reviews []Review `gorm:"foreignKey:ProductID"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Product) TableName() string { return "products" }

type Review struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	ProductID string    `gorm:"type:char(36);not null;index:ix_reviews_product_id"`
	UserID    string    `gorm:"type:char(36);not null;index:ix_reviews_user_id"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Review) TableName() string { return "product_reviews" }
