package orders

import "time"

type Order struct {
	ID     string  `gorm:"primaryKey;type:char(36)"`
	UserID string  `gorm:"type:char(36);not null;index:ix_orders_user_id"`
	Status string  `gorm:"type:varchar(20);not null;default:'pending'"`

	Address       string `gorm:"type:varchar(255);not null"`
	City          string `gorm:"type:varchar(100);not null"`
	PostalCode    string `gorm:"type:varchar(32);not null"`
	Country       string `gorm:"type:varchar(100);not null"`
	PaymentMethod string `gorm:"type:varchar(32);not null"`

	ItemsCents    int64 `gorm:"not null"`
	ShippingCents int64 `gorm:"not null"`
	TaxCents      int64 `gorm:"not null"`
	TotalCents    int64 `gorm:"not null"`

	IsPaid      bool       `gorm:"not null;default:0"`
	PaidAt      *time.Time `gorm:"type:datetime(3)"`
	IsDelivered bool       `gorm:"not null;default:0"`
	DeliveredAt *time.Time `gorm:"type:datetime(3)"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	OrderID   string `gorm:"type:char(36);not null;index:ix_order_items_order_id"`
	ProductID string `gorm:"type:char(36);not null;index:ix_order_items_product_id"`

	Name       string `gorm:"type:varchar(255);not null"`
	ImageURL   string `gorm:"type:varchar(512)"`
	PriceCents int64  `gorm:"not null"`
	Qty        int    `gorm:"not null"`
	LineCents  int64  `gorm:"not null"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (OrderItem) TableName() string { return "order_items" }
