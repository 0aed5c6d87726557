package categories

import "time"

type Category struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_categories_name"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Category) TableName() string { return "categories" }
