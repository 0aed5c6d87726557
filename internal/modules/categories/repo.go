package categories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNameTaken = errors.New("category name already exists")
	ErrEmptyName = errors.New("category name is required")
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Category, error) {
	var items []Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Category, error) {
	var c Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (r *Repo) Create(ctx context.Context, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyName
	}
	c := Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		if isDuplicateEntry(err) {
			return Category{}, ErrNameTaken
		}
		return Category{}, err
	}
	return c, nil
}

func (r *Repo) Update(ctx context.Context, id, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyName
	}
	res := r.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "updated_at": time.Now()})
	if res.Error != nil {
		if isDuplicateEntry(res.Error) {
			return Category{}, ErrNameTaken
		}
		return Category{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Category{}, gorm.ErrRecordNotFound
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id).Error
}

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
