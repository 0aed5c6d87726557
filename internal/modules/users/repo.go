package users

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, username, email, passwordHash string) (User, error) {
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

func (r *Repo) ByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (r *Repo) ByID(ctx context.Context, id string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (r *Repo) List(ctx context.Context) ([]User, error) {
	var items []User
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

type UpdateInput struct {
	Username     string
	Email        string
	PasswordHash string // empty keeps the current hash
	IsAdmin      *bool  // nil keeps the current flag
}

func (r *Repo) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if in.Username != "" {
		updates["username"] = in.Username
	}
	if in.Email != "" {
		updates["email"] = in.Email
	}
	if in.PasswordHash != "" {
		updates["password_hash"] = in.PasswordHash
	}
	if in.IsAdmin != nil {
		updates["is_admin"] = *in.IsAdmin
	}

	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		var me *mysql.MySQLError
		if errors.As(res.Error, &me) && me.Number == 1062 {
			return User{}, ErrEmailTaken
		}
		return User{}, res.Error
	}
	if res.RowsAffected == 0 {
		// the row may exist with identical values; distinguish via lookup
		if _, err := r.ByID(ctx, id); err != nil {
			return User{}, err
		}
	}
	return r.ByID(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}
