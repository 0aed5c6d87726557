package users

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrBadCredentials = errors.New("invalid email or password")

// ErrAdminDelete: admin accounts cannot be deleted through the API.
var ErrAdminDelete = errors.New("cannot delete admin user")

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service { return &Service{repo: repo} }

func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	return s.repo.Create(ctx, username, email, string(hash))
}

func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrBadCredentials
		}
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrBadCredentials
	}
	return u, nil
}

type ProfileInput struct {
	Username string
	Email    string
	Password string // empty keeps the current password
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (User, error) {
	upd := UpdateInput{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		upd.PasswordHash = string(hash)
	}
	return s.repo.Update(ctx, userID, upd)
}

// DeleteUser refuses to delete admin accounts, matching the original API.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	u, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if u.IsAdmin {
		return ErrAdminDelete
	}
	return s.repo.Delete(ctx, id)
}
