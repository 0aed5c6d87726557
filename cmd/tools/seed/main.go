// Seeds a development database with an admin user, a few categories and a
// small product catalog. Idempotent: existing rows are left alone.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"modakart.com/app/internal/modules/catalog"
	"modakart.com/app/internal/modules/categories"
	"modakart.com/app/internal/modules/users"
	"modakart.com/app/internal/shared/slug"
)

type seedProduct struct {
	Name       string
	Brand      string
	Category   string
	PriceCents int64
	Stock      int
}

var seedCategories = []string{"Clothing", "Shoes", "Accessories"}

var seedProducts = []seedProduct{
	{Name: "Classic Denim Jacket", Brand: "Levon", Category: "Clothing", PriceCents: 7999, Stock: 25},
	{Name: "Linen Summer Shirt", Brand: "Arden", Category: "Clothing", PriceCents: 3499, Stock: 40},
	{Name: "Wool Overcoat", Brand: "Levon", Category: "Clothing", PriceCents: 18999, Stock: 10},
	{Name: "Canvas Low Sneaker", Brand: "Strade", Category: "Shoes", PriceCents: 5999, Stock: 30},
	{Name: "Leather Chelsea Boot", Brand: "Strade", Category: "Shoes", PriceCents: 12999, Stock: 15},
	{Name: "Trail Running Shoe", Brand: "Kinet", Category: "Shoes", PriceCents: 8999, Stock: 22},
	{Name: "Braided Leather Belt", Brand: "Arden", Category: "Accessories", PriceCents: 2499, Stock: 50},
	{Name: "Canvas Weekender Bag", Brand: "Levon", Category: "Accessories", PriceCents: 6499, Stock: 12},
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	usersRepo := users.NewRepo(db)
	if err := seedAdmin(ctx, db, usersRepo); err != nil {
		log.Fatalf("seeding admin failed: %v", err)
	}

	catRepo := categories.NewRepo(db)
	catIDs := map[string]string{}
	for _, name := range seedCategories {
		c, err := catRepo.Create(ctx, name)
		if err != nil {
			if !errors.Is(err, categories.ErrNameTaken) {
				log.Fatalf("seeding category %q failed: %v", name, err)
			}
			existing, err := findCategory(ctx, catRepo, name)
			if err != nil {
				log.Fatalf("looking up category %q failed: %v", name, err)
			}
			c = existing
		}
		catIDs[name] = c.ID
	}

	prodRepo := catalog.NewRepo(db)
	for _, sp := range seedProducts {
		_, err := prodRepo.Create(ctx, catalog.ProductInput{
			Name:         sp.Name,
			Slug:         slug.FromName(sp.Name),
			Brand:        sp.Brand,
			CategoryID:   catIDs[sp.Category],
			PriceCents:   sp.PriceCents,
			CountInStock: sp.Stock,
		})
		if err != nil && !errors.Is(err, catalog.ErrSlugTaken) {
			log.Fatalf("seeding product %q failed: %v", sp.Name, err)
		}
	}

	log.Println("seed complete")
}

func seedAdmin(ctx context.Context, db *gorm.DB, repo *users.Repo) error {
	email := envOr("SEED_ADMIN_EMAIL", "admin@example.com")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u, err := repo.Create(ctx, "admin", email, string(hash))
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil
		}
		return err
	}
	return db.WithContext(ctx).Model(&users.User{}).
		Where("id = ?", u.ID).Update("is_admin", true).Error
}

func findCategory(ctx context.Context, repo *categories.Repo, name string) (categories.Category, error) {
	list, err := repo.List(ctx)
	if err != nil {
		return categories.Category{}, err
	}
	for _, c := range list {
		if c.Name == name {
			return c, nil
		}
	}
	return categories.Category{}, errors.New("category not found after conflict")
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
