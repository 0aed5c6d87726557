// Applies the SQL migrations in ./migrations to the database from DB_DSN.
// Usage: go run ./cmd/tools/applymigration [up|down]
package main

import (
	"errors"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	m, err := migrate.New("file://migrations", "mysql://"+dsn)
	if err != nil {
		log.Fatalf("migrate init failed: %v", err)
	}
	defer m.Close()

	dir := "up"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	switch dir {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		log.Fatalf("unknown direction %q (want up or down)", dir)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migrations applied")
}
