package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/minhasfinancas/api/config"
	"github.com/minhasfinancas/api/pkg/helpers"
)

// Seeds a demo user with a handful of entries. Idempotent on the user
// email; entries are only inserted when the user has none.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "usuario@email.com"
	password := "123"
	stored := password
	if cfg.PasswordScheme != "plain" {
		stored, err = helpers.BcryptVerifier{}.Hash(password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, "usuario", email, stored).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", userID, email, password)

	var count int
	if err := db.QueryRow(`SELECT count(*) FROM entries WHERE user_id = $1`, userID).Scan(&count); err != nil {
		log.Fatalf("failed to count entries: %v", err)
	}
	if count > 0 {
		fmt.Printf("user already has %d entries, skipping\n", count)
		return
	}

	entries := []struct {
		description string
		month       int
		year        int
		value       string
		typ         string
		status      string
	}{
		{"Salary", 1, 2024, "5000.00", "INCOME", "SETTLED"},
		{"Rent", 1, 2024, "1200.00", "EXPENSE", "SETTLED"},
		{"Groceries", 1, 2024, "430.50", "EXPENSE", "PENDING"},
		{"Salary", 2, 2024, "5000.00", "INCOME", "PENDING"},
	}
	for _, e := range entries {
		if _, err := db.Exec(`
			INSERT INTO entries (description, month, year, value, user_id, type, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, e.description, e.month, e.year, e.value, userID, e.typ, e.status); err != nil {
			log.Fatalf("failed to seed entry %q: %v", e.description, err)
		}
	}
	fmt.Printf("seeded %d entries for user %d\n", len(entries), userID)
}
