// seed creates the schema if needed and inserts an admin user plus a small
// catalog into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "admin@bookstore.local"
	seedName     = "Admin"
	seedPassword = "admin123"
)

// pgx's extended protocol takes one statement per Exec.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT        NOT NULL,
		email      TEXT        NOT NULL UNIQUE,
		password   TEXT        NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id         BIGSERIAL PRIMARY KEY,
		title      TEXT           NOT NULL,
		author     TEXT           NOT NULL,
		price      NUMERIC(10, 2) NOT NULL,
		created_at TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ    NOT NULL DEFAULT NOW()
	)`,
}

type bookSpec struct {
	title  string
	author string
	price  float64
}

var books = []bookSpec{
	{"The Go Programming Language", "Alan A. A. Donovan", 39.99},
	{"Designing Data-Intensive Applications", "Martin Kleppmann", 44.50},
	{"Clean Architecture", "Robert C. Martin", 29.95},
	{"The Pragmatic Programmer", "David Thomas", 34.99},
	{"Database Internals", "Alex Petrov", 41.00},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalf("create schema: %v", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert admin user (idempotent re-runs)
	var userID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		seedName, seedEmail, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	var inserted int
	for _, spec := range books {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM books WHERE title = $1 AND author = $2)`,
			spec.title, spec.author,
		).Scan(&exists)
		if err != nil {
			log.Fatalf("check book %q: %v", spec.title, err)
		}
		if exists {
			continue
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO books (title, author, price) VALUES ($1, $2, $3)`,
			spec.title, spec.author, spec.price,
		)
		if err != nil {
			log.Fatalf("insert book %q: %v", spec.title, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Admin:          %s / %s\n", seedEmail, seedPassword)
	fmt.Printf("  Admin user ID:  %d\n", userID)
	fmt.Printf("  Books inserted: %d  (skipped %d already existing)\n", inserted, len(books)-inserted)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println("    # → {\"token\":\"eyJ...\"}")
	fmt.Println()
	fmt.Println("  Step 2 — browse and mutate the catalog:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/books")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s -X POST http://localhost:8080/books \\")
	fmt.Println("      -H \"Authorization: Bearer $JWT\" -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"title\":\"T\",\"author\":\"Au\",\"price\":9.99}'")
	fmt.Println()
	fmt.Println("  Step 3 — open the admin UI:")
	fmt.Println()
	fmt.Println("    open http://localhost:8080/ui")
}
