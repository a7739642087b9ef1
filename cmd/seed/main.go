// seed inserts a test user and a handful of job postings into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/careerhub/job-board/internal/infrastructure/postgres"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password"
)

type jobSpec struct {
	title       string
	company     string
	location    string
	jobType     string
	description string
}

var jobs = []jobSpec{
	{"Backend Engineer", "Acme", "Remote", "Full-time", "Own the Postgres-backed services."},
	{"Frontend Engineer", "Acme", "Berlin", "Full-time", "React dashboard work."},
	{"SRE", "Initech", "Remote", "Full-time", "On-call rotation, Prometheus, runbooks."},
	{"Data Analyst", "Initech", "Austin", "Part-time", "SQL-heavy reporting role."},
	{"QA Engineer", "Globex", "Lisbon", "Contract", "Release verification for the mobile apps."},
	{"iOS Developer", "Globex", "Remote", "Full-time", "Swift, small team, fast releases."},
	{"Tech Writer", "Hooli", "Remote", "Internship", "API docs and tutorials."},
	{"Engineering Manager", "Hooli", "NYC", "Full-time", "Lead a team of six."},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert test user
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ('Seed User', $1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		seedEmail, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	// Insert postings, skip ones that are already there (idempotent re-runs)
	var inserted, skipped int
	for _, spec := range jobs {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO jobs (title, company, location, job_type, description)
			SELECT $1, $2, $3, $4, $5
			WHERE NOT EXISTS (
				SELECT 1 FROM jobs WHERE title = $1 AND company = $2
			)
			RETURNING id`,
			spec.title, spec.company, spec.location, spec.jobType, spec.description,
		).Scan(&id)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			skipped++
		case err != nil:
			log.Fatalf("insert job %q: %v", spec.title, err)
		default:
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:         %s  (password: %s)\n", seedEmail, seedPassword)
	fmt.Printf("  User ID:      %s\n", userID)
	fmt.Printf("  Jobs created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println("    # → {\"token\":\"eyJ...\"}")
	fmt.Println()
	fmt.Println("  Step 2 — list postings (requires the token):")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/jobs -H \"Authorization: Bearer $JWT\"")
	fmt.Println()
	fmt.Println("  Step 3 — fetch one posting (no token needed):")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/jobs/JOB_ID")
}
