// seed registers a demo user and fills the coming week with entries in the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
	"github.com/ErlanBelekov/shift-calendar/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/shift-calendar/internal/token"
	"github.com/ErlanBelekov/shift-calendar/internal/usecase"
)

const (
	seedUsername = "demo"
	seedEmail    = "demo@test.local"
	seedPassword = "demo-password"
)

type daySpec struct {
	entryType domain.EntryType
	hours     float64
}

// One week starting next Monday.
var week = []daySpec{
	{domain.EntryWork, 8},
	{domain.EntryWork, 8},
	{domain.EntryBusinessTrip, 0},
	{domain.EntryBusinessTrip, 0},
	{domain.EntryWork, 6.5},
	{domain.EntryVacation, 0},
	{domain.EntrySickLeave, 0},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}
	// Tokens are only issued here to print a ready-to-use one; the server must share the secret.
	secret := os.Getenv("JWT_SECRET")
	if len(secret) < 32 {
		log.Fatal("JWT_SECRET must be set (at least 32 characters)")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	tokens, err := token.New(token.Config{Secret: []byte(secret)})
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	auth := usecase.NewAuthUsecase(postgres.NewUserRepository(pool), tokens)
	entries := usecase.NewEntryUsecase(postgres.NewEntryRepository(pool))

	_, err = auth.Register(ctx, usecase.RegisterInput{Username: seedUsername, Email: seedEmail, Password: seedPassword})
	created := err == nil
	if err != nil && !errors.Is(err, domain.ErrUsernameTaken) {
		log.Fatalf("register: %v", err)
	}

	login, err := auth.Login(ctx, seedUsername, seedPassword)
	if err != nil {
		log.Fatalf("login (was %q registered with another password?): %v", seedUsername, err)
	}

	existing, err := entries.List(ctx, login.UserID)
	if err != nil {
		log.Fatalf("list entries: %v", err)
	}

	var inserted int
	if len(existing) == 0 {
		monday := nextMonday(time.Now())
		for i, day := range week {
			in := usecase.EntryInput{
				Date:      monday.AddDate(0, 0, i).Format(domain.DateLayout),
				EntryType: string(day.entryType),
			}
			if day.entryType == domain.EntryWork {
				hours := day.hours
				in.WorkHours = &hours
			}
			if _, err := entries.Create(ctx, login.UserID, in); err != nil {
				log.Fatalf("create entry %s: %v", in.Date, err)
			}
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:            %s / %s (created: %v)\n", seedUsername, seedPassword, created)
	fmt.Printf("  User ID:         %s\n", login.UserID)
	fmt.Printf("  Entries created: %d  (existing %d)\n", inserted, len(existing))
	fmt.Printf("  Token expires:   %s\n", login.ExpiresAt.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/api/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"username\":\"%s\",\"password\":\"%s\"}'\n", seedUsername, seedPassword)
	fmt.Println()
	fmt.Println("    # or use this token directly:")
	fmt.Println()
	fmt.Printf("    export JWT=%s\n", login.Token)
	fmt.Println()
	fmt.Println("  Step 2 — list the week:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/api/calendar -H \"Authorization: Bearer $JWT\"")
	fmt.Println()
	fmt.Println("  Step 3 — try an invalid entry (work without hours → 400):")
	fmt.Println()
	fmt.Println("    curl -s -X POST http://localhost:8080/api/calendar/add \\")
	fmt.Println("      -H \"Authorization: Bearer $JWT\" -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"date\":\"2024-01-05\",\"entry_type\":\"work\"}'")
}

func nextMonday(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return d.AddDate(0, 0, offset)
}
