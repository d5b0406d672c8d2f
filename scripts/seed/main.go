package main

import (
	"fmt"
	"log"

	"github.com/midori-health/condition-tracker/internal/config"
	"github.com/midori-health/condition-tracker/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, cfg.SeedRand, cfg.SeedDays); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, id := range []string{
		"11111111-1111-1111-1111-111111111111 (Europe/Amsterdam)",
		"22222222-2222-2222-2222-222222222222 (America/New_York)",
		"33333333-3333-3333-3333-333333333333 (Asia/Tokyo)",
		"44444444-4444-4444-4444-444444444444 (Australia/Sydney)",
	} {
		fmt.Printf("  %s\n", id)
	}
}
