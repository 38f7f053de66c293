package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/AbanoupRefat/meal-planner-app/internal/config"
	"github.com/AbanoupRefat/meal-planner-app/internal/report"
)

// One-shot tool: download the report fonts ahead of time, so deploys
// without outbound network can still render Arabic.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	cfg := config.Load()

	log.Printf("⬇️  Fetching Noto Sans Arabic into %s ...", cfg.FontDir)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fonts := report.NewFontRegistry(cfg.FontDir)
	if err := fonts.Ensure(ctx); err != nil {
		log.Fatalf("❌ Font download failed: %v", err)
	}

	log.Println("✅ Fonts ready")
}
