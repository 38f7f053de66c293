package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/AbanoupRefat/meal-planner-app/internal/config"
	"github.com/AbanoupRefat/meal-planner-app/internal/planner"
	"github.com/AbanoupRefat/meal-planner-app/internal/report"
	"github.com/AbanoupRefat/meal-planner-app/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.Load()

	// ───────────────────────── FONTS ─────────────────────────
	fonts := report.NewFontRegistry(cfg.FontDir)

	if cfg.FontDownload {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := fonts.Ensure(ctx); err != nil {
			log.Printf("⚠️  Arabic fonts unavailable, reports fall back to core fonts: %v", err)
		} else {
			log.Println("✅ Arabic fonts ready")
		}
		cancel()
	}

	// ───────────────────────── THEME ─────────────────────────
	theme := report.DefaultTheme()
	if cfg.ThemePath != "" {
		loaded, err := report.LoadTheme(cfg.ThemePath)
		if err != nil {
			log.Fatalf("❌ Failed to load report theme: %v", err)
		}
		theme = loaded
		log.Printf("✅ Report theme loaded from %s", cfg.ThemePath)
	}

	// ───────────────────────── WIRING ─────────────────────────
	sessionRepo := planner.NewInMemorySessionRepository()
	builder := report.NewBuilder(fonts, theme)
	service := planner.NewService(sessionRepo, builder)
	handler := planner.NewHandler(service)

	r := router.NewRouter(handler, sessionRepo, cfg.AllowedOrigins)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
