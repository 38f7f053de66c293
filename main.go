package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AbanoupRefat/meal-planner-app/internal/middleware"
	"github.com/AbanoupRefat/meal-planner-app/internal/planner"
	"github.com/AbanoupRefat/meal-planner-app/internal/report"
)

// Minimal dev entrypoint: no CORS, no font download, default theme.
// The full server lives in cmd/api.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	// Create Gin router
	r := gin.Default()

	// Planner dependencies
	sessionRepo := planner.NewInMemorySessionRepository()
	builder := report.NewBuilder(report.NewFontRegistry("fonts"), report.DefaultTheme())
	service := planner.NewService(sessionRepo, builder)
	handler := planner.NewHandler(service)

	// Session routes
	r.POST("/sessions", handler.CreateSession)

	sessions := r.Group("/sessions/:sid")
	sessions.Use(middleware.RequireSession(sessionRepo))
	{
		sessions.GET("/plan", handler.GetPlan)
		sessions.PATCH("/plan", handler.UpdateSettings)
		sessions.POST("/meals", handler.AddMeal)
		sessions.POST("/meals/:meal/entries", handler.AddEntry)
		sessions.PUT("/meals/:meal/entries/:entry", handler.EditEntry)
		sessions.DELETE("/meals/:meal/entries/:entry", handler.RemoveEntry)
		sessions.POST("/export", handler.ExportPlan)
		sessions.DELETE("", handler.EndSession)
	}

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Start server
	log.Println("Server running on http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
