package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AbanoupRefat/meal-planner-app/internal/middleware"
	"github.com/AbanoupRefat/meal-planner-app/internal/planner"
)

// NewRouter wires every route of the API.
func NewRouter(
	handler *planner.Handler,
	sessions planner.SessionRepository,
	allowedOrigins []string,
) *gin.Engine {

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/sessions", handler.CreateSession)

	session := r.Group("/sessions/:sid")
	session.Use(middleware.RequireSession(sessions))
	{
		session.GET("/plan", handler.GetPlan)
		session.PATCH("/plan", handler.UpdateSettings)
		session.POST("/meals", handler.AddMeal)
		session.POST("/meals/:meal/entries", handler.AddEntry)
		session.PUT("/meals/:meal/entries/:entry", handler.EditEntry)
		session.DELETE("/meals/:meal/entries/:entry", handler.RemoveEntry)
		session.POST("/export", handler.ExportPlan)
		session.DELETE("", handler.EndSession)
	}

	return r
}
