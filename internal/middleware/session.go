package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbanoupRefat/meal-planner-app/internal/planner"
)

// RequireSession guards the /sessions/:sid routes: unknown ids are
// rejected before any handler runs.
func RequireSession(sessions planner.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.Param("sid")

		if sid == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
			c.Abort()
			return
		}

		if _, err := sessions.FindByID(sid); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			c.Abort()
			return
		}

		// Attach session info to request context
		c.Set("sessionID", sid)
		c.Next()
	}
}
