package planner

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbanoupRefat/meal-planner-app/internal/nutrition"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /sessions
// --------------------------------------------------
func (h *Handler) CreateSession(c *gin.Context) {
	var req struct {
		CalorieTarget *float64 `json:"calorie_target"`
		ClientName    string   `json:"client_name"`
	}

	// body is optional: an empty POST starts a default session
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	summary, err := h.service.CreateSession(req.CalorieTarget, req.ClientName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// --------------------------------------------------
// GET /sessions/:sid/plan
// --------------------------------------------------
func (h *Handler) GetPlan(c *gin.Context) {
	summary, err := h.service.GetPlan(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// PATCH /sessions/:sid/plan
// --------------------------------------------------
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req struct {
		CalorieTarget *float64 `json:"calorie_target"`
		ClientName    *string  `json:"client_name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	summary, err := h.service.UpdateSettings(c.Param("sid"), req.CalorieTarget, req.ClientName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// POST /sessions/:sid/meals
// --------------------------------------------------
func (h *Handler) AddMeal(c *gin.Context) {
	var req struct {
		Label string `json:"label"`
	}

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	summary, err := h.service.AddMeal(c.Param("sid"), req.Label)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// --------------------------------------------------
// POST /sessions/:sid/meals/:meal/entries
// --------------------------------------------------
func (h *Handler) AddEntry(c *gin.Context) {
	mealIndex, ok := indexParam(c, "meal", "invalid meal index")
	if !ok {
		return
	}

	var entry nutrition.FoodEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	summary, err := h.service.AddEntry(c.Param("sid"), mealIndex, entry)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// --------------------------------------------------
// PUT /sessions/:sid/meals/:meal/entries/:entry
// --------------------------------------------------
func (h *Handler) EditEntry(c *gin.Context) {
	mealIndex, ok := indexParam(c, "meal", "invalid meal index")
	if !ok {
		return
	}
	entryIndex, ok := indexParam(c, "entry", "invalid entry index")
	if !ok {
		return
	}

	var entry nutrition.FoodEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	summary, err := h.service.EditEntry(c.Param("sid"), mealIndex, entryIndex, entry)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// DELETE /sessions/:sid/meals/:meal/entries/:entry
// --------------------------------------------------
func (h *Handler) RemoveEntry(c *gin.Context) {
	mealIndex, ok := indexParam(c, "meal", "invalid meal index")
	if !ok {
		return
	}
	entryIndex, ok := indexParam(c, "entry", "invalid entry index")
	if !ok {
		return
	}

	summary, err := h.service.RemoveEntry(c.Param("sid"), mealIndex, entryIndex)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// POST /sessions/:sid/export
// --------------------------------------------------
func (h *Handler) ExportPlan(c *gin.Context) {
	export, err := h.service.Export(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	c.Data(http.StatusOK, "application/pdf", export.Data)
}

// --------------------------------------------------
// DELETE /sessions/:sid
// --------------------------------------------------
func (h *Handler) EndSession(c *gin.Context) {
	if err := h.service.EndSession(c.Param("sid")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "session ended"})
}

// --------------------------------------------------

// respondError maps service sentinels to status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrMealNotFound),
		errors.Is(err, ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, nutrition.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func indexParam(c *gin.Context, name, message string) (int, bool) {
	var index int
	if _, err := fmt.Sscanf(c.Param(name), "%d", &index); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return 0, false
	}
	return index, true
}
