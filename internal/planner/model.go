package planner

import (
	"time"

	"github.com/AbanoupRefat/meal-planner-app/internal/nutrition"
)

// Session is the domain entity: one open planning form.
// Lives in memory only; ends when the user discards it.
type Session struct {
	ID        string             `json:"id"`
	Plan      nutrition.MealPlan `json:"plan"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// PlanSummary is the read model served back after every form action.
// Totals are recomputed from the entries on each call, never cached.
type PlanSummary struct {
	SessionID      string             `json:"session_id"`
	Plan           nutrition.MealPlan `json:"plan"`
	DayTotals      nutrition.Totals   `json:"day_totals"`
	MealTotals     []nutrition.Totals `json:"meal_totals"`
	MacroCalories  float64            `json:"macro_calories"`
	TargetPosition string             `json:"target_position,omitempty"`
}

// Export is a rendered report ready for download.
type Export struct {
	Filename string
	Data     []byte
}
