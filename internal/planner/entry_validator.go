package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/AbanoupRefat/meal-planner-app/internal/nutrition"
)

// ValidateEntry checks one entry before it touches the plan.
// The name is trimmed in place; nothing else is mutated.
func ValidateEntry(entry *nutrition.FoodEntry) error {
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Name == "" {
		return fmt.Errorf("%w: food name is required", nutrition.ErrInvalidInput)
	}

	if !isFinite(entry.Quantity) || entry.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be a zero or positive number of grams", nutrition.ErrInvalidInput)
	}

	for _, v := range []float64{entry.Calories, entry.ProteinG, entry.CarbsG, entry.FatG} {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("%w: nutrition values must be zero or positive", nutrition.ErrInvalidInput)
		}
	}

	return nil
}

// ValidateTarget enforces the calorie slider range.
func ValidateTarget(target float64) error {
	if !isFinite(target) ||
		target < nutrition.MinCalorieTarget ||
		target > nutrition.MaxCalorieTarget {
		return fmt.Errorf(
			"%w: calorie target must be between %d and %d",
			nutrition.ErrInvalidInput,
			nutrition.MinCalorieTarget,
			nutrition.MaxCalorieTarget,
		)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
