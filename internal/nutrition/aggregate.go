package nutrition

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks nutrition values that cannot be aggregated.
var ErrInvalidInput = errors.New("invalid input")

// Aggregate sums calories and macros across all entries of all meals.
// PURE business logic (NO http / NO pdf). Every entry is validated
// before anything is summed, so a bad value never yields a partial total.
func Aggregate(meals []Meal) (Totals, error) {
	for _, meal := range meals {
		for _, e := range meal.Entries {
			if err := checkEntry(meal.Label, e); err != nil {
				return Totals{}, err
			}
		}
	}

	var t Totals
	for _, meal := range meals {
		for _, e := range meal.Entries {
			t.Calories += e.Calories
			t.ProteinG += e.ProteinG
			t.CarbsG += e.CarbsG
			t.FatG += e.FatG
		}
	}
	return t, nil
}

// MealTotals is Aggregate restricted to a single meal.
func MealTotals(meal Meal) (Totals, error) {
	return Aggregate([]Meal{meal})
}

// EstimateCalories derives calories from macros (4/4/9 rule).
func EstimateCalories(proteinG, carbsG, fatG float64) float64 {
	return proteinG*4 + carbsG*4 + fatG*9
}

// --------------------------------------------------
// Target positioning
// --------------------------------------------------

// TargetPosition compares summed calories against the plan target
// with a ±10% band.
func TargetPosition(total, target float64) string {
	if target <= 0 {
		return ""
	}
	switch {
	case total < target*0.9:
		return "UNDER_TARGET"
	case total > target*1.1:
		return "OVER_TARGET"
	default:
		return "ON_TARGET"
	}
}

func checkEntry(label string, e FoodEntry) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"quantity", e.Quantity},
		{"calories", e.Calories},
		{"protein_g", e.ProteinG},
		{"carbs_g", e.CarbsG},
		{"fat_g", e.FatG},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s %s in meal %q", ErrInvalidInput, e.Name, f.name, label)
		}
	}
	return nil
}
