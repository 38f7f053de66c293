package nutrition

// FoodEntry is one food item inside a meal.
// Immutable once added: edits replace the whole value.
type FoodEntry struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"` // grams
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Meal is an ordered list of entries under one label.
type Meal struct {
	Label   string      `json:"label"`
	Entries []FoodEntry `json:"entries"`
}

// MealPlan is the whole editable document of one session.
// Day totals are always recomputed from the entries, never stored.
type MealPlan struct {
	Meals         []Meal  `json:"meals"`
	CalorieTarget float64 `json:"calorie_target"`
	ClientName    string  `json:"client_name,omitempty"`
}

// Totals holds summed nutrition fields for a meal or a whole day.
type Totals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Plan limits from the original program.
const (
	MinCalorieTarget     = 1000
	MaxCalorieTarget     = 5000
	DefaultCalorieTarget = 1700
	MaxEntriesPerMeal    = 10
)

// DefaultMealLabels seeds a new plan with the program's five meals.
var DefaultMealLabels = []string{
	"الوجبة الأولى",
	"الوجبة الثانية",
	"الوجبة الثالثة",
	"الوجبة الرابعة",
	"الوجبة الخامسة",
}

// NewMealPlan returns a plan seeded with the default meals and target.
func NewMealPlan() *MealPlan {
	meals := make([]Meal, 0, len(DefaultMealLabels))
	for _, label := range DefaultMealLabels {
		meals = append(meals, Meal{Label: label, Entries: []FoodEntry{}})
	}
	return &MealPlan{
		Meals:         meals,
		CalorieTarget: DefaultCalorieTarget,
	}
}

// DayTotals recomputes the plan-wide aggregate.
func (p *MealPlan) DayTotals() (Totals, error) {
	return Aggregate(p.Meals)
}
