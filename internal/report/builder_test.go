package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/AbanoupRefat/meal-planner-app/internal/nutrition"
)

// fallbackBuilder renders with core fonts (empty fonts dir) so the
// output is deterministic without any font asset.
func fallbackBuilder(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(NewFontRegistry(t.TempDir()), DefaultTheme())
}

func latinPlan() nutrition.MealPlan {
	return nutrition.MealPlan{
		CalorieTarget: 1700,
		Meals: []nutrition.Meal{
			{Label: "breakfast", Entries: []nutrition.FoodEntry{
				{Name: "eggs", Quantity: 2, Calories: 140, ProteinG: 12, CarbsG: 1, FatG: 10},
			}},
		},
	}
}

func mustRender(t *testing.T, b *Builder, plan nutrition.MealPlan) []byte {
	t.Helper()
	totals, err := nutrition.Aggregate(plan.Meals)
	if err != nil {
		t.Fatalf("unexpected aggregate error: %v", err)
	}
	data, err := b.Render(plan, totals)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return data
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open rendered pdf: %v", err)
	}
	return r.NumPage()
}

func extractText(t *testing.T, data []byte) string {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open rendered pdf: %v", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			t.Fatalf("failed to extract text from page %d: %v", i, err)
		}
		sb.WriteString(text)
	}
	return sb.String()
}

func TestRenderProducesPDFBytes(t *testing.T) {
	data := mustRender(t, fallbackBuilder(t), latinPlan())

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with the pdf magic: %q", data[:8])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Fatalf("output has no trailer")
	}
}

func TestRenderSmallPlanFitsOnePage(t *testing.T) {
	data := mustRender(t, fallbackBuilder(t), latinPlan())

	if got := pageCount(t, data); got != 1 {
		t.Fatalf("expected 1 page, got %d", got)
	}
}

func TestRenderExtractedTextContainsCalories(t *testing.T) {
	data := mustRender(t, fallbackBuilder(t), latinPlan())

	text := extractText(t, data)
	if !strings.Contains(text, "140") {
		t.Fatalf("extracted text misses the calorie value: %q", text)
	}
	if !strings.Contains(text, "eggs") {
		t.Fatalf("extracted text misses the entry name: %q", text)
	}
}

func TestRenderOneTablePerMealPlusTotals(t *testing.T) {
	plan := nutrition.MealPlan{
		CalorieTarget: 2000,
		Meals: []nutrition.Meal{
			{Label: "Meal A", Entries: []nutrition.FoodEntry{{Name: "a", Quantity: 1}}},
			{Label: "Meal B", Entries: []nutrition.FoodEntry{{Name: "b", Quantity: 1}}},
			{Label: "Meal C", Entries: []nutrition.FoodEntry{{Name: "c", Quantity: 1}}},
		},
	}

	text := extractText(t, mustRender(t, fallbackBuilder(t), plan))

	for _, label := range []string{"Meal A", "Meal B", "Meal C"} {
		if !strings.Contains(text, label) {
			t.Fatalf("missing table for %q in %q", label, text)
		}
	}
	// the totals section carries the site line
	if !strings.Contains(text, "CAP-SHADOW.NETLIFY.APP") {
		t.Fatalf("missing totals section in %q", text)
	}
}

func TestRenderPaginatesLongPlans(t *testing.T) {
	plan := nutrition.MealPlan{CalorieTarget: 3000}
	for m := 0; m < 5; m++ {
		meal := nutrition.Meal{Label: "meal"}
		for e := 0; e < nutrition.MaxEntriesPerMeal; e++ {
			meal.Entries = append(meal.Entries, nutrition.FoodEntry{
				Name: "filler", Quantity: 100, Calories: 100, ProteinG: 5, CarbsG: 5, FatG: 5,
			})
		}
		plan.Meals = append(plan.Meals, meal)
	}

	data := mustRender(t, fallbackBuilder(t), plan)
	if got := pageCount(t, data); got < 2 {
		t.Fatalf("expected pagination for 50 rows, got %d page(s)", got)
	}
}

func TestRenderEmptyPlan(t *testing.T) {
	plan := nutrition.MealPlan{CalorieTarget: 1700}

	data := mustRender(t, fallbackBuilder(t), plan)
	if got := pageCount(t, data); got != 1 {
		t.Fatalf("expected a single page, got %d", got)
	}
}

func TestAmountCellBlankForZero(t *testing.T) {
	if got := amountCell(0); got != "" {
		t.Fatalf("zero amount should leave the cell blank, got %q", got)
	}
	if got := amountCell(2.5); got != "2.5" {
		t.Fatalf("got %q, want 2.5", got)
	}
}

func TestRenderRowWithZeroAmount(t *testing.T) {
	plan := nutrition.MealPlan{
		CalorieTarget: 1700,
		Meals: []nutrition.Meal{
			{Label: "breakfast", Entries: []nutrition.FoodEntry{{Name: "water"}}},
		},
	}

	text := extractText(t, mustRender(t, fallbackBuilder(t), plan))
	if !strings.Contains(text, "water") {
		t.Fatalf("zero-amount row missing from output: %q", text)
	}
}

func TestRenderWithArabicFontWhenAvailable(t *testing.T) {
	dir := os.Getenv("FONT_DIR")
	if dir == "" {
		t.Skip("FONT_DIR not set")
	}
	registry := NewFontRegistry(dir)
	if !registry.Available() {
		t.Skip("Noto Sans Arabic not present")
	}

	builder := NewBuilder(registry, DefaultTheme())
	plan := nutrition.NewMealPlan()
	plan.Meals[0].Entries = append(plan.Meals[0].Entries, nutrition.FoodEntry{
		Name: "بيض", Quantity: 2, Calories: 140, ProteinG: 12, CarbsG: 1, FatG: 10,
	})

	data := mustRender(t, builder, *plan)
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with the pdf magic")
	}
	if got := pageCount(t, data); got < 1 {
		t.Fatalf("expected at least one page, got %d", got)
	}
}

func TestDefaultThemeMatchesOriginalLook(t *testing.T) {
	theme := DefaultTheme()

	if theme.Margin != 20 {
		t.Fatalf("expected 20pt margins, got %v", theme.Margin)
	}
	if theme.HeaderText != (RGB{218, 165, 32}) {
		t.Fatalf("expected goldenrod header text, got %+v", theme.HeaderText)
	}
	if theme.Fill != (RGB{0, 0, 0}) {
		t.Fatalf("expected black fill, got %+v", theme.Fill)
	}
}

func TestLoadThemeOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("margin: 30\nwebsite: example.test\n"), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme.Margin != 30 {
		t.Fatalf("override lost: %v", theme.Margin)
	}
	if theme.Website != "example.test" {
		t.Fatalf("override lost: %q", theme.Website)
	}
	if theme.HeaderText != (RGB{218, 165, 32}) {
		t.Fatalf("default lost: %+v", theme.HeaderText)
	}
}

func TestLoadThemeMissingFileReturnsDefaults(t *testing.T) {
	theme, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if theme.Margin != 20 {
		t.Fatalf("defaults lost on error: %v", theme.Margin)
	}
}

func TestFontRegistryFallback(t *testing.T) {
	dir := t.TempDir()
	registry := NewFontRegistry(dir)

	if registry.Available() {
		t.Fatalf("empty dir should have no fonts")
	}

	// valid sfnt magic, regular only: bold falls back to regular
	ttf := append([]byte("\x00\x01\x00\x00"), make([]byte, 16)...)
	if err := os.WriteFile(filepath.Join(dir, RegularFontFile), ttf, 0o644); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}

	regular, bold, ok := registry.Load()
	if !ok {
		t.Fatalf("expected registry to load the regular weight")
	}
	if !bytes.Equal(regular, bold) {
		t.Fatalf("bold should fall back to the regular bytes")
	}

	// corrupt magic is rejected
	if err := os.WriteFile(filepath.Join(dir, RegularFontFile), []byte("not a font"), 0o644); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}
	if registry.Available() {
		t.Fatalf("corrupt file should not be served")
	}
}
