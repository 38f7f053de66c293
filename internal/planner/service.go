package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AbanoupRefat/meal-planner-app/internal/nutrition"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMealNotFound    = errors.New("meal not found")
	ErrEntryNotFound   = errors.New("entry not found")
)

// Renderer turns a finished plan into a downloadable document.
type Renderer interface {
	Render(plan nutrition.MealPlan, totals nutrition.Totals) ([]byte, error)
}

type Service struct {
	repo     SessionRepository
	renderer Renderer
}

func NewService(repo SessionRepository, renderer Renderer) *Service {
	return &Service{repo: repo, renderer: renderer}
}

// --------------------------------------------------
// Start a session (seeded with the five default meals)
// --------------------------------------------------
func (s *Service) CreateSession(target *float64, clientName string) (*PlanSummary, error) {
	plan := nutrition.NewMealPlan()

	if target != nil {
		if err := ValidateTarget(*target); err != nil {
			return nil, err
		}
		plan.CalorieTarget = *target
	}
	plan.ClientName = strings.TrimSpace(clientName)

	now := time.Now()
	session := &Session{
		Plan:      *plan,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(session); err != nil {
		return nil, err
	}

	return s.summarize(session)
}

// --------------------------------------------------
// Read the current plan with fresh totals
// --------------------------------------------------
func (s *Service) GetPlan(sessionID string) (*PlanSummary, error) {
	session, err := s.repo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarize(session)
}

// --------------------------------------------------
// Update plan settings (PATCH: only provided fields)
// --------------------------------------------------
func (s *Service) UpdateSettings(
	sessionID string,
	target *float64,
	clientName *string,
) (*PlanSummary, error) {

	session, err := s.repo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	if target != nil {
		if err := ValidateTarget(*target); err != nil {
			return nil, err
		}
		session.Plan.CalorieTarget = *target
	}

	if clientName != nil {
		session.Plan.ClientName = strings.TrimSpace(*clientName)
	}

	return s.saveAndSummarize(session)
}

// --------------------------------------------------
// Append a meal
// --------------------------------------------------
func (s *Service) AddMeal(sessionID, label string) (*PlanSummary, error) {
	session, err := s.repo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	label = strings.TrimSpace(label)
	if label == "" {
		label = fmt.Sprintf("الوجبة %d", len(session.Plan.Meals)+1)
	}

	session.Plan.Meals = append(session.Plan.Meals, nutrition.Meal{
		Label:   label,
		Entries: []nutrition.FoodEntry{},
	})

	return s.saveAndSummarize(session)
}

// --------------------------------------------------
// Add an entry to one meal
// --------------------------------------------------
func (s *Service) AddEntry(
	sessionID string,
	mealIndex int,
	entry nutrition.FoodEntry,
) (*PlanSummary, error) {

	session, err := s.repo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	meal, err := mealAt(session, mealIndex)
	if err != nil {
		return nil, err
	}

	if err := ValidateEntry(&entry); err != nil {
		return nil, err
	}

	if len(meal.Entries) >= nutrition.MaxEntriesPerMeal {
		return nil, fmt.Errorf(
			"%w: a meal holds at most %d items",
			nutrition.ErrInvalidInput,
			nutrition.MaxEntriesPerMeal,
		)
	}

	meal.Entries = append(meal.Entries, entry)

	return s.saveAndSummarize(session)
}

// --------------------------------------------------
// Replace an entry (edit = full new value, never partial)
// --------------------------------------------------
func (s *Service) EditEntry(
	sessionID string,
	mealIndex int,
	entryIndex int,
	entry nutrition.FoodEntry,
) (*PlanSummary, error) {

	session, err := s.repo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	meal, err := mealAt(session, mealIndex)
	if err != nil {
		return nil, err
	}

	if entryIndex < 0 || entryIndex >= len(meal.Entries) {
		return nil, ErrEntryNotFound
	}

	if err := ValidateEntry(&entry); err != nil {
		return nil, err
	}

	meal.Entries[entryIndex] = entry

	return s.saveAndSummarize(session)
}

// --------------------------------------------------
// Remove an entry
// --------------------------------------------------
func (s *Service) RemoveEntry(
	sessionID string,
	mealIndex int,
	entryIndex int,
) (*PlanSummary, error) {

	session, err := s.repo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	meal, err := mealAt(session, mealIndex)
	if err != nil {
		return nil, err
	}

	if entryIndex < 0 || entryIndex >= len(meal.Entries) {
		return nil, ErrEntryNotFound
	}

	meal.Entries = append(meal.Entries[:entryIndex], meal.Entries[entryIndex+1:]...)

	return s.saveAndSummarize(session)
}

// --------------------------------------------------
// Export: aggregate, then render the report
// --------------------------------------------------
func (s *Service) Export(sessionID string) (*Export, error) {
	session, err := s.repo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	totals, err := nutrition.Aggregate(session.Plan.Meals)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(session.Plan, totals)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename: fmt.Sprintf("meal_plan_%d.pdf", int(session.Plan.CalorieTarget)),
		Data:     data,
	}, nil
}

// --------------------------------------------------
// End the session, discard all state
// --------------------------------------------------
func (s *Service) EndSession(sessionID string) error {
	return s.repo.Delete(sessionID)
}

// --------------------------------------------------

func (s *Service) saveAndSummarize(session *Session) (*PlanSummary, error) {
	session.UpdatedAt = time.Now()
	if err := s.repo.Save(session); err != nil {
		return nil, err
	}
	return s.summarize(session)
}

func (s *Service) summarize(session *Session) (*PlanSummary, error) {
	dayTotals, err := session.Plan.DayTotals()
	if err != nil {
		return nil, err
	}

	mealTotals := make([]nutrition.Totals, 0, len(session.Plan.Meals))
	for _, meal := range session.Plan.Meals {
		totals, err := nutrition.MealTotals(meal)
		if err != nil {
			return nil, err
		}
		mealTotals = append(mealTotals, totals)
	}

	return &PlanSummary{
		SessionID:      session.ID,
		Plan:           session.Plan,
		DayTotals:      dayTotals,
		MealTotals:     mealTotals,
		MacroCalories:  nutrition.EstimateCalories(dayTotals.ProteinG, dayTotals.CarbsG, dayTotals.FatG),
		TargetPosition: nutrition.TargetPosition(dayTotals.Calories, session.Plan.CalorieTarget),
	}, nil
}

func mealAt(session *Session, index int) (*nutrition.Meal, error) {
	if index < 0 || index >= len(session.Plan.Meals) {
		return nil, ErrMealNotFound
	}
	return &session.Plan.Meals[index], nil
}
