package models

import (
	"time"

	"github.com/google/uuid"
)

// Challenge types.
const (
	ChallengeWeeklyRecipe    = "weekly_recipe"
	ChallengeTechniqueMaster = "technique_master"
	ChallengeCuisineExplorer = "cuisine_explorer"
	ChallengeHealthyEating   = "healthy_eating"
	ChallengeMealPrep        = "meal_prep"
	ChallengeSpeedCooking    = "speed_cooking"
)

// ValidChallengeType reports whether t names a known challenge type.
func ValidChallengeType(t string) bool {
	switch t {
	case ChallengeWeeklyRecipe, ChallengeTechniqueMaster, ChallengeCuisineExplorer,
		ChallengeHealthyEating, ChallengeMealPrep, ChallengeSpeedCooking:
		return true
	}
	return false
}

type Challenge struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Type             string    `json:"challenge_type"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TargetRecipes    []string  `json:"target_recipes"`
	CompletedRecipes []string  `json:"completed_recipes"`
	Progress         float64   `json:"progress_percentage"`
	Rewards          []string  `json:"rewards"`
	Difficulty       string    `json:"difficulty"`
	Active           bool      `json:"is_active"`
}

type Collection struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Recipes     []string  `json:"recipes"`
	Tags        []string  `json:"tags,omitempty"`
	Public      bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CookedEntry records one cooked recipe in a user's history.
type CookedEntry struct {
	RecipeName string    `json:"recipe_name"`
	CookedAt   time.Time `json:"cooked_at"`
}

// CookingStats summarizes a user's cooking history.
type CookingStats struct {
	TotalRecipesCooked int           `json:"total_recipes_cooked"`
	MostCookedRecipe   string        `json:"most_cooked_recipe"`
	CookingStreakDays  int           `json:"cooking_streak_days"`
	RecentRecipes      []CookedEntry `json:"recent_recipes"`
}
