package models

import (
	"time"

	"github.com/google/uuid"
)

// PlannedMeal is one slot in a meal plan day.
type PlannedMeal struct {
	Recipe     string `json:"recipe"`
	PrepTime   string `json:"prep_time"`
	Difficulty string `json:"difficulty"`
}

// MealPlanDay maps meal type (breakfast, lunch, dinner) to the chosen recipe.
type MealPlanDay map[string]PlannedMeal

type MealPlan struct {
	ID        uuid.UUID     `json:"id"`
	Days      int           `json:"days"`
	Dietary   string        `json:"dietary,omitempty"`
	Plan      []MealPlanDay `json:"plan"`
	CreatedAt time.Time     `json:"created_at"`
}

// ShoppingListEntry is one deduplicated ingredient on a shopping list,
// with the recipes that asked for it.
type ShoppingListEntry struct {
	Ingredient    string   `json:"ingredient"`
	Recipes       []string `json:"recipes"`
	EstimatedCost float64  `json:"estimated_cost,omitempty"`
}

type ShoppingList struct {
	ID            uuid.UUID           `json:"id"`
	Items         []ShoppingListEntry `json:"items"`
	Recipes       []string            `json:"recipes"`
	UnknownNames  []string            `json:"unknown_recipes,omitempty"`
	EstimatedCost float64             `json:"estimated_cost"`
	Currency      string              `json:"currency"`
	CreatedAt     time.Time           `json:"created_at"`
}

// MealPrepPlan is a batch-cooking session for a week.
type MealPrepPlan struct {
	ID            uuid.UUID      `json:"id"`
	WeekStart     string         `json:"week_start"`
	Recipes       []string       `json:"recipes"`
	BatchSchedule []BatchEntry   `json:"batch_cooking_schedule"`
	PrepTimeline  []PrepTask     `json:"prep_timeline"`
	Storage       StorageAdvice  `json:"storage_instructions"`
	CreatedAt     time.Time      `json:"created_at"`
}

type BatchEntry struct {
	Day       int    `json:"day"`
	Recipe    string `json:"recipe"`
	PrepTime  string `json:"prep_time"`
	BatchSize int    `json:"batch_size"`
	Notes     string `json:"notes"`
}

type PrepTask struct {
	Task          string `json:"task"`
	EstimatedTime string `json:"estimated_time"`
	Order         int    `json:"order"`
}

type StorageAdvice struct {
	Containers string   `json:"containers"`
	Fridge     string   `json:"fridge"`
	Freezer    string   `json:"freezer"`
	Tips       []string `json:"tips"`
}
