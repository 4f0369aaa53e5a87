package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
	Profile      Profile   `json:"profile"`
}

// Profile carries the cooking preferences used by personalized planning
// and the chat recommendation intent.
type Profile struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	SkillLevel          string   `json:"skill_level"`
	FamilySize          int      `json:"family_size"`
	BudgetRange         string   `json:"budget_range"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
}
