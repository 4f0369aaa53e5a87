package types

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request body for profile updates
type UpdateProfileRequest struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	SkillLevel          string   `json:"skill_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	FamilySize          int      `json:"family_size" binding:"omitempty,min=1,max=20"`
	BudgetRange         string   `json:"budget_range" binding:"omitempty,oneof=low medium high"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
}

// ChatRequest represents a single chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// MatchRequest represents the request body for ingredient matching
type MatchRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	Limit       int      `json:"limit" binding:"omitempty,min=1,max=50"`
}

// ScaleRequest represents the request body for recipe scaling
type ScaleRequest struct {
	RecipeName string `json:"recipe_name" binding:"required"`
	Servings   int    `json:"servings" binding:"required"`
}

// VariationsRequest represents the request body for recipe variations
type VariationsRequest struct {
	RecipeName    string `json:"recipe_name" binding:"required"`
	VariationType string `json:"variation_type" binding:"omitempty,oneof=all cuisine dietary spice"`
}

// SubstitutionRequest represents the request body for substitution lookup
type SubstitutionRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
}

// AddInventoryRequest represents the request body for adding an inventory item
type AddInventoryRequest struct {
	Name       string  `json:"name" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"min=0"`
	Unit       string  `json:"unit"`
	ExpiryDate string  `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Location   string  `json:"location" binding:"required,storagelocation"`
	Category   string  `json:"category"`
	Notes      string  `json:"notes"`
}

// UpdateInventoryRequest represents the request body for updating an item.
// Pointer fields distinguish "not sent" from zero values.
type UpdateInventoryRequest struct {
	Quantity   *float64 `json:"quantity" binding:"omitempty,min=0"`
	Unit       *string  `json:"unit"`
	ExpiryDate *string  `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Location   *string  `json:"location" binding:"omitempty,storagelocation"`
	Notes      *string  `json:"notes"`
}

// MealPlanRequest represents the request body for meal plan creation
type MealPlanRequest struct {
	Days    int    `json:"days" binding:"omitempty,min=1,max=30"`
	Dietary string `json:"dietary"`
}

// ShoppingListRequest represents the request body for shopping list creation
type ShoppingListRequest struct {
	Recipes []string `json:"recipes" binding:"required,min=1"`
}

// MealPrepRequest represents the request body for meal prep planning
type MealPrepRequest struct {
	Recipes   []string `json:"recipes" binding:"required,min=1"`
	WeekStart string   `json:"week_start" binding:"omitempty,datetime=2006-01-02"`
}

// CreateReviewRequest represents the request body for adding a review
type CreateReviewRequest struct {
	RecipeName     string `json:"recipe_name" binding:"required"`
	Rating         int    `json:"rating" binding:"required"`
	Title          string `json:"title" binding:"max=200"`
	Comment        string `json:"comment" binding:"max=2000"`
	WouldMakeAgain *bool  `json:"would_make_again"`
}

// CreateCollectionRequest represents the request body for creating a collection
type CreateCollectionRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=500"`
	Tags        []string `json:"tags"`
	Public      bool     `json:"is_public"`
}

// AddToCollectionRequest represents the request body for adding a recipe to a collection
type AddToCollectionRequest struct {
	RecipeName string `json:"recipe_name" binding:"required"`
}

// CreateChallengeRequest represents the request body for creating a challenge
type CreateChallengeRequest struct {
	Type          string   `json:"challenge_type" binding:"required"`
	Title         string   `json:"title" binding:"required,max=200"`
	Description   string   `json:"description" binding:"max=1000"`
	TargetRecipes []string `json:"target_recipes" binding:"required,min=1"`
	DurationDays  int      `json:"duration_days" binding:"omitempty,min=1,max=90"`
	Difficulty    string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// CompleteChallengeRequest represents the request body for completing a challenge recipe
type CompleteChallengeRequest struct {
	RecipeName string `json:"recipe_name" binding:"required"`
}

// TrackCookedRequest represents the request body for recording a cooked recipe
type TrackCookedRequest struct {
	RecipeName string `json:"recipe_name" binding:"required"`
}
