package models

// Recipe is a single catalog entry. The catalog is seeded at startup and
// records are immutable afterwards; everything that varies per user
// (favorites, reviews, plans) references a recipe by name.
type Recipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	PrepTime     string   `json:"prep_time"`
	Difficulty   string   `json:"difficulty"`
	Cuisine      string   `json:"cuisine,omitempty"`
	Dietary      []string `json:"dietary"`
	Servings     int      `json:"servings"`
	Calories     float64  `json:"calories,omitempty"`
	Protein      float64  `json:"protein,omitempty"`
	Carbs        float64  `json:"carbs,omitempty"`
	Fat          float64  `json:"fat,omitempty"`
}

// HasDietary reports whether the recipe carries the given dietary tag.
func (r *Recipe) HasDietary(tag string) bool {
	for _, d := range r.Dietary {
		if d == tag {
			return true
		}
	}
	return false
}

// MatchResult is the per-recipe outcome of ranking the catalog against a
// set of available ingredients. Ephemeral, computed per request.
type MatchResult struct {
	Recipe             *Recipe  `json:"recipe"`
	MatchScore         int      `json:"match_score"`
	CompletionRatio    float64  `json:"completion_ratio"`
	MatchedIngredients []string `json:"matched_ingredients"`
	MissingIngredients []string `json:"missing_ingredients"`
}

// ScaledRecipe is the outcome of scaling a recipe to a new serving count.
type ScaledRecipe struct {
	Name             string   `json:"name"`
	OriginalServings int      `json:"original_servings"`
	Servings         int      `json:"servings"`
	ScaleFactor      float64  `json:"scale_factor"`
	Ingredients      []string `json:"ingredients"`
	// NeedsReview lists ingredients whose quantity could not be parsed
	// and was left unscaled.
	NeedsReview  []string `json:"needs_review,omitempty"`
	Instructions string   `json:"instructions"`
	PrepTime     string   `json:"prep_time"`
	Calories     float64  `json:"calories,omitempty"`
	Protein      float64  `json:"protein,omitempty"`
	Carbs        float64  `json:"carbs,omitempty"`
	Fat          float64  `json:"fat,omitempty"`
}

// RecipeVariation describes a suggested spin on a catalog recipe.
type RecipeVariation struct {
	Name          string            `json:"name"`
	VariationType string            `json:"variation_type"`
	Cuisine       string            `json:"cuisine,omitempty"`
	Dietary       []string          `json:"dietary,omitempty"`
	SpiceLevel    string            `json:"spice_level,omitempty"`
	Substitutions map[string]string `json:"substitutions,omitempty"`
	Remove        []string          `json:"remove,omitempty"`
}

// NutritionEstimate aggregates per-ingredient nutrition over a recipe.
type NutritionEstimate struct {
	Recipe     string            `json:"recipe"`
	Servings   int               `json:"servings"`
	Total      Macros            `json:"total"`
	PerServing Macros            `json:"per_serving"`
	Matched    []IngredientFacts `json:"ingredients"`
}

// Macros is a calorie/macronutrient tuple.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// IngredientFacts pairs a recipe ingredient with the nutrition row it
// matched in the reference table.
type IngredientFacts struct {
	Ingredient string `json:"ingredient"`
	Facts      Macros `json:"nutrition"`
}

// CostEstimate aggregates per-ingredient prices over a recipe.
type CostEstimate struct {
	Recipe         string           `json:"recipe"`
	Servings       int              `json:"servings"`
	TotalCost      float64          `json:"total_cost"`
	CostPerServing float64          `json:"cost_per_serving"`
	Currency       string           `json:"currency"`
	Ingredients    []IngredientCost `json:"ingredients"`
}

// IngredientCost pairs a recipe ingredient with its estimated price.
type IngredientCost struct {
	Ingredient    string  `json:"ingredient"`
	EstimatedCost float64 `json:"estimated_cost"`
}
