package service

import (
	"sort"
	"strings"

	"github.com/mealforge/backend/internal/models"
)

// NutritionService estimates nutrition and cost for catalog recipes from
// fixed per-ingredient reference tables.
type NutritionService struct {
	catalog *RecipeService
	facts   map[string]models.Macros
	costs   map[string]float64

	factKeys []string
	costKeys []string
}

func NewNutritionService(catalog *RecipeService) *NutritionService {
	s := &NutritionService{
		catalog: catalog,
		facts:   seedNutritionFacts(),
		costs:   seedIngredientCosts(),
	}
	s.factKeys = sortedByLength(s.facts)
	s.costKeys = sortedKeysByLength(s.costs)
	return s
}

// Estimate sums the reference table over a recipe's ingredients and divides
// by the serving count. Ingredients with no table entry contribute nothing.
func (s *NutritionService) Estimate(name string) (*models.NutritionEstimate, error) {
	recipe, err := s.catalog.Get(name)
	if err != nil {
		return nil, err
	}

	est := &models.NutritionEstimate{
		Recipe:   recipe.Name,
		Servings: recipe.Servings,
		Matched:  []models.IngredientFacts{},
	}
	for _, ing := range recipe.Ingredients {
		key := longestContainedKey(ing, s.factKeys)
		if key == "" {
			continue
		}
		f := s.facts[key]
		est.Total.Calories += f.Calories
		est.Total.Protein += f.Protein
		est.Total.Carbs += f.Carbs
		est.Total.Fat += f.Fat
		est.Matched = append(est.Matched, models.IngredientFacts{Ingredient: ing, Facts: f})
	}

	n := float64(est.Servings)
	est.PerServing = models.Macros{
		Calories: round1(est.Total.Calories / n),
		Protein:  round1(est.Total.Protein / n),
		Carbs:    round1(est.Total.Carbs / n),
		Fat:      round1(est.Total.Fat / n),
	}
	return est, nil
}

// Cost estimates the recipe's grocery cost from the price table.
func (s *NutritionService) Cost(name string) (*models.CostEstimate, error) {
	recipe, err := s.catalog.Get(name)
	if err != nil {
		return nil, err
	}

	est := &models.CostEstimate{
		Recipe:      recipe.Name,
		Servings:    recipe.Servings,
		Currency:    "USD",
		Ingredients: []models.IngredientCost{},
	}
	for _, ing := range recipe.Ingredients {
		key := longestContainedKey(ing, s.costKeys)
		if key == "" {
			continue
		}
		c := s.costs[key]
		est.TotalCost += c
		est.Ingredients = append(est.Ingredients, models.IngredientCost{Ingredient: ing, EstimatedCost: c})
	}
	est.TotalCost = round2(est.TotalCost)
	est.CostPerServing = round2(est.TotalCost / float64(est.Servings))
	return est, nil
}

// ShoppingCost estimates the cost of a single shopping-list ingredient,
// returning 0 when the table has no entry.
func (s *NutritionService) ShoppingCost(ingredient string) float64 {
	key := longestContainedKey(ingredient, s.costKeys)
	if key == "" {
		return 0
	}
	return s.costs[key]
}

// longestContainedKey returns the first key (keys sorted longest first)
// contained in the ingredient text, making "tomato sauce" win over "tomato".
func longestContainedKey(ingredient string, keys []string) string {
	ing := strings.ToLower(ingredient)
	for _, k := range keys {
		if strings.Contains(ing, k) {
			return k
		}
	}
	return ""
}

func sortedByLength(m map[string]models.Macros) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortLongestFirst(keys)
	return keys
}

func sortedKeysByLength(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortLongestFirst(keys)
	return keys
}

func sortLongestFirst(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
}
