package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealforge/backend/internal/service"
)

func TestMatcherRanksByCompletionRatio(t *testing.T) {
	catalog := service.NewRecipeService()
	matcher := service.NewMatcher(catalog)

	results := matcher.Rank([]string{"spaghetti", "eggs", "bacon"})
	assert.Len(t, results, len(catalog.List()))

	// Carbonara needs 5 ingredients and we hold 3 of them.
	assert.Equal(t, "Spaghetti Carbonara", results[0].Recipe.Name)
	assert.Equal(t, 3, results[0].MatchScore)
	assert.InDelta(t, 3.0/5.0, results[0].CompletionRatio, 1e-9)
	assert.ElementsMatch(t, []string{"400 g spaghetti", "4 eggs", "150 g bacon"}, results[0].MatchedIngredients)
	assert.ElementsMatch(t, []string{"50 g parmesan cheese", "a pinch of black pepper"}, results[0].MissingIngredients)

	// Ratios never increase down the ranking.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].CompletionRatio, results[i].CompletionRatio)
	}
}

func TestMatcherTwoOfThreeRatio(t *testing.T) {
	catalog := service.NewRecipeService()
	matcher := service.NewMatcher(catalog)

	// Greek Salad has 6 ingredients; holding 4 of them gives 4/6 = 2/3.
	results := matcher.Rank([]string{"tomatoes", "cucumber", "red onion", "feta"})
	assert.Equal(t, "Greek Salad", results[0].Recipe.Name)
	assert.InDelta(t, 2.0/3.0, results[0].CompletionRatio, 1e-9)
}

func TestMatcherEmptyQueryScoresAllZero(t *testing.T) {
	catalog := service.NewRecipeService()
	matcher := service.NewMatcher(catalog)

	results := matcher.Rank(nil)
	assert.Len(t, results, len(catalog.List()))
	for i, r := range results {
		assert.Zero(t, r.MatchScore)
		assert.Zero(t, r.CompletionRatio)
		// Ties keep catalog order.
		assert.Equal(t, catalog.List()[i].Name, r.Recipe.Name)
	}
}

func TestMatcherCaseInsensitive(t *testing.T) {
	catalog := service.NewRecipeService()
	matcher := service.NewMatcher(catalog)

	upper := matcher.Rank([]string{"SPAGHETTI", "EGGS"})
	lower := matcher.Rank([]string{"spaghetti", "eggs"})
	assert.Equal(t, lower[0].Recipe.Name, upper[0].Recipe.Name)
	assert.Equal(t, lower[0].MatchScore, upper[0].MatchScore)
}

func TestSuggestFiltersZeroScores(t *testing.T) {
	catalog := service.NewRecipeService()
	matcher := service.NewMatcher(catalog)

	suggestions := matcher.Suggest([]string{"spaghetti"}, 10)
	assert.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.Greater(t, s.MatchScore, 0)
	}

	limited := matcher.Suggest([]string{"garlic", "onion", "tomatoes"}, 2)
	assert.LessOrEqual(t, len(limited), 2)
}
