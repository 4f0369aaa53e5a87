package service

import (
	"sort"
	"strings"

	"github.com/mealforge/backend/internal/models"
)

// Matcher ranks the catalog against a set of available ingredients.
type Matcher struct {
	catalog *RecipeService
}

// NewMatcher creates a Matcher over the given catalog.
func NewMatcher(catalog *RecipeService) *Matcher {
	return &Matcher{catalog: catalog}
}

// Rank scores every catalog recipe against the available ingredients and
// returns the results sorted by completion ratio, highest first. Ties keep
// catalog order. An empty catalog yields an empty slice; an empty available
// set scores every recipe at zero.
func (m *Matcher) Rank(available []string) []models.MatchResult {
	normalized := make([]string, 0, len(available))
	for _, a := range available {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			normalized = append(normalized, a)
		}
	}

	recipes := m.catalog.List()
	results := make([]models.MatchResult, 0, len(recipes))
	for _, r := range recipes {
		res := models.MatchResult{
			Recipe:             r,
			MatchedIngredients: []string{},
			MissingIngredients: []string{},
		}
		for _, ing := range r.Ingredients {
			if ingredientAvailable(ing, normalized) {
				res.MatchScore++
				res.MatchedIngredients = append(res.MatchedIngredients, ing)
			} else {
				res.MissingIngredients = append(res.MissingIngredients, ing)
			}
		}
		if len(r.Ingredients) > 0 {
			res.CompletionRatio = float64(res.MatchScore) / float64(len(r.Ingredients))
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompletionRatio > results[j].CompletionRatio
	})
	return results
}

// Suggest returns the top results with at least one matched ingredient.
// Limit <= 0 means no limit.
func (m *Matcher) Suggest(available []string, limit int) []models.MatchResult {
	ranked := m.Rank(available)
	out := make([]models.MatchResult, 0, len(ranked))
	for _, res := range ranked {
		if res.MatchScore == 0 {
			continue
		}
		out = append(out, res)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// ingredientAvailable reports whether any available name matches the recipe
// ingredient. Matching is case-insensitive containment in either direction,
// so "tomato" matches "2 tomatoes" and "chicken breast" matches "chicken".
func ingredientAvailable(ingredient string, available []string) bool {
	ing := strings.ToLower(ingredient)
	for _, a := range available {
		if strings.Contains(ing, a) || strings.Contains(a, ing) {
			return true
		}
	}
	return false
}
