package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mealforge/backend/internal/models"
)

// Scaler rewrites recipe ingredient quantities for a new serving count.
type Scaler struct {
	catalog *RecipeService
}

// NewScaler creates a Scaler over the given catalog.
func NewScaler(catalog *RecipeService) *Scaler {
	return &Scaler{catalog: catalog}
}

// amountPattern captures a leading amount: a mixed number ("1 1/2"), a
// plain fraction ("3/4") or an integer/decimal ("2", "0.5").
var amountPattern = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)\s+(.+)$`)

// Scale returns the recipe with every parseable ingredient quantity
// multiplied by servings over the recipe's base serving count. Ingredients
// without a parseable amount pass through unchanged and are listed in
// NeedsReview. Prep time is informational and is not scaled.
func (s *Scaler) Scale(name string, servings int) (*models.ScaledRecipe, error) {
	if servings <= 0 {
		return nil, ErrInvalidServings
	}
	recipe, err := s.catalog.Get(name)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", name, err)
	}

	base := recipe.Servings
	if base <= 0 {
		base = 4
	}
	factor := float64(servings) / float64(base)

	scaled := &models.ScaledRecipe{
		Name:             recipe.Name,
		OriginalServings: base,
		Servings:         servings,
		ScaleFactor:      round2(factor),
		Ingredients:      make([]string, 0, len(recipe.Ingredients)),
		Instructions:     recipe.Instructions,
		PrepTime:         recipe.PrepTime,
		Calories:         round1(recipe.Calories * factor),
		Protein:          round1(recipe.Protein * factor),
		Carbs:            round1(recipe.Carbs * factor),
		Fat:              round1(recipe.Fat * factor),
	}

	for _, ing := range recipe.Ingredients {
		out, ok := scaleIngredient(ing, factor)
		if !ok {
			scaled.NeedsReview = append(scaled.NeedsReview, ing)
		}
		scaled.Ingredients = append(scaled.Ingredients, out)
	}
	return scaled, nil
}

// scaleIngredient rewrites the leading amount of one ingredient line.
// The second return value is false when no amount could be parsed.
func scaleIngredient(ingredient string, factor float64) (string, bool) {
	m := amountPattern.FindStringSubmatch(strings.TrimSpace(ingredient))
	if m == nil {
		return ingredient, false
	}
	amount, err := parseAmount(m[1])
	if err != nil {
		return ingredient, false
	}
	return fmt.Sprintf("%s %s", formatAmount(amount*factor), m[2]), true
}

// parseAmount evaluates "2", "0.5", "3/4" or "1 1/2" into a float.
func parseAmount(s string) (float64, error) {
	whole := 0.0
	if i := strings.IndexByte(s, ' '); i >= 0 {
		w, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			return 0, err
		}
		whole = w
		s = strings.TrimSpace(s[i+1:])
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("invalid fraction %q", s)
		}
		return whole + n/d, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return whole + v, nil
}

// formatAmount renders a scaled amount with at most two decimal places,
// trimming trailing zeros so whole numbers print as integers.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(round2(v), 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
