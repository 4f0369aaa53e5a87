package service_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealforge/backend/internal/models"
	"github.com/mealforge/backend/internal/service"
)

func TestScaleDoublesQuantities(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	// Base servings 4, target 8: every amount doubles.
	scaled, err := scaler.Scale("Spaghetti Carbonara", 8)
	assert.NoError(t, err)
	assert.Equal(t, 4, scaled.OriginalServings)
	assert.Equal(t, 8, scaled.Servings)
	assert.Equal(t, 2.0, scaled.ScaleFactor)
	assert.Contains(t, scaled.Ingredients, "800 g spaghetti")
	assert.Contains(t, scaled.Ingredients, "8 eggs")
	assert.Contains(t, scaled.Ingredients, "300 g bacon")
}

func TestScaleIdentity(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	recipe, err := catalog.Get("Chicken Stir Fry")
	assert.NoError(t, err)

	scaled, err := scaler.Scale(recipe.Name, recipe.Servings)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, scaled.ScaleFactor)
	assert.Equal(t, recipe.Ingredients, scaled.Ingredients)
}

func TestScaleDown(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	// 4 servings down to 2 halves everything.
	scaled, err := scaler.Scale("Beef Tacos", 2)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, scaled.ScaleFactor)
	assert.Contains(t, scaled.Ingredients, "250 g ground beef")
	assert.Contains(t, scaled.Ingredients, "4 taco shells")
	assert.Contains(t, scaled.Ingredients, "0.25 cup sour cream")
}

func TestScaleFractionalAmounts(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	// Chicken Tikka Masala has "0.5 cup cream"; tripling 4 -> 12 gives 1.5.
	scaled, err := scaler.Scale("Chicken Tikka Masala", 12)
	assert.NoError(t, err)
	assert.Contains(t, scaled.Ingredients, "1.5 cup cream")
	assert.Contains(t, scaled.Ingredients, "6 cups rice")
}

func TestScaleUnparseableIngredientsNeedReview(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	scaled, err := scaler.Scale("Spaghetti Carbonara", 8)
	assert.NoError(t, err)
	// "a pinch of black pepper" has no leading numeric quantity.
	assert.Equal(t, []string{"a pinch of black pepper"}, scaled.NeedsReview)
	assert.Contains(t, scaled.Ingredients, "a pinch of black pepper")
}

func TestScalePrepTimeUnchanged(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	scaled, err := scaler.Scale("Vegetable Curry", 8)
	assert.NoError(t, err)
	assert.Equal(t, "30 minutes", scaled.PrepTime)
	assert.Equal(t, "Saute onions and garlic. Add vegetables and curry powder. Simmer with coconut milk.", scaled.Instructions)
}

func TestScaleRejectsInvalidServings(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	for _, servings := range []int{0, -1, -10} {
		_, err := scaler.Scale("Greek Salad", servings)
		assert.ErrorIs(t, err, service.ErrInvalidServings)
	}
}

func TestScaleUnknownRecipe(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	_, err := scaler.Scale("Unicorn Stew", 4)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	assert.Contains(t, err.Error(), "Unicorn Stew")
}

func TestScaleNutritionScalesWithFactor(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	recipe := &models.Recipe{}
	for _, r := range catalog.List() {
		if r.Name == "Greek Salad" {
			recipe = r
		}
	}
	scaled, err := scaler.Scale("Greek Salad", 4)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, scaled.ScaleFactor)
	assert.InDelta(t, recipe.Calories*2, scaled.Calories, 0.11)
}

var scaledAmountPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s`)

func leadingAmount(t *testing.T, ingredient string) float64 {
	t.Helper()
	m := scaledAmountPattern.FindStringSubmatch(ingredient)
	if m == nil {
		t.Fatalf("no leading amount in %q", ingredient)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	assert.NoError(t, err)
	return v
}

func TestScaleIsLinear(t *testing.T) {
	catalog := service.NewRecipeService()
	scaler := service.NewScaler(catalog)

	at4, err := scaler.Scale("Spaghetti Carbonara", 4)
	assert.NoError(t, err)
	at8, err := scaler.Scale("Spaghetti Carbonara", 8)
	assert.NoError(t, err)

	review := make(map[string]bool)
	for _, ing := range at4.NeedsReview {
		review[ing] = true
	}
	for i := range at4.Ingredients {
		if review[at4.Ingredients[i]] {
			continue
		}
		assert.InDelta(t, 2*leadingAmount(t, at4.Ingredients[i]),
			leadingAmount(t, at8.Ingredients[i]), 0.011,
			"ingredient %q", at4.Ingredients[i])
	}
}
