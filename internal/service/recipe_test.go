package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mealforge/backend/internal/service"
)

func TestGetRecipeCaseInsensitive(t *testing.T) {
	catalog := service.NewRecipeService()

	for _, name := range []string{"Greek Salad", "greek salad", "GREEK SALAD", "  Greek Salad  "} {
		recipe, err := catalog.Get(name)
		assert.NoError(t, err)
		assert.Equal(t, "Greek Salad", recipe.Name)
	}

	_, err := catalog.Get("Unicorn Stew")
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestSearchRecipes(t *testing.T) {
	catalog := service.NewRecipeService()

	byName := catalog.Search("carbonara", "", 0)
	assert.Len(t, byName, 1)
	assert.Equal(t, "Spaghetti Carbonara", byName[0].Name)

	byIngredient := catalog.Search("coconut milk", "", 0)
	assert.Len(t, byIngredient, 2)

	withDiet := catalog.Search("curry", "vegan", 0)
	for _, r := range withDiet {
		assert.True(t, r.HasDietary("vegan"))
	}

	limited := catalog.Search("", "", 3)
	assert.Len(t, limited, 3)
}

func TestByCuisineAndDietary(t *testing.T) {
	catalog := service.NewRecipeService()

	italian := catalog.ByCuisine("Italian")
	assert.Len(t, italian, 2)

	vegan := catalog.ByDietary("vegan")
	assert.NotEmpty(t, vegan)
	for _, r := range vegan {
		assert.True(t, r.HasDietary("vegan"))
	}
}

func TestFavorites(t *testing.T) {
	catalog := service.NewRecipeService()
	userID := uuid.New()

	assert.Empty(t, catalog.Favorites(userID))

	assert.NoError(t, catalog.Favorite(userID, "Beef Tacos"))
	assert.NoError(t, catalog.Favorite(userID, "greek salad"))
	assert.NoError(t, catalog.Favorite(userID, "Beef Tacos")) // idempotent

	// Favorites come back in catalog order.
	assert.Equal(t, []string{"Greek Salad", "Beef Tacos"}, catalog.Favorites(userID))

	assert.NoError(t, catalog.Unfavorite(userID, "Greek Salad"))
	assert.Equal(t, []string{"Beef Tacos"}, catalog.Favorites(userID))

	assert.ErrorIs(t, catalog.Favorite(userID, "Unicorn Stew"), service.ErrRecipeNotFound)
}

func TestVariations(t *testing.T) {
	catalog := service.NewRecipeService()

	variations, err := catalog.Variations("Margherita Pizza", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, variations)
	assert.LessOrEqual(t, len(variations), 10)

	_, err = catalog.Variations("Unicorn Stew", "")
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}
