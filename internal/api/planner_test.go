package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMealPlan(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/meal-plans", map[string]interface{}{
		"days": 3,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	plan := decodeBody(t, w)["meal_plan"].(map[string]interface{})
	assert.Equal(t, float64(3), plan["days"])
	assert.Len(t, plan["plan"].([]interface{}), 3)
}

func TestCreateMealPlanUnknownDiet(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/meal-plans", map[string]interface{}{
		"days":    3,
		"dietary": "carnivore-only",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShoppingListFlow(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := CreateTestUserAndToken(t, router, "mona")

	w := PerformRequest(router, "POST", "/api/v1/shopping-lists", map[string]interface{}{
		"recipes": []string{"Greek Salad"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = PerformRequestWithToken(router, "POST", "/api/v1/shopping-lists", map[string]interface{}{
		"recipes": []string{"Greek Salad", "Mediterranean Quinoa Bowl"},
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	list := decodeBody(t, w)["shopping_list"].(map[string]interface{})
	assert.NotEmpty(t, list["items"])

	w = PerformRequestWithToken(router, "GET", "/api/v1/shopping-lists", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, decodeBody(t, w)["shopping_list"])
}

func TestShoppingListUnknownRecipes(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := CreateTestUserAndToken(t, router, "nick")

	w := PerformRequestWithToken(router, "POST", "/api/v1/shopping-lists", map[string]interface{}{
		"recipes": []string{"Unknown Dish"},
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCurrentShoppingListMissing(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := CreateTestUserAndToken(t, router, "olga")

	w := PerformRequestWithToken(router, "GET", "/api/v1/shopping-lists", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMealPrep(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := CreateTestUserAndToken(t, router, "pete")

	w := PerformRequestWithToken(router, "POST", "/api/v1/meal-prep", map[string]interface{}{
		"recipes": []string{"Greek Salad", "Chicken Stir Fry"},
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	plan := decodeBody(t, w)["meal_prep_plan"].(map[string]interface{})
	assert.NotEmpty(t, plan["prep_timeline"])
}
