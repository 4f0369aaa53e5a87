package service_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mealforge/backend/internal/service"
)

func newChat() (*service.RecipeService, *service.ChatService) {
	catalog := service.NewRecipeService()
	nutrition := service.NewNutritionService(catalog)
	planner := service.NewPlannerService(catalog, nutrition)
	return catalog, service.NewChatService(catalog, service.NewSubstitutionService(), nutrition, planner)
}

func TestChatMealPlanIntent(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "Can you make me a 3 day meal plan?")
	assert.Contains(t, reply, "3-day meal plan")
	assert.Contains(t, reply, "Breakfast")
	assert.Contains(t, reply, "Dinner")
}

func TestChatMealPlanWithDietary(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "I need a vegan meal plan for the week")
	assert.Contains(t, reply, "7-day meal plan")
	assert.Contains(t, reply, "(vegan)")
}

func TestChatNutritionIntent(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "What's the nutrition for Spaghetti Carbonara?")
	assert.Contains(t, reply, "Nutritional information for Spaghetti Carbonara")
	assert.Contains(t, reply, "Calories")

	fallback := chat.Respond(uuid.Nil, "Tell me about nutrition")
	assert.Contains(t, fallback, "I can provide nutritional information")
}

func TestChatCostIntent(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "How much does Greek Salad cost?")
	assert.Contains(t, reply, "Cost breakdown for Greek Salad")
	assert.Contains(t, reply, "Cost per serving")
}

func TestChatSubstitutionIntent(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "What can I use instead of butter?")
	assert.Contains(t, reply, "Great substitutes for butter")
	assert.Contains(t, reply, "coconut oil")

	fallback := chat.Respond(uuid.Nil, "Can you substitute something?")
	assert.Contains(t, fallback, "What ingredient would you like to replace?")
}

func TestChatTipsIntent(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "Any baking tips?")
	assert.Contains(t, reply, "baking cooking tips")

	general := chat.Respond(uuid.Nil, "I need some advice")
	assert.Contains(t, general, "cooking tip")
}

func TestChatTimerIntent(t *testing.T) {
	_, chat := newChat()

	assert.Contains(t, chat.Respond(uuid.Nil, "set timer for 15 minutes"), "Timer set for 15 minutes")
	assert.Contains(t, chat.Respond(uuid.Nil, "set timer for 1 hour"), "Timer set for 1 hour")
	assert.Contains(t, chat.Respond(uuid.Nil, "set a timer"), "I can set a cooking timer")
}

func TestChatFavoritesIntent(t *testing.T) {
	catalog, chat := newChat()
	userID := uuid.New()

	reply := chat.Respond(userID, "save Beef Tacos to my favorites")
	assert.Contains(t, reply, "Beef Tacos has been added to your favorites")
	assert.Equal(t, []string{"Beef Tacos"}, catalog.Favorites(userID))

	listing := chat.Respond(userID, "show my favorites")
	assert.Contains(t, listing, "Beef Tacos")
}

func TestChatDietaryIntent(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "I'm vegan, what are my options?")
	assert.Contains(t, reply, "vegan recipe")
}

func TestChatCuisineIntent(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "something thai tonight")
	assert.Contains(t, reply, "Thai cuisine")
	assert.Contains(t, reply, "Thai Green Curry")
}

func TestChatSeasonalIntent(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "what's fresh right now?")
	assert.NotEmpty(t, reply)
	assert.True(t,
		strings.Contains(reply, "Seasonal special") || strings.Contains(reply, "It's currently"),
		"unexpected seasonal reply: %s", reply)
}

func TestChatDefaultResponse(t *testing.T) {
	_, chat := newChat()

	reply := chat.Respond(uuid.Nil, "hello there")
	assert.NotEmpty(t, reply)
	assert.Contains(t, strings.ToLower(reply), "help")
}

func TestChatIntentPrecedence(t *testing.T) {
	_, chat := newChat()

	// "meal plan" wins over the nutrition keywords in the same message.
	reply := chat.Respond(uuid.Nil, "meal plan with good protein")
	assert.Contains(t, reply, "meal plan")
	assert.NotContains(t, reply, "Nutritional information")
}
