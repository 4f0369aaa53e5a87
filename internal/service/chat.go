package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/models"
)

var defaultChatResponses = []string{
	"I'm here to help with recipes, meal planning, nutrition info, shopping lists, and cooking tips! What would you like to know?",
	"I can suggest recipes, create meal plans, calculate nutrition, generate shopping lists, and share cooking tips. What can I help you with today?",
	"Whether you need recipe ideas, meal planning, nutritional information, or cooking advice, I'm here to help! What's on your mind?",
}

var timerPattern = regexp.MustCompile(`(\d+)\s*(minutes?|hours?)`)

// ChatService answers free-text messages by routing them through a
// keyword intent chain over the other services.
type ChatService struct {
	catalog       *RecipeService
	substitutions *SubstitutionService
	nutrition     *NutritionService
	planner       *PlannerService
	seasonal      map[string][]string

	mu  sync.Mutex
	rng *rand.Rand
}

func NewChatService(catalog *RecipeService, substitutions *SubstitutionService, nutrition *NutritionService, planner *PlannerService) *ChatService {
	return &ChatService{
		catalog:       catalog,
		substitutions: substitutions,
		nutrition:     nutrition,
		planner:       planner,
		seasonal:      seedSeasonalIngredients(),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Respond produces a reply for one chat message. Intents are checked in
// a fixed order; a message matching several keywords gets the first
// matching handler. The user ID personalizes favorites handling for
// authenticated callers and is uuid.Nil otherwise.
func (s *ChatService) Respond(userID uuid.UUID, message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "meal plan", "meal planning", "weekly meals", "daily meals"):
		return s.mealPlanReply(lower)
	case containsAny(lower, "nutrition", "calories", "protein", "carbs", "fat"):
		return s.nutritionReply(lower)
	case containsAny(lower, "cost", "price", "how much", "budget"):
		return s.costReply(lower)
	case containsAny(lower, "shopping list", "grocery list", "buy ingredients"):
		return s.shoppingListReply(userID)
	case containsAny(lower, "rate", "rating", "review", "score"):
		return "You can rate any recipe from 1-5 stars! Just say 'Rate [recipe name] [1-5] stars' and I'll record your rating."
	case containsAny(lower, "favorite", "favourite", "save", "bookmark"):
		return s.favoritesReply(userID, lower)
	case containsAny(lower, "search", "find", "looking for", "filter"):
		return s.searchReply(lower)
	case containsAny(lower, "timer", "set timer", "alarm", "reminder"):
		return timerReply(lower)
	case containsAny(lower, "recipe", "cook", "make", "how to"):
		return s.recipeReply(lower)
	case containsAny(lower, "substitute", "replace", "instead of", "alternative"):
		return s.substitutionReply(lower)
	case containsAny(lower, "tip", "help", "advice", "how do"):
		return s.tipsReply(lower)
	case containsAny(lower, DietaryOptions...):
		return s.dietaryReply(lower)
	case containsAny(lower, "recommend", "suggest", "what should", "feel like", "craving"):
		return s.recommendationReply(lower)
	case containsAny(lower, "seasonal", "fresh", "available now"):
		return s.seasonalReply()
	case containsAny(lower, CuisineTypes...):
		return s.cuisineReply(lower)
	}
	return s.pickString(defaultChatResponses)
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func (s *ChatService) pickString(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rng.Intn(len(options))]
}

func (s *ChatService) pickRecipe(pool []*models.Recipe) *models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pool[s.rng.Intn(len(pool))]
}

func (s *ChatService) mealPlanReply(lower string) string {
	days := 7
	switch {
	case strings.Contains(lower, "week"):
		days = 7
	case strings.Contains(lower, "3 day") || strings.Contains(lower, "three day"):
		days = 3
	case strings.Contains(lower, "5 day") || strings.Contains(lower, "five day"):
		days = 5
	case strings.Contains(lower, "10 day") || strings.Contains(lower, "ten day"):
		days = 10
	}
	dietary := firstMatch(lower, DietaryOptions)

	plan, err := s.planner.CreatePlan(days, dietary)
	if err != nil {
		return fmt.Sprintf("I couldn't find any %s recipes for a meal plan, sorry!", dietary)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's your %d-day meal plan", days)
	if dietary != "" {
		fmt.Fprintf(&b, " (%s)", dietary)
	}
	b.WriteString(":\n\n")
	for i, day := range plan.Plan {
		fmt.Fprintf(&b, "**Day %d**\n", i+1)
		for _, mealType := range mealTypes {
			meal := day[mealType]
			fmt.Fprintf(&b, "  • %s: %s (%s)\n", capitalize(mealType), meal.Recipe, meal.PrepTime)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ChatService) nutritionReply(lower string) string {
	if recipe := s.recipeNamed(lower); recipe != nil {
		est, err := s.nutrition.Estimate(recipe.Name)
		if err == nil {
			return fmt.Sprintf("Nutritional information for %s (per serving):\n• Calories: %g kcal\n• Protein: %gg\n• Carbohydrates: %gg\n• Fat: %gg\n• Servings: %d",
				recipe.Name, est.PerServing.Calories, est.PerServing.Protein, est.PerServing.Carbs, est.PerServing.Fat, est.Servings)
		}
	}
	return "I can provide nutritional information for any recipe! Just ask 'What's the nutrition for [recipe name]?'"
}

func (s *ChatService) costReply(lower string) string {
	if recipe := s.recipeNamed(lower); recipe != nil {
		cost, err := s.nutrition.Cost(recipe.Name)
		if err == nil {
			return fmt.Sprintf("Cost breakdown for %s:\n• Total estimated cost: $%.2f\n• Cost per serving: $%.2f\n• Servings: %d\n*Prices are estimates and may vary by location*",
				recipe.Name, cost.TotalCost, cost.CostPerServing, cost.Servings)
		}
	}
	return "I can calculate the cost of any recipe! Just ask 'How much does [recipe name] cost?'"
}

func (s *ChatService) shoppingListReply(userID uuid.UUID) string {
	sample := []string{"Spaghetti Carbonara", "Chicken Stir Fry", "Greek Salad"}
	list, err := s.planner.BuildShoppingList(userID, sample)
	if err != nil {
		return "I can build a shopping list from any recipes! Just name the recipes you're planning to cook."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Shopping list for %d recipes:\n\n", len(list.Recipes))
	for _, item := range list.Items {
		fmt.Fprintf(&b, "• %s\n", capitalize(item.Ingredient))
	}
	fmt.Fprintf(&b, "\nEstimated total cost: $%.2f\n", list.EstimatedCost)
	b.WriteString("*Quantities may vary based on recipe requirements*")
	return b.String()
}

func (s *ChatService) favoritesReply(userID uuid.UUID, lower string) string {
	if recipe := s.recipeNamed(lower); recipe != nil {
		if err := s.catalog.Favorite(userID, recipe.Name); err == nil {
			total := len(s.catalog.Favorites(userID))
			return fmt.Sprintf("%s has been added to your favorites! You now have %d favorite recipes.", recipe.Name, total)
		}
	}
	favorites := s.catalog.Favorites(userID)
	if len(favorites) > 0 {
		return "Your favorite recipes:\n• " + strings.Join(favorites, "\n• ")
	}
	return "You don't have any favorite recipes yet! Say 'Add [recipe name] to favorites' to get started."
}

func (s *ChatService) searchReply(lower string) string {
	query := lower
	for _, word := range []string{"search", "find", "looking for"} {
		query = strings.ReplaceAll(query, word, "")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "What would you like me to search for? You can search by recipe name, ingredient, or cuisine type."
	}

	dietary := firstMatch(lower, DietaryOptions)
	results := s.catalog.Search(query, dietary, 5)
	if len(results) == 0 {
		return fmt.Sprintf("No recipes found matching '%s'. Try different keywords!", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d recipes matching '%s':\n\n", len(results), query)
	for _, r := range results {
		fmt.Fprintf(&b, "• %s\n  %s • %s\n", r.Name, r.PrepTime, r.Difficulty)
	}
	return b.String()
}

func timerReply(lower string) string {
	m := timerPattern.FindStringSubmatch(lower)
	if m == nil {
		return "I can set a cooking timer for you! Just say 'Set timer for [number] minutes/hours'."
	}
	amount, unit := m[1], m[2]
	unitName := "minute"
	if strings.HasPrefix(unit, "hour") {
		unitName = "hour"
	}
	if amount != "1" {
		unitName += "s"
	}
	return fmt.Sprintf("Timer set for %s %s! I'll remind you when it's time to check your cooking.", amount, unitName)
}

func (s *ChatService) recipeReply(lower string) string {
	var matching []*models.Recipe
	for _, recipe := range s.catalog.List() {
		for _, ingredient := range recipe.Ingredients {
			if strings.Contains(lower, strings.ToLower(ingredientName(ingredient))) {
				matching = append(matching, recipe)
				break
			}
		}
	}

	if len(matching) > 0 {
		recipe := s.pickRecipe(matching)
		return fmt.Sprintf("Here's a great recipe for %s!\n\nIngredients: %s\n\nInstructions: %s\n\nPrep time: %s\nDifficulty: %s",
			recipe.Name, strings.Join(recipe.Ingredients, ", "), recipe.Instructions, recipe.PrepTime, recipe.Difficulty)
	}
	recipe := s.pickRecipe(s.catalog.List())
	return fmt.Sprintf("How about trying %s?\n\nIngredients: %s\n\nInstructions: %s\n\nPrep time: %s\nDifficulty: %s",
		recipe.Name, strings.Join(recipe.Ingredients, ", "), recipe.Instructions, recipe.PrepTime, recipe.Difficulty)
}

func (s *ChatService) substitutionReply(lower string) string {
	for _, ingredient := range s.substitutions.Ingredients() {
		if strings.Contains(lower, ingredient) {
			subs := s.substitutions.Lookup(ingredient)
			return fmt.Sprintf("Great substitutes for %s:\n• %s", ingredient, strings.Join(subs, "\n• "))
		}
	}
	return "I can help with substitutions! What ingredient would you like to replace?"
}

func (s *ChatService) tipsReply(lower string) string {
	for _, category := range s.substitutions.TipCategories() {
		if strings.Contains(lower, strings.ReplaceAll(category, "_", " ")) || strings.Contains(lower, category) {
			tips := s.substitutions.Tips(category)
			if len(tips) > 3 {
				tips = tips[:3]
			}
			return fmt.Sprintf("Here are some %s cooking tips:\n• %s", category, strings.Join(tips, "\n• "))
		}
	}
	general := s.substitutions.Tips("general")
	return "Here's a helpful cooking tip: " + s.pickString(general)
}

func (s *ChatService) dietaryReply(lower string) string {
	diet := firstMatch(lower, DietaryOptions)
	if diet == "" {
		return "I can help with various dietary restrictions including vegetarian, vegan, gluten-free, dairy-free, keto, and paleo options!"
	}
	matching := s.catalog.ByDietary(diet)
	if len(matching) == 0 {
		return fmt.Sprintf("I don't have specific %s recipes right now, but I can help you modify recipes to be %s!", diet, diet)
	}
	recipe := s.pickRecipe(matching)
	return fmt.Sprintf("Here's a %s recipe for %s!\n\nIngredients: %s\n\nInstructions: %s",
		diet, recipe.Name, strings.Join(recipe.Ingredients, ", "), recipe.Instructions)
}

func (s *ChatService) recommendationReply(lower string) string {
	season := currentSeason(time.Now())
	seasonal := s.seasonal[season]

	type scored struct {
		recipe *models.Recipe
		score  int
	}
	var candidates []scored
	for _, recipe := range s.catalog.List() {
		score := 0
		for _, diet := range DietaryOptions {
			if strings.Contains(lower, diet) && recipe.HasDietary(diet) {
				score += 3
			}
		}
		for _, cuisine := range CuisineTypes {
			if strings.Contains(lower, cuisine) && recipe.Cuisine == cuisine {
				score += 2
			}
		}
		for _, ingredient := range recipe.Ingredients {
			if containsAny(strings.ToLower(ingredient), seasonal...) {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{recipe, score})
		}
	}

	if len(candidates) == 0 {
		recipe := s.pickRecipe(s.catalog.List())
		return fmt.Sprintf("Based on what's great right now, I'd recommend %s! %s cuisine, %s to make, ready in %s.",
			recipe.Name, capitalize(recipe.Cuisine), recipe.Difficulty, recipe.PrepTime)
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	recipe := candidates[0].recipe
	return fmt.Sprintf("I'd recommend %s! It matches your preferences and uses ingredients that are great this %s.\n\nIngredients: %s\nPrep time: %s\nDifficulty: %s",
		recipe.Name, season, strings.Join(recipe.Ingredients, ", "), recipe.PrepTime, recipe.Difficulty)
}

func (s *ChatService) seasonalReply() string {
	season := currentSeason(time.Now())
	seasonal := s.seasonal[season]

	var matching []*models.Recipe
	for _, recipe := range s.catalog.List() {
		for _, ingredient := range recipe.Ingredients {
			if containsAny(strings.ToLower(ingredient), seasonal...) {
				matching = append(matching, recipe)
				break
			}
		}
	}
	if len(matching) > 0 {
		recipe := s.pickRecipe(matching)
		return fmt.Sprintf("Seasonal special for %s: %s! Perfect for this time of year.\n\nIngredients: %s\nInstructions: %s\nPrep time: %s\nDifficulty: %s",
			season, recipe.Name, strings.Join(recipe.Ingredients, ", "), recipe.Instructions, recipe.PrepTime, recipe.Difficulty)
	}
	highlight := seasonal
	if len(highlight) > 5 {
		highlight = highlight[:5]
	}
	return fmt.Sprintf("It's currently %s, and I'd recommend using ingredients like %s. Would you like me to suggest recipes using any of these seasonal ingredients?",
		season, strings.Join(highlight, ", "))
}

func (s *ChatService) cuisineReply(lower string) string {
	cuisine := firstMatch(lower, CuisineTypes)
	if cuisine == "" {
		return "Which cuisine type are you interested in? I can suggest recipes from Italian, Mexican, Asian, Indian, Mediterranean, American, French, or Thai cuisine!"
	}
	matching := s.catalog.ByCuisine(cuisine)
	if len(matching) == 0 {
		return fmt.Sprintf("I don't have any %s recipes at the moment, but I can suggest similar alternatives. Would you like me to recommend something else?", cuisine)
	}
	recipe := s.pickRecipe(matching)
	return fmt.Sprintf("%s cuisine: %s!\n\nIngredients: %s\nInstructions: %s\nPrep time: %s\nDifficulty: %s",
		capitalize(cuisine), recipe.Name, strings.Join(recipe.Ingredients, ", "), recipe.Instructions, recipe.PrepTime, recipe.Difficulty)
}

// recipeNamed finds the first catalog recipe whose name appears in the
// lowercased message.
func (s *ChatService) recipeNamed(lower string) *models.Recipe {
	for _, recipe := range s.catalog.List() {
		if strings.Contains(lower, strings.ToLower(recipe.Name)) {
			return recipe
		}
	}
	return nil
}

var measureWords = map[string]bool{
	"g": true, "kg": true, "ml": true, "l": true, "cup": true, "cups": true,
	"tbsp": true, "tsp": true, "can": true, "ball": true, "head": true,
	"clove": true, "cloves": true, "a": true, "an": true, "of": true,
	"pinch": true, "handful": true, "few": true, "leaves": true,
}

// ingredientName strips leading quantities and measure words from an
// ingredient line ("400 g spaghetti" becomes "spaghetti").
func ingredientName(ingredient string) string {
	words := strings.Fields(strings.ToLower(ingredient))
	for len(words) > 0 {
		w := words[0]
		if measureWords[w] || amountPattern.MatchString(w+" x") {
			words = words[1:]
			continue
		}
		break
	}
	if len(words) == 0 {
		return strings.ToLower(ingredient)
	}
	return strings.Join(words, " ")
}

func firstMatch(s string, options []string) string {
	for _, opt := range options {
		if strings.Contains(s, opt) {
			return opt
		}
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func currentSeason(now time.Time) string {
	switch now.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "fall"
	default:
		return "winter"
	}
}
