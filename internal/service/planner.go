package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/models"
)

var mealTypes = []string{"breakfast", "lunch", "dinner"}

// PlannerService builds meal plans, shopping lists and meal prep schedules
// over the catalog. One current shopping list is kept per user.
type PlannerService struct {
	catalog   *RecipeService
	nutrition *NutritionService

	mu    sync.RWMutex
	lists map[uuid.UUID]*models.ShoppingList
	rng   *rand.Rand
}

func NewPlannerService(catalog *RecipeService, nutrition *NutritionService) *PlannerService {
	return &PlannerService{
		catalog:   catalog,
		nutrition: nutrition,
		lists:     make(map[uuid.UUID]*models.ShoppingList),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreatePlan builds a days-long plan of breakfast/lunch/dinner picks,
// optionally restricted to a dietary tag.
func (s *PlannerService) CreatePlan(days int, dietary string) (*models.MealPlan, error) {
	if days <= 0 {
		days = 7
	}
	pool := s.catalog.List()
	if dietary != "" {
		pool = s.catalog.ByDietary(dietary)
		if len(pool) == 0 {
			return nil, ErrNoRecipesForDiet
		}
	}

	plan := &models.MealPlan{
		ID:        uuid.New(),
		Days:      days,
		Dietary:   dietary,
		Plan:      make([]models.MealPlanDay, 0, days),
		CreatedAt: time.Now().UTC(),
	}
	for day := 0; day < days; day++ {
		meals := models.MealPlanDay{}
		for _, mealType := range mealTypes {
			r := s.pick(pool)
			meals[mealType] = models.PlannedMeal{
				Recipe:     r.Name,
				PrepTime:   r.PrepTime,
				Difficulty: r.Difficulty,
			}
		}
		plan.Plan = append(plan.Plan, meals)
	}
	return plan, nil
}

// PersonalizedPlan scores the pool against the user's profile and spreads
// picks so recipes repeat as little as possible.
func (s *PlannerService) PersonalizedPlan(days int, profile models.Profile) (*models.MealPlan, error) {
	if days <= 0 {
		days = 7
	}
	pool := s.catalog.List()

	// Hard dietary restrictions and allergies filter the pool;
	// preferences only score it.
	for _, diet := range profile.DietaryRestrictions {
		filtered := make([]*models.Recipe, 0, len(pool))
		for _, r := range pool {
			if r.HasDietary(diet) {
				filtered = append(filtered, r)
			}
		}
		pool = filtered
	}
	filtered := make([]*models.Recipe, 0, len(pool))
	for _, r := range pool {
		if !allergyConflict(r, profile.Allergies) {
			filtered = append(filtered, r)
		}
	}
	pool = filtered
	if len(pool) == 0 {
		return nil, ErrNoRecipesForDiet
	}

	plan := &models.MealPlan{
		ID:        uuid.New(),
		Days:      days,
		Dietary:   strings.Join(profile.DietaryRestrictions, ","),
		Plan:      make([]models.MealPlanDay, 0, days),
		CreatedAt: time.Now().UTC(),
	}
	used := make(map[string]int)
	for day := 0; day < days; day++ {
		meals := models.MealPlanDay{}
		for _, mealType := range mealTypes {
			r := s.pickBest(pool, profile, used)
			used[r.Name]++
			meals[mealType] = models.PlannedMeal{
				Recipe:     r.Name,
				PrepTime:   r.PrepTime,
				Difficulty: r.Difficulty,
			}
		}
		plan.Plan = append(plan.Plan, meals)
	}
	return plan, nil
}

func (s *PlannerService) pick(pool []*models.Recipe) *models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pool[s.rng.Intn(len(pool))]
}

// pickBest prefers preferred cuisines and unused recipes, with a little
// randomness for variety.
func (s *PlannerService) pickBest(pool []*models.Recipe, profile models.Profile, used map[string]int) *models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := pool[0]
	bestScore := -1 << 30
	for _, r := range pool {
		score := s.rng.Intn(3)
		for _, c := range profile.CuisinePreferences {
			if r.Cuisine == strings.ToLower(c) {
				score += 3
			}
		}
		score -= used[r.Name] * 5
		if score > bestScore {
			best, bestScore = r, score
		}
	}
	return best
}

func allergyConflict(r *models.Recipe, allergies []string) bool {
	for _, a := range allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), a) {
				return true
			}
		}
	}
	return false
}

// BuildShoppingList deduplicates the ingredients of the named recipes into
// the user's current shopping list. Unknown recipe names are skipped and
// reported rather than failing the whole list.
func (s *PlannerService) BuildShoppingList(userID uuid.UUID, recipeNames []string) (*models.ShoppingList, error) {
	list := &models.ShoppingList{
		ID:        uuid.New(),
		Items:     []models.ShoppingListEntry{},
		Recipes:   []string{},
		Currency:  "USD",
		CreatedAt: time.Now().UTC(),
	}

	index := make(map[string]int)
	for _, name := range recipeNames {
		recipe, err := s.catalog.Get(name)
		if err != nil {
			list.UnknownNames = append(list.UnknownNames, name)
			continue
		}
		list.Recipes = append(list.Recipes, recipe.Name)
		for _, ing := range recipe.Ingredients {
			key := strings.ToLower(strings.TrimSpace(ing))
			if i, ok := index[key]; ok {
				list.Items[i].Recipes = append(list.Items[i].Recipes, recipe.Name)
				continue
			}
			cost := s.nutrition.ShoppingCost(ing)
			index[key] = len(list.Items)
			list.Items = append(list.Items, models.ShoppingListEntry{
				Ingredient:    ing,
				Recipes:       []string{recipe.Name},
				EstimatedCost: cost,
			})
			list.EstimatedCost += cost
		}
	}
	if len(list.Recipes) == 0 {
		return nil, ErrRecipeNotFound
	}
	list.EstimatedCost = round2(list.EstimatedCost)

	s.mu.Lock()
	s.lists[userID] = list
	s.mu.Unlock()
	return list, nil
}

// CurrentShoppingList returns the user's latest shopping list.
func (s *PlannerService) CurrentShoppingList(userID uuid.UUID) (*models.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.lists[userID]
	if !ok {
		return nil, ErrNoShoppingList
	}
	return list, nil
}

// MealPrep builds a batch-cooking schedule, prep timeline and storage
// advice for up to five recipes.
func (s *PlannerService) MealPrep(recipeNames []string, weekStart string) (*models.MealPrepPlan, error) {
	if weekStart == "" {
		weekStart = time.Now().UTC().Format("2006-01-02")
	}

	plan := &models.MealPrepPlan{
		ID:        uuid.New(),
		WeekStart: weekStart,
		Recipes:   []string{},
		Storage: models.StorageAdvice{
			Containers: "Use airtight containers",
			Fridge:     "3-5 days at 40F or below",
			Freezer:    "2-3 months at 0F or below",
			Tips: []string{
				"Label containers with date and contents",
				"Cool food before storing",
				"Use freezer-safe containers for frozen meals",
				"Thaw in fridge overnight before reheating",
			},
		},
		CreatedAt: time.Now().UTC(),
	}

	day := 1
	for _, name := range recipeNames {
		recipe, err := s.catalog.Get(name)
		if err != nil {
			return nil, err
		}
		plan.Recipes = append(plan.Recipes, recipe.Name)
		if day <= 5 {
			plan.BatchSchedule = append(plan.BatchSchedule, models.BatchEntry{
				Day:       day,
				Recipe:    recipe.Name,
				PrepTime:  recipe.PrepTime,
				BatchSize: recipe.Servings,
				Notes:     fmt.Sprintf("Batch cook %s for the week", recipe.Name),
			})
			day++
		}
	}

	prepTasks := []string{"Chop vegetables", "Cook proteins", "Prepare sauces", "Cook grains", "Assemble containers"}
	n := len(plan.Recipes)
	if n > len(prepTasks) {
		n = len(prepTasks)
	}
	total := 0
	for i := 0; i < n; i++ {
		plan.PrepTimeline = append(plan.PrepTimeline, models.PrepTask{
			Task:          prepTasks[i],
			EstimatedTime: "30 minutes",
			Order:         i + 1,
		})
		total += 30
	}
	plan.PrepTimeline = append(plan.PrepTimeline, models.PrepTask{
		Task:          "Total prep time",
		EstimatedTime: strconv.Itoa(total) + " minutes",
		Order:         n + 1,
	})
	return plan, nil
}
