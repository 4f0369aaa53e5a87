package service

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/models"
)

// DietaryOptions are the dietary tags the catalog and chat understand.
var DietaryOptions = []string{"vegetarian", "vegan", "gluten-free", "dairy-free", "keto", "paleo"}

// CuisineTypes are the cuisines the catalog and chat understand.
var CuisineTypes = []string{"italian", "mexican", "asian", "indian", "mediterranean", "american", "french", "thai"}

// RecipeService owns the immutable recipe catalog and per-user favorites.
type RecipeService struct {
	recipes []*models.Recipe
	byName  map[string]*models.Recipe

	mu        sync.RWMutex
	favorites map[uuid.UUID]map[string]bool
}

// NewRecipeService creates a RecipeService seeded with the startup catalog.
func NewRecipeService() *RecipeService {
	return newRecipeServiceWith(seedRecipes())
}

func newRecipeServiceWith(recipes []*models.Recipe) *RecipeService {
	byName := make(map[string]*models.Recipe, len(recipes))
	for _, r := range recipes {
		byName[strings.ToLower(r.Name)] = r
	}
	return &RecipeService{
		recipes:   recipes,
		byName:    byName,
		favorites: make(map[uuid.UUID]map[string]bool),
	}
}

// List returns the full catalog in seeded order.
func (s *RecipeService) List() []*models.Recipe {
	return s.recipes
}

// Get retrieves a recipe by name, case-insensitively.
func (s *RecipeService) Get(name string) (*models.Recipe, error) {
	r, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return r, nil
}

// Search returns recipes matching the query (against name, cuisine and
// ingredients) and the dietary tag, both optional. Limit <= 0 means no limit.
func (s *RecipeService) Search(query, dietary string, limit int) []*models.Recipe {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []*models.Recipe
	for _, r := range s.recipes {
		if dietary != "" && !r.HasDietary(dietary) {
			continue
		}
		if query != "" && !recipeMatchesQuery(r, query) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func recipeMatchesQuery(r *models.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Cuisine), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), query) {
			return true
		}
	}
	return false
}

// ByCuisine returns all recipes of the given cuisine.
func (s *RecipeService) ByCuisine(cuisine string) []*models.Recipe {
	cuisine = strings.ToLower(cuisine)
	var out []*models.Recipe
	for _, r := range s.recipes {
		if r.Cuisine == cuisine {
			out = append(out, r)
		}
	}
	return out
}

// ByDietary returns all recipes carrying the given dietary tag.
func (s *RecipeService) ByDietary(tag string) []*models.Recipe {
	var out []*models.Recipe
	for _, r := range s.recipes {
		if r.HasDietary(tag) {
			out = append(out, r)
		}
	}
	return out
}

// Favorite adds a recipe to the user's favorites. Idempotent.
func (s *RecipeService) Favorite(userID uuid.UUID, name string) error {
	r, err := s.Get(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[userID] == nil {
		s.favorites[userID] = make(map[string]bool)
	}
	s.favorites[userID][r.Name] = true
	return nil
}

// Unfavorite removes a recipe from the user's favorites.
func (s *RecipeService) Unfavorite(userID uuid.UUID, name string) error {
	r, err := s.Get(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.favorites[userID], r.Name)
	return nil
}

// Favorites returns the user's favorite recipe names in catalog order.
func (s *RecipeService) Favorites(userID uuid.UUID) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.favorites[userID]
	out := []string{}
	for _, r := range s.recipes {
		if set[r.Name] {
			out = append(out, r.Name)
		}
	}
	return out
}
