package service

import (
	"fmt"

	"github.com/mealforge/backend/internal/models"
)

var cuisineVariations = map[string]map[string]string{
	"italian": {"soy sauce": "balsamic vinegar", "ginger": "basil"},
	"mexican": {"basil": "cilantro", "parmesan": "queso fresco"},
	"asian":   {"basil": "cilantro", "olive oil": "sesame oil"},
	"indian":  {"basil": "curry leaves", "garlic": "ginger-garlic paste"},
}

var dietaryVariations = map[string]struct {
	substitutions map[string]string
	remove        []string
}{
	"vegan": {
		substitutions: map[string]string{
			"eggs": "flax eggs", "cheese": "nutritional yeast",
			"milk": "plant milk", "butter": "coconut oil",
		},
		remove: []string{"chicken", "beef", "pork", "fish"},
	},
	"gluten-free": {
		substitutions: map[string]string{
			"pasta": "gluten-free pasta", "flour": "almond flour",
			"bread": "gluten-free bread",
		},
	},
	"keto": {
		substitutions: map[string]string{
			"pasta": "zucchini noodles", "rice": "cauliflower rice",
			"sugar": "stevia",
		},
		remove: []string{"bread", "pasta", "rice"},
	},
}

var spiceLevels = []string{"mild", "medium", "hot", "extra hot"}

const maxVariations = 10

// Variations suggests cuisine, dietary and spice-level spins on a recipe.
// variationType is "all" or one of "cuisine", "dietary", "spice".
func (s *RecipeService) Variations(name, variationType string) ([]models.RecipeVariation, error) {
	recipe, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	if variationType == "" {
		variationType = "all"
	}

	var out []models.RecipeVariation

	if variationType == "all" || variationType == "cuisine" {
		for _, cuisine := range CuisineTypes {
			subs, ok := cuisineVariations[cuisine]
			if !ok || cuisine == recipe.Cuisine {
				continue
			}
			out = append(out, models.RecipeVariation{
				Name:          fmt.Sprintf("%s (%s style)", recipe.Name, cuisine),
				VariationType: "cuisine",
				Cuisine:       cuisine,
				Substitutions: subs,
			})
		}
	}

	if variationType == "all" || variationType == "dietary" {
		for _, diet := range DietaryOptions {
			v, ok := dietaryVariations[diet]
			if !ok || recipe.HasDietary(diet) {
				continue
			}
			out = append(out, models.RecipeVariation{
				Name:          fmt.Sprintf("%s (%s)", recipe.Name, diet),
				VariationType: "dietary",
				Dietary:       append(append([]string{}, recipe.Dietary...), diet),
				Substitutions: v.substitutions,
				Remove:        v.remove,
			})
		}
	}

	if variationType == "all" || variationType == "spice" {
		for _, level := range spiceLevels {
			out = append(out, models.RecipeVariation{
				Name:          fmt.Sprintf("%s (%s spice)", recipe.Name, level),
				VariationType: "spice",
				SpiceLevel:    level,
			})
		}
	}

	if len(out) > maxVariations {
		out = out[:maxVariations]
	}
	return out, nil
}
