package service

import "github.com/mealforge/backend/internal/models"

// seedRecipes returns the startup catalog. Order matters: the Matcher
// breaks completion-ratio ties by catalog position.
func seedRecipes() []*models.Recipe {
	return []*models.Recipe{
		{
			Name: "Spaghetti Carbonara",
			Ingredients: []string{
				"400 g spaghetti",
				"4 eggs",
				"150 g bacon",
				"50 g parmesan cheese",
				"a pinch of black pepper",
			},
			Instructions: "Cook pasta. Fry bacon. Mix eggs and cheese. Combine all ingredients.",
			PrepTime:     "20 minutes",
			Difficulty:   "easy",
			Cuisine:      "italian",
			Dietary:      []string{},
			Servings:     4,
			Calories:     460, Protein: 22, Carbs: 52, Fat: 18,
		},
		{
			Name: "Chicken Stir Fry",
			Ingredients: []string{
				"2 chicken breast fillets",
				"3 cups mixed vegetables",
				"2 tbsp soy sauce",
				"2 cloves garlic",
				"1 tbsp ginger",
			},
			Instructions: "Cut chicken into pieces. Stir-fry vegetables. Add chicken and sauce.",
			PrepTime:     "25 minutes",
			Difficulty:   "easy",
			Cuisine:      "asian",
			Dietary:      []string{"gluten-free"},
			Servings:     4,
			Calories:     320, Protein: 30, Carbs: 18, Fat: 12,
		},
		{
			Name: "Vegetable Curry",
			Ingredients: []string{
				"4 cups mixed vegetables",
				"400 ml coconut milk",
				"2 tbsp curry powder",
				"1 onion",
				"3 cloves garlic",
			},
			Instructions: "Saute onions and garlic. Add vegetables and curry powder. Simmer with coconut milk.",
			PrepTime:     "30 minutes",
			Difficulty:   "medium",
			Cuisine:      "indian",
			Dietary:      []string{"vegan", "gluten-free"},
			Servings:     4,
			Calories:     290, Protein: 8, Carbs: 28, Fat: 17,
		},
		{
			Name: "Greek Salad",
			Ingredients: []string{
				"3 tomatoes",
				"1 cucumber",
				"1 red onion",
				"100 g feta cheese",
				"a handful of olives",
				"2 tbsp olive oil",
			},
			Instructions: "Chop all vegetables. Mix with olive oil and seasonings. Add feta and olives.",
			PrepTime:     "15 minutes",
			Difficulty:   "easy",
			Cuisine:      "mediterranean",
			Dietary:      []string{"vegetarian", "gluten-free"},
			Servings:     2,
			Calories:     260, Protein: 9, Carbs: 14, Fat: 19,
		},
		{
			Name: "Beef Tacos",
			Ingredients: []string{
				"500 g ground beef",
				"8 taco shells",
				"1 head lettuce",
				"2 tomatoes",
				"100 g cheese",
				"0.5 cup sour cream",
			},
			Instructions: "Brown ground beef with spices. Warm taco shells. Fill with beef and toppings.",
			PrepTime:     "20 minutes",
			Difficulty:   "easy",
			Cuisine:      "mexican",
			Dietary:      []string{"keto"},
			Servings:     4,
			Calories:     350, Protein: 25, Carbs: 15, Fat: 22,
		},
		{
			Name: "Margherita Pizza",
			Ingredients: []string{
				"1 ball pizza dough",
				"1 cup tomato sauce",
				"200 g mozzarella",
				"a few leaves of fresh basil",
				"1 tbsp olive oil",
			},
			Instructions: "Roll out dough. Add sauce and cheese. Bake at 475F for 12-15 minutes. Top with basil.",
			PrepTime:     "30 minutes",
			Difficulty:   "medium",
			Cuisine:      "italian",
			Dietary:      []string{"vegetarian"},
			Servings:     2,
			Calories:     280, Protein: 12, Carbs: 35, Fat: 10,
		},
		{
			Name: "Chicken Tikka Masala",
			Ingredients: []string{
				"3 chicken breast fillets",
				"1 cup yogurt",
				"2 tbsp tikka masala spice",
				"0.5 cup cream",
				"2 cups rice",
				"1 onion",
				"3 cloves garlic",
			},
			Instructions: "Marinate chicken in yogurt and spices. Grill and add to creamy tomato sauce. Serve with rice.",
			PrepTime:     "45 minutes",
			Difficulty:   "medium",
			Cuisine:      "indian",
			Dietary:      []string{"gluten-free"},
			Servings:     4,
			Calories:     420, Protein: 32, Carbs: 28, Fat: 18,
		},
		{
			Name: "Thai Green Curry",
			Ingredients: []string{
				"400 ml coconut milk",
				"3 tbsp green curry paste",
				"3 cups vegetables",
				"200 g tofu",
				"a few leaves of basil",
				"2 cups jasmine rice",
			},
			Instructions: "Fry curry paste. Add coconut milk and vegetables. Simmer with tofu. Serve over rice.",
			PrepTime:     "35 minutes",
			Difficulty:   "medium",
			Cuisine:      "thai",
			Dietary:      []string{"vegan", "gluten-free"},
			Servings:     4,
			Calories:     320, Protein: 15, Carbs: 38, Fat: 14,
		},
		{
			Name: "Mediterranean Quinoa Bowl",
			Ingredients: []string{
				"1 cup quinoa",
				"1 can chickpeas",
				"1 cucumber",
				"2 tomatoes",
				"100 g feta",
				"a handful of olives",
				"1 lemon",
				"2 tbsp tahini",
			},
			Instructions: "Cook quinoa. Roast chickpeas. Chop vegetables. Assemble bowl with tahini dressing.",
			PrepTime:     "25 minutes",
			Difficulty:   "easy",
			Cuisine:      "mediterranean",
			Dietary:      []string{"vegetarian", "gluten-free"},
			Servings:     2,
			Calories:     380, Protein: 18, Carbs: 45, Fat: 16,
		},
	}
}

// seedSubstitutions returns the ingredient substitution table.
func seedSubstitutions() map[string][]string {
	return map[string][]string{
		"eggs":       {"flax eggs (1 tbsp ground flax + 3 tbsp water)", "applesauce (1/4 cup per egg)", "banana (1/2 mashed banana per egg)"},
		"butter":     {"coconut oil", "olive oil", "applesauce (for baking)", "ghee"},
		"milk":       {"almond milk", "soy milk", "coconut milk", "oat milk"},
		"flour":      {"almond flour", "coconut flour", "oat flour", "gluten-free flour blend"},
		"sugar":      {"honey", "maple syrup", "stevia", "coconut sugar", "dates"},
		"cheese":     {"nutritional yeast", "cashew cheese", "dairy-free cheese alternatives"},
		"sour cream": {"coconut cream", "cashew cream", "greek yogurt", "dairy-free sour cream"},
		"mayonnaise": {"greek yogurt", "avocado", "hummus", "vegan mayonnaise"},
	}
}

// seedCookingTips returns cooking tips by category.
func seedCookingTips() map[string][]string {
	return map[string][]string{
		"general": {
			"Always read the entire recipe before starting to cook.",
			"Prep all ingredients before you start cooking (mise en place).",
			"Taste your food as you cook and adjust seasonings.",
			"Let meat rest after cooking to retain juices.",
			"Use a sharp knife - it's safer and more efficient.",
		},
		"baking": {
			"Measure ingredients precisely - baking is chemistry.",
			"Room temperature ingredients mix better.",
			"Don't overmix batter - it can make baked goods tough.",
			"Preheat your oven for consistent results.",
			"Use an oven thermometer for accuracy.",
		},
		"knife_skills": {
			"Keep fingers curled under when chopping.",
			"Use the claw grip for safety.",
			"Sharpen knives regularly for better control.",
			"Cut on a stable surface.",
			"Clean knives immediately after use.",
		},
		"food_storage": {
			"Store herbs like flowers in water.",
			"Keep tomatoes at room temperature for best flavor.",
			"Store mushrooms in paper bags.",
			"Freeze ginger for easy grating.",
			"Revive limp lettuce in ice water.",
		},
	}
}

// seedNutritionFacts returns per-ingredient macro estimates keyed by a
// lowercase fragment matched against ingredient text.
func seedNutritionFacts() map[string]models.Macros {
	return map[string]models.Macros{
		"eggs":           {Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11},
		"chicken breast": {Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
		"rice":           {Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
		"quinoa":         {Calories: 120, Protein: 4.4, Carbs: 21, Fat: 1.9},
		"pasta":          {Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1},
		"spaghetti":      {Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1},
		"tomato":         {Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2},
		"onion":          {Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1},
		"garlic":         {Calories: 149, Protein: 6.4, Carbs: 33, Fat: 0.5},
		"olive oil":      {Calories: 884, Protein: 0, Carbs: 0, Fat: 100},
		"cheese":         {Calories: 402, Protein: 25, Carbs: 1.3, Fat: 33},
		"vegetables":     {Calories: 35, Protein: 2, Carbs: 7, Fat: 0.2},
		"tofu":           {Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8},
		"coconut milk":   {Calories: 230, Protein: 2.3, Carbs: 6, Fat: 24},
	}
}

// seedIngredientCosts returns approximate USD prices keyed the same way.
func seedIngredientCosts() map[string]float64 {
	return map[string]float64{
		"eggs":            0.25,
		"chicken breast":  3.99,
		"rice":            2.99,
		"pasta":           1.99,
		"spaghetti":       1.99,
		"tomato":          2.49,
		"onion":           1.99,
		"garlic":          0.50,
		"olive oil":       8.99,
		"cheese":          5.99,
		"vegetables":      3.49,
		"bacon":           6.99,
		"coconut milk":    2.49,
		"curry powder":    3.99,
		"curry paste":     4.49,
		"soy sauce":       2.99,
		"ginger":          2.99,
		"feta":            6.99,
		"olives":          4.99,
		"ground beef":     4.99,
		"taco shells":     2.99,
		"lettuce":         2.49,
		"sour cream":      3.99,
		"yogurt":          3.49,
		"cream":           2.99,
		"quinoa":          5.49,
		"chickpeas":       1.29,
		"tofu":            2.49,
		"mozzarella":      4.99,
		"pizza dough":     3.49,
		"tomato sauce":    2.29,
		"cucumber":        0.99,
		"lemon":           0.69,
		"tahini":          6.49,
		"basil":           2.49,
		"tikka masala":    3.99,
	}
}

// seedSeasonalIngredients returns seasonal produce by season.
func seedSeasonalIngredients() map[string][]string {
	return map[string][]string{
		"spring": {"asparagus", "artichokes", "peas", "rhubarb", "strawberries", "spinach", "leeks"},
		"summer": {"tomatoes", "zucchini", "corn", "berries", "peppers", "eggplant", "watermelon"},
		"fall":   {"pumpkin", "squash", "apples", "pears", "brussels sprouts", "sweet potatoes", "cranberries"},
		"winter": {"citrus", "kale", "cabbage", "carrots", "potatoes", "onions", "winter squash"},
	}
}
