package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/middleware"
	"github.com/mealforge/backend/internal/service"
)

// Services bundles the application services the handlers run on.
type Services struct {
	Auth          *service.AuthService
	Recipes       *service.RecipeService
	Matcher       *service.Matcher
	Scaler        *service.Scaler
	Substitutions *service.SubstitutionService
	Nutrition     *service.NutritionService
	Inventory     *service.InventoryService
	Planner       *service.PlannerService
	Reviews       *service.ReviewService
	Challenges    *service.ChallengeService
	Chat          *service.ChatService
}

// NewServices wires the full service graph over a fresh catalog.
func NewServices(jwtSecret string) *Services {
	recipes := service.NewRecipeService()
	nutrition := service.NewNutritionService(recipes)
	substitutions := service.NewSubstitutionService()
	planner := service.NewPlannerService(recipes, nutrition)
	return &Services{
		Auth:          service.NewAuthService(jwtSecret),
		Recipes:       recipes,
		Matcher:       service.NewMatcher(recipes),
		Scaler:        service.NewScaler(recipes),
		Substitutions: substitutions,
		Nutrition:     nutrition,
		Inventory:     service.NewInventoryService(),
		Planner:       planner,
		Reviews:       service.NewReviewService(recipes),
		Challenges:    service.NewChallengeService(recipes),
		Chat:          service.NewChatService(recipes, substitutions, nutrition, planner),
	}
}

// SetupAPI registers every handler under /api/v1.
func SetupAPI(router *gin.Engine, svcs *Services) {
	v1 := router.Group("/api/v1")
	{
		NewAuthHandler(svcs.Auth, svcs.Planner).RegisterRoutes(v1)
		NewRecipeHandler(svcs.Recipes, svcs.Matcher, svcs.Scaler, svcs.Nutrition, svcs.Auth).RegisterRoutes(v1)
		NewChatHandler(svcs.Chat, svcs.Substitutions, svcs.Auth).RegisterRoutes(v1)
		NewInventoryHandler(svcs.Inventory, svcs.Matcher, svcs.Auth).RegisterRoutes(v1)
		NewPlannerHandler(svcs.Planner, svcs.Auth).RegisterRoutes(v1)
		NewReviewHandler(svcs.Reviews, svcs.Auth).RegisterRoutes(v1)
		NewChallengeHandler(svcs.Challenges, svcs.Auth).RegisterRoutes(v1)
	}
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "MealForge API is running",
		"version": "v1.0.0",
	})
}

// currentUserID reads the user ID stored by the auth middleware.
func currentUserID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// currentUsername reads the username stored by the auth middleware.
func currentUsername(c *gin.Context) string {
	return c.GetString("username")
}

// errorStatus maps service errors to HTTP statuses, defaulting to 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrReviewNotFound),
		errors.Is(err, service.ErrCollectionNotFound),
		errors.Is(err, service.ErrChallengeNotFound),
		errors.Is(err, service.ErrNoShoppingList):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidServings),
		errors.Is(err, service.ErrNegativeQuantity),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidChallenge),
		errors.Is(err, service.ErrNoRecipesForDiet):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrDuplicateReview),
		errors.Is(err, service.ErrAlreadyVoted):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotReviewOwner):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

// authRequired is a small alias so route tables read cleanly.
func authRequired(auth middleware.TokenValidator) gin.HandlerFunc {
	return middleware.AuthMiddleware(auth)
}
