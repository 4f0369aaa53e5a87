package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mealforge/backend/internal/service"
	"github.com/mealforge/backend/internal/types"
)

type RecipeHandler struct {
	recipes     *service.RecipeService
	matcher     *service.Matcher
	scaler      *service.Scaler
	nutrition   *service.NutritionService
	authService *service.AuthService
}

func NewRecipeHandler(recipes *service.RecipeService, matcher *service.Matcher, scaler *service.Scaler, nutrition *service.NutritionService, authService *service.AuthService) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		matcher:     matcher,
		scaler:      scaler,
		nutrition:   nutrition,
		authService: authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("/match", h.MatchRecipes)
		recipes.POST("/scale", h.ScaleRecipe)
		recipes.POST("/variations", h.Variations)
		recipes.GET("/:name", h.GetRecipe)
		recipes.GET("/:name/nutrition", h.Nutrition)
		recipes.GET("/:name/cost", h.Cost)
		recipes.POST("/:name/favorite", authRequired(h.authService), h.FavoriteRecipe)
		recipes.DELETE("/:name/favorite", authRequired(h.authService), h.UnfavoriteRecipe)
	}
	router.GET("/favorites", authRequired(h.authService), h.Favorites)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	query := c.Query("q")
	dietary := c.Query("dietary")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	recipes := h.recipes.Search(query, dietary, limit)
	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "total": len(recipes)})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) MatchRecipes(c *gin.Context) {
	var req types.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = 10
	}
	matches := h.matcher.Suggest(req.Ingredients, limit)
	c.JSON(http.StatusOK, gin.H{"matches": matches, "total": len(matches)})
}

func (h *RecipeHandler) ScaleRecipe(c *gin.Context) {
	var req types.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scaled, err := h.scaler.Scale(req.RecipeName, req.Servings)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": scaled})
}

func (h *RecipeHandler) Variations(c *gin.Context) {
	var req types.VariationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variations, err := h.recipes.Variations(req.RecipeName, req.VariationType)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": req.RecipeName, "variations": variations})
}

func (h *RecipeHandler) Nutrition(c *gin.Context) {
	est, err := h.nutrition.Estimate(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nutrition": est})
}

func (h *RecipeHandler) Cost(c *gin.Context) {
	est, err := h.nutrition.Cost(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cost": est})
}

func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	if err := h.recipes.Favorite(currentUserID(c), c.Param("name")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": h.recipes.Favorites(currentUserID(c))})
}

func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	if err := h.recipes.Unfavorite(currentUserID(c), c.Param("name")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": h.recipes.Favorites(currentUserID(c))})
}

func (h *RecipeHandler) Favorites(c *gin.Context) {
	favorites := h.recipes.Favorites(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"favorites": favorites, "total": len(favorites)})
}
