package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealforge/backend/internal/service"
	"github.com/mealforge/backend/internal/types"
)

type PlannerHandler struct {
	planner     *service.PlannerService
	authService *service.AuthService
}

func NewPlannerHandler(planner *service.PlannerService, authService *service.AuthService) *PlannerHandler {
	return &PlannerHandler{planner: planner, authService: authService}
}

func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/meal-plans", h.CreateMealPlan)
	lists := router.Group("/shopping-lists", authRequired(h.authService))
	{
		lists.POST("", h.CreateShoppingList)
		lists.GET("", h.CurrentShoppingList)
	}
	router.POST("/meal-prep", authRequired(h.authService), h.MealPrep)
}

func (h *PlannerHandler) CreateMealPlan(c *gin.Context) {
	var req types.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planner.CreatePlan(req.Days, req.Dietary)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}

func (h *PlannerHandler) CreateShoppingList(c *gin.Context) {
	var req types.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.planner.BuildShoppingList(currentUserID(c), req.Recipes)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shopping_list": list})
}

func (h *PlannerHandler) CurrentShoppingList(c *gin.Context) {
	list, err := h.planner.CurrentShoppingList(currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shopping_list": list})
}

func (h *PlannerHandler) MealPrep(c *gin.Context) {
	var req types.MealPrepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planner.MealPrep(req.Recipes, req.WeekStart)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal_prep_plan": plan})
}
