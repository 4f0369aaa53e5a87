package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealforge/backend/internal/service"
	"github.com/mealforge/backend/internal/types"
)

type AuthHandler struct {
	authService *service.AuthService
	planner     *service.PlannerService
}

func NewAuthHandler(authService *service.AuthService, planner *service.PlannerService) *AuthHandler {
	return &AuthHandler{authService: authService, planner: planner}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
	router.GET("/profile", authRequired(h.authService), h.GetProfile)
	router.PUT("/profile", authRequired(h.authService), h.UpdateProfile)
	router.POST("/meal-plans/personalized", authRequired(h.authService), h.PersonalizedMealPlan)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.User(currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var skill, budget *string
	if req.SkillLevel != "" {
		skill = &req.SkillLevel
	}
	if req.BudgetRange != "" {
		budget = &req.BudgetRange
	}
	var familySize *int
	if req.FamilySize > 0 {
		familySize = &req.FamilySize
	}

	user, err := h.authService.UpdateProfile(currentUserID(c),
		req.DietaryRestrictions, req.Allergies, req.CuisinePreferences, skill, budget, familySize)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) PersonalizedMealPlan(c *gin.Context) {
	var req types.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.User(currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	plan, err := h.planner.PersonalizedPlan(req.Days, user.Profile)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}
