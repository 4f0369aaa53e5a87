package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/service"
	"github.com/mealforge/backend/internal/types"
)

type ReviewHandler struct {
	reviews     *service.ReviewService
	authService *service.AuthService
}

func NewReviewHandler(reviews *service.ReviewService, authService *service.AuthService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, authService: authService}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/:name/reviews", h.RecipeReviews)
	reviews := router.Group("/reviews")
	{
		reviews.GET("/top", h.TopRecipes)
		reviews.POST("", authRequired(h.authService), h.CreateReview)
		reviews.DELETE("/:id", authRequired(h.authService), h.DeleteReview)
		reviews.POST("/:id/helpful", authRequired(h.authService), h.MarkHelpful)
	}
}

func (h *ReviewHandler) RecipeReviews(c *gin.Context) {
	reviews, stats, err := h.reviews.ForRecipe(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "stats": stats})
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wouldMakeAgain := true
	if req.WouldMakeAgain != nil {
		wouldMakeAgain = *req.WouldMakeAgain
	}
	review, err := h.reviews.Add(currentUserID(c), currentUsername(c),
		req.RecipeName, req.Rating, req.Title, req.Comment, wouldMakeAgain)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	if err := h.reviews.Delete(currentUserID(c), reviewID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": reviewID})
}

func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	review, err := h.reviews.MarkHelpful(currentUserID(c), reviewID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ReviewHandler) TopRecipes(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	minReviews := 1
	if raw := c.Query("min_reviews"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_reviews must be a positive integer"})
			return
		}
		minReviews = n
	}

	top := h.reviews.TopRecipes(limit, minReviews)
	c.JSON(http.StatusOK, gin.H{"top_recipes": top})
}
