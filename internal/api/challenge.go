package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/service"
	"github.com/mealforge/backend/internal/types"
)

type ChallengeHandler struct {
	challenges  *service.ChallengeService
	authService *service.AuthService
}

func NewChallengeHandler(challenges *service.ChallengeService, authService *service.AuthService) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges, authService: authService}
}

func (h *ChallengeHandler) RegisterRoutes(router *gin.RouterGroup) {
	challenges := router.Group("/challenges", authRequired(h.authService))
	{
		challenges.GET("", h.ListChallenges)
		challenges.POST("", h.CreateChallenge)
		challenges.POST("/:id/complete", h.CompleteRecipe)
	}
	collections := router.Group("/collections", authRequired(h.authService))
	{
		collections.GET("", h.ListCollections)
		collections.POST("", h.CreateCollection)
		collections.POST("/:id/recipes", h.AddToCollection)
	}
	stats := router.Group("/stats", authRequired(h.authService))
	{
		stats.GET("/cooking", h.CookingStats)
		stats.GET("/cooked", h.CookedHistory)
		stats.POST("/cooked", h.TrackCooked)
	}
}

func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	list := h.challenges.Challenges(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"challenges": list, "total": len(list)})
}

func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var req types.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := h.challenges.CreateChallenge(currentUserID(c),
		req.Type, req.Title, req.Description, req.TargetRecipes, req.DurationDays, req.Difficulty)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"challenge": challenge})
}

func (h *ChallengeHandler) CompleteRecipe(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	var req types.CompleteChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := h.challenges.CompleteRecipe(currentUserID(c), challengeID, req.RecipeName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}

func (h *ChallengeHandler) ListCollections(c *gin.Context) {
	list := h.challenges.Collections(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"collections": list, "total": len(list)})
}

func (h *ChallengeHandler) CreateCollection(c *gin.Context) {
	var req types.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.challenges.CreateCollection(currentUserID(c),
		req.Name, req.Description, req.Tags, req.Public)
	c.JSON(http.StatusCreated, gin.H{"collection": collection})
}

func (h *ChallengeHandler) AddToCollection(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection id"})
		return
	}

	var req types.AddToCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection, err := h.challenges.AddToCollection(currentUserID(c), collectionID, req.RecipeName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

func (h *ChallengeHandler) TrackCooked(c *gin.Context) {
	var req types.TrackCookedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.challenges.TrackCooked(currentUserID(c), req.RecipeName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *ChallengeHandler) CookedHistory(c *gin.Context) {
	history := h.challenges.History(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"history": history, "total": len(history)})
}

func (h *ChallengeHandler) CookingStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.challenges.Stats(currentUserID(c))})
}
