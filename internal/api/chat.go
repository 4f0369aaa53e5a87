package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealforge/backend/internal/middleware"
	"github.com/mealforge/backend/internal/service"
	"github.com/mealforge/backend/internal/types"
)

type ChatHandler struct {
	chat          *service.ChatService
	substitutions *service.SubstitutionService
	authService   *service.AuthService
}

func NewChatHandler(chat *service.ChatService, substitutions *service.SubstitutionService, authService *service.AuthService) *ChatHandler {
	return &ChatHandler{chat: chat, substitutions: substitutions, authService: authService}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Chat works anonymously; a token personalizes favorites and plans.
	router.POST("/chat", middleware.OptionalAuthMiddleware(h.authService), h.Chat)
	router.POST("/substitutions", h.Substitutions)
	router.GET("/tips", h.Tips)
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := h.chat.Respond(currentUserID(c), req.Message)
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (h *ChatHandler) Substitutions(c *gin.Context) {
	var req types.SubstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subs := h.substitutions.Lookup(req.Ingredient)
	if len(subs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"ingredient":    req.Ingredient,
			"substitutions": subs,
			"message":       "No substitutions found. Try a more common ingredient name.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": req.Ingredient, "substitutions": subs})
}

func (h *ChatHandler) Tips(c *gin.Context) {
	category := c.DefaultQuery("category", "general")
	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"tips":       h.substitutions.Tips(category),
		"categories": h.substitutions.TipCategories(),
	})
}
