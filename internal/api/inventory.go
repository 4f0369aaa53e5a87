package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealforge/backend/internal/models"
	"github.com/mealforge/backend/internal/service"
	"github.com/mealforge/backend/internal/types"
)

type InventoryHandler struct {
	inventory   *service.InventoryService
	matcher     *service.Matcher
	authService *service.AuthService
}

func NewInventoryHandler(inventory *service.InventoryService, matcher *service.Matcher, authService *service.AuthService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, matcher: matcher, authService: authService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inv := router.Group("/inventory", authRequired(h.authService))
	{
		inv.GET("", h.ListInventory)
		inv.POST("", h.AddItem)
		inv.PUT("/:id", h.UpdateItem)
		inv.DELETE("/:id", h.RemoveItem)
		inv.GET("/suggestions", h.Suggestions)
	}
}

func (h *InventoryHandler) ListInventory(c *gin.Context) {
	view := h.inventory.List(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"inventory": view})
}

func (h *InventoryHandler) AddItem(c *gin.Context) {
	var req types.AddInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.InventoryItem{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Location: req.Location,
		Category: req.Category,
		Notes:    req.Notes,
	}
	if req.ExpiryDate != "" {
		t, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiry_date must be YYYY-MM-DD"})
			return
		}
		item.ExpiryDate = &t
	}

	added, err := h.inventory.Add(currentUserID(c), item)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": added})
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req types.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventory.Update(currentUserID(c), itemID, req.Quantity, req.Unit, req.ExpiryDate, req.Location, req.Notes)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *InventoryHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	removed, err := h.inventory.Remove(currentUserID(c), itemID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// Suggestions ranks the catalog against everything the user has on hand.
func (h *InventoryHandler) Suggestions(c *gin.Context) {
	names := h.inventory.ItemNames(currentUserID(c))
	if len(names) == 0 {
		c.JSON(http.StatusOK, gin.H{"matches": []any{}, "total": 0, "message": "inventory is empty"})
		return
	}
	matches := h.matcher.Suggest(names, 10)
	c.JSON(http.StatusOK, gin.H{"matches": matches, "total": len(matches)})
}
