package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// InventoryHandler handles HTTP requests for inventory operations
type InventoryHandler struct {
	inventoryUseCase domain.InventoryUseCase
	logger           *logger.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryUseCase domain.InventoryUseCase, logger *logger.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryUseCase: inventoryUseCase,
		logger:           logger,
	}
}

// ItemQuantityRequest represents a use/discard request body
type ItemQuantityRequest struct {
	Quantity int64 `json:"quantity" example:"1"`
}

// List handles listing the caller's inventory
// @Summary List inventory
// @Description List the authenticated user's item stacks, highest rarity first
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param rarity query string false "Filter by rarity"
// @Param search query string false "Filter by name substring"
// @Success 200 {array} domain.InventoryItem
// @Failure 401 {object} domain.ErrorResponse
// @Router /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	items, err := h.inventoryUseCase.List(userID, domain.InventoryFilter{
		Category: c.Query("category"),
		Rarity:   c.Query("rarity"),
		Search:   c.Query("search"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListTemplates handles listing the item catalogue
// @Summary List item templates
// @Description List the global item catalogue, optionally filtered
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param rarity query string false "Filter by rarity"
// @Success 200 {array} domain.ItemTemplate
// @Router /inventory/templates [get]
func (h *InventoryHandler) ListTemplates(c *gin.Context) {
	templates, err := h.inventoryUseCase.ListTemplates(c.Query("category"), c.Query("rarity"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetItem handles fetching a single stack
// @Summary Get an inventory item
// @Description Get one of the authenticated user's stacks by item id
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Success 200 {object} domain.InventoryItem
// @Failure 404 {object} domain.ErrorResponse
// @Router /inventory/{itemId} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	item, err := h.inventoryUseCase.GetItem(userID, c.Param("itemId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UseItem handles consuming a usable item
// @Summary Use an item
// @Description Consume units of a usable item and receive its effect
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Param request body ItemQuantityRequest false "Quantity to use"
// @Success 200 {object} domain.UseItemResult
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /inventory/{itemId}/use [post]
func (h *InventoryHandler) UseItem(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	quantity, ok := h.quantity(c)
	if !ok {
		return
	}

	result, err := h.inventoryUseCase.UseItem(userID, c.Param("itemId"), quantity)
	if err != nil {
		h.logger.Error("Item use failed",
			zap.Int64("user_id", userID),
			zap.String("item_id", c.Param("itemId")),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DiscardItem handles throwing items away
// @Summary Discard an item
// @Description Remove units of a stack from the inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Param request body ItemQuantityRequest false "Quantity to discard"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /inventory/{itemId} [delete]
func (h *InventoryHandler) DiscardItem(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	quantity, ok := h.quantity(c)
	if !ok {
		return
	}

	if err := h.inventoryUseCase.DiscardItem(userID, c.Param("itemId"), quantity); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) quantity(c *gin.Context) (int64, bool) {
	var req ItemQuantityRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
			return 0, false
		}
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	return req.Quantity, true
}
