package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ComponentHandler handles HTTP requests for crafting operations
type ComponentHandler struct {
	craftingUseCase domain.CraftingUseCase
	logger          *logger.Logger
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(craftingUseCase domain.CraftingUseCase, logger *logger.Logger) *ComponentHandler {
	return &ComponentHandler{
		craftingUseCase: craftingUseCase,
		logger:          logger,
	}
}

// CraftRequest represents the craft request body
type CraftRequest struct {
	ItemID   string `json:"item_id" binding:"required" example:"wooden_sword"`
	Quantity int64  `json:"quantity" example:"1"`
}

// GetComponents handles listing craftable holdings
// @Summary Get crafting components
// @Description Get the authenticated user's castle resources and component stacks
// @Tags crafting
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ComponentHoldings
// @Failure 401 {object} domain.ErrorResponse
// @Router /components [get]
func (h *ComponentHandler) GetComponents(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	holdings, err := h.craftingUseCase.GetComponents(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, holdings)
}

// Craft handles crafting items from recipes
// @Summary Craft an item
// @Description Consume recipe inputs and produce the crafted item, all-or-nothing
// @Tags crafting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CraftRequest true "Item to craft"
// @Success 200 {object} domain.CraftResult
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /components/craft [post]
func (h *ComponentHandler) Craft(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req CraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	result, err := h.craftingUseCase.Craft(userID, req.ItemID, req.Quantity)
	if err != nil {
		h.logger.Error("Craft failed",
			zap.Int64("user_id", userID),
			zap.String("item_id", req.ItemID),
			zap.Int64("quantity", req.Quantity),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
