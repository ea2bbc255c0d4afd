package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CastleHandler handles HTTP requests for castle operations
type CastleHandler struct {
	castleUseCase domain.CastleUseCase
	logger        *logger.Logger
}

// NewCastleHandler creates a new castle handler
func NewCastleHandler(castleUseCase domain.CastleUseCase, logger *logger.Logger) *CastleHandler {
	return &CastleHandler{
		castleUseCase: castleUseCase,
		logger:        logger,
	}
}

// SpendResourcesRequest represents the resource spend request body
type SpendResourcesRequest struct {
	Coins  int64  `json:"coins" example:"50"`
	Wood   int64  `json:"wood" example:"20"`
	Stones int64  `json:"stones" example:"10"`
	ItemID string `json:"item_id,omitempty" example:"stone_tower"`
}

// UpdateLayoutRequest represents the layout replacement request body.
// Clients send the placement list under "layout", "items" or
// "placed_items"; the first key present wins.
type UpdateLayoutRequest struct {
	Layout             []domain.Placement `json:"layout"`
	Items              []domain.Placement `json:"items"`
	PlacedItems        []domain.Placement `json:"placed_items"`
	Level              *int               `json:"level,omitempty" example:"3"`
	ProgressPercentage *float64           `json:"progress_percentage,omitempty" example:"42.5"`
}

func (r *UpdateLayoutRequest) placements() ([]domain.Placement, bool) {
	switch {
	case r.Layout != nil:
		return r.Layout, true
	case r.Items != nil:
		return r.Items, true
	case r.PlacedItems != nil:
		return r.PlacedItems, true
	}
	return nil, false
}

// GetMyCastle handles fetching the caller's castle
// @Summary Get own castle
// @Description Get the authenticated user's castle, creating it on first access
// @Tags castles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Castle
// @Failure 401 {object} domain.ErrorResponse
// @Router /castles/my-castle [get]
func (h *CastleHandler) GetMyCastle(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	castle, err := h.castleUseCase.GetOrCreate(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, castle)
}

// GetCastle handles viewing another user's castle
// @Summary Get a user's castle
// @Description Get any user's castle by their user id
// @Tags castles
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} domain.Castle
// @Failure 404 {object} domain.ErrorResponse
// @Router /castles/{userId} [get]
func (h *CastleHandler) GetCastle(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid user ID", 400, err))
		return
	}

	castle, err := h.castleUseCase.GetByUserID(targetID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, castle)
}

// SpendResources handles deducting castle resources
// @Summary Spend castle resources
// @Description Deduct a resource bundle from the castle, optionally recording a shop purchase
// @Tags castles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SpendResourcesRequest true "Resources to spend"
// @Success 200 {object} domain.Castle
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /castles/spend-resources [post]
func (h *CastleHandler) SpendResources(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req SpendResourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	castle, err := h.castleUseCase.SpendResources(userID, domain.ResourceSpend{
		Coins:  req.Coins,
		Wood:   req.Wood,
		Stones: req.Stones,
		ItemID: req.ItemID,
	})
	if err != nil {
		h.logger.Error("Resource spend failed", zap.Int64("user_id", userID), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, castle)
}

// UpdateLayout handles full layout replacement
// @Summary Update castle layout
// @Description Replace the castle layout and reconcile the decoration stock against it
// @Tags castles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateLayoutRequest true "New layout"
// @Success 200 {object} domain.Castle
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /castles/layout [put]
// @Router /castles/update-layout [put]
func (h *CastleHandler) UpdateLayout(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req UpdateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}
	layout, ok := req.placements()
	if !ok {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeRequiredField, "A placement list is required (layout, items or placed_items)", 400, nil))
		return
	}

	castle, err := h.castleUseCase.UpdateLayout(userID, domain.LayoutUpdate{
		Layout:             layout,
		Level:              req.Level,
		ProgressPercentage: req.ProgressPercentage,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, castle)
}

// LevelUp handles castle level advancement
// @Summary Level up the castle
// @Description Spend the current level requirements to advance the castle one level
// @Tags castles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Castle
// @Failure 409 {object} domain.ErrorResponse
// @Router /castles/level-up [put]
func (h *CastleHandler) LevelUp(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	castle, err := h.castleUseCase.LevelUp(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, castle)
}
