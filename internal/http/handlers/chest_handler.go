package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ChestHandler handles HTTP requests for treasure chest operations
type ChestHandler struct {
	chestUseCase domain.ChestUseCase
	logger       *logger.Logger
}

// NewChestHandler creates a new chest handler
func NewChestHandler(chestUseCase domain.ChestUseCase, logger *logger.Logger) *ChestHandler {
	return &ChestHandler{
		chestUseCase: chestUseCase,
		logger:       logger,
	}
}

// ClaimChestResponse represents the claim response body
type ClaimChestResponse struct {
	Rewards *domain.ChestRewards  `json:"rewards"`
	Chest   *domain.TreasureChest `json:"chest"`
}

// GetMyChest handles chest status reads
// @Summary Get current treasure chest
// @Description Get the authenticated user's current chest with its unlock cycle state
// @Tags chests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ChestStatus
// @Failure 401 {object} domain.ErrorResponse
// @Router /treasure-chests/my-chest [get]
func (h *ChestHandler) GetMyChest(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	status, err := h.chestUseCase.GetStatus(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Claim handles chest claims
// @Summary Claim the current treasure chest
// @Description Claim an unlocked chest, credit its rewards and start the next cycle
// @Tags chests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ClaimChestResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /treasure-chests/claim [put]
func (h *ChestHandler) Claim(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	rewards, chest, err := h.chestUseCase.Claim(userID)
	if err != nil {
		h.logger.Error("Chest claim failed", zap.Int64("user_id", userID), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClaimChestResponse{Rewards: rewards, Chest: chest})
}
