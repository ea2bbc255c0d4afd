package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
)

// LeaderboardHandler handles HTTP requests for leaderboard reads
type LeaderboardHandler struct {
	leaderboardUseCase domain.LeaderboardUseCase
	logger             *logger.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardUseCase domain.LeaderboardUseCase, logger *logger.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
		logger:             logger,
	}
}

// Global handles the focus-hours leaderboard
// @Summary Global leaderboard
// @Description Page through users ranked by lifetime focus hours
// @Tags leaderboards
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Router /leaderboards/global [get]
func (h *LeaderboardHandler) Global(c *gin.Context) {
	h.board(c, domain.LeaderboardGlobal)
}

// School handles the experience leaderboard
// @Summary School leaderboard
// @Description Page through users ranked by experience points
// @Tags leaderboards
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Router /leaderboards/school [get]
func (h *LeaderboardHandler) School(c *gin.Context) {
	h.board(c, domain.LeaderboardSchool)
}

func (h *LeaderboardHandler) board(c *gin.Context, board string) {
	page, limit := pageParams(c)
	entries, pagination, err := h.leaderboardUseCase.Entries(board, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Data: entries, Pagination: pagination})
}
