package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AdminHandler handles HTTP requests for the admin panel
type AdminHandler struct {
	adminUseCase domain.AdminUseCase
	logger       *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUseCase domain.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// PutSettingRequest represents the setting update request body
type PutSettingRequest struct {
	Value       string `json:"value" binding:"required" example:"60"`
	Description string `json:"description,omitempty" example:"Minutes of focus per chest"`
}

// Dashboard handles the aggregate stats view
// @Summary Admin dashboard stats
// @Description Get platform-wide user, session, castle and chest counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DashboardStats
// @Failure 403 {object} domain.ErrorResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminUseCase.DashboardStats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecentActivity handles the activity feed
// @Summary Recent activity
// @Description Get the latest completed sessions as an activity feed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Feed size"
// @Success 200 {array} domain.ActivityEntry
// @Router /admin/activity [get]
func (h *AdminHandler) RecentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, err := h.adminUseCase.RecentActivity(limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListUsers handles the user listing
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)
	users, pagination, err := h.adminUseCase.ListUsers(page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Data: users, Pagination: pagination})
}

// ListSessions handles the session listing
// @Summary List all focus sessions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Router /admin/focus-sessions [get]
func (h *AdminHandler) ListSessions(c *gin.Context) {
	page, limit := pageParams(c)
	sessions, pagination, err := h.adminUseCase.ListSessions(page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Data: sessions, Pagination: pagination})
}

// ListCastles handles the castle listing
// @Summary List all castles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Router /admin/castles [get]
func (h *AdminHandler) ListCastles(c *gin.Context) {
	page, limit := pageParams(c)
	castles, pagination, err := h.adminUseCase.ListCastles(page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Data: castles, Pagination: pagination})
}

// ListChests handles the chest listing
// @Summary List all treasure chests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Router /admin/treasure-chests [get]
func (h *AdminHandler) ListChests(c *gin.Context) {
	page, limit := pageParams(c)
	chests, pagination, err := h.adminUseCase.ListChests(page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Data: chests, Pagination: pagination})
}

// ChestStats handles the chest state summary
// @Summary Chest statistics
// @Description Get chest counts broken down by locked, unlocked and claimed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ChestStats
// @Router /admin/treasure-chests/stats [get]
func (h *AdminHandler) ChestStats(c *gin.Context) {
	stats, err := h.adminUseCase.ChestStats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListSettings handles listing the tunable settings
// @Summary List settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Setting
// @Router /admin/settings [get]
func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.adminUseCase.ListSettings()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PutSetting handles creating or updating a setting
// @Summary Put a setting
// @Description Create or update a tunable setting by key
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body PutSettingRequest true "Setting value"
// @Success 200 {object} domain.Setting
// @Failure 400 {object} domain.ErrorResponse
// @Router /admin/settings/{key} [put]
func (h *AdminHandler) PutSetting(c *gin.Context) {
	adminID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	setting, err := h.adminUseCase.PutSetting(c.Param("key"), req.Value, req.Description, adminID)
	if err != nil {
		h.logger.Error("Setting update failed",
			zap.String("key", c.Param("key")),
			zap.Int64("admin_id", adminID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}
