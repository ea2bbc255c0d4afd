package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// SessionHandler handles HTTP requests for focus session operations
type SessionHandler struct {
	sessionUseCase domain.SessionUseCase
	logger         *logger.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionUseCase domain.SessionUseCase, logger *logger.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// StartSessionRequest represents the session start request body
type StartSessionRequest struct {
	DurationMinutes int `json:"duration_minutes" binding:"required,gt=0" example:"25"`
}

// UpdateSessionRequest represents the session patch request body
type UpdateSessionRequest struct {
	TotalSeconds *int64 `json:"total_seconds,omitempty" example:"930"`
	IsPaused     *bool  `json:"is_paused,omitempty" example:"true"`
	IsRunning    *bool  `json:"is_running,omitempty" example:"false"`
	FocusLost    *bool  `json:"focus_lost,omitempty" example:"false"`
}

// CompleteSessionRequest represents the completion request body
type CompleteSessionRequest struct {
	TotalSeconds *int64 `json:"total_seconds,omitempty" example:"1500"`
}

// CompleteSessionResponse represents the completion response body
type CompleteSessionResponse struct {
	Session *domain.FocusSession   `json:"session"`
	Rewards *domain.SessionRewards `json:"rewards"`
}

// Start handles starting a focus session
// @Summary Start a focus session
// @Description Create a new running focus session for the authenticated user
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StartSessionRequest true "Session parameters"
// @Success 201 {object} domain.FocusSession
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /focus-sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	session, err := h.sessionUseCase.Start(userID, req.DurationMinutes)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Get handles fetching a single session
// @Summary Get a focus session
// @Description Get one of the authenticated user's sessions by id
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} domain.FocusSession
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /focus-sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionUseCase.Get(userID, sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// List handles listing the caller's sessions
// @Summary List focus sessions
// @Description Page through the authenticated user's sessions, newest first
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /focus-sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	sessions, pagination, err := h.sessionUseCase.List(userID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Data: sessions, Pagination: pagination})
}

// Update handles patching a running session
// @Summary Update a focus session
// @Description Patch the timer state of one of the authenticated user's sessions
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body UpdateSessionRequest true "Fields to update"
// @Success 200 {object} domain.FocusSession
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /focus-sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	session, err := h.sessionUseCase.Update(userID, sessionID, domain.SessionUpdate{
		TotalSeconds: req.TotalSeconds,
		IsPaused:     req.IsPaused,
		IsRunning:    req.IsRunning,
		FocusLost:    req.FocusLost,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Complete handles finishing a session and issuing rewards
// @Summary Complete a focus session
// @Description Finish a session and receive its coin, resource and XP rewards
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body CompleteSessionRequest false "Final timer reading"
// @Success 200 {object} CompleteSessionResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /focus-sessions/{id}/complete [put]
func (h *SessionHandler) Complete(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req CompleteSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
			return
		}
	}

	session, rewards, err := h.sessionUseCase.Complete(userID, sessionID, req.TotalSeconds)
	if err != nil {
		h.logger.Error("Session completion failed",
			zap.Int64("user_id", userID),
			zap.Int64("session_id", sessionID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CompleteSessionResponse{Session: session, Rewards: rewards})
}

func (h *SessionHandler) sessionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid session ID", 400, err))
		return 0, false
	}
	return id, true
}
