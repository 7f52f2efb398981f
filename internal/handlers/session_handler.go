package handlers

import (
	"net/http"

	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/Mallqui258/Automatizacion2/internal/utils"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	BaseHandler
	sessionService services.SessionService
}

func NewSessionHandler(sessionService services.SessionService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
	}
}

// StartTest opens a new questionnaire session
// @Summary Start test
// @Description Creates a session for a respondent of the given sex
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body services.StartSessionRequest true "Respondent sex"
// @Success 200 {object} services.StartSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /start-test [post]
func (h *SessionHandler) StartTest(c *gin.Context) {
	var req services.StartSessionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Starting test session", "sex", req.Sex)

	resp, err := h.sessionService.Start(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SaveResponse stores the options marked for one item
// @Summary Save response
// @Description Saves or replaces the response to one question
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body services.SaveResponseRequest true "Response"
// @Success 200 {object} services.SaveResponseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /save-response [post]
func (h *SessionHandler) SaveResponse(c *gin.Context) {
	var req services.SaveResponseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.sessionService.SaveResponse(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CompleteTest closes a session
// @Summary Complete test
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body services.CompleteSessionRequest true "Session"
// @Success 200 {object} services.CompleteSessionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /complete-test [post]
func (h *SessionHandler) CompleteTest(c *gin.Context) {
	var req services.CompleteSessionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Completing test session", "session_id", req.SessionID)

	resp, err := h.sessionService.Complete(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSession returns a session with its responses
// @Summary Get test session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.TestSession
// @Failure 404 {object} ErrorResponse
// @Router /test-session/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListSessions returns stored sessions, oldest first by default
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Param sex query string false "masculino or femenino"
// @Param completed query bool false "Completion state"
// @Param date_from query string false "Created at or after"
// @Param date_to query string false "Created at or before"
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {object} services.SessionListResponse
// @Router /all-sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	filters, err := parseSessionFilters(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	resp, err := h.sessionService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
