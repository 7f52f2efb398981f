package handlers

import (
	"fmt"
	"net/http"

	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/Mallqui258/Automatizacion2/internal/utils"
	"github.com/gin-gonic/gin"
)

// ResultHandler serves profiles, cohort statistics and exports.
type ResultHandler struct {
	BaseHandler
	resultService services.ResultService
	statsService  services.StatsService
	exportService services.ExportService
}

func NewResultHandler(
	resultService services.ResultService,
	statsService services.StatsService,
	exportService services.ExportService,
	logger utils.Logger,
) *ResultHandler {
	return &ResultHandler{
		BaseHandler:   NewBaseHandler(logger),
		resultService: resultService,
		statsService:  statsService,
		exportService: exportService,
	}
}

// GetResults returns the profile of a session
// @Summary Get results
// @Description Scores the session's responses against the norm table for its sex
// @Tags results
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} ErrorResponse
// @Router /results/{id} [get]
func (h *ResultHandler) GetResults(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	profile, err := h.resultService.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ScoreAnswers scores an answer sheet without storing it
// @Summary Score answers
// @Tags results
// @Accept json
// @Produce json
// @Param request body services.ScoreRequest true "Sex and answers keyed by question number"
// @Success 200 {object} models.Profile
// @Failure 400 {object} ErrorResponse
// @Router /results/score [post]
func (h *ResultHandler) ScoreAnswers(c *gin.Context) {
	var req services.ScoreRequest
	if !h.bindJSON(c, &req) {
		return
	}

	profile, err := h.resultService.ScoreAnswers(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetStats returns cohort statistics over completed sessions
// @Summary Cohort statistics
// @Tags results
// @Produce json
// @Param sex query string false "masculino or femenino"
// @Param date_from query string false "Created at or after"
// @Param date_to query string false "Created at or before"
// @Success 200 {object} services.CohortStats
// @Router /stats [get]
func (h *ResultHandler) GetStats(c *gin.Context) {
	filters, err := parseSessionFilters(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	stats, err := h.statsService.CohortStats(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportSessions downloads every session with answers and scores
// @Summary Export sessions
// @Tags results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "xlsx (default) or csv"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /export [get]
func (h *ResultHandler) ExportSessions(c *gin.Context) {
	filters, err := parseSessionFilters(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	format := c.DefaultQuery("format", services.ExportFormatXLSX)
	h.LogRequest(c, "Exporting sessions", "format", format)

	file, err := h.exportService.ExportSessions(c.Request.Context(), format, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
