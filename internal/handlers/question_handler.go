package handlers

import (
	"net/http"
	"strconv"

	"github.com/Mallqui258/Automatizacion2/internal/catalog"
	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/utils"
	"github.com/gin-gonic/gin"
)

// QuestionHandler serves the read-only instrument: items and scales.
type QuestionHandler struct {
	BaseHandler
	catalog *catalog.Catalog
}

type QuestionListResponse struct {
	Questions []catalog.Question `json:"questions"`
	Total     int                `json:"total"`
}

type ScaleListResponse struct {
	Scales []catalog.ScaleDefinition `json:"scales"`
	Total  int                       `json:"total"`
}

func NewQuestionHandler(c *catalog.Catalog, logger utils.Logger) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler: NewBaseHandler(logger),
		catalog:     c,
	}
}

// ListQuestions returns the question bank
// @Summary List questions
// @Tags questions
// @Produce json
// @Success 200 {object} QuestionListResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions := h.catalog.Questions()
	c.JSON(http.StatusOK, QuestionListResponse{Questions: questions, Total: len(questions)})
}

// GetQuestion returns one item by number
// @Summary Get question
// @Tags questions
// @Produce json
// @Param number path int true "Question number (1-143)"
// @Success 200 {object} catalog.Question
// @Failure 400 {object} ErrorResponse
// @Router /questions/{number} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	raw := c.Param("number")
	number, err := strconv.Atoi(raw)
	if err != nil {
		h.handleServiceError(c, apperrors.NewInvalidInputError(apperrors.KindUnknownQuestion, "number", raw))
		return
	}

	question, ok := h.catalog.Question(number)
	if !ok {
		h.handleServiceError(c, apperrors.NewInvalidInputError(apperrors.KindUnknownQuestion, "number", number))
		return
	}
	c.JSON(http.StatusOK, question)
}

// ListScales returns the scale mapping table
// @Summary List scales
// @Tags questions
// @Produce json
// @Success 200 {object} ScaleListResponse
// @Router /scales [get]
func (h *QuestionHandler) ListScales(c *gin.Context) {
	scales := h.catalog.Scales()
	c.JSON(http.StatusOK, ScaleListResponse{Scales: scales[:], Total: len(scales)})
}
