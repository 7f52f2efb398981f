package validator

import (
	"fmt"

	"github.com/Mallqui258/Automatizacion2/internal/catalog"
	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/models"
)

// AnswerValidator checks respondent input against the question bank before
// anything is stored or scored.
type AnswerValidator struct {
	catalog *catalog.Catalog
}

func NewAnswerValidator(c *catalog.Catalog) *AnswerValidator {
	return &AnswerValidator{catalog: c}
}

// ValidateQuestionNumber rejects numbers that are not items of the bank.
func (v *AnswerValidator) ValidateQuestionNumber(number int) error {
	if _, ok := v.catalog.Question(number); !ok {
		return apperrors.NewInvalidInputError(apperrors.KindUnknownQuestion, "question_number", number)
	}
	return nil
}

// ValidateResponse validates one submitted response and returns the parsed
// selection.
func (v *AnswerValidator) ValidateResponse(number int, options []string) (models.Selection, error) {
	if err := v.ValidateQuestionNumber(number); err != nil {
		return models.Selection{}, err
	}
	return models.ParseSelection(options)
}

// ValidateAnswers validates a whole answer sheet. The first offending item
// fails the batch.
func (v *AnswerValidator) ValidateAnswers(raw map[int][]string) (models.Answers, error) {
	for number := range raw {
		if err := v.ValidateQuestionNumber(number); err != nil {
			return nil, err
		}
	}

	answers, err := models.ParseAnswers(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid answer sheet: %w", err)
	}
	return answers, nil
}

// ValidateSex parses a sex label.
func (v *AnswerValidator) ValidateSex(value string) (models.Sex, error) {
	return models.ParseSex(value)
}
