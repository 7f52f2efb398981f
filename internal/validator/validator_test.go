package validator

import (
	"testing"

	"github.com/Mallqui258/Automatizacion2/internal/catalog"
	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type responseRequest struct {
	SessionID      string   `json:"session_id" validate:"required"`
	QuestionNumber int      `json:"question_number" validate:"question_number"`
	Response       []string `json:"response" validate:"option_code"`
}

type sheetRequest struct {
	Sex     string           `json:"sex" validate:"required,sex"`
	Answers map[int][]string `json:"answers" validate:"dive,keys,question_number,endkeys,option_code"`
}

func TestValidator_CustomTags(t *testing.T) {
	v := New(catalog.Default())

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantKind  apperrors.InputKind
	}{
		{"valid response", responseRequest{SessionID: "s", QuestionNumber: 1, Response: []string{"A", "B"}}, "", ""},
		{"skipped response", responseRequest{SessionID: "s", QuestionNumber: 143, Response: []string{}}, "", ""},
		{"nil response", responseRequest{SessionID: "s", QuestionNumber: 12}, "", ""},
		{"question zero", responseRequest{SessionID: "s", QuestionNumber: 0}, "question_number", apperrors.KindUnknownQuestion},
		{"question 144", responseRequest{SessionID: "s", QuestionNumber: 144}, "question_number", apperrors.KindUnknownQuestion},
		{"bad option", responseRequest{SessionID: "s", QuestionNumber: 5, Response: []string{"C"}}, "response", apperrors.KindMalformedAnswer},
		{"duplicate option", responseRequest{SessionID: "s", QuestionNumber: 5, Response: []string{"B", "B"}}, "response", apperrors.KindMalformedAnswer},
		{"bad option wins over missing session", responseRequest{QuestionNumber: 5, Response: []string{"C"}}, "response", apperrors.KindMalformedAnswer},
		{"valid sheet", sheetRequest{Sex: "femenino", Answers: map[int][]string{1: {"A"}, 2: {}}}, "", ""},
		{"unknown sex", sheetRequest{Sex: "otro"}, "sex", apperrors.KindUnknownSex},
		{"sheet with bad key", sheetRequest{Sex: "masculino", Answers: map[int][]string{200: {"A"}}}, "answers[200]", apperrors.KindUnknownQuestion},
		{"sheet with bad option", sheetRequest{Sex: "masculino", Answers: map[int][]string{3: {"A", "B", "A"}}}, "answers[3]", apperrors.KindMalformedAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}

			var inputErr *apperrors.InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.wantKind, inputErr.Kind)
			assert.Equal(t, tt.wantField, inputErr.Field)
		})
	}
}

func TestValidator_GenericRulesStayValidationErrors(t *testing.T) {
	v := New(catalog.Default())

	err := v.ValidateStruct(responseRequest{QuestionNumber: 5})
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "session_id", errs[0].Field)
	assert.Equal(t, "required", errs[0].Rule)

	err = v.ValidateStruct(sheetRequest{})
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "sex", errs[0].Field)
	assert.Equal(t, "required", errs[0].Rule)
	_, isKind := apperrors.InputKindOf(err)
	assert.False(t, isKind)
}

func TestAnswerValidator(t *testing.T) {
	v := New(catalog.Default()).Answer()

	sel, err := v.ValidateResponse(10, []string{"B"})
	require.NoError(t, err)
	assert.Equal(t, models.Selection{B: true}, sel)

	_, err = v.ValidateResponse(0, []string{"A"})
	kind, _ := apperrors.InputKindOf(err)
	assert.Equal(t, apperrors.KindUnknownQuestion, kind)

	_, err = v.ValidateResponse(10, []string{"X"})
	kind, _ = apperrors.InputKindOf(err)
	assert.Equal(t, apperrors.KindMalformedAnswer, kind)

	answers, err := v.ValidateAnswers(map[int][]string{1: {"A", "B"}, 143: {}})
	require.NoError(t, err)
	assert.Equal(t, 1, answers.AnsweredCount())

	_, err = v.ValidateAnswers(map[int][]string{1: {"A"}, 144: {"A"}})
	kind, _ = apperrors.InputKindOf(err)
	assert.Equal(t, apperrors.KindUnknownQuestion, kind)

	sex, err := v.ValidateSex("masculino")
	require.NoError(t, err)
	assert.Equal(t, models.SexMasculino, sex)
}
