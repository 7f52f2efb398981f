package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Mallqui258/Automatizacion2/internal/catalog"
	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator is the main validator instance that combines all validation types
type Validator struct {
	structValidator *validator.Validate
	answerValidator *AnswerValidator
}

// New creates a new centralized validator instance
func New(c *catalog.Catalog) *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator, c.TotalQuestions())

	return &Validator{
		structValidator: structValidator,
		answerValidator: NewAnswerValidator(c),
	}
}

// inputKindTags maps the domain tags onto the input kind they report.
var inputKindTags = map[string]apperrors.InputKind{
	"sex":             apperrors.KindUnknownSex,
	"option_code":     apperrors.KindMalformedAnswer,
	"question_number": apperrors.KindUnknownQuestion,
}

// ValidateStruct validates struct tags. A failed domain tag is returned as an
// InvalidInputError of its kind; everything else as ValidationErrors.
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if kind, ok := inputKindTags[fe.Tag()]; ok {
					return apperrors.NewInvalidInputError(kind, fe.Field(), fe.Value())
				}
			}
		}
		if errs := ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// Answer returns the answer validator
func (v *Validator) Answer() *AnswerValidator {
	return v.answerValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate, totalQuestions int) {
	validate.RegisterValidation("sex", validateSex)
	validate.RegisterValidation("option_code", validateOptionCode)
	validate.RegisterValidation("question_number", func(fl validator.FieldLevel) bool {
		return validateQuestionNumber(fl, totalQuestions)
	})

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validation functions
func validateSex(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := models.ParseSex(fl.Field().String())
	return err == nil
}

func validateOptionCode(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}

	options := make([]string, field.Len())
	for i := 0; i < field.Len(); i++ {
		if field.Index(i).Kind() != reflect.String {
			return false
		}
		options[i] = field.Index(i).String()
	}

	_, err := models.ParseSelection(options)
	return err == nil
}

func validateQuestionNumber(fl validator.FieldLevel, totalQuestions int) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := fl.Field().Int()
		return n >= 1 && n <= int64(totalQuestions)
	default:
		return false
	}
}
