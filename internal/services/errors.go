package services

import (
	"errors"
	"fmt"

	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrConflict         = errors.New("resource conflict")

	// Session specific errors
	ErrSessionNotFound         = errors.New("test session not found")
	ErrSessionAlreadyCompleted = errors.New("test session already completed")

	// Export specific errors
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

// Business rules enforced by the session service
const (
	RuleSessionOpen = "session_open"
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
	Err     error                  `json:"-"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

func (bre *BusinessRuleError) Unwrap() error {
	return bre.Err
}

// ===== ERROR HELPERS =====

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}, cause error) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
		Err:     cause,
	}
}

func sessionClosedError(sessionID, action string) *BusinessRuleError {
	return NewBusinessRuleError(
		RuleSessionOpen,
		fmt.Sprintf("cannot %s: session is already completed", action),
		map[string]interface{}{"session_id": sessionID},
		ErrSessionAlreadyCompleted,
	)
}

// translateRepoError maps storage sentinels onto service errors.
func translateRepoError(err error, sessionID string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	case errors.Is(err, repositories.ErrAlreadyCompleted):
		return sessionClosedError(sessionID, "complete the test")
	default:
		return err
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, repositories.ErrNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, apperrors.ErrInvalidInput) || errors.Is(err, ErrUnsupportedExportFormat) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrSessionAlreadyCompleted) ||
		errors.Is(err, repositories.ErrAlreadyCompleted)
}
