package errors

import (
	"errors"
	"fmt"
)

// InputKind classifies why a scoring input was rejected.
type InputKind string

const (
	KindUnknownSex       InputKind = "unknown_sex"
	KindMalformedAnswer  InputKind = "malformed_answer"
	KindUnknownQuestion  InputKind = "unknown_question"
	KindScoreOutOfRange  InputKind = "score_out_of_range"
	KindUnknownScaleCode InputKind = "unknown_scale"
)

// ErrInvalidInput is matched by every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a value the scoring core refuses to work with.
type InvalidInputError struct {
	Kind  InputKind   `json:"kind"`
	Field string      `json:"field"`
	Value interface{} `json:"value,omitempty"`
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input (%s) on field '%s': %v", e.Kind, e.Field, e.Value)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInvalidInputError creates a new input error of the given kind
func NewInvalidInputError(kind InputKind, field string, value interface{}) *InvalidInputError {
	return &InvalidInputError{
		Kind:  kind,
		Field: field,
		Value: value,
	}
}

// InputKindOf returns the kind of the first InvalidInputError in err's chain.
func InputKindOf(err error) (InputKind, bool) {
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie.Kind, true
	}
	return "", false
}
