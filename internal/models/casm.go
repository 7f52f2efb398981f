package models

import (
	"fmt"
	"strings"

	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
)

const (
	TotalQuestions = 143
	NumScales      = 11
	ItemsPerSide   = 11
	MaxScaleScore  = 2 * ItemsPerSide
)

// ===== SCALES =====

// ScaleCode identifies one of the 11 CASM-83 interest scales. The numeric
// value is the fixed enumeration order used for ties and array indexing.
type ScaleCode int

const (
	ScaleCCFM ScaleCode = iota
	ScaleCCSS
	ScaleCCNA
	ScaleCCCO
	ScaleARTE
	ScaleBURO
	ScaleCCEP
	ScaleIIAA
	ScaleFINA
	ScaleLING
	ScaleJURI
)

var scaleCodeNames = [NumScales]string{
	"CCFM", "CCSS", "CCNA", "CCCO", "ARTE", "BURO", "CCEP", "IIAA", "FINA", "LING", "JURI",
}

// AllScales returns the scale codes in enumeration order.
func AllScales() []ScaleCode {
	scales := make([]ScaleCode, NumScales)
	for i := range scales {
		scales[i] = ScaleCode(i)
	}
	return scales
}

func (s ScaleCode) Valid() bool {
	return s >= 0 && int(s) < NumScales
}

func (s ScaleCode) String() string {
	if !s.Valid() {
		return fmt.Sprintf("ScaleCode(%d)", int(s))
	}
	return scaleCodeNames[s]
}

func (s ScaleCode) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, apperrors.NewInvalidInputError(apperrors.KindUnknownScaleCode, "scale", int(s))
	}
	return []byte(scaleCodeNames[s]), nil
}

func (s *ScaleCode) UnmarshalText(text []byte) error {
	code, err := ParseScaleCode(string(text))
	if err != nil {
		return err
	}
	*s = code
	return nil
}

// ParseScaleCode accepts a scale code in any letter case.
func ParseScaleCode(value string) (ScaleCode, error) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	for i, name := range scaleCodeNames {
		if name == upper {
			return ScaleCode(i), nil
		}
	}
	return 0, apperrors.NewInvalidInputError(apperrors.KindUnknownScaleCode, "scale", value)
}

// ===== INTERPRETATION LEVELS =====

// Level is an ordered interpretation band; a higher value means stronger interest.
type Level int

const (
	LevelBajo Level = iota
	LevelPromedioBajo
	LevelPromedio
	LevelPromedioAlto
	LevelAlto
	LevelMuyAlto
)

const NumLevels = 6

// RecommendationCutoff is the lowest level that earns a career recommendation.
const RecommendationCutoff = LevelPromedioAlto

var levelNames = [NumLevels]string{
	"bajo", "promedio_bajo", "promedio", "promedio_alto", "alto", "muy_alto",
}

// AllLevels returns the levels from lowest to highest.
func AllLevels() []Level {
	levels := make([]Level, NumLevels)
	for i := range levels {
		levels[i] = Level(i)
	}
	return levels
}

func (l Level) Valid() bool {
	return l >= 0 && int(l) < NumLevels
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid interpretation level %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	for i, name := range levelNames {
		if name == string(text) {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("unknown interpretation level %q", string(text))
}

// Recommended reports whether the level clears the recommendation cutoff.
func (l Level) Recommended() bool {
	return l >= RecommendationCutoff
}

// ===== SEX =====

// Sex selects the norm table. Only the two values the baremos define are valid.
type Sex string

const (
	SexMasculino Sex = "masculino"
	SexFemenino  Sex = "femenino"
)

func AllSexes() []Sex {
	return []Sex{SexMasculino, SexFemenino}
}

func (s Sex) Valid() bool {
	return s == SexMasculino || s == SexFemenino
}

// ParseSex fails with an unknown_sex InvalidInputError instead of defaulting.
func ParseSex(value string) (Sex, error) {
	sex := Sex(strings.ToLower(strings.TrimSpace(value)))
	if !sex.Valid() {
		return "", apperrors.NewInvalidInputError(apperrors.KindUnknownSex, "sex", value)
	}
	return sex, nil
}

// ===== ANSWERS =====

const (
	OptionA = "A"
	OptionB = "B"
)

// Selection is the set of options a respondent marked on one item. Both,
// either or neither may be set; all four combinations are legal.
type Selection struct {
	A bool
	B bool
}

// ParseSelection converts a wire list such as ["A","B"] into a Selection.
// Values outside {A,B} and repeated values are rejected.
func ParseSelection(options []string) (Selection, error) {
	var sel Selection
	if len(options) > 2 {
		return Selection{}, apperrors.NewInvalidInputError(apperrors.KindMalformedAnswer, "response", options)
	}
	for _, opt := range options {
		switch opt {
		case OptionA:
			if sel.A {
				return Selection{}, apperrors.NewInvalidInputError(apperrors.KindMalformedAnswer, "response", options)
			}
			sel.A = true
		case OptionB:
			if sel.B {
				return Selection{}, apperrors.NewInvalidInputError(apperrors.KindMalformedAnswer, "response", options)
			}
			sel.B = true
		default:
			return Selection{}, apperrors.NewInvalidInputError(apperrors.KindMalformedAnswer, "response", options)
		}
	}
	return sel, nil
}

func (s Selection) Empty() bool {
	return !s.A && !s.B
}

// Options returns the canonical wire form, A before B.
func (s Selection) Options() []string {
	options := make([]string, 0, 2)
	if s.A {
		options = append(options, OptionA)
	}
	if s.B {
		options = append(options, OptionB)
	}
	return options
}

// Answers maps question number to the respondent's selection. At most one
// selection per question exists; a later write replaces the earlier one.
type Answers map[int]Selection

// ParseAnswers converts the wire mapping question number -> option list.
func ParseAnswers(raw map[int][]string) (Answers, error) {
	answers := make(Answers, len(raw))
	for number, options := range raw {
		sel, err := ParseSelection(options)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", number, err)
		}
		answers[number] = sel
	}
	return answers, nil
}

// AnsweredCount counts questions with at least one option marked.
func (a Answers) AnsweredCount() int {
	count := 0
	for _, sel := range a {
		if !sel.Empty() {
			count++
		}
	}
	return count
}
