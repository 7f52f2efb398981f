package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ScaleScore is the scored and interpreted result for one scale.
type ScaleScore struct {
	Scale          ScaleCode `json:"-"`
	Name           string    `json:"name"`
	Score          int       `json:"score"`
	MaxScore       int       `json:"max_score"`
	Interpretation Level     `json:"interpretation"`
}

// ScaleScores holds exactly one entry per scale, indexed by ScaleCode, so a
// profile can never be missing a scale.
type ScaleScores [NumScales]ScaleScore

func (s ScaleScores) Get(code ScaleCode) ScaleScore {
	return s[code]
}

// MarshalJSON writes a JSON object keyed by scale code in enumeration order.
func (s ScaleScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, score := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ScaleCode(i).String())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(score)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON requires every scale to be present.
func (s *ScaleScores) UnmarshalJSON(data []byte) error {
	var raw map[string]ScaleScore
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out ScaleScores
	for _, code := range AllScales() {
		score, ok := raw[code.String()]
		if !ok {
			return fmt.Errorf("scale %s missing from scores", code)
		}
		score.Scale = code
		out[code] = score
	}
	*s = out
	return nil
}

// Recommendation is a scale that cleared the cutoff, with its career lists.
type Recommendation struct {
	Scale            ScaleCode `json:"scale"`
	Name             string    `json:"name"`
	Score            int       `json:"score"`
	Interpretation   Level     `json:"interpretation"`
	Occupations      []string  `json:"ocupaciones"`
	TechnicalCareers []string  `json:"tecnicas"`
}

type Recommendations struct {
	TopScales []Recommendation `json:"top_scales"`
	AllScores ScaleScores      `json:"all_scores"`
}

// Profile is the full scoring result for one respondent.
type Profile struct {
	SessionID         string          `json:"session_id,omitempty"`
	Sex               Sex             `json:"sex"`
	Scores            ScaleScores     `json:"scores"`
	Recommendations   Recommendations `json:"recommendations"`
	TotalQuestions    int             `json:"total_questions"`
	AnsweredQuestions int             `json:"answered_questions"`
}
