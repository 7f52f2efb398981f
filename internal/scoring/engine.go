// Package scoring turns a respondent's answers into the CASM-83 profile:
// raw scale scores, norm-based interpretation levels and career
// recommendations. Every function here is pure; the engine holds only the
// immutable catalog and may be shared across goroutines.
package scoring

import (
	"sort"

	"github.com/Mallqui258/Automatizacion2/internal/catalog"
	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/models"
)

type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ===== SCORING =====

// Score returns the raw score of every scale. Each column item adds one
// point when A is marked and each row item adds one point when B is marked.
// The two checks are independent, so an item listed in both the column and
// the row of a scale and answered with both options adds two points.
func (e *Engine) Score(answers models.Answers) [models.NumScales]int {
	var raw [models.NumScales]int
	for i, def := range e.catalog.Scales() {
		for _, n := range def.Column {
			if answers[n].A {
				raw[i]++
			}
		}
		for _, n := range def.Row {
			if answers[n].B {
				raw[i]++
			}
		}
	}
	return raw
}

// ===== INTERPRETATION =====

// Interpret maps a raw score to a level using the norm table for sex.
func (e *Engine) Interpret(sex models.Sex, code models.ScaleCode, raw int) (models.Level, error) {
	if !sex.Valid() {
		return 0, apperrors.NewInvalidInputError(apperrors.KindUnknownSex, "sex", string(sex))
	}
	if raw < 0 || raw > models.MaxScaleScore {
		return 0, apperrors.NewInvalidInputError(apperrors.KindScoreOutOfRange, "score", raw)
	}
	cutoffs, err := e.catalog.Cutoffs(sex, code)
	if err != nil {
		return 0, err
	}
	return cutoffs.Level(raw), nil
}

// ScaleScores scores and interprets all scales for one respondent.
func (e *Engine) ScaleScores(sex models.Sex, answers models.Answers) (models.ScaleScores, error) {
	var scores models.ScaleScores
	raw := e.Score(answers)
	for i, def := range e.catalog.Scales() {
		level, err := e.Interpret(sex, def.Code, raw[i])
		if err != nil {
			return models.ScaleScores{}, err
		}
		scores[i] = models.ScaleScore{
			Scale:          def.Code,
			Name:           def.Name,
			Score:          raw[i],
			MaxScore:       models.MaxScaleScore,
			Interpretation: level,
		}
	}
	return scores, nil
}

// ===== RECOMMENDATIONS =====

// Recommend keeps scales at or above the recommendation cutoff, highest raw
// score first. Equal scores keep scale enumeration order. The result is
// never nil.
func (e *Engine) Recommend(scores models.ScaleScores) []models.Recommendation {
	recs := make([]models.Recommendation, 0, models.NumScales)
	for _, s := range scores {
		if !s.Interpretation.Recommended() {
			continue
		}
		careers := e.catalog.Careers(s.Scale)
		recs = append(recs, models.Recommendation{
			Scale:            s.Scale,
			Name:             s.Name,
			Score:            s.Score,
			Interpretation:   s.Interpretation,
			Occupations:      careers.Occupations,
			TechnicalCareers: careers.TechnicalCareers,
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

// ===== PROFILE =====

// Profile runs scoring, interpretation and recommendation for one respondent.
func (e *Engine) Profile(sex models.Sex, answers models.Answers) (*models.Profile, error) {
	scores, err := e.ScaleScores(sex, answers)
	if err != nil {
		return nil, err
	}
	return &models.Profile{
		Sex:    sex,
		Scores: scores,
		Recommendations: models.Recommendations{
			TopScales: e.Recommend(scores),
			AllScores: scores,
		},
		TotalQuestions:    e.catalog.TotalQuestions(),
		AnsweredQuestions: answers.AnsweredCount(),
	}, nil
}
