package scoring

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Mallqui258/Automatizacion2/internal/catalog"
	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.Default())
}

func allBoth() models.Answers {
	answers := make(models.Answers, models.TotalQuestions)
	for n := 1; n <= models.TotalQuestions; n++ {
		answers[n] = models.Selection{A: true, B: true}
	}
	return answers
}

func TestEngine_Score_NoAnswers(t *testing.T) {
	engine := newTestEngine()

	raw := engine.Score(models.Answers{})
	for i, score := range raw {
		assert.Equal(t, 0, score, "scale %s", models.ScaleCode(i))
	}
}

func TestEngine_Score_CCFMExample(t *testing.T) {
	engine := newTestEngine()
	answers := models.Answers{}
	for _, n := range []int{14, 27, 40, 53, 66, 79, 92, 105, 118, 131} {
		answers[n] = models.Selection{A: true}
	}
	for n := 1; n <= 11; n++ {
		answers[n] = models.Selection{B: true}
	}

	raw := engine.Score(answers)

	assert.Equal(t, 21, raw[models.ScaleCCFM])
	for _, code := range models.AllScales()[1:] {
		assert.Equal(t, 0, raw[code], "scale %s", code)
	}
}

func TestEngine_Score_OverlapCountsTwice(t *testing.T) {
	engine := newTestEngine()

	raw := engine.Score(models.Answers{1: {A: true, B: true}})
	assert.Equal(t, 2, raw[models.ScaleCCFM])

	raw = engine.Score(models.Answers{1: {A: true}})
	assert.Equal(t, 1, raw[models.ScaleCCFM])

	raw = engine.Score(models.Answers{1: {B: true}})
	assert.Equal(t, 1, raw[models.ScaleCCFM])
}

func TestEngine_Score_Bounds(t *testing.T) {
	engine := newTestEngine()

	raw := engine.Score(allBoth())
	for i, score := range raw {
		assert.Equal(t, models.MaxScaleScore, score, "scale %s", models.ScaleCode(i))
	}

	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		answers := models.Answers{}
		for n := 1; n <= models.TotalQuestions; n++ {
			answers[n] = models.Selection{A: rng.Intn(2) == 1, B: rng.Intn(2) == 1}
		}
		for _, score := range engine.Score(answers) {
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, models.MaxScaleScore)
		}
	}
}

func TestEngine_Score_UnmappedItemsContributeNothing(t *testing.T) {
	engine := newTestEngine()

	// 12, 13, 142 and 143 are not listed by any scale; 999 is not an item at all.
	raw := engine.Score(models.Answers{
		12:  {A: true, B: true},
		13:  {A: true, B: true},
		142: {A: true, B: true},
		143: {A: true, B: true},
		999: {A: true, B: true},
	})
	assert.Equal(t, [models.NumScales]int{}, raw)
}

func TestEngine_Score_OrderIndependentAndPure(t *testing.T) {
	engine := newTestEngine()
	rng := rand.New(rand.NewSource(7))

	type entry struct {
		number int
		sel    models.Selection
	}
	entries := make([]entry, 0, models.TotalQuestions)
	for n := 1; n <= models.TotalQuestions; n++ {
		entries = append(entries, entry{n, models.Selection{A: rng.Intn(2) == 1, B: rng.Intn(2) == 1}})
	}

	build := func(list []entry) models.Answers {
		answers := models.Answers{}
		for _, e := range list {
			answers[e.number] = e.sel
		}
		return answers
	}

	original := build(entries)
	snapshot := build(entries)
	want := engine.Score(original)

	for i := 0; i < 20; i++ {
		shuffled := append([]entry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, engine.Score(build(shuffled)))
	}

	assert.Equal(t, want, engine.Score(original), "scoring twice must be identical")
	assert.Equal(t, snapshot, original, "scoring must not mutate answers")
}

func TestEngine_Interpret(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name  string
		sex   models.Sex
		scale models.ScaleCode
		raw   int
		want  models.Level
	}{
		{"zero is bajo", models.SexMasculino, models.ScaleCCFM, 0, models.LevelBajo},
		{"CCFM 21 masculino", models.SexMasculino, models.ScaleCCFM, 21, models.LevelMuyAlto},
		{"JURI 15 masculino", models.SexMasculino, models.ScaleJURI, 15, models.LevelPromedioAlto},
		{"exact cutoff", models.SexMasculino, models.ScaleCCFM, 12, models.LevelPromedioAlto},
		{"one below cutoff", models.SexMasculino, models.ScaleCCFM, 11, models.LevelPromedio},
		{"max score", models.SexFemenino, models.ScaleLING, 22, models.LevelMuyAlto},
		{"CCFM 4 masculino", models.SexMasculino, models.ScaleCCFM, 4, models.LevelBajo},
		{"CCFM 4 femenino", models.SexFemenino, models.ScaleCCFM, 4, models.LevelPromedioBajo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Interpret(tt.sex, tt.scale, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_Interpret_Monotonic(t *testing.T) {
	engine := newTestEngine()

	for _, sex := range models.AllSexes() {
		for _, code := range models.AllScales() {
			prev := models.LevelBajo
			for raw := 0; raw <= models.MaxScaleScore; raw++ {
				level, err := engine.Interpret(sex, code, raw)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, level, prev, "%s/%s at %d", sex, code, raw)
				prev = level
			}
		}
	}
}

func TestEngine_Interpret_Errors(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Interpret(models.Sex("otro"), models.ScaleCCFM, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	kind, ok := apperrors.InputKindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindUnknownSex, kind)

	_, err = engine.Interpret(models.SexFemenino, models.ScaleCCFM, 23)
	kind, _ = apperrors.InputKindOf(err)
	assert.Equal(t, apperrors.KindScoreOutOfRange, kind)

	_, err = engine.Interpret(models.SexFemenino, models.ScaleCCFM, -1)
	kind, _ = apperrors.InputKindOf(err)
	assert.Equal(t, apperrors.KindScoreOutOfRange, kind)
}

func TestEngine_Recommend_FilterAndOrder(t *testing.T) {
	engine := newTestEngine()

	var scores models.ScaleScores
	for i := range scores {
		scores[i] = models.ScaleScore{Scale: models.ScaleCode(i), Score: 3, Interpretation: models.LevelBajo}
	}
	scores[models.ScaleJURI] = models.ScaleScore{Scale: models.ScaleJURI, Name: "Jurisprudencia", Score: 14, Interpretation: models.LevelPromedioAlto}
	scores[models.ScaleCCSS] = models.ScaleScore{Scale: models.ScaleCCSS, Name: "Ciencias Sociales", Score: 14, Interpretation: models.LevelAlto}
	scores[models.ScaleARTE] = models.ScaleScore{Scale: models.ScaleARTE, Name: "Artes", Score: 20, Interpretation: models.LevelMuyAlto}
	scores[models.ScaleFINA] = models.ScaleScore{Scale: models.ScaleFINA, Score: 9, Interpretation: models.LevelPromedio}

	recs := engine.Recommend(scores)

	require.Len(t, recs, 3)
	assert.Equal(t, models.ScaleARTE, recs[0].Scale)
	assert.Equal(t, models.ScaleCCSS, recs[1].Scale, "ties keep scale order")
	assert.Equal(t, models.ScaleJURI, recs[2].Scale)
	for _, r := range recs {
		assert.True(t, r.Interpretation.Recommended())
		careers := engine.Catalog().Careers(r.Scale)
		assert.Equal(t, careers.Occupations, r.Occupations)
		assert.Equal(t, careers.TechnicalCareers, r.TechnicalCareers)
	}
}

func TestEngine_Recommend_EmptyIsNotNil(t *testing.T) {
	engine := newTestEngine()

	recs := engine.Recommend(models.ScaleScores{})
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestEngine_Profile_EmptySession(t *testing.T) {
	engine := newTestEngine()

	profile, err := engine.Profile(models.SexMasculino, models.Answers{})
	require.NoError(t, err)

	assert.Equal(t, models.SexMasculino, profile.Sex)
	assert.Equal(t, models.TotalQuestions, profile.TotalQuestions)
	assert.Equal(t, 0, profile.AnsweredQuestions)
	assert.NotNil(t, profile.Recommendations.TopScales)
	assert.Empty(t, profile.Recommendations.TopScales)
	for _, s := range profile.Scores {
		assert.Equal(t, 0, s.Score)
		assert.Equal(t, models.MaxScaleScore, s.MaxScore)
	}
	assert.Equal(t, profile.Scores, profile.Recommendations.AllScores)
}

func TestEngine_Profile_SkippedItemsAreNotAnswered(t *testing.T) {
	engine := newTestEngine()

	profile, err := engine.Profile(models.SexFemenino, models.Answers{
		1: {A: true},
		2: {},
		3: {A: true, B: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, profile.AnsweredQuestions)
}

func TestEngine_Profile_HighScores(t *testing.T) {
	engine := newTestEngine()

	profile, err := engine.Profile(models.SexMasculino, allBoth())
	require.NoError(t, err)

	require.Len(t, profile.Recommendations.TopScales, models.NumScales)
	for i, r := range profile.Recommendations.TopScales {
		assert.Equal(t, models.ScaleCode(i), r.Scale)
		assert.Equal(t, models.LevelMuyAlto, r.Interpretation)
	}
	assert.Equal(t, models.TotalQuestions, profile.AnsweredQuestions)
}

func TestEngine_Profile_UnknownSex(t *testing.T) {
	engine := newTestEngine()

	profile, err := engine.Profile(models.Sex(""), models.Answers{1: {A: true}})
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
