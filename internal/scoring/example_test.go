package scoring_test

import (
	"fmt"

	"github.com/Mallqui258/Automatizacion2/internal/catalog"
	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/scoring"
)

func ExampleEngine_Profile() {
	engine := scoring.NewEngine(catalog.Default())

	answers, err := models.ParseAnswers(map[int][]string{
		1:   {"A", "B"},
		14:  {"A"},
		27:  {"A"},
		40:  {"A"},
		53:  {"A"},
		66:  {"A"},
		79:  {"A"},
		92:  {"A"},
		105: {"A"},
		118: {"A"},
		131: {"A"},
		2:   {"B"},
		3:   {"B"},
		4:   {},
	})
	if err != nil {
		panic(err)
	}

	profile, err := engine.Profile(models.SexMasculino, answers)
	if err != nil {
		panic(err)
	}

	ccfm := profile.Scores.Get(models.ScaleCCFM)
	fmt.Println(ccfm.Score, ccfm.Interpretation)
	fmt.Println(len(profile.Recommendations.TopScales), profile.Recommendations.TopScales[0].Scale)
	fmt.Println(profile.AnsweredQuestions)
	// Output:
	// 14 promedio_alto
	// 1 CCFM
	// 13
}
