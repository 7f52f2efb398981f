// Package catalog holds the static CASM-83 R2014 instrument: the question
// bank, the scale mapping table, the per-sex norm tables and the career
// catalog. A Catalog is immutable once built and safe for concurrent use.
package catalog

import (
	"fmt"

	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/models"
)

// Question is one forced-choice item.
type Question struct {
	Number  int    `json:"number"`
	Block   int    `json:"block"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
}

// ScaleDefinition names the items that feed a scale.
type ScaleDefinition struct {
	Code   models.ScaleCode         `json:"code"`
	Name   string                   `json:"name"`
	Column [models.ItemsPerSide]int `json:"column"`
	Row    [models.ItemsPerSide]int `json:"row"`
}

// Norms maps each sex to its per-scale cutoffs.
type Norms map[models.Sex][models.NumScales]Cutoffs

type Catalog struct {
	questions []Question
	byNumber  map[int]int
	scales    [models.NumScales]ScaleDefinition
	norms     Norms
	careers   [models.NumScales]Careers
}

// Default returns the canonical CASM-83 R2014 catalog.
func Default() *Catalog {
	c, err := New(questionBank, scaleTable, Norms{
		models.SexMasculino: baremosMasculino,
		models.SexFemenino:  baremosFemenino,
	}, occupationCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in tables are inconsistent: %v", err))
	}
	return c
}

// New copies the given tables into a validated, immutable Catalog.
func New(questions []Question, scales [models.NumScales]ScaleDefinition, norms Norms, careers [models.NumScales]Careers) (*Catalog, error) {
	c := &Catalog{
		questions: append([]Question(nil), questions...),
		byNumber:  make(map[int]int, len(questions)),
		scales:    scales,
		norms:     make(Norms, len(norms)),
	}
	for i, q := range c.questions {
		c.byNumber[q.Number] = i
	}
	for sex, table := range norms {
		c.norms[sex] = table
	}
	for i, cr := range careers {
		c.careers[i] = Careers{
			Occupations:      append([]string(nil), cr.Occupations...),
			TechnicalCareers: append([]string(nil), cr.TechnicalCareers...),
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the structural invariants of the tables.
func (c *Catalog) Validate() error {
	if len(c.questions) != models.TotalQuestions {
		return fmt.Errorf("question bank has %d items, want %d", len(c.questions), models.TotalQuestions)
	}
	if len(c.byNumber) != len(c.questions) {
		return fmt.Errorf("question bank has duplicate numbers")
	}
	for _, q := range c.questions {
		if q.Number < 1 || q.Number > models.TotalQuestions {
			return fmt.Errorf("question number %d outside 1..%d", q.Number, models.TotalQuestions)
		}
		if q.OptionA == "" || q.OptionB == "" {
			return fmt.Errorf("question %d is missing an option text", q.Number)
		}
	}

	for i, def := range c.scales {
		if def.Code != models.ScaleCode(i) {
			return fmt.Errorf("scale table entry %d holds %s", i, def.Code)
		}
		for _, n := range def.Column {
			if _, ok := c.byNumber[n]; !ok {
				return fmt.Errorf("scale %s column references unknown item %d", def.Code, n)
			}
		}
		for _, n := range def.Row {
			if _, ok := c.byNumber[n]; !ok {
				return fmt.Errorf("scale %s row references unknown item %d", def.Code, n)
			}
		}
	}

	for _, sex := range models.AllSexes() {
		table, ok := c.norms[sex]
		if !ok {
			return fmt.Errorf("norm table missing for sex %s", sex)
		}
		for i, cut := range table {
			prev := 0
			for _, bound := range cut {
				if bound < prev || bound > models.MaxScaleScore {
					return fmt.Errorf("norm table %s/%s has non-ascending or out of range cutoffs %v", sex, models.ScaleCode(i), cut)
				}
				prev = bound
			}
		}
	}
	return nil
}

// Questions returns a copy of the question bank in presentation order.
func (c *Catalog) Questions() []Question {
	return append([]Question(nil), c.questions...)
}

func (c *Catalog) Question(number int) (Question, bool) {
	i, ok := c.byNumber[number]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

func (c *Catalog) TotalQuestions() int {
	return len(c.questions)
}

// Scales returns the scale table in enumeration order. Arrays are copied by value.
func (c *Catalog) Scales() [models.NumScales]ScaleDefinition {
	return c.scales
}

// Scale returns the definition of code, or the zero value for an unknown code.
func (c *Catalog) Scale(code models.ScaleCode) ScaleDefinition {
	if !code.Valid() {
		return ScaleDefinition{}
	}
	return c.scales[code]
}

// Cutoffs returns the norm row for sex and scale.
func (c *Catalog) Cutoffs(sex models.Sex, code models.ScaleCode) (Cutoffs, error) {
	table, ok := c.norms[sex]
	if !ok {
		return Cutoffs{}, apperrors.NewInvalidInputError(apperrors.KindUnknownSex, "sex", string(sex))
	}
	if !code.Valid() {
		return Cutoffs{}, apperrors.NewInvalidInputError(apperrors.KindUnknownScaleCode, "scale", int(code))
	}
	return table[code], nil
}

// Careers returns a copy of the career lists for a scale. Unknown codes get
// empty lists.
func (c *Catalog) Careers(code models.ScaleCode) Careers {
	if !code.Valid() {
		return Careers{Occupations: []string{}, TechnicalCareers: []string{}}
	}
	cr := c.careers[code]
	return Careers{
		Occupations:      append([]string{}, cr.Occupations...),
		TechnicalCareers: append([]string{}, cr.TechnicalCareers...),
	}
}
