package catalog

import "github.com/Mallqui258/Automatizacion2/internal/models"

// Cutoffs holds the lowest raw score of each level above bajo, in level
// order: promedio_bajo, promedio, promedio_alto, alto, muy_alto.
type Cutoffs [models.NumLevels - 1]int

// Norm tables per sex, indexed by scale. Values are lower bounds (inclusive).
var (
	baremosMasculino = [models.NumScales]Cutoffs{
		models.ScaleCCFM: {6, 9, 12, 15, 19},
		models.ScaleCCSS: {5, 8, 11, 14, 18},
		models.ScaleCCNA: {5, 8, 11, 14, 18},
		models.ScaleCCCO: {5, 8, 11, 14, 17},
		models.ScaleARTE: {4, 7, 10, 13, 17},
		models.ScaleBURO: {4, 7, 10, 13, 16},
		models.ScaleCCEP: {5, 8, 11, 14, 17},
		models.ScaleIIAA: {4, 7, 10, 13, 17},
		models.ScaleFINA: {5, 8, 11, 14, 17},
		models.ScaleLING: {4, 7, 10, 13, 16},
		models.ScaleJURI: {4, 7, 10, 13, 17},
	}

	baremosFemenino = [models.NumScales]Cutoffs{
		models.ScaleCCFM: {4, 7, 10, 13, 17},
		models.ScaleCCSS: {6, 9, 12, 15, 19},
		models.ScaleCCNA: {5, 8, 11, 14, 18},
		models.ScaleCCCO: {6, 9, 12, 15, 18},
		models.ScaleARTE: {5, 8, 11, 14, 18},
		models.ScaleBURO: {5, 8, 11, 14, 17},
		models.ScaleCCEP: {4, 7, 10, 13, 16},
		models.ScaleIIAA: {3, 6, 9, 12, 15},
		models.ScaleFINA: {4, 7, 10, 13, 17},
		models.ScaleLING: {5, 8, 11, 14, 18},
		models.ScaleJURI: {5, 8, 11, 14, 18},
	}
)

// Level returns the highest level whose lower bound is <= raw.
func (c Cutoffs) Level(raw int) models.Level {
	level := models.LevelBajo
	for i, bound := range c {
		if raw >= bound {
			level = models.Level(i + 1)
		}
	}
	return level
}

// Floor returns the lowest raw score that reaches level.
func (c Cutoffs) Floor(level models.Level) int {
	if level <= models.LevelBajo {
		return 0
	}
	return c[level-1]
}
