package catalog

import "github.com/Mallqui258/Automatizacion2/internal/models"

// scaleTable maps each scale to the items scored when option A is marked
// (column) and when option B is marked (row). The diagonal item of every
// scale sits in both lists, e.g. item 1 for CCFM.
var scaleTable = [models.NumScales]ScaleDefinition{
	{
		Code:   models.ScaleCCFM,
		Name:   "Ciencias Físicas Matemáticas",
		Column: [11]int{1, 14, 27, 40, 53, 66, 79, 92, 105, 118, 131},
		Row:    [11]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	{
		Code:   models.ScaleCCSS,
		Name:   "Ciencias Sociales",
		Column: [11]int{2, 15, 28, 41, 54, 67, 80, 93, 106, 119, 132},
		Row:    [11]int{14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
	},
	{
		Code:   models.ScaleCCNA,
		Name:   "Ciencias Naturales",
		Column: [11]int{3, 16, 29, 42, 55, 68, 81, 94, 107, 120, 133},
		Row:    [11]int{27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37},
	},
	{
		Code:   models.ScaleCCCO,
		Name:   "Ciencias de la Comunicación",
		Column: [11]int{4, 17, 30, 43, 56, 69, 82, 95, 108, 121, 134},
		Row:    [11]int{40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50},
	},
	{
		Code:   models.ScaleARTE,
		Name:   "Artes",
		Column: [11]int{5, 18, 31, 44, 57, 70, 83, 96, 109, 122, 135},
		Row:    [11]int{53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63},
	},
	{
		Code:   models.ScaleBURO,
		Name:   "Burocracia",
		Column: [11]int{6, 19, 32, 45, 58, 71, 84, 97, 110, 123, 136},
		Row:    [11]int{66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76},
	},
	{
		Code:   models.ScaleCCEP,
		Name:   "Ciencias Económicas Políticas",
		Column: [11]int{7, 20, 33, 46, 59, 72, 85, 98, 111, 124, 137},
		Row:    [11]int{79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89},
	},
	{
		Code:   models.ScaleIIAA,
		Name:   "Institutos Armados",
		Column: [11]int{8, 21, 34, 47, 60, 73, 86, 99, 112, 125, 138},
		Row:    [11]int{92, 93, 94, 95, 96, 97, 98, 99, 100, 101, 102},
	},
	{
		Code:   models.ScaleFINA,
		Name:   "Finanzas",
		Column: [11]int{9, 22, 35, 48, 61, 74, 87, 100, 113, 126, 139},
		Row:    [11]int{105, 106, 107, 108, 109, 110, 111, 112, 113, 114, 115},
	},
	{
		Code:   models.ScaleLING,
		Name:   "Lingüística",
		Column: [11]int{10, 23, 36, 49, 62, 75, 88, 101, 114, 127, 140},
		Row:    [11]int{118, 119, 120, 121, 122, 123, 124, 125, 126, 127, 128},
	},
	{
		Code:   models.ScaleJURI,
		Name:   "Jurisprudencia",
		Column: [11]int{11, 24, 37, 50, 63, 76, 89, 102, 115, 128, 141},
		Row:    [11]int{131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141},
	},
}
