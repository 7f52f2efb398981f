package catalog

import "github.com/Mallqui258/Automatizacion2/internal/models"

// Careers lists suggested professional and technical careers for a scale.
type Careers struct {
	Occupations      []string `json:"ocupaciones"`
	TechnicalCareers []string `json:"tecnicas"`
}

var occupationCatalog = [models.NumScales]Careers{
	models.ScaleCCFM: {
		Occupations: []string{
			"Ingeniería Civil", "Ingeniería de Sistemas", "Ingeniería Electrónica", "Ingeniería Mecánica",
			"Ingeniería Industrial", "Ingeniería de Minas", "Arquitectura", "Física", "Matemática", "Estadística",
		},
		TechnicalCareers: []string{
			"Computación e Informática", "Electrónica Industrial", "Electricidad", "Mecánica Automotriz",
			"Construcción Civil", "Topografía", "Dibujo Técnico",
		},
	},
	models.ScaleCCSS: {
		Occupations: []string{
			"Psicología", "Sociología", "Trabajo Social", "Antropología", "Educación", "Historia",
			"Filosofía", "Arqueología", "Geografía",
		},
		TechnicalCareers: []string{
			"Educación Inicial", "Promoción Social", "Auxiliar de Educación", "Gestión de Recursos Humanos",
			"Guía de Museos",
		},
	},
	models.ScaleCCNA: {
		Occupations: []string{
			"Medicina Humana", "Biología", "Enfermería", "Obstetricia", "Odontología", "Farmacia y Bioquímica",
			"Medicina Veterinaria", "Agronomía", "Nutrición", "Ingeniería Ambiental",
		},
		TechnicalCareers: []string{
			"Enfermería Técnica", "Laboratorio Clínico", "Farmacia Técnica", "Producción Agropecuaria",
			"Fisioterapia y Rehabilitación", "Prótesis Dental",
		},
	},
	models.ScaleCCCO: {
		Occupations: []string{
			"Ciencias de la Comunicación", "Periodismo", "Relaciones Públicas", "Publicidad",
			"Comunicación Audiovisual", "Marketing",
		},
		TechnicalCareers: []string{
			"Locución", "Fotografía", "Diseño Gráfico Publicitario", "Producción de Radio y Televisión",
			"Edición de Video",
		},
	},
	models.ScaleARTE: {
		Occupations: []string{
			"Artes Plásticas", "Música", "Danza", "Teatro", "Diseño Gráfico", "Diseño de Interiores",
			"Arquitectura", "Conservación y Restauración",
		},
		TechnicalCareers: []string{
			"Diseño de Modas", "Decoración de Interiores", "Cerámica", "Joyería", "Animación Digital",
			"Cosmetología",
		},
	},
	models.ScaleBURO: {
		Occupations: []string{
			"Administración de Empresas", "Secretariado Ejecutivo", "Bibliotecología", "Archivística",
			"Gestión Pública",
		},
		TechnicalCareers: []string{
			"Secretariado", "Asistencia Administrativa", "Computación Administrativa", "Archivo y Documentación",
			"Recepción y Atención al Cliente",
		},
	},
	models.ScaleCCEP: {
		Occupations: []string{
			"Economía", "Ciencias Políticas", "Relaciones Internacionales", "Negocios Internacionales",
			"Administración Pública", "Ingeniería Económica",
		},
		TechnicalCareers: []string{
			"Comercio Exterior", "Gestión de Proyectos Sociales", "Administración de Negocios",
			"Ventas y Comercialización",
		},
	},
	models.ScaleIIAA: {
		Occupations: []string{
			"Oficial del Ejército", "Oficial de la Marina de Guerra", "Oficial de la Fuerza Aérea",
			"Oficial de la Policía Nacional",
		},
		TechnicalCareers: []string{
			"Suboficial del Ejército", "Suboficial de la Marina de Guerra", "Suboficial de la Fuerza Aérea",
			"Suboficial de la Policía Nacional", "Seguridad Integral",
		},
	},
	models.ScaleFINA: {
		Occupations: []string{
			"Contabilidad", "Banca y Finanzas", "Administración Financiera", "Auditoría", "Actuaría",
		},
		TechnicalCareers: []string{
			"Contabilidad Técnica", "Banca y Seguros", "Caja y Tesorería", "Asistencia de Auditoría",
			"Tributación",
		},
	},
	models.ScaleLING: {
		Occupations: []string{
			"Lingüística", "Literatura", "Traducción e Interpretación", "Educación en Lengua y Literatura",
			"Bibliotecología",
		},
		TechnicalCareers: []string{
			"Idiomas", "Guía Oficial de Turismo", "Redacción y Corrección de Estilo", "Secretariado Bilingüe",
		},
	},
	models.ScaleJURI: {
		Occupations: []string{
			"Derecho", "Ciencias Políticas", "Notariado", "Criminología",
		},
		TechnicalCareers: []string{
			"Asistencia Legal", "Secretariado Jurídico", "Auxiliar de Notaría", "Auxiliar Judicial",
		},
	},
}
