package questionnaire

import "strings"

const notSpecified = "no especificado"

// Clauses holds one natural-language sentence fragment per questionnaire
// section. Every field is always populated; the normalizer never emits an
// empty string for a known slot.
type Clauses struct {
	Objetivo  string
	Salud     string
	Actividad string
	Nutricion string
	Estilo    string
}

// Normalize converts a raw answers snapshot into the Spanish clauses embedded
// in the plan prompt. Unknown enum codes map to the fallback phrase; free text
// passes through verbatim when non-empty.
func Normalize(a Answers) Clauses {
	return Clauses{
		Objetivo:  objetivoClause(a),
		Salud:     saludClause(a),
		Actividad: actividadClause(a),
		Nutricion: nutricionClause(a),
		Estilo:    estiloClause(a),
	}
}

func objetivoClause(a Answers) string {
	objetivo := notSpecified
	switch a.ObjetivoPrincipal {
	case "perder_peso":
		objetivo = "perder peso"
	case "ganar_musculo":
		objetivo = "ganar masa muscular"
	case "mejorar_resistencia":
		objetivo = "mejorar la resistencia cardiovascular"
	case "tonificar":
		objetivo = "tonificar el cuerpo"
	case "salud_general":
		objetivo = "mejorar la salud general"
	}

	compromiso := notSpecified
	switch a.NivelCompromiso {
	case "bajo":
		compromiso = "bajo"
	case "medio":
		compromiso = "medio"
	case "alto":
		compromiso = "alto"
	}

	plazo := notSpecified
	switch a.PlazoObjetivo {
	case "corto":
		plazo = "a corto plazo (1-3 meses)"
	case "medio":
		plazo = "a medio plazo (3-6 meses)"
	case "largo":
		plazo = "a largo plazo (más de 6 meses)"
	}

	return "Objetivo principal: " + objetivo + ". Nivel de compromiso: " + compromiso +
		". Plazo: " + plazo + "."
}

func saludClause(a Answers) string {
	condiciones := joinMulti(a.CondicionesMedicas, condicionPhrase, "sin condiciones médicas relevantes")
	lesiones := joinMulti(a.Lesiones, lesionPhrase, "sin lesiones")
	alergias := joinMulti(a.Alergias, alergiaPhrase, "sin alergias alimentarias")

	fumador := notSpecified
	switch a.Fumador {
	case "si":
		fumador = "fumador habitual"
	case "no":
		fumador = "no fumador"
	case "ocasional":
		fumador = "fumador ocasional"
	}

	medicacion := freeText(a.Medicacion, "sin medicación habitual")

	return "Condiciones médicas: " + condiciones + ". Lesiones: " + lesiones +
		". Alergias: " + alergias + ". Tabaco: " + fumador + ". Medicación: " + medicacion + "."
}

func actividadClause(a Answers) string {
	nivel := notSpecified
	switch a.NivelActividad {
	case "sedentario":
		nivel = "sedentario"
	case "ligero":
		nivel = "ligeramente activo"
	case "moderado":
		nivel = "moderadamente activo"
	case "activo":
		nivel = "activo"
	case "muy_activo":
		nivel = "muy activo"
	}

	experiencia := notSpecified
	switch a.ExperienciaEjercicio {
	case "ninguna":
		experiencia = "sin experiencia previa"
	case "principiante":
		experiencia = "principiante"
	case "intermedio":
		experiencia = "nivel intermedio"
	case "avanzado":
		experiencia = "nivel avanzado"
	}

	frecuencia := notSpecified
	switch a.FrecuenciaSemanal {
	case "1-2":
		frecuencia = "1-2 días por semana"
	case "3-4":
		frecuencia = "3-4 días por semana"
	case "5-6":
		frecuencia = "5-6 días por semana"
	case "7":
		frecuencia = "todos los días"
	}

	tiempo := notSpecified
	switch a.TiempoPorSesion {
	case "menos_30":
		tiempo = "menos de 30 minutos por sesión"
	case "30_60":
		tiempo = "entre 30 y 60 minutos por sesión"
	case "mas_60":
		tiempo = "más de 60 minutos por sesión"
	}

	equipamiento := joinMulti(a.Equipamiento, equipoPhrase, "sin equipamiento disponible")

	return "Nivel de actividad: " + nivel + ". Experiencia: " + experiencia +
		". Disponibilidad: " + frecuencia + ", " + tiempo + ". Equipamiento: " + equipamiento + "."
}

func nutricionClause(a Answers) string {
	dieta := notSpecified
	switch a.TipoDieta {
	case "omnivora":
		dieta = "omnívora"
	case "vegetariana":
		dieta = "vegetariana"
	case "vegana":
		dieta = "vegana"
	case "pescetariana":
		dieta = "pescetariana"
	case "sin_preferencia":
		dieta = "sin preferencia concreta"
	}

	comidas := notSpecified
	switch a.ComidasPorDia {
	case "2":
		comidas = "2 comidas al día"
	case "3":
		comidas = "3 comidas al día"
	case "4":
		comidas = "4 comidas al día"
	case "5_o_mas":
		comidas = "5 o más comidas al día"
	}

	consumos := joinMulti(a.ConsumosHabituales, consumoPhrase,
		"no consume alcohol, refrescos ni ultraprocesados")
	suplementos := joinMulti(a.Suplementos, suplementoPhrase, "sin suplementación")

	agua := notSpecified
	switch a.AguaDiaria {
	case "menos_1":
		agua = "menos de 1 litro de agua al día"
	case "1_2":
		agua = "entre 1 y 2 litros de agua al día"
	case "mas_2":
		agua = "más de 2 litros de agua al día"
	}

	evitar := freeText(a.AlimentosEvitar, "ninguno en particular")

	return "Tipo de dieta: " + dieta + ". Comidas: " + comidas + ". Consumos habituales: " +
		consumos + ". Suplementos: " + suplementos + ". Hidratación: " + agua +
		". Alimentos a evitar: " + evitar + "."
}

func estiloClause(a Answers) string {
	horas := notSpecified
	switch a.HorasSueno {
	case "menos_6":
		horas = "menos de 6 horas de sueño"
	case "6_8":
		horas = "entre 6 y 8 horas de sueño"
	case "mas_8":
		horas = "más de 8 horas de sueño"
	}

	calidad := notSpecified
	switch a.CalidadSueno {
	case "mala":
		calidad = "mala"
	case "regular":
		calidad = "regular"
	case "buena":
		calidad = "buena"
	}

	estres := notSpecified
	switch a.NivelEstres {
	case "bajo":
		estres = "bajo"
	case "medio":
		estres = "medio"
	case "alto":
		estres = "alto"
	}

	expectativas := freeText(a.Expectativas, "sin expectativas concretas")

	return "Sueño: " + horas + ", calidad " + calidad + ". Nivel de estrés: " + estres +
		". Expectativas: " + expectativas + "."
}

func condicionPhrase(code string) string {
	switch code {
	case "diabetes":
		return "diabetes"
	case "hipertension":
		return "hipertensión"
	case "asma":
		return "asma"
	case "problemas_articulares":
		return "problemas articulares"
	case "problemas_cardiacos":
		return "problemas cardíacos"
	default:
		return notSpecified
	}
}

func lesionPhrase(code string) string {
	switch code {
	case "rodilla":
		return "lesión de rodilla"
	case "espalda":
		return "lesión de espalda"
	case "hombro":
		return "lesión de hombro"
	case "tobillo":
		return "lesión de tobillo"
	default:
		return notSpecified
	}
}

func alergiaPhrase(code string) string {
	switch code {
	case "gluten":
		return "gluten"
	case "lactosa":
		return "lactosa"
	case "frutos_secos":
		return "frutos secos"
	case "marisco":
		return "marisco"
	default:
		return notSpecified
	}
}

func equipoPhrase(code string) string {
	switch code {
	case "mancuernas":
		return "mancuernas"
	case "bandas":
		return "bandas elásticas"
	case "barra":
		return "barra y discos"
	case "maquinas":
		return "acceso a máquinas de gimnasio"
	case "bicicleta":
		return "bicicleta"
	default:
		return notSpecified
	}
}

func consumoPhrase(code string) string {
	switch code {
	case "alcohol":
		return "alcohol"
	case "refrescos":
		return "refrescos azucarados"
	case "ultraprocesados":
		return "alimentos ultraprocesados"
	case "cafeina":
		return "cafeína en exceso"
	default:
		return notSpecified
	}
}

func suplementoPhrase(code string) string {
	switch code {
	case "proteina":
		return "proteína en polvo"
	case "creatina":
		return "creatina"
	case "multivitaminico":
		return "multivitamínico"
	case "omega3":
		return "omega-3"
	default:
		return notSpecified
	}
}

// joinMulti renders a multi-select field. The sentinel wins over any stray
// substantive members, an empty selection falls back to the neutral phrase,
// and otherwise the mapped phrases are comma-joined.
func joinMulti(m MultiChoice, phrase func(string) string, nonePhrase string) string {
	if m.None {
		return nonePhrase
	}
	if len(m.Choices) == 0 {
		return notSpecified
	}

	phrases := make([]string, 0, len(m.Choices))
	for _, code := range m.Choices {
		phrases = append(phrases, phrase(code))
	}
	return strings.Join(phrases, ", ")
}

func freeText(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
