package questionnaire

import "strings"

// MultiChoice is a multi-select answer where a "none" sentinel option and
// substantive options are mutually exclusive. Either None is true and Choices
// is empty, or None is false and Choices holds substantive codes only.
type MultiChoice struct {
	None    bool     `json:"none"`
	Choices []string `json:"choices,omitempty"`
}

// Select applies one option to the set. Choosing the sentinel clears every
// substantive choice; choosing a substantive option clears the sentinel.
// Selecting an already present option removes it.
func (m *MultiChoice) Select(code, sentinel string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}

	if code == sentinel {
		m.None = !m.None
		m.Choices = nil
		return
	}

	m.None = false
	for i, existing := range m.Choices {
		if existing == code {
			m.Choices = append(m.Choices[:i], m.Choices[i+1:]...)
			return
		}
	}
	m.Choices = append(m.Choices, code)
}

// IsEmpty reports whether the user made no selection at all.
func (m MultiChoice) IsEmpty() bool {
	return !m.None && len(m.Choices) == 0
}

// Sentinel option codes used by the multi-select fields.
const (
	SentinelNinguna   = "ninguna"
	SentinelNinguno   = "ninguno"
	SentinelNoConsumo = "no_consumo"
)

// Answers is the full questionnaire snapshot. Field codes are the ones the
// frontend submits; enum values outside the known sets fall back to a neutral
// phrase during normalization instead of failing.
type Answers struct {
	// Objetivo
	ObjetivoPrincipal string `json:"objetivoPrincipal"`
	NivelCompromiso   string `json:"nivelCompromiso"`
	PlazoObjetivo     string `json:"plazoObjetivo"`

	// Salud
	CondicionesMedicas MultiChoice `json:"condicionesMedicas"`
	Lesiones           MultiChoice `json:"lesiones"`
	Alergias           MultiChoice `json:"alergias"`
	Medicacion         string      `json:"medicacion"`
	Fumador            string      `json:"fumador"`

	// Actividad
	NivelActividad       string      `json:"nivelActividad"`
	ExperienciaEjercicio string      `json:"experienciaEjercicio"`
	FrecuenciaSemanal    string      `json:"frecuenciaSemanal"`
	TiempoPorSesion      string      `json:"tiempoPorSesion"`
	Equipamiento         MultiChoice `json:"equipamiento"`

	// Nutricion
	TipoDieta          string      `json:"tipoDieta"`
	ComidasPorDia      string      `json:"comidasPorDia"`
	ConsumosHabituales MultiChoice `json:"consumosHabituales"`
	Suplementos        MultiChoice `json:"suplementos"`
	AguaDiaria         string      `json:"aguaDiaria"`
	AlimentosEvitar    string      `json:"alimentosEvitar"`

	// Sueno y expectativas
	HorasSueno   string `json:"horasSueno"`
	CalidadSueno string `json:"calidadSueno"`
	NivelEstres  string `json:"nivelEstres"`
	Expectativas string `json:"expectativas"`
	Comentarios  string `json:"comentarios"`
}
