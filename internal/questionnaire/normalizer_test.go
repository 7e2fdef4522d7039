package questionnaire

import (
	"strings"
	"testing"
)

func TestNormalizeEmptyAnswers(t *testing.T) {
	clauses := Normalize(Answers{})

	for name, clause := range map[string]string{
		"objetivo":  clauses.Objetivo,
		"salud":     clauses.Salud,
		"actividad": clauses.Actividad,
		"nutricion": clauses.Nutricion,
		"estilo":    clauses.Estilo,
	} {
		if strings.TrimSpace(clause) == "" {
			t.Fatalf("clause %s must never be empty", name)
		}
		if !strings.Contains(clause, notSpecified) {
			t.Fatalf("clause %s should fall back to %q, got %q", name, notSpecified, clause)
		}
	}
}

func TestNormalizeUnknownEnumFallsBack(t *testing.T) {
	clauses := Normalize(Answers{ObjetivoPrincipal: "volar"})
	if !strings.Contains(clauses.Objetivo, notSpecified) {
		t.Fatalf("unknown code must map to the fallback phrase, got %q", clauses.Objetivo)
	}
	if strings.Contains(clauses.Objetivo, "volar") {
		t.Fatalf("raw code must not leak into the prompt, got %q", clauses.Objetivo)
	}
}

func TestNormalizeKnownCodes(t *testing.T) {
	clauses := Normalize(Answers{
		ObjetivoPrincipal: "perder_peso",
		NivelCompromiso:   "alto",
		PlazoObjetivo:     "medio",
	})

	if !strings.Contains(clauses.Objetivo, "perder peso") {
		t.Fatalf("expected goal phrase, got %q", clauses.Objetivo)
	}
	if !strings.Contains(clauses.Objetivo, "a medio plazo (3-6 meses)") {
		t.Fatalf("expected horizon phrase, got %q", clauses.Objetivo)
	}
}

// A raw set that carries both the sentinel and substantive codes must render
// as the sentinel phrase alone.
func TestNormalizeSentinelWins(t *testing.T) {
	answers := Answers{
		ConsumosHabituales: MultiChoice{None: true, Choices: []string{"alcohol"}},
	}

	clauses := Normalize(answers)
	if !strings.Contains(clauses.Nutricion, "no consume alcohol, refrescos ni ultraprocesados") {
		t.Fatalf("expected the none phrase, got %q", clauses.Nutricion)
	}
	if strings.Contains(clauses.Nutricion, "Consumos habituales: alcohol") {
		t.Fatalf("substantive phrase must not appear alongside the sentinel, got %q", clauses.Nutricion)
	}
}

func TestNormalizeMultiChoiceJoin(t *testing.T) {
	answers := Answers{
		CondicionesMedicas: MultiChoice{Choices: []string{"diabetes", "asma"}},
		Equipamiento:       MultiChoice{Choices: []string{"mancuernas", "bandas"}},
	}

	clauses := Normalize(answers)
	if !strings.Contains(clauses.Salud, "diabetes, asma") {
		t.Fatalf("expected comma-joined conditions, got %q", clauses.Salud)
	}
	if !strings.Contains(clauses.Actividad, "mancuernas, bandas elásticas") {
		t.Fatalf("expected mapped equipment phrases, got %q", clauses.Actividad)
	}
}

func TestNormalizeFreeTextPassesThrough(t *testing.T) {
	answers := Answers{
		Medicacion:      "  ibuprofeno ocasional ",
		AlimentosEvitar: "",
	}

	clauses := Normalize(answers)
	if !strings.Contains(clauses.Salud, "ibuprofeno ocasional") {
		t.Fatalf("expected trimmed free text, got %q", clauses.Salud)
	}
	if !strings.Contains(clauses.Nutricion, "ninguno en particular") {
		t.Fatalf("expected free-text fallback, got %q", clauses.Nutricion)
	}
}
