package questionnaire

import (
	"fmt"
	"math"
	"strings"

	"example.com/fitness4all/backend/internal/models"
)

// Profile carries the biometrics embedded in the prompt header. Zero or
// missing height/weight makes the BMI non-computable, never a panic.
type Profile struct {
	Name     string
	Age      int
	Sex      string
	HeightCm float64
	WeightKg float64
}

// BMI returns the body mass index rounded to two decimals, or false when it
// cannot be computed from the profile.
func (p Profile) BMI() (float64, bool) {
	if p.HeightCm <= 0 || p.WeightKg <= 0 {
		return 0, false
	}

	meters := p.HeightCm / 100
	bmi := p.WeightKg / (meters * meters)
	return math.Round(bmi*100) / 100, true
}

// System instructions sent with every completion request. These are static per
// plan type and are never derived from user input.
const (
	exerciseSystemInstruction = `Eres un entrenador personal altamente calificado con experiencia en la creación de programas de ejercicio personalizados. Elabora un programa de ejercicios semanal en formato Markdown, dividido en días de la semana (Lunes a Domingo). Para cada día incluye el tipo de ejercicio, una descripción detallada, series y repeticiones o duración, y consejos de ejecución, además de calentamiento y estiramiento diarios. Usa encabezados "## <Día>" y listas para facilitar la lectura. Responde únicamente con el plan; no incluyas información ajena al entrenamiento ni datos personales del usuario.`

	nutritionSystemInstruction = `Eres un nutricionista experto. Elabora un plan de alimentación semanal detallado en formato Markdown, dividido en días de la semana (Lunes a Domingo). Para cada día incluye desayuno, comida y cena con porciones aproximadas, y usa encabezados "## <Día>" con listas claras. Añade tips de preparación y alternativas saludables cuando aporten valor. Responde únicamente con el plan; no incluyas información ajena a la nutrición ni datos personales del usuario.`
)

// SystemInstruction returns the fixed coach instruction for the plan type.
func SystemInstruction(planType models.PlanType) string {
	if planType == models.PlanTypeExercise {
		return exerciseSystemInstruction
	}
	return nutritionSystemInstruction
}

// BuildPrompt assembles the user message for plan generation. It is pure:
// identical profile and answers produce byte-identical output.
func BuildPrompt(profile Profile, answers Answers) string {
	clauses := Normalize(answers)

	bmiText := "no calculable"
	if bmi, ok := profile.BMI(); ok {
		bmiText = fmt.Sprintf("%.2f", bmi)
	}

	sex := strings.TrimSpace(profile.Sex)
	if sex == "" {
		sex = notSpecified
	}

	var b strings.Builder
	b.WriteString("## Datos del usuario\n")
	fmt.Fprintf(&b, "- Edad: %d años\n", profile.Age)
	fmt.Fprintf(&b, "- Sexo: %s\n", sex)
	fmt.Fprintf(&b, "- Altura: %.0f cm\n", profile.HeightCm)
	fmt.Fprintf(&b, "- Peso: %.1f kg\n", profile.WeightKg)
	fmt.Fprintf(&b, "- IMC: %s\n", bmiText)

	b.WriteString("\n## Objetivo\n")
	b.WriteString(clauses.Objetivo)
	b.WriteString("\n\n## Salud\n")
	b.WriteString(clauses.Salud)
	b.WriteString("\n\n## Actividad\n")
	b.WriteString(clauses.Actividad)
	b.WriteString("\n\n## Estilo de vida\n")
	b.WriteString(clauses.Estilo)
	b.WriteString("\n\n## Nutrición\n")
	b.WriteString(clauses.Nutricion)

	comentarios := strings.TrimSpace(answers.Comentarios)
	if comentarios != "" {
		b.WriteString("\n\n## Comentarios adicionales\n")
		b.WriteString(comentarios)
	}

	b.WriteString("\n")
	return b.String()
}
