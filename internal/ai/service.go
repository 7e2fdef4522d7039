package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"example.com/fitness4all/backend/internal/models"
)

const conversionCacheSize = 64

const conversionSystemInstruction = `Eres un asistente que convierte planes semanales en datos de calendario. Responde únicamente con un objeto JSON válido, sin vallas de código, sin comentarios y sin texto antes o después del objeto.`

// Service drives both completion steps of the plan pipeline: markdown plan
// generation and the plan-to-calendar conversion. Conversions are cached so
// re-importing the same plan into the same month skips the completion call.
type Service struct {
	client      Client
	conversions *lru.Cache[string, string]
}

func NewService(client Client) *Service {
	cache, _ := lru.New[string, string](conversionCacheSize)
	return &Service{client: client, conversions: cache}
}

// GeneratePlan requests a weekly Markdown plan. The system instruction is the
// fixed per-plan-type coach role; the prompt is the synthesized questionnaire
// text. Failures of any kind surface as ErrGeneration.
func (s *Service) GeneratePlan(ctx context.Context, systemInstruction, prompt string) (string, []byte, error) {
	messages := []Message{
		{Role: "system", Content: systemInstruction},
		{Role: "user", Content: prompt},
	}

	content, raw, err := s.client.Chat(ctx, messages)
	if err != nil {
		return "", raw, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	plan := strings.TrimSpace(content)
	if plan == "" {
		return "", raw, fmt.Errorf("%w: empty completion", ErrGeneration)
	}

	return plan, raw, nil
}

// Conversion is the outcome of one plan-to-calendar request. Cached reports
// that the result was served from the conversion cache without a completion
// call; Raw is nil in that case.
type Conversion struct {
	Plan   CalendarPlan
	Prompt string
	Raw    []byte
	Cached bool
}

// PlanToCalendar asks the model to restate a Markdown plan as per-day JSON for
// the given month, then sanitizes, parses and schema-checks the response.
// Transport failures surface as ErrGeneration; a response that is not the
// requested JSON surfaces as ErrPlanParse.
func (s *Service) PlanToCalendar(ctx context.Context, planType models.PlanType, plan string, month MonthContext) (Conversion, error) {
	conv := Conversion{Prompt: buildConversionPrompt(planType, plan, month)}
	cacheKey := conversionCacheKey(planType, plan, month)

	if payload, ok := s.conversions.Get(cacheKey); ok {
		parsed, err := parseCalendarPayload(planType, payload)
		if err == nil {
			conv.Plan = parsed
			conv.Cached = true
			return conv, nil
		}
		s.conversions.Remove(cacheKey)
	}

	messages := []Message{
		{Role: "system", Content: conversionSystemInstruction},
		{Role: "user", Content: conv.Prompt},
	}

	content, raw, err := s.client.Chat(ctx, messages)
	conv.Raw = raw
	if err != nil {
		return conv, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	payload := ExtractJSON(content)
	if payload == "" {
		return conv, fmt.Errorf("%w: response does not contain a json object", ErrPlanParse)
	}

	parsed, err := parseCalendarPayload(planType, payload)
	if err != nil {
		return conv, err
	}

	s.conversions.Add(cacheKey, payload)
	conv.Plan = parsed
	return conv, nil
}

func buildConversionPrompt(planType models.PlanType, plan string, month MonthContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Convierte el siguiente plan semanal en un objeto JSON para el calendario del mes %d/%d.\n\n", month.Month, month.Year)

	b.WriteString("Requisitos:\n")
	b.WriteString("- Responde únicamente con JSON, sin texto adicional.\n")
	b.WriteString("- Las claves de primer nivel son los números de día del mes en decimal, sin ceros a la izquierda (\"1\", \"2\", ...).\n")
	if planType == models.PlanTypeExercise {
		b.WriteString(`- Cada valor tiene la forma {"type": "entrenamiento" | "descanso", "focus": string, "exercises": [{"name": string, "series": string, "reps": string}], "note": string}. Los días de descanso llevan "type": "descanso" y pueden omitir "exercises".` + "\n")
	} else {
		b.WriteString(`- Cada valor tiene la forma {"breakfast": {"title": string, "ingredients": string, "macros": string}, "lunch": {...}, "dinner": {...}}.` + "\n")
	}
	b.WriteString("- El plan está dividido por días de la semana; aplica el contenido de cada día de la semana a todos los números de día que le corresponden según la lista siguiente.\n\n")

	b.WriteString("Días del mes:\n")
	b.WriteString(weekdayFacts(month))

	b.WriteString("\nPlan:\n")
	b.WriteString(plan)
	b.WriteString("\n")
	return b.String()
}

// weekdayFacts renders one "day N is a <weekday>" line per day, in day order.
func weekdayFacts(month MonthContext) string {
	total := 0
	for _, days := range month.WeekdayDays {
		total += len(days)
	}

	names := make(map[int]string, total)
	for name, days := range month.WeekdayDays {
		for _, day := range days {
			names[day] = name
		}
	}

	var b strings.Builder
	for day := 1; day <= total; day++ {
		name, ok := names[day]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "El día %d es %s.\n", day, name)
	}
	return b.String()
}

func conversionCacheKey(planType models.PlanType, plan string, month MonthContext) string {
	sum := sha256.Sum256([]byte(plan))
	return fmt.Sprintf("%s|%d-%d|%s", planType, month.Year, month.Month, hex.EncodeToString(sum[:]))
}

func parseCalendarPayload(planType models.PlanType, payload string) (CalendarPlan, error) {
	if planType == models.PlanTypeExercise {
		var days ExerciseMonth
		if err := json.Unmarshal([]byte(payload), &days); err != nil {
			return CalendarPlan{}, fmt.Errorf("%w: %v", ErrPlanParse, err)
		}
		if err := validateExerciseMonth(days); err != nil {
			return CalendarPlan{}, err
		}
		return CalendarPlan{Exercise: days}, nil
	}

	var days models.MonthDocument
	if err := json.Unmarshal([]byte(payload), &days); err != nil {
		return CalendarPlan{}, fmt.Errorf("%w: %v", ErrPlanParse, err)
	}
	if err := validateMealMonth(days); err != nil {
		return CalendarPlan{}, err
	}
	return CalendarPlan{Meals: days}, nil
}

func validateMealMonth(days models.MonthDocument) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: plan contains no days", ErrPlanParse)
	}

	for key, entry := range days {
		if entry.IsEmpty() {
			return fmt.Errorf("%w: day %s has no meals", ErrPlanParse, key)
		}
		for _, meal := range []*models.Meal{entry.Breakfast, entry.Lunch, entry.Dinner} {
			if meal == nil {
				continue
			}
			if strings.TrimSpace(meal.Title) == "" {
				return fmt.Errorf("%w: day %s has a meal without title", ErrPlanParse, key)
			}
		}
	}

	return nil
}

func validateExerciseMonth(days ExerciseMonth) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: plan contains no days", ErrPlanParse)
	}

	for key, entry := range days {
		switch entry.Type {
		case ExerciseDayRest:
		case ExerciseDayTraining:
			if len(entry.Exercises) == 0 {
				return fmt.Errorf("%w: training day %s has no exercises", ErrPlanParse, key)
			}
			for _, item := range entry.Exercises {
				if strings.TrimSpace(item.Name) == "" {
					return fmt.Errorf("%w: day %s has an exercise without name", ErrPlanParse, key)
				}
			}
		default:
			return fmt.Errorf("%w: day %s has unknown type %q", ErrPlanParse, key, entry.Type)
		}
	}

	return nil
}
