package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"example.com/fitness4all/backend/internal/calendar"
	"example.com/fitness4all/backend/internal/models"
)

type stubClient struct {
	content string
	err     error
	calls   int
}

func (s *stubClient) Chat(ctx context.Context, messages []Message) (string, []byte, error) {
	s.calls++
	if s.err != nil {
		return "", nil, s.err
	}
	return s.content, []byte(s.content), nil
}

func testMonth() MonthContext {
	return MonthContext{
		Year:        2024,
		Month:       1,
		WeekdayDays: calendar.WeekdayDays(2024, 1),
	}
}

func TestGeneratePlan(t *testing.T) {
	client := &stubClient{content: "  ## Lunes\n- Sentadillas\n  "}
	service := NewService(client)

	plan, _, err := service.GeneratePlan(context.Background(), "instruction", "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != "## Lunes\n- Sentadillas" {
		t.Fatalf("expected trimmed plan, got %q", plan)
	}
}

func TestGeneratePlanTransportError(t *testing.T) {
	client := &stubClient{err: errors.New("boom")}
	service := NewService(client)

	_, _, err := service.GeneratePlan(context.Background(), "instruction", "prompt")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestGeneratePlanEmptyCompletion(t *testing.T) {
	client := &stubClient{content: "   "}
	service := NewService(client)

	_, _, err := service.GeneratePlan(context.Background(), "instruction", "prompt")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestPlanToCalendarNutrition(t *testing.T) {
	client := &stubClient{content: "```json\n{\"1\":{\"breakfast\":{\"title\":\"avena\"}},\"8\":{\"lunch\":{\"title\":\"lentejas\"}}}\n```"}
	service := NewService(client)

	conv, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "## Lunes\n- Avena", testMonth())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conv.Plan.Meals) != 2 {
		t.Fatalf("expected 2 days, got %v", conv.Plan.Meals)
	}
	if conv.Plan.Meals["1"].Breakfast.Title != "avena" {
		t.Fatalf("expected avena on day 1, got %+v", conv.Plan.Meals["1"])
	}
	if !strings.Contains(conv.Prompt, "El día 1 es Lunes.") {
		t.Fatalf("conversion prompt must ground the weekday mapping, got:\n%s", conv.Prompt)
	}
	if !strings.Contains(conv.Prompt, "El día 31 es Miercoles.") {
		t.Fatalf("conversion prompt must cover the whole month, got:\n%s", conv.Prompt)
	}
}

func TestPlanToCalendarCachesConversion(t *testing.T) {
	client := &stubClient{content: `{"5":{"dinner":{"title":"sopa"}}}`}
	service := NewService(client)

	first, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "plan", testMonth())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached {
		t.Fatal("first conversion must not report a cache hit")
	}

	second, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "plan", testMonth())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Fatal("repeat conversion must report a cache hit")
	}
	if second.Raw != nil {
		t.Fatalf("cache hit must not carry a provider response, got %q", second.Raw)
	}
	if second.Plan.Meals["5"].Dinner.Title != "sopa" {
		t.Fatalf("cache hit must return the parsed plan, got %+v", second.Plan.Meals)
	}

	if client.calls != 1 {
		t.Fatalf("expected a single completion call, got %d", client.calls)
	}
}

func TestPlanToCalendarCacheKeyedByMonth(t *testing.T) {
	client := &stubClient{content: `{"5":{"dinner":{"title":"sopa"}}}`}
	service := NewService(client)

	other := MonthContext{Year: 2024, Month: 2, WeekdayDays: calendar.WeekdayDays(2024, 2)}

	if _, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "plan", testMonth()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "plan", other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.calls != 2 {
		t.Fatalf("expected two completion calls for distinct months, got %d", client.calls)
	}
}

func TestPlanToCalendarNoJSON(t *testing.T) {
	client := &stubClient{content: "lo siento, no puedo hacer eso"}
	service := NewService(client)

	_, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "plan", testMonth())
	if !errors.Is(err, ErrPlanParse) {
		t.Fatalf("expected ErrPlanParse, got %v", err)
	}
}

func TestPlanToCalendarInvalidJSON(t *testing.T) {
	client := &stubClient{content: `{"1":[1,2]}`}
	service := NewService(client)

	_, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "plan", testMonth())
	if !errors.Is(err, ErrPlanParse) {
		t.Fatalf("expected ErrPlanParse, got %v", err)
	}
}

func TestPlanToCalendarRejectsEmptyDay(t *testing.T) {
	client := &stubClient{content: `{"1":{}}`}
	service := NewService(client)

	_, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "plan", testMonth())
	if !errors.Is(err, ErrPlanParse) {
		t.Fatalf("expected ErrPlanParse for a day without meals, got %v", err)
	}
}

func TestPlanToCalendarTransportError(t *testing.T) {
	client := &stubClient{err: errors.New("timeout")}
	service := NewService(client)

	_, err := service.PlanToCalendar(context.Background(), models.PlanTypeNutrition, "plan", testMonth())
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestPlanToCalendarExercise(t *testing.T) {
	client := &stubClient{content: `{"1":{"type":"entrenamiento","focus":"pierna","exercises":[{"name":"sentadilla","series":"4","reps":"10"}]},"2":{"type":"descanso","note":"caminar"}}`}
	service := NewService(client)

	conv, err := service.PlanToCalendar(context.Background(), models.PlanTypeExercise, "plan", testMonth())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conv.Plan.Exercise) != 2 {
		t.Fatalf("expected 2 days, got %v", conv.Plan.Exercise)
	}
	if conv.Plan.Exercise["1"].Type != ExerciseDayTraining {
		t.Fatalf("expected training day, got %+v", conv.Plan.Exercise["1"])
	}
	if conv.Plan.Exercise["2"].Type != ExerciseDayRest {
		t.Fatalf("expected rest day, got %+v", conv.Plan.Exercise["2"])
	}
}

func TestPlanToCalendarExerciseUnknownType(t *testing.T) {
	client := &stubClient{content: `{"1":{"type":"cardio"}}`}
	service := NewService(client)

	_, err := service.PlanToCalendar(context.Background(), models.PlanTypeExercise, "plan", testMonth())
	if !errors.Is(err, ErrPlanParse) {
		t.Fatalf("expected ErrPlanParse for unknown day type, got %v", err)
	}
}

func TestPlanToCalendarExerciseTrainingNeedsExercises(t *testing.T) {
	client := &stubClient{content: `{"1":{"type":"entrenamiento","focus":"pierna"}}`}
	service := NewService(client)

	_, err := service.PlanToCalendar(context.Background(), models.PlanTypeExercise, "plan", testMonth())
	if !errors.Is(err, ErrPlanParse) {
		t.Fatalf("expected ErrPlanParse for training day without exercises, got %v", err)
	}
}
