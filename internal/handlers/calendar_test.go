package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"example.com/fitness4all/backend/internal/models"
)

func monthContext(params ...string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

func TestParseMonthParams(t *testing.T) {
	year, month, err := parseMonthParams(monthContext("year", "2024", "month", "1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if year != 2024 || month != 1 {
		t.Fatalf("expected 2024-1, got %d-%d", year, month)
	}
}

func TestParseMonthParamsInvalid(t *testing.T) {
	if _, _, err := parseMonthParams(monthContext("year", "abc", "month", "1")); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
	if _, _, err := parseMonthParams(monthContext("year", "2024", "month", "0")); err == nil {
		t.Fatal("expected error for month 0")
	}
	if _, _, err := parseMonthParams(monthContext("year", "2024", "month", "13")); err == nil {
		t.Fatal("expected error for month 13")
	}
	if _, _, err := parseMonthParams(monthContext("year", "1900", "month", "6")); err == nil {
		t.Fatal("expected error for out-of-range year")
	}
}

func TestParseMealParams(t *testing.T) {
	c := monthContext("year", "2024", "month", "2", "day", "29", "meal", "lunch")

	year, month, dayKey, mealType, err := parseMealParams(c)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if year != 2024 || month != 2 || dayKey != "29" || mealType != models.MealTypeLunch {
		t.Fatalf("unexpected result: %d-%d day %s meal %s", year, month, dayKey, mealType)
	}
}

func TestParseMealParamsNormalizesDayKey(t *testing.T) {
	c := monthContext("year", "2024", "month", "1", "day", "07", "meal", "dinner")

	_, _, dayKey, _, err := parseMealParams(c)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dayKey != "7" {
		t.Fatalf("expected day key without leading zero, got %q", dayKey)
	}
}

func TestParseMealParamsInvalid(t *testing.T) {
	// February 2023 has 28 days.
	if _, _, _, _, err := parseMealParams(monthContext("year", "2023", "month", "2", "day", "29", "meal", "lunch")); err == nil {
		t.Fatal("expected error for day outside the month")
	}
	if _, _, _, _, err := parseMealParams(monthContext("year", "2024", "month", "1", "day", "10", "meal", "brunch")); err == nil {
		t.Fatal("expected error for unknown meal type")
	}
	if _, _, _, _, err := parseMealParams(monthContext("year", "2024", "month", "1", "day", "0", "meal", "lunch")); err == nil {
		t.Fatal("expected error for day 0")
	}
}

func TestValidPlanType(t *testing.T) {
	if !models.ValidPlanType(models.PlanTypeExercise) || !models.ValidPlanType(models.PlanTypeNutrition) {
		t.Fatal("known plan types must validate")
	}
	if models.ValidPlanType("yoga") {
		t.Fatal("unknown plan type must not validate")
	}
}
