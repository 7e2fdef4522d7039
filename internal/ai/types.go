package ai

import "example.com/fitness4all/backend/internal/models"

// MonthContext grounds the calendar conversion: the target month plus the
// weekday-to-day-numbers expansion, so the model never has to do calendar
// arithmetic on its own.
type MonthContext struct {
	Year        int
	Month       int
	WeekdayDays map[string][]int
}

// Exercise day types emitted by the calendar conversion of exercise plans.
const (
	ExerciseDayTraining = "entrenamiento"
	ExerciseDayRest     = "descanso"
)

type ExerciseItem struct {
	Name   string `json:"name"`
	Series string `json:"series,omitempty"`
	Reps   string `json:"reps,omitempty"`
}

// ExerciseDay is one calendar day of an exercise plan. Rest days carry an
// optional note; training days carry a focus and the exercise list.
type ExerciseDay struct {
	Type      string         `json:"type"`
	Focus     string         `json:"focus,omitempty"`
	Exercises []ExerciseItem `json:"exercises,omitempty"`
	Note      string         `json:"note,omitempty"`
}

// ExerciseMonth maps decimal day-number strings to exercise days, mirroring
// models.MonthDocument for the exercise plan type.
type ExerciseMonth map[string]ExerciseDay

// CalendarPlan is the outcome of one plan-to-calendar conversion; exactly one
// of the two maps is populated, depending on the plan type.
type CalendarPlan struct {
	Meals    models.MonthDocument
	Exercise ExerciseMonth
}
