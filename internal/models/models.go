package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PlanType separates the two coaching tracks a user can generate plans for.
type PlanType string

const (
	PlanTypeExercise  PlanType = "exercise"
	PlanTypeNutrition PlanType = "nutrition"
)

// ValidPlanType reports whether the value names a known plan type.
func ValidPlanType(value PlanType) bool {
	return value == PlanTypeExercise || value == PlanTypeNutrition
}

// MealType names one of the three meal slots of a calendar day.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// ValidMealType reports whether the value names a known meal slot.
func ValidMealType(value MealType) bool {
	switch value {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	Sex          *string   `json:"sex,omitempty"`
	Age          *int      `json:"age,omitempty"`
	HeightCm     *float64  `json:"height_cm,omitempty"`
	WeightKg     *float64  `json:"weight_kg,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TokenHash  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	RevokedAt  *time.Time
	ReplacedBy *uuid.UUID
}

// Questionnaire is an immutable snapshot of one submitted intake form
// together with the prompt text derived from it at submission time.
type Questionnaire struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Title     string          `json:"title"`
	Prompt    string          `json:"prompt"`
	Answers   json.RawMessage `json:"answers"`
	CreatedAt time.Time       `json:"created_at"`
}

// GeneratedPlan is one AI-generated markdown plan, kept as append-only
// history per user and plan type.
type GeneratedPlan struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	PlanType           PlanType  `json:"plan_type"`
	Plan               string    `json:"plan"`
	QuestionnaireID    uuid.UUID `json:"questionnaire_id"`
	QuestionnaireTitle string    `json:"questionnaire_title"`
	CreatedAt          time.Time `json:"created_at"`
}

type Meal struct {
	Title       string `json:"title"`
	Ingredients string `json:"ingredients,omitempty"`
	Macros      string `json:"macros,omitempty"`
}

// DayMeals holds the meal slots of one calendar day. Absent slots are nil.
type DayMeals struct {
	Breakfast *Meal `json:"breakfast,omitempty"`
	Lunch     *Meal `json:"lunch,omitempty"`
	Dinner    *Meal `json:"dinner,omitempty"`
}

// IsEmpty reports whether the day has no meals left.
func (d DayMeals) IsEmpty() bool {
	return d.Breakfast == nil && d.Lunch == nil && d.Dinner == nil
}

// Meal returns the slot addressed by the meal type, or nil.
func (d DayMeals) Meal(mealType MealType) *Meal {
	switch mealType {
	case MealTypeBreakfast:
		return d.Breakfast
	case MealTypeLunch:
		return d.Lunch
	case MealTypeDinner:
		return d.Dinner
	}
	return nil
}

// MonthDocument maps day-of-month keys (decimal strings without leading
// zeros, "1".."31") to the meals of that day.
type MonthDocument map[string]DayMeals

// CalendarMonth is the stored calendar state of one user month. The month
// key has the form "{year}-{month}" with a 1-based month.
type CalendarMonth struct {
	UserID    uuid.UUID     `json:"user_id"`
	MonthKey  string        `json:"month_key"`
	Days      MonthDocument `json:"days"`
	UpdatedAt time.Time     `json:"updated_at"`
}
