package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/fitness4all/backend/internal/ai"
	"example.com/fitness4all/backend/internal/auth"
	"example.com/fitness4all/backend/internal/calendar"
	"example.com/fitness4all/backend/internal/models"
	"example.com/fitness4all/backend/internal/notifications"
	"example.com/fitness4all/backend/internal/repository"
)

// Stages reported over SSE while an import runs.
const (
	importStageRequesting = "requesting"
	importStageParsing    = "parsing"
	importStageFiltering  = "filtering"
	importStageMerging    = "merging"
	importStageDone       = "done"
)

type CalendarHandler struct {
	Service  *ai.Service
	Calendar *repository.CalendarRepository
	Plans    *repository.PlanRepository
	AIRepo   *repository.AIRepository
	Notifier *notifications.Hub
	Provider string
	Model    string
}

func NewCalendarHandler(service *ai.Service, cal *repository.CalendarRepository, plans *repository.PlanRepository, aiRepo *repository.AIRepository, notifier *notifications.Hub, provider, model string) *CalendarHandler {
	return &CalendarHandler{
		Service:  service,
		Calendar: cal,
		Plans:    plans,
		AIRepo:   aiRepo,
		Notifier: notifier,
		Provider: provider,
		Model:    model,
	}
}

type ImportPlanRequest struct {
	PlanType models.PlanType `json:"plan_type" validate:"required"`
	Weeks    []int           `json:"weeks" validate:"required,min=1,dive,gte=1,lte=6"`
}

type CalendarMonthResponse struct {
	Month models.CalendarMonth `json:"month"`
}

type ImportResponse struct {
	Month    *models.CalendarMonth `json:"month,omitempty"`
	Exercise ai.ExerciseMonth      `json:"exercise,omitempty"`
}

type SetMealRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Ingredients string `json:"ingredients" validate:"max=2000"`
	Macros      string `json:"macros" validate:"max=500"`
}

// GetMonth returns the stored meal calendar for one month. A month that was
// never written comes back with an empty day map.
func (h *CalendarHandler) GetMonth(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, month, err := parseMonthParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	stored, err := h.Calendar.GetMonth(c.Request().Context(), userID, calendar.MonthKey(year, month))
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, CalendarMonthResponse{Month: stored})
}

// Import converts the latest plan of the given type into calendar days for
// the month, keeps only the selected weeks and, for nutrition plans, merges
// the result into the stored month document in a single write. Exercise
// imports are returned to the caller without touching the meal calendar.
func (h *CalendarHandler) Import(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, month, err := parseMonthParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req ImportPlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}
	if !models.ValidPlanType(req.PlanType) {
		return badRequest(c, "invalid plan type")
	}

	plan, err := h.Plans.Latest(c.Request().Context(), userID, req.PlanType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "no plan generated yet")
		}
		return serverError(c)
	}

	monthContext := ai.MonthContext{
		Year:        year,
		Month:       month,
		WeekdayDays: calendar.WeekdayDays(year, month),
	}

	h.publishStage(userID, req.PlanType, year, month, importStageRequesting)

	conv, err := h.Service.PlanToCalendar(c.Request().Context(), req.PlanType, plan.Plan, monthContext)
	if !conv.Cached {
		logAIRequest(c.Request().Context(), h.AIRepo, userID, aiRequestPlanToCalendar, h.Provider, h.Model, conv.Prompt, conv.Raw, err)
	}
	if err != nil {
		if errors.Is(err, ai.ErrPlanParse) {
			return unprocessable(c, "could not process the plan")
		}
		return badGateway(c, "plan generation failed")
	}

	h.publishStage(userID, req.PlanType, year, month, importStageParsing)
	h.publishStage(userID, req.PlanType, year, month, importStageFiltering)

	if req.PlanType == models.PlanTypeExercise {
		selected := calendar.SelectedDayKeys(year, month, req.Weeks)
		filtered := make(ai.ExerciseMonth, len(selected))
		for key, day := range conv.Plan.Exercise {
			if _, ok := selected[key]; ok {
				filtered[key] = day
			}
		}

		h.publishStage(userID, req.PlanType, year, month, importStageDone)
		return c.JSON(http.StatusOK, ImportResponse{Exercise: filtered})
	}

	filtered := calendar.FilterWeeks(conv.Plan.Meals, year, month, req.Weeks)

	h.publishStage(userID, req.PlanType, year, month, importStageMerging)

	monthKey := calendar.MonthKey(year, month)
	existing, err := h.Calendar.GetMonth(c.Request().Context(), userID, monthKey)
	if err != nil {
		return serverError(c)
	}

	merged := calendar.MergeImport(existing.Days, filtered)
	if err := h.Calendar.SetMonth(c.Request().Context(), userID, monthKey, merged); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save to calendar"})
	}

	h.Notifier.Publish(userID, notifications.Event{
		Type: notifications.EventCalendarSaved,
		Data: map[string]interface{}{
			"month_key": monthKey,
			"days":      len(merged),
		},
	})
	h.publishStage(userID, req.PlanType, year, month, importStageDone)

	saved := models.CalendarMonth{
		UserID:    userID,
		MonthKey:  monthKey,
		Days:      merged,
		UpdatedAt: time.Now().UTC(),
	}
	return c.JSON(http.StatusOK, ImportResponse{Month: &saved})
}

// SetMeal writes one meal slot of one day, leaving the rest of the day as-is.
func (h *CalendarHandler) SetMeal(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, month, dayKey, mealType, err := parseMealParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req SetMealRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	monthKey := calendar.MonthKey(year, month)
	existing, err := h.Calendar.GetMonth(c.Request().Context(), userID, monthKey)
	if err != nil {
		return serverError(c)
	}

	meal := models.Meal{
		Title:       req.Title,
		Ingredients: req.Ingredients,
		Macros:      req.Macros,
	}

	updated := calendar.SetMeal(existing.Days, dayKey, mealType, meal)
	if err := h.Calendar.SetMonth(c.Request().Context(), userID, monthKey, updated); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save to calendar"})
	}

	existing.Days = updated
	return c.JSON(http.StatusOK, CalendarMonthResponse{Month: existing})
}

// DeleteMeal clears one meal slot; an emptied day disappears from the month.
func (h *CalendarHandler) DeleteMeal(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, month, dayKey, mealType, err := parseMealParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	monthKey := calendar.MonthKey(year, month)
	existing, err := h.Calendar.GetMonth(c.Request().Context(), userID, monthKey)
	if err != nil {
		return serverError(c)
	}

	updated := calendar.RemoveMeal(existing.Days, dayKey, mealType)
	if err := h.Calendar.SetMonth(c.Request().Context(), userID, monthKey, updated); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save to calendar"})
	}

	existing.Days = updated
	return c.JSON(http.StatusOK, CalendarMonthResponse{Month: existing})
}

func (h *CalendarHandler) publishStage(userID uuid.UUID, planType models.PlanType, year, month int, stage string) {
	h.Notifier.Publish(userID, notifications.Event{
		Type: notifications.EventImportStage,
		Data: map[string]interface{}{
			"plan_type": planType,
			"month_key": calendar.MonthKey(year, month),
			"stage":     stage,
		},
	})
}

func parseMonthParams(c echo.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2200 {
		return 0, 0, errors.New("invalid year")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.New("invalid month")
	}

	return year, month, nil
}

func parseMealParams(c echo.Context) (int, int, string, models.MealType, error) {
	year, month, err := parseMonthParams(c)
	if err != nil {
		return 0, 0, "", "", err
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 || day > calendar.DaysInMonth(year, month) {
		return 0, 0, "", "", errors.New("invalid day")
	}

	mealType := models.MealType(c.Param("meal"))
	if !models.ValidMealType(mealType) {
		return 0, 0, "", "", errors.New("invalid meal type")
	}

	return year, month, strconv.Itoa(day), mealType, nil
}
