package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/fitness4all/backend/internal/ai"
	"example.com/fitness4all/backend/internal/auth"
	"example.com/fitness4all/backend/internal/mailer"
	"example.com/fitness4all/backend/internal/models"
	"example.com/fitness4all/backend/internal/notifications"
	"example.com/fitness4all/backend/internal/questionnaire"
	"example.com/fitness4all/backend/internal/repository"
)

const (
	aiRequestGeneratePlan   = "generate_plan"
	aiRequestPlanToCalendar = "plan_to_calendar"
)

type PlanHandler struct {
	Service        *ai.Service
	Plans          *repository.PlanRepository
	Questionnaires *repository.QuestionnaireRepository
	Users          *repository.UserRepository
	AIRepo         *repository.AIRepository
	Mailer         *mailer.Mailer
	Notifier       *notifications.Hub
	Provider       string
	Model          string
}

func NewPlanHandler(service *ai.Service, plans *repository.PlanRepository, questionnaires *repository.QuestionnaireRepository, users *repository.UserRepository, aiRepo *repository.AIRepository, mail *mailer.Mailer, notifier *notifications.Hub, provider, model string) *PlanHandler {
	return &PlanHandler{
		Service:        service,
		Plans:          plans,
		Questionnaires: questionnaires,
		Users:          users,
		AIRepo:         aiRepo,
		Mailer:         mail,
		Notifier:       notifier,
		Provider:       provider,
		Model:          model,
	}
}

type GeneratePlanRequest struct {
	PlanType        models.PlanType `json:"plan_type" validate:"required"`
	QuestionnaireID string          `json:"questionnaire_id" validate:"required"`
}

type EmailPlanRequest struct {
	PlanType models.PlanType `json:"plan_type" validate:"required"`
}

type PlanResponse struct {
	Plan models.GeneratedPlan `json:"plan"`
}

type PlanListResponse struct {
	Plans []models.GeneratedPlan `json:"plans"`
}

// Generate runs one completion over the stored questionnaire prompt and
// appends the resulting plan to the user's history.
func (h *PlanHandler) Generate(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req GeneratePlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}
	if !models.ValidPlanType(req.PlanType) {
		return badRequest(c, "invalid plan type")
	}

	questionnaireID, err := uuid.Parse(req.QuestionnaireID)
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	stored, err := h.Questionnaires.GetByID(c.Request().Context(), userID, questionnaireID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "questionnaire not found")
		}
		return serverError(c)
	}

	instruction := questionnaire.SystemInstruction(req.PlanType)
	planText, raw, err := h.Service.GeneratePlan(c.Request().Context(), instruction, stored.Prompt)
	logAIRequest(c.Request().Context(), h.AIRepo, userID, aiRequestGeneratePlan, h.Provider, h.Model, stored.Prompt, raw, err)
	if err != nil {
		return badGateway(c, "plan generation failed")
	}

	plan, err := h.Plans.Create(c.Request().Context(), userID, req.PlanType, planText, stored.ID, stored.Title)
	if err != nil {
		return serverError(c)
	}

	h.Notifier.Publish(userID, notifications.Event{
		Type: notifications.EventPlanGenerated,
		Data: map[string]interface{}{
			"plan_id":   plan.ID,
			"plan_type": plan.PlanType,
		},
	})

	return c.JSON(http.StatusCreated, PlanResponse{Plan: plan})
}

// Latest returns the most recent plan of the given type.
func (h *PlanHandler) Latest(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	planType := models.PlanType(c.QueryParam("type"))
	if !models.ValidPlanType(planType) {
		return badRequest(c, "invalid plan type")
	}

	plan, err := h.Plans.Latest(c.Request().Context(), userID, planType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "no plan generated yet")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, PlanResponse{Plan: plan})
}

// List returns the plan history, optionally filtered by type.
func (h *PlanHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var filter *models.PlanType
	if value := c.QueryParam("type"); value != "" {
		planType := models.PlanType(value)
		if !models.ValidPlanType(planType) {
			return badRequest(c, "invalid plan type")
		}
		filter = &planType
	}

	plans, err := h.Plans.ListByUser(c.Request().Context(), userID, filter)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, PlanListResponse{Plans: plans})
}

// Email sends the latest plan of the given type to the user's address.
func (h *PlanHandler) Email(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req EmailPlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}
	if !models.ValidPlanType(req.PlanType) {
		return badRequest(c, "invalid plan type")
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	plan, err := h.Plans.Latest(c.Request().Context(), userID, req.PlanType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "no plan generated yet")
		}
		return serverError(c)
	}

	userName := user.Email
	if user.Name != nil {
		userName = *user.Name
	}

	if err := h.Mailer.SendPlan(user.Email, userName, plan); err != nil {
		if errors.Is(err, mailer.ErrDisabled) {
			return serviceUnavailable(c, "mail is not configured")
		}
		return serverError(c)
	}

	h.Notifier.Publish(userID, notifications.Event{
		Type: notifications.EventPlanEmailed,
		Data: map[string]interface{}{
			"plan_id":   plan.ID,
			"plan_type": plan.PlanType,
		},
	})

	return c.JSON(http.StatusOK, map[string]string{"status": "sent"})
}

func logAIRequest(ctx context.Context, repo *repository.AIRepository, userID uuid.UUID, requestType, provider, model, prompt string, raw []byte, err error) {
	log := repository.AIRequestLog{
		UserID:      userID,
		RequestType: requestType,
		Provider:    provider,
		Model:       model,
		Prompt:      prompt,
		RawResponse: string(raw),
		Success:     err == nil,
	}
	if err != nil {
		errMsg := err.Error()
		log.ErrorMessage = &errMsg
	}

	_ = repo.LogRequest(ctx, log)
}
