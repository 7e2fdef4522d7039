package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/fitness4all/backend/internal/auth"
	"example.com/fitness4all/backend/internal/models"
	"example.com/fitness4all/backend/internal/questionnaire"
	"example.com/fitness4all/backend/internal/repository"
)

type QuestionnaireHandler struct {
	Questionnaires *repository.QuestionnaireRepository
	Users          *repository.UserRepository
}

func NewQuestionnaireHandler(questionnaires *repository.QuestionnaireRepository, users *repository.UserRepository) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		Questionnaires: questionnaires,
		Users:          users,
	}
}

type SubmitQuestionnaireRequest struct {
	Title   string                `json:"title" validate:"required,max=120"`
	Answers questionnaire.Answers `json:"answers"`
}

type QuestionnaireResponse struct {
	Questionnaire models.Questionnaire `json:"questionnaire"`
}

type QuestionnaireListResponse struct {
	Questionnaires []models.Questionnaire `json:"questionnaires"`
}

// Submit stores a questionnaire snapshot together with the prompt derived
// from it. The prompt is fixed at submission time; later profile edits do
// not change it.
func (h *QuestionnaireHandler) Submit(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req SubmitQuestionnaireRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	prompt := questionnaire.BuildPrompt(profileFromUser(user), req.Answers)

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		return serverError(c)
	}

	stored, err := h.Questionnaires.Create(c.Request().Context(), userID, strings.TrimSpace(req.Title), prompt, answers)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, QuestionnaireResponse{Questionnaire: stored})
}

// List returns the user's questionnaires, newest first.
func (h *QuestionnaireHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.Questionnaires.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, QuestionnaireListResponse{Questionnaires: items})
}

// Get returns one questionnaire owned by the user.
func (h *QuestionnaireHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid questionnaire id")
	}

	stored, err := h.Questionnaires.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "questionnaire not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, QuestionnaireResponse{Questionnaire: stored})
}

func profileFromUser(user models.User) questionnaire.Profile {
	profile := questionnaire.Profile{}
	if user.Name != nil {
		profile.Name = *user.Name
	}
	if user.Sex != nil {
		profile.Sex = *user.Sex
	}
	if user.Age != nil {
		profile.Age = *user.Age
	}
	if user.HeightCm != nil {
		profile.HeightCm = *user.HeightCm
	}
	if user.WeightKg != nil {
		profile.WeightKg = *user.WeightKg
	}
	return profile
}
