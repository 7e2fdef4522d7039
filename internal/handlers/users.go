package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/fitness4all/backend/internal/auth"
	"example.com/fitness4all/backend/internal/repository"
)

type UserHandler struct {
	Users *repository.UserRepository
}

func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{Users: users}
}

type UpdateProfileRequest struct {
	Name     *string  `json:"name" validate:"omitempty,max=100"`
	Sex      *string  `json:"sex" validate:"omitempty,oneof=masculino femenino otro"`
	Age      *int     `json:"age" validate:"omitempty,gte=14,lte=120"`
	HeightCm *float64 `json:"height_cm" validate:"omitempty,gt=0,lte=260"`
	WeightKg *float64 `json:"weight_kg" validate:"omitempty,gt=0,lte=400"`
}

// UpdateProfile applies a partial update to the biometric profile. The
// profile feeds prompt synthesis, so changes only affect questionnaires
// submitted afterwards.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	update := repository.ProfileUpdate{
		Name:     normalizeName(req.Name),
		Sex:      req.Sex,
		Age:      req.Age,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
	}

	user, err := h.Users.UpdateProfile(c.Request().Context(), userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, UserResponse{User: toAuthUser(user)})
}
