package handler

import (
	"log/slog"
	"net/http"

	"gardenspace/internal/delivery/http/response"
	"gardenspace/internal/domain/entity"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC   usecase.UserUsecase
	GardenUC usecase.GardenUsecase
	Logger   *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC   usecase.UserUsecase
	gardenUC usecase.GardenUsecase
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:   params.UserUC,
		gardenUC: params.GardenUC,
		logger:   params.Logger,
	}
}

// UpdateProfileRequest represents the request body for a profile update
type UpdateProfileRequest struct {
	FullName  string `json:"fullName" validate:"required"`
	AvatarURL string `json:"avatarUrl"`
}

func toPublicProjections(users []*entity.User) []*entity.PublicProjection {
	result := make([]*entity.PublicProjection, 0, len(users))
	for _, user := range users {
		result = append(result, user.Public())
	}

	return result
}

// ListUsers handles retrieving every account
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPublicProjections(users))
}

// GetUser handles retrieving a single account
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user.Public())
}

// UpdateProfile handles mutating the profile fields of an account
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), id, usecase.UpdateProfileInput{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user.Public())
}

// ListUserGardens handles retrieving the gardens a user owns
func (h *UserHandler) ListUserGardens(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	gardens, err := h.gardenUC.ListGardensByOwner(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGardenResponseSlice(gardens))
}
