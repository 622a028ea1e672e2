// Package handler contains the HTTP handlers for every route group.
package handler

import (
	"log/slog"
	"net/http"

	"gardenspace/internal/delivery/http/response"
	"gardenspace/internal/domain/entity"
	"gardenspace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the signed bearer token and the public user projection
type AuthResponse struct {
	Token string                   `json:"token"`
	User  *entity.PublicProjection `json:"user"`
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		RoleHint: req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, AuthResponse{
		Token: out.Token,
		User:  out.User.Public(),
	})
}

// Login handles credential verification
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		Token: out.Token,
		User:  out.User.Public(),
	})
}

// Me resolves the account behind the Authorization header.
// Absence of a resolvable account is a plain 401, never a server fault.
func (h *AuthHandler) Me(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)

	user, err := h.authUC.ResolveCurrentUser(c.Request().Context(), header)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if user == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
	}

	return response.Success(c, http.StatusOK, user.Public())
}
