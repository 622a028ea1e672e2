package middleware

import (
	deliverycontext "gardenspace/internal/delivery/context"
	"gardenspace/internal/delivery/http/response"
	"gardenspace/internal/domain/entity"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware resolves the account behind the Authorization header and
// guards routes that require an authenticated caller.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
	}
}

// Authenticate verifies the bearer token and loads the current user into the
// request context. An unresolvable token is a 401; the cause (missing,
// tampered, expired, deleted account) is deliberately not distinguished.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)

		user, err := m.authUC.ResolveCurrentUser(c.Request().Context(), header)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if user == nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(string(deliverycontext.KeyCurrentUser), user)

		return next(c)
	}
}

// RequireRole guards a route group behind a specific role. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetCurrentUser(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if user.Role != role {
				return response.Forbidden(c, "FORBIDDEN", "Insufficient role")
			}

			return next(c)
		}
	}
}

// GetCurrentUser extracts the authenticated user from echo.Context.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(deliverycontext.KeyCurrentUser)).(*entity.User)

	return user, ok
}

// GetUserID extracts the authenticated user's ID from echo.Context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	user, ok := GetCurrentUser(c)
	if !ok {
		return uuid.Nil, false
	}

	return user.ID, true
}
