// Package middleware contains the Echo middleware of the public API.
package middleware

import (
	"log/slog"
	"strings"

	"food/internal/delivery/api/response"
	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Authenticate validates the bearer token and stores the caller on the context.
// Every failure answers 401 with the same "access denied" envelope.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c)
		}

		claims, err := m.tokenService.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c)
		}

		deliverycontext.SetPrincipal(c, claims.Principal())

		return next(c)
	}
}

// RequireRole restricts a route to one user type. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c)
			}
			if principal.Role != role {
				return response.FromAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}
