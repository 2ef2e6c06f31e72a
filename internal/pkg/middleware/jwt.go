package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/jwt"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/utils"
)

// CallerContextKey is the echo context key holding the caller identity
const CallerContextKey = "caller"

// SessionChecker reports whether a login session is still active.
// Logout deletes the session record, which revokes the token even
// before its expiry.
type SessionChecker interface {
	SessionActive(ctx context.Context, userID string) bool
}

// JWTAuthMiddleware authenticates requests with a Bearer token and sets
// the caller identity into the echo context. Passenger tracking tokens
// carry no account id and skip the session check.
func JWTAuthMiddleware(config models.JWTConfig, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			identity, err := jwtpkg.IdentityFromClaims(*claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token claims")
			}

			if sessions != nil && identity.UserID != "" {
				if !sessions.SessionActive(c.Request().Context(), identity.UserID) {
					return utils.UnauthorizedResponse(c, "Session expired")
				}
			}

			c.Set(CallerContextKey, identity)
			c.Set("user_id", identity.UserID)

			return next(c)
		}
	}
}

// CallerFromContext returns the authenticated caller set by
// JWTAuthMiddleware. The second return is false when the middleware did
// not run for this route.
func CallerFromContext(c echo.Context) (models.CallerIdentity, bool) {
	identity, ok := c.Get(CallerContextKey).(models.CallerIdentity)
	return identity, ok
}

// RequireStaff rejects callers without back-office privileges. It must
// run after JWTAuthMiddleware.
func RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			if !caller.IsStaff() {
				return utils.ForbiddenResponse(c, "Staff access required")
			}
			return next(c)
		}
	}
}
