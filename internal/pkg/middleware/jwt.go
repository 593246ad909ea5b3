package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/digiration/digiration/internal/pkg/jwt"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/internal/utils"
)

// Context keys set by the JWT middleware
const (
	ContextUserID    = "user_id"
	ContextMemberID  = "member_id"
	ContextSessionID = "session_id"
)

// JWTAuthMiddleware validates the bearer token and places the claims on
// the echo context. Ownership checks against the claims happen in the
// usecases, not here.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, utils.CodeMissingToken, "Access token is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, utils.CodeInvalidToken, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, utils.CodeInvalidToken, "Invalid or expired token")
			}

			if claims.UserID == "" {
				return utils.UnauthorizedResponse(c, utils.CodeInvalidToken, "Invalid token: missing user claim")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextMemberID, claims.MemberID)
			c.Set(ContextSessionID, claims.SessionID)

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user ID, if any
func UserIDFromContext(c echo.Context) string {
	if v, ok := c.Get(ContextUserID).(string); ok {
		return v
	}
	return ""
}

// MemberIDFromContext returns the bound member ID, if any
func MemberIDFromContext(c echo.Context) string {
	if v, ok := c.Get(ContextMemberID).(string); ok {
		return v
	}
	return ""
}

// SessionIDFromContext returns the session ID the token was minted for
func SessionIDFromContext(c echo.Context) string {
	if v, ok := c.Get(ContextSessionID).(string); ok {
		return v
	}
	return ""
}
