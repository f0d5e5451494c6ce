package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rasheduzzaman2024/polashtoli/internal/session"
	"github.com/rasheduzzaman2024/polashtoli/pkg/jwtutil"
	"github.com/rasheduzzaman2024/polashtoli/pkg/logger"
)

const sessionContextKey = "session"

// SessionMiddleware validates the bearer token and attaches the live session
// it names to the request context.
func SessionMiddleware(jwtUtil *jwtutil.JWTUtil, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing session token"})
			}

			// Check if it's a Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				log.Warn("Invalid Authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			// Validate the token
			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid session token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			// The token names a session; the session itself holds the state
			sess, ok := sessions.Get(claims.SessionID)
			if !ok {
				log.Warn("Token references unknown session", zap.String("session_id", claims.SessionID))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session not found"})
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext retrieves the session attached by SessionMiddleware.
func SessionFromContext(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(sessionContextKey).(*session.Session)
	return sess, ok
}
