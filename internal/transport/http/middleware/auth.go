package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ErlanBelekov/shift-calendar/internal/metrics"
	"github.com/ErlanBelekov/shift-calendar/internal/token"
	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Unauthorized"

// UserIDKey is the gin context key Auth stores the verified user ID under.
const UserIDKey = "userID"

type tokenVerifier interface {
	Verify(raw string) (string, error)
}

// Auth verifies the session token from the Authorization header and sets
// UserIDKey in the gin context. The header may carry "Bearer <token>" or the
// bare token. Every failure is the same 401; the reason only reaches logs and metrics.
func Auth(verifier tokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "auth_middleware")

	return func(c *gin.Context) {
		rawToken := strings.TrimSpace(c.GetHeader("Authorization"))
		rawToken = strings.TrimSpace(strings.TrimPrefix(rawToken, "Bearer "))
		if rawToken == "" {
			metrics.AuthFailuresTotal.WithLabelValues(metrics.ReasonMissingToken).Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		userID, err := verifier.Verify(rawToken)
		if err != nil {
			reason := metrics.ReasonInvalidToken
			if errors.Is(err, token.ErrExpired) {
				reason = metrics.ReasonExpiredToken
			}
			metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
			logger.DebugContext(c.Request.Context(), "token rejected", "reason", reason, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
