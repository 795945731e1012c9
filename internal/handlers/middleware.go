package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/dtos"
	"github.com/justsurfingit/applytrack/internal/models"
	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session_token"

const userContextKey = "currentUser"

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// RequireAuth resolves the session token (cookie, or Authorization bearer for
// non-browser clients) to a user and puts it on the context. Requests without
// a valid session are rejected before any handler logic runs.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessionToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.ActionError{Error: "You must be logged in."})
			return
		}
		user, err := auth.UserFromToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.ActionError{Error: "You must be logged in."})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

func sessionToken(c *gin.Context) (uuid.UUID, bool) {
	raw, err := c.Cookie(SessionCookie)
	if err != nil || raw == "" {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return uuid.Nil, false
		}
		raw = strings.TrimPrefix(header, "Bearer ")
	}
	token, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return token, true
}

// currentUser returns the authenticated user placed on the context by
// RequireAuth.
func currentUser(c *gin.Context) *models.User {
	user, _ := c.MustGet(userContextKey).(*models.User)
	return user
}
