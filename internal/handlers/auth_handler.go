package handlers

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/applytrack/internal/dtos"
	"github.com/justsurfingit/applytrack/internal/models"
	"github.com/justsurfingit/applytrack/internal/services"
	"github.com/justsurfingit/applytrack/internal/validation"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth Authenticator
	log  *zap.SugaredLogger
}

func NewAuthHandler(auth Authenticator, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Signup is POST /api/v1/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var form dtos.CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{Error: "Invalid request format."})
		return
	}

	email, fieldErrs := validation.ParseCredentials(form.Email, form.Password)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: fieldErrs,
		})
		return
	}

	session, err := h.auth.SignUp(c.Request.Context(), email, form.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: map[string]string{validation.FieldEmail: "An account with this email already exists"},
		})
		return
	}
	if err != nil {
		h.log.Errorw("signup failed", "error", err)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Something went wrong. Please try again."})
		return
	}

	setSessionCookie(c, session)
	c.JSON(http.StatusCreated, gin.H{"user": session.User})
}

// Login is POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dtos.CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{Error: "Invalid request format."})
		return
	}

	email, fieldErrs := validation.ParseCredentials(form.Email, form.Password)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: fieldErrs,
		})
		return
	}

	session, err := h.auth.SignIn(c.Request.Context(), email, form.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, dtos.ActionError{Error: "Invalid email or password."})
		return
	}
	if err != nil {
		h.log.Errorw("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Something went wrong. Please try again."})
		return
	}

	setSessionCookie(c, session)
	c.JSON(http.StatusOK, gin.H{"user": session.User})
}

// Logout is POST /api/v1/auth/logout. Always clears the cookie, even when the
// token is already unknown.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := sessionToken(c); ok {
		if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
			h.log.Errorw("logout failed", "error", err)
		}
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me is GET /api/v1/auth/me, behind RequireAuth.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}

// setSessionCookie hands the session token to the browser; Max-Age tracks
// the session expiry so the cookie and the server-side session lapse together.
func setSessionCookie(c *gin.Context, session *models.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetCookie(SessionCookie, session.ID.String(), maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
