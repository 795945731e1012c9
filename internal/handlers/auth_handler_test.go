package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justsurfingit/applytrack/internal/dtos"
	"github.com/justsurfingit/applytrack/internal/handlers"
	"github.com/justsurfingit/applytrack/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doUnauthenticatedJSON posts without a session cookie — the auth endpoints
// sit outside the RequireAuth group.
func doUnauthenticatedJSON(t *testing.T, env *testEnv, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAuth_SignupSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t)

	w := doUnauthenticatedJSON(t, env, http.MethodPost, "/api/v1/auth/signup",
		dtos.CredentialsForm{Email: "new@example.com", Password: "hunter22"})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == handlers.SessionCookie {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "signup must hand out a session cookie")
	assert.True(t, sessionCookie.HttpOnly)
	assert.NotEmpty(t, sessionCookie.Value)
}

func TestAuth_SignupValidation(t *testing.T) {
	env := newTestEnv(t)

	w := doUnauthenticatedJSON(t, env, http.MethodPost, "/api/v1/auth/signup",
		dtos.CredentialsForm{Email: "bad", Password: "x"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	fieldErrors := body["fieldErrors"].(map[string]interface{})
	assert.Equal(t, "Please enter a valid email address", fieldErrors["email"])
	assert.Equal(t, "Password must be at least 6 characters", fieldErrors["password"])
}

func TestAuth_SignupDuplicateEmail(t *testing.T) {
	env := newTestEnvWithAuth(t, &stubAuth{signUpErr: services.ErrEmailTaken})

	w := doUnauthenticatedJSON(t, env, http.MethodPost, "/api/v1/auth/signup",
		dtos.CredentialsForm{Email: "taken@example.com", Password: "hunter22"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	fieldErrors := decodeBody(t, w)["fieldErrors"].(map[string]interface{})
	assert.Equal(t, "An account with this email already exists", fieldErrors["email"])
}

func TestAuth_LoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnvWithAuth(t, &stubAuth{signInErr: services.ErrInvalidCredentials})

	w := doUnauthenticatedJSON(t, env, http.MethodPost, "/api/v1/auth/login",
		dtos.CredentialsForm{Email: "user@example.com", Password: "wrongpass"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password.", decodeBody(t, w)["error"])
}

func TestAuth_LogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/auth/logout", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == handlers.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the session cookie")
}

func TestAuth_Me(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/v1/auth/me", nil)

	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "user@example.com", user["email"])
}
