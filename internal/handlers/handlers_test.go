package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/handlers"
	"github.com/justsurfingit/applytrack/internal/models"
	"github.com/justsurfingit/applytrack/internal/services"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testUser = &models.User{ID: uuid.New(), Email: "user@example.com"}

// stubAuth accepts any well-formed token and returns the fixed test user.
type stubAuth struct {
	signUpErr error
	signInErr error
	session   *models.Session
}

func (s *stubAuth) SignUp(ctx context.Context, email, password string) (*models.Session, error) {
	if s.signUpErr != nil {
		return nil, s.signUpErr
	}
	return s.sessionOrDefault(), nil
}

func (s *stubAuth) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return s.sessionOrDefault(), nil
}

func (s *stubAuth) SignOut(ctx context.Context, token uuid.UUID) error { return nil }

func (s *stubAuth) UserFromToken(ctx context.Context, token uuid.UUID) (*models.User, error) {
	return testUser, nil
}

func (s *stubAuth) sessionOrDefault() *models.Session {
	if s.session != nil {
		return s.session
	}
	return &models.Session{ID: uuid.New(), UserID: testUser.ID, User: *testUser}
}

// deniedAuth rejects every token.
type deniedAuth struct{ stubAuth }

func (d *deniedAuth) UserFromToken(ctx context.Context, token uuid.UUID) (*models.User, error) {
	return nil, services.ErrInvalidSession
}

type stubApplications struct {
	apps      []models.Application
	created   *models.ApplicationInput
	createErr error
	updateErr error
	statusErr error
	deleteErr error
	listErr   error
}

func (s *stubApplications) List(ctx context.Context, userID uuid.UUID) ([]models.Application, error) {
	return s.apps, s.listErr
}

func (s *stubApplications) Get(ctx context.Context, userID, id uuid.UUID) (*models.Application, error) {
	for i := range s.apps {
		if s.apps[i].ID == id {
			return &s.apps[i], nil
		}
	}
	return nil, services.ErrNotFound
}

func (s *stubApplications) Create(ctx context.Context, userID uuid.UUID, in models.ApplicationInput) (*models.Application, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &in
	return &models.Application{ID: uuid.New(), UserID: userID, CompanyName: in.CompanyName, Status: in.Status, DateApplied: in.DateApplied}, nil
}

func (s *stubApplications) Update(ctx context.Context, userID, id uuid.UUID, in models.ApplicationInput) (*models.Application, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Application{ID: id, UserID: userID, CompanyName: in.CompanyName, Status: in.Status, DateApplied: in.DateApplied}, nil
}

func (s *stubApplications) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.Status) error {
	return s.statusErr
}

func (s *stubApplications) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteErr
}

type stubSections struct {
	sections  []models.Section
	createErr error
	renameErr error
	deleteErr error
}

func (s *stubSections) ListWithCounts(ctx context.Context, userID uuid.UUID) ([]models.Section, error) {
	return s.sections, nil
}

func (s *stubSections) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Section, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Section{ID: uuid.New(), UserID: userID, Name: name}, nil
}

func (s *stubSections) Rename(ctx context.Context, userID, id uuid.UUID, name string) (*models.Section, error) {
	if s.renameErr != nil {
		return nil, s.renameErr
	}
	return &models.Section{ID: id, UserID: userID, Name: name}, nil
}

func (s *stubSections) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteErr
}

type testEnv struct {
	router *gin.Engine
	apps   *stubApplications
	secs   *stubSections
	auth   handlers.Authenticator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithAuth(t, &stubAuth{})
}

func newTestEnvWithAuth(t *testing.T, auth handlers.Authenticator) *testEnv {
	t.Helper()
	log := zap.NewNop().Sugar()
	apps := &stubApplications{}
	secs := &stubSections{}

	router := handlers.NewRouter(
		log,
		auth,
		handlers.NewAuthHandler(auth, log),
		handlers.NewApplicationHandler(apps, log),
		handlers.NewSectionHandler(secs, log),
	)
	return &testEnv{router: router, apps: apps, secs: secs, auth: auth}
}

// doJSON performs an authenticated JSON request against the test router.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: handlers.SessionCookie, Value: uuid.New().String()})

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
