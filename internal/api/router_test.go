package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/core/ports"
	"github.com/campusworks/job-board/internal/pkg/config"
	"github.com/campusworks/job-board/internal/ratelimit"
	"github.com/campusworks/job-board/internal/validate"
)

const testSecret = "router-test-secret"

// routerAuthStub stands in for the auth service; the mongo-backed job and
// user repositories behind the router are never reached by these tests, which
// all short-circuit in middleware or validation.
type routerAuthStub struct {
	mu  sync.Mutex
	err error
}

func (s *routerAuthStub) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *routerAuthStub) Register(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	strength := validate.PasswordStrength(input.Password)
	return &ports.AuthResult{
		Token:    "tok",
		User:     &domain.User{ID: "u1", Name: input.Name, Email: input.Email, Role: input.Role},
		Strength: &strength,
	}, nil
}

func (s *routerAuthStub) Login(_ context.Context, email, _ string) (*ports.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &ports.AuthResult{Token: "tok", User: &domain.User{ID: "u1", Email: email}}, nil
}

func (s *routerAuthStub) EnsureAdmin(_ context.Context) error { return nil }

var (
	routerOnce sync.Once
	testRouter *echo.Echo
	testAuth   = &routerAuthStub{}
)

// newTestRouter builds the full pipeline exactly once: the prometheus
// middleware registers collectors globally and cannot be built twice in one
// process.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		mr, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		// The mongo client connects lazily; no server is required because no
		// test below reaches a repository.
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
		if err != nil {
			panic(err)
		}

		cfg := &config.Config{
			Port:     "0",
			Env:      "test",
			LogLevel: "disabled",
			Auth: config.AuthConfig{
				JWTSecret:     testSecret,
				TokenTTLHours: 1,
				AdminEmail:    "admin@app.com",
				AdminPassword: "admin123",
			},
		}
		testRouter = NewRouter(cfg, zerolog.Nop(), client.Database("job_board_test"), rdb, ratelimit.NewMemoryStore(), testAuth)
	})
	return testRouter
}

// do runs one request through the router from the given client address.
func do(e *echo.Echo, method, target, clientIP, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func signTestToken(t *testing.T, id, email, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestRouter_Health(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/health", "203.0.113.1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_CreateJob_RequiresToken(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/jobs", "203.0.113.2", "", `{"title":"Barista"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Authorization token required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// The rate limiter sits in front of the auth gate: unauthenticated requests
// still consume budget, and once over budget the response is 429 instead of
// 401.
func TestRouter_RateLimitRunsBeforeAuth(t *testing.T) {
	e := newTestRouter(t)

	const ip = "203.0.113.3"
	for i := 0; i < 10; i++ {
		rec := do(e, http.MethodPost, "/api/jobs", ip, "", `{}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("request %d: expected 401, got %d", i+1, rec.Code)
		}
	}

	rec := do(e, http.MethodPost, "/api/jobs", ip, "", `{}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once over budget, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header on 429")
	}
	if !strings.Contains(rec.Body.String(), "Too many requests") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// A different client still has budget.
	rec = do(e, http.MethodPost, "/api/jobs", "203.0.113.4", "", `{}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("other client: expected 401, got %d", rec.Code)
	}
}

func TestRouter_Register_ValidationFields(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/auth/register", "203.0.113.5", "",
		`{"name":"","email":"bad","password":"short","role":"Wizard"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Validation failed" {
		t.Fatalf("unexpected error: %q", resp.Error)
	}
	for _, field := range []string{"name", "email", "password", "role"} {
		if resp.Fields[field] == "" {
			t.Fatalf("expected message for %s, got %v", field, resp.Fields)
		}
	}
}

func TestRouter_Register_Success(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/auth/register", "203.0.113.6", "",
		`{"name":"Alice","email":"alice@example.com","password":"Str0ng!Pass","role":"Student"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"password_strength"`) {
		t.Fatalf("expected strength report in body: %s", rec.Body.String())
	}
}

func TestRouter_Register_DuplicateEmail(t *testing.T) {
	e := newTestRouter(t)

	testAuth.setErr(domain.ErrUserExists)
	defer testAuth.setErr(nil)

	rec := do(e, http.MethodPost, "/auth/register", "203.0.113.7", "",
		`{"name":"Bob","email":"bob@example.com","password":"Str0ng!Pass","role":"Employer"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_Login_BadCredentials(t *testing.T) {
	e := newTestRouter(t)

	testAuth.setErr(domain.ErrInvalidCredentials)
	defer testAuth.setErr(nil)

	rec := do(e, http.MethodPost, "/auth/login", "203.0.113.8", "",
		`{"email":"alice@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_AdminRoutes_RejectNonAdmin(t *testing.T) {
	e := newTestRouter(t)

	token := signTestToken(t, "emp-1", "emp@example.com", domain.RoleEmployer)
	rec := do(e, http.MethodGet, "/api/admin/users", "203.0.113.9", token, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Admin access required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_AdminDelete_MalformedUUID(t *testing.T) {
	e := newTestRouter(t)

	// Validation fires after auth and admin but before any store call, so the
	// unreachable mongo backend is never touched.
	token := signTestToken(t, "adm-1", "admin@app.com", domain.RoleAdmin)
	rec := do(e, http.MethodDelete, "/api/admin/users?id=not-a-uuid", "203.0.113.10", token, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Must be a valid UUID") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_InvalidToken(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/jobs", "203.0.113.11", "garbage", `{}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid or expired token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/metrics", "203.0.113.12", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "jobboard") {
		t.Fatalf("expected namespaced metrics in output")
	}
}
