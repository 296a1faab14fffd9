package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/reviewhub/review-system/internal/api/middleware"
	"github.com/reviewhub/review-system/internal/api/render"
	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// --- shared fixtures for the handler tests in this package ---

type stubFlashStore struct {
	pushed []ports.Flash
}

func (s *stubFlashStore) Push(_ context.Context, _ string, flash ports.Flash) error {
	s.pushed = append(s.pushed, flash)
	return nil
}

func (s *stubFlashStore) Pop(context.Context, string) ([]ports.Flash, error) {
	out := s.pushed
	s.pushed = nil
	return out, nil
}

func (s *stubFlashStore) last(t *testing.T) ports.Flash {
	t.Helper()
	if len(s.pushed) == 0 {
		t.Fatalf("expected a flash notice")
	}
	return s.pushed[len(s.pushed)-1]
}

type stubAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	registerFn     func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return s.authenticateFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

type stubSessionService struct {
	issueFn   func(user *domain.User) (string, error)
	resolveFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubSessionService) Issue(user *domain.User) (string, error) {
	if s.issueFn != nil {
		return s.issueFn(user)
	}
	return "token-" + user.ID, nil
}

func (s *stubSessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if s.resolveFn != nil {
		return s.resolveFn(ctx, token)
	}
	return nil, domain.ErrSessionInvalid
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	return e
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("Referer", "/previous-page")
	return req
}

func testBase(flashes *stubFlashStore) Base {
	return NewBase(flashes, zerolog.Nop())
}

// --- tests ---

func TestSignInPage_RendersForm(t *testing.T) {
	e := newTestEcho(t)
	flashes := &stubFlashStore{}
	h := NewUserHandler(testBase(flashes), &stubAuthService{}, &stubSessionService{}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignInPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sign In") {
		t.Fatalf("expected sign-in form in body")
	}
}

func TestSignInPage_RedirectsAuthenticatedAdmin(t *testing.T) {
	e := newTestEcho(t)
	h := NewUserHandler(testBase(&stubFlashStore{}), &stubAuthService{}, &stubSessionService{}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("current_user", &domain.User{ID: "admin_1", Role: domain.RoleAdmin})

	if err := h.SignInPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin-dashboard" {
		t.Fatalf("expected /admin-dashboard, got %s", loc)
	}
}

func TestSignUpPage_RedirectsAuthenticatedEmployee(t *testing.T) {
	e := newTestEcho(t)
	h := NewUserHandler(testBase(&stubFlashStore{}), &stubAuthService{}, &stubSessionService{}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/sign-up", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("current_user", &domain.User{ID: "emp_9", Role: domain.RoleEmployee})

	if err := h.SignUpPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/employee-dashboard/emp_9" {
		t.Fatalf("expected /employee-dashboard/emp_9, got %s", loc)
	}
}

func TestCreateUser_Success(t *testing.T) {
	e := newTestEcho(t)
	flashes := &stubFlashStore{}
	auth := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Role != domain.RoleAdmin {
				t.Fatalf("expected submitted role to pass through, got %s", in.Role)
			}
			return &domain.User{ID: "u1", Email: in.Email, Username: in.Username, Role: in.Role}, nil
		},
	}
	h := NewUserHandler(testBase(flashes), auth, &stubSessionService{}, time.Hour)

	form := url.Values{
		"username":         {"alice"},
		"email":            {"alice@example.com"},
		"password":         {"p1"},
		"confirm_password": {"p1"},
		"role":             {"admin"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/users", form), rec)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}
	if flash := flashes.last(t); flash.Kind != ports.FlashSuccess || flash.Message != "Account created!" {
		t.Fatalf("unexpected flash: %+v", flash)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	e := newTestEcho(t)
	flashes := &stubFlashStore{}
	auth := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(testBase(flashes), auth, &stubSessionService{}, time.Hour)

	form := url.Values{
		"username":         {"bob"},
		"email":            {"e@x.com"},
		"password":         {"p1"},
		"confirm_password": {"p1"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/users", form), rec)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/previous-page" {
		t.Fatalf("expected redirect back, got %s", loc)
	}
	if flash := flashes.last(t); flash.Message != "User already registered!" {
		t.Fatalf("unexpected flash: %+v", flash)
	}
}

func TestCreateUser_PasswordMismatch(t *testing.T) {
	e := newTestEcho(t)
	flashes := &stubFlashStore{}
	auth := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrPasswordMismatch
		},
	}
	h := NewUserHandler(testBase(flashes), auth, &stubSessionService{}, time.Hour)

	form := url.Values{
		"username":         {"bob"},
		"email":            {"b@x.com"},
		"password":         {"p1"},
		"confirm_password": {"p2"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/users", form), rec)

	_ = h.CreateUser(c)
	if flash := flashes.last(t); flash.Message != "Password and Confirm password are not the same" {
		t.Fatalf("unexpected flash: %+v", flash)
	}
}

func TestCreateSession_SuccessSetsCookieAndRedirectsByRole(t *testing.T) {
	e := newTestEcho(t)
	flashes := &stubFlashStore{}
	admin := &domain.User{ID: "admin_1", Email: "a@x.com", Role: domain.RoleAdmin}
	auth := &stubAuthService{
		authenticateFn: func(_ context.Context, email, password string) (*domain.User, error) {
			if email != "a@x.com" || password != "secret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return admin, nil
		},
	}
	sessions := &stubSessionService{
		issueFn: func(user *domain.User) (string, error) {
			return "signed-token", nil
		},
	}
	h := NewUserHandler(testBase(flashes), auth, sessions, time.Hour)

	form := url.Values{"email": {"a@x.com"}, "password": {"secret"}}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/session", form), rec)

	if err := h.CreateSession(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin-dashboard" {
		t.Fatalf("expected /admin-dashboard, got %s", loc)
	}

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value != "signed-token" {
		t.Fatalf("expected session cookie, got %+v", sessionCookie)
	}
	if !sessionCookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if flash := flashes.last(t); flash.Message != "Logged in successfully" {
		t.Fatalf("unexpected flash: %+v", flash)
	}
}

func TestCreateSession_BadCredentials(t *testing.T) {
	e := newTestEcho(t)
	flashes := &stubFlashStore{}
	auth := &stubAuthService{
		authenticateFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(testBase(flashes), auth, &stubSessionService{}, time.Hour)

	form := url.Values{"email": {"a@x.com"}, "password": {"wrong"}}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/session", form), rec)

	_ = h.CreateSession(c)
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/previous-page" {
		t.Fatalf("expected redirect back, got %s", loc)
	}
	if flash := flashes.last(t); flash.Kind != ports.FlashError || flash.Message != "Invalid username or password" {
		t.Fatalf("unexpected flash: %+v", flash)
	}
}

func TestDestroySession_ClearsCookie(t *testing.T) {
	e := newTestEcho(t)
	flashes := &stubFlashStore{}
	h := NewUserHandler(testBase(flashes), &stubAuthService{}, &stubSessionService{}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/sign-out", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("current_user", &domain.User{ID: "u1", Role: domain.RoleEmployee})

	if err := h.DestroySession(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}

	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be expired")
	}
	if flash := flashes.last(t); flash.Message != "Logged out successfully!" {
		t.Fatalf("unexpected flash: %+v", flash)
	}
}
