package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/review-system/internal/api/metrics"
	"github.com/reviewhub/review-system/internal/api/middleware"
	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// UserHandler serves the sign-in/sign-up pages and the session lifecycle.
type UserHandler struct {
	Base
	auth       ports.AuthService
	sessions   ports.SessionService
	sessionTTL time.Duration
}

func NewUserHandler(base Base, auth ports.AuthService, sessions ports.SessionService, sessionTTL time.Duration) *UserHandler {
	return &UserHandler{Base: base, auth: auth, sessions: sessions, sessionTTL: sessionTTL}
}

// SignInPage handles GET /. An already-authenticated user is sent straight
// to their dashboard instead of seeing the form again.
func (h *UserHandler) SignInPage(c echo.Context) error {
	if user := currentUser(c); user != nil {
		return redirectByRole(c, user)
	}
	return c.Render(http.StatusOK, "sign_in.html", h.viewData(c, "Review system | Sign In"))
}

// SignUpPage handles GET /sign-up with the same redirect rule.
func (h *UserHandler) SignUpPage(c echo.Context) error {
	if user := currentUser(c); user != nil {
		return redirectByRole(c, user)
	}
	return c.Render(http.StatusOK, "sign_up.html", h.viewData(c, "Review system | Sign Up"))
}

// CreateUser handles POST /users — self sign-up with an explicit role.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		h.flash(c, ports.FlashError, "Couldn't sign up")
		return redirectBack(c)
	}
	if err := c.Validate(&req); err != nil {
		h.flash(c, ports.FlashError, err.Error())
		return redirectBack(c)
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            domain.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			h.flash(c, ports.FlashError, "Password and Confirm password are not the same")
		case errors.Is(err, domain.ErrUserExists):
			h.flash(c, ports.FlashError, "User already registered!")
		default:
			h.log.Error().Err(err).Str("email", req.Email).Msg("sign-up failed")
			h.flash(c, ports.FlashError, "Couldn't sign up")
		}
		return redirectBack(c)
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	h.flash(c, ports.FlashSuccess, "Account created!")
	return c.Redirect(http.StatusFound, "/")
}

// CreateSession handles POST /session — sign in. On success the session
// token lands in an HttpOnly cookie and the user is redirected by role.
func (h *UserHandler) CreateSession(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		h.flash(c, ports.FlashError, "Invalid username or password")
		return redirectBack(c)
	}
	if err := c.Validate(&req); err != nil {
		h.flash(c, ports.FlashError, "Invalid username or password")
		return redirectBack(c)
	}

	user, err := h.auth.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SignInFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		if !errors.Is(err, domain.ErrUserNotFound) && !errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Error().Err(err).Str("email", req.Email).Msg("sign-in failed")
		}
		h.flash(c, ports.FlashError, "Invalid username or password")
		return redirectBack(c)
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue session token")
		h.flash(c, ports.FlashError, "Invalid username or password")
		return redirectBack(c)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.sessionTTL.Seconds()),
	})

	metrics.SignInsTotal.Inc()
	h.flash(c, ports.FlashSuccess, "Logged in successfully")
	return redirectByRole(c, user)
}

// DestroySession handles GET /sign-out. The cookie is expired and the
// notice queued; a flash-store failure propagates to the error path rather
// than being swallowed.
func (h *UserHandler) DestroySession(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if err := h.flashes.Push(c.Request().Context(), h.flashID(c), ports.Flash{
		Kind:    ports.FlashSuccess,
		Message: "Logged out successfully!",
	}); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "bad_password"
	default:
		return "system"
	}
}
