package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// flashCookie identifies the browser's flash queue. It is independent of
// the session so that notices survive sign-out.
const flashCookie = "flash_id"

// Base carries the cross-cutting pieces every page handler needs: the
// flash store for one-shot notices and the logger.
type Base struct {
	flashes ports.FlashStore
	log     zerolog.Logger
}

func NewBase(flashes ports.FlashStore, log zerolog.Logger) Base {
	return Base{flashes: flashes, log: log}
}

// flash queues a one-shot notice for the next rendered page. Storage
// failures are logged and swallowed: a lost notice never fails a request.
func (b Base) flash(c echo.Context, kind ports.FlashKind, message string) {
	if err := b.flashes.Push(c.Request().Context(), b.flashID(c), ports.Flash{Kind: kind, Message: message}); err != nil {
		b.log.Warn().Err(err).Msg("failed to store flash notice")
	}
}

// popFlashes drains the pending notices for rendering.
func (b Base) popFlashes(c echo.Context) []ports.Flash {
	flashes, err := b.flashes.Pop(c.Request().Context(), b.flashID(c))
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to read flash notices")
		return nil
	}
	return flashes
}

// flashID returns the browser's flash queue id, minting a new cookie when
// none exists yet.
func (b Base) flashID(c echo.Context) string {
	if cookie, err := c.Cookie(flashCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
	return id
}

// viewData assembles the common rendering context: page title, pending
// flash notices, and the current user when one is signed in.
func (b Base) viewData(c echo.Context, title string) echo.Map {
	return echo.Map{
		"Title":   title,
		"Flashes": b.popFlashes(c),
		"User":    currentUser(c),
	}
}

// currentUser returns the identity resolved by the access-gate middleware,
// or nil for unauthenticated requests.
func currentUser(c echo.Context) *domain.User {
	user, _ := c.Get("current_user").(*domain.User)
	return user
}

// redirectByRole sends an authenticated user to their dashboard: admins to
// the administrative one, everyone else to their own.
func redirectByRole(c echo.Context, user *domain.User) error {
	if user.IsAdmin() {
		return c.Redirect(http.StatusFound, "/admin-dashboard")
	}
	return c.Redirect(http.StatusFound, "/employee-dashboard/"+user.ID)
}

// redirectBack returns to the referring page, falling back to home when
// the request carries no referer.
func redirectBack(c echo.Context) error {
	target := c.Request().Referer()
	if target == "" {
		target = "/"
	}
	return c.Redirect(http.StatusFound, target)
}
