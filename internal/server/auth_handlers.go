package server

import (
	"log/slog"
	"strings"

	"vulnsocial/internal/middleware"
	"vulnsocial/internal/observability"
	"vulnsocial/internal/store"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET /. It renders the login view or the dashboard depending
// on session state, and echoes the `message` query parameter verbatim into
// the page when present (reflected XSS surface).
func (s *Server) Index(c *fiber.Ctx) error {
	reflected := c.Query("message")

	if s.session.Current() == nil {
		body, err := s.renderer.Login()
		if err != nil {
			return err
		}
		return s.renderPageReflected(c, "VulnSocial — Login", body, reflected)
	}

	body, err := s.renderer.Dashboard(s.store.Posts())
	if err != nil {
		return err
	}
	return s.renderPageReflected(c, "VulnSocial", body, reflected)
}

// Login handles POST /login.
//
// The credentials are never used in a real query; the handler logs the SQL
// text the lookup would have produced, then simulates the classic bypass:
// if either field contains the marker substring, authentication succeeds
// unconditionally as the first record in the user sequence, whatever that
// record's role is at the time. Otherwise it is a plaintext exact-match
// scan. Failure is a single generic message either way.
func (s *Server) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	middleware.Logger.InfoContext(c.UserContext(), "simulated login query",
		slog.String("query", store.SimulatedLoginQuery(username, password)))

	if strings.Contains(username, injectionMarker) || strings.Contains(password, injectionMarker) {
		if first := s.store.FirstUser(); first != nil {
			s.session.Set(first)
			observability.InjectionLogins.Inc()
			s.flash.Warning("SQL injection simulated: logged in as the first account.")
			return seeOther(c, "/")
		}
	} else if user := s.store.UserByCredentials(username, password); user != nil {
		s.session.Set(user)
		return seeOther(c, "/")
	}

	observability.FailedLogins.Inc()
	s.flash.Warning("Login failed.")
	return seeOther(c, "/")
}

// Logout handles POST /logout. Clears the session and returns to the
// pre-login view; the store is untouched.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.session.Clear()
	return seeOther(c, "/")
}
