package server

import (
	"html/template"
	"strconv"
	"strings"

	"vulnsocial/internal/observability"
	"vulnsocial/internal/search"

	"github.com/gofiber/fiber/v2"
)

// SearchUsers handles GET /search?q=...
//
// The term is spliced into the source of a Lua predicate and evaluated; see
// the search package. Evaluation errors are displayed with their message
// inserted as raw markup. An empty or whitespace-only term short-circuits
// with a prompt and never reaches the evaluator.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	term := c.Query("q")

	var body template.HTML
	var err error
	switch {
	case strings.TrimSpace(term) == "":
		body, err = s.renderer.Message("Enter a search keyword.")
	default:
		results, evalErr := search.Match(s.store.Users(), term)
		if evalErr != nil {
			observability.SearchErrors.Inc()
			body, err = s.renderer.SearchError(evalErr.Error())
		} else {
			body, err = s.renderer.SearchResults(results)
		}
	}
	if err != nil {
		return err
	}

	frag, err := s.renderer.Search(term, body)
	if err != nil {
		return err
	}
	return s.renderPage(c, "User search", frag)
}

// MyProfile handles GET /profile. Renders the session user's own record.
func (s *Server) MyProfile(c *fiber.Ctx) error {
	user := s.session.Current()
	if user == nil {
		return seeOther(c, "/")
	}

	body, err := s.renderer.OwnProfile(user)
	if err != nil {
		return err
	}
	return s.renderPage(c, "Profile", body)
}

// ViewProfile handles GET /users/profile?id=N.
//
// Any id between 1 and maxProfileID is looked up and rendered in full,
// plaintext password included, with no ownership or role check. The bound
// is a constant matching the canonical seed data; it does not track the
// store, so ids freed by deletion fall to "not found" while extra seeded
// users are simply unreachable here.
func (s *Server) ViewProfile(c *fiber.Ctx) error {
	idStr := c.Query("id")

	var body template.HTML
	var err error
	id, convErr := strconv.Atoi(idStr)
	switch {
	case idStr == "":
		body = ""
	case convErr != nil || id < 1 || id > maxProfileID:
		body, err = s.renderer.Warning("Please enter a valid user ID (1-5).")
	default:
		if user := s.store.UserByID(uint(id)); user != nil {
			body, err = s.renderer.OtherProfile(user)
		} else {
			body, err = s.renderer.Warning("User not found.")
		}
	}
	if err != nil {
		return err
	}

	frag, err := s.renderer.ProfileViewer(body)
	if err != nil {
		return err
	}
	return s.renderPage(c, "View profile", frag)
}

// SettingsForm handles GET /settings.
func (s *Server) SettingsForm(c *fiber.Ctx) error {
	user := s.session.Current()
	if user == nil {
		return seeOther(c, "/")
	}

	body, err := s.renderer.Settings(user)
	if err != nil {
		return err
	}
	return s.renderPage(c, "Settings", body)
}

// UpdateSettings handles POST /settings.
//
// No origin or token verification of any kind: any site that can make the
// browser post a form here updates the logged-in user (CSRF surface). The
// fields are written both through the session alias and onto the matching
// store record by id lookup.
func (s *Server) UpdateSettings(c *fiber.Ctx) error {
	user := s.session.Current()
	if user == nil {
		return seeOther(c, "/")
	}

	email := c.FormValue("email")
	bio := c.FormValue("bio")

	user.Email = email
	user.Bio = bio
	s.store.UpdateUserFields(user.ID, email, bio)

	s.flash.Success("Settings updated!")
	return seeOther(c, "/settings")
}
