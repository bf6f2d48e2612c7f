package server

import (
	"html/template"

	"vulnsocial/internal/models"
	"vulnsocial/internal/render"

	"github.com/gofiber/fiber/v2"
)

const (
	// injectionMarker is the literal substring that triggers the simulated
	// SQL-injection login bypass.
	injectionMarker = "' OR '1'='1"

	// maxProfileID bounds the profile-by-id viewer. Hardcoded to match the
	// canonical seed data, not derived from the store's actual size.
	maxProfileID = 5
)

// renderPage composes the layout around body and sends it. Flash notices
// and the session user are read fresh on every render.
func (s *Server) renderPage(c *fiber.Ctx, title string, body template.HTML) error {
	return s.renderPageReflected(c, title, body, "")
}

func (s *Server) renderPageReflected(c *fiber.Ctx, title string, body template.HTML, reflected string) error {
	page, err := s.renderer.Page(render.PageData{
		Title:     title,
		User:      s.session.Current(),
		Flashes:   s.flash.Active(),
		Reflected: reflected,
		Body:      body,
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

// seeOther redirects back to a page after a form post.
func seeOther(c *fiber.Ctx, location string) error {
	return c.Redirect(location, fiber.StatusSeeOther)
}
