package server

import (
	"vulnsocial/internal/models"

	"github.com/gofiber/fiber/v2"
)

// The debug group is the app's intentional backdoor: JSON endpoints that
// dump session and store state, plus a role-escalation helper. Everything
// here is unauthenticated.

// DebugCurrentUser handles GET /api/debug/current-user.
func (s *Server) DebugCurrentUser(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"current_user": s.session.Current(),
	})
}

// DebugUsers handles GET /api/debug/users. Full records, passwords included.
func (s *Server) DebugUsers(c *fiber.Ctx) error {
	return c.JSON(s.store.Users())
}

// DebugPosts handles GET /api/debug/posts.
func (s *Server) DebugPosts(c *fiber.Ctx) error {
	return c.JSON(s.store.Posts())
}

// DebugSetAdmin handles POST /api/debug/set-admin. Unconditionally grants
// the admin role to whoever is logged in.
func (s *Server) DebugSetAdmin(c *fiber.Ctx) error {
	user := s.session.Current()
	if user == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No user is logged in"))
	}

	user.Role = models.RoleAdmin
	s.flash.Warning("Admin role granted (debug helper).")

	return c.JSON(fiber.Map{
		"message": "Admin role granted",
		"user":    user,
	})
}
