package server

import (
	"fmt"
	"strconv"

	"vulnsocial/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// requireAdmin enforces the admin role against the process-wide session.
// This is the only guard the admin pages have, which is exactly the level
// of protection being demonstrated.
func (s *Server) requireAdmin(c *fiber.Ctx, action string) bool {
	if s.session.Current().IsAdmin() {
		return true
	}
	observability.AdminDenied.WithLabelValues(action).Inc()
	s.flash.Warning("Admin privileges required.")
	return false
}

// AdminUsers handles GET /admin/users. Renders every field of every user,
// plaintext passwords included.
func (s *Server) AdminUsers(c *fiber.Ctx) error {
	if !s.requireAdmin(c, "list_users") {
		return seeOther(c, "/")
	}

	body, err := s.renderer.AdminUsers(s.store.Users())
	if err != nil {
		return err
	}
	return s.renderPage(c, "Admin panel", body)
}

// AdminDeleteUser handles POST /admin/users/delete.
//
// Refuses ids that do not exist and the caller's own id; otherwise removes
// exactly one record. Posts by the removed author stay in the feed with a
// dangling author id.
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	if !s.requireAdmin(c, "delete_user") {
		return seeOther(c, "/")
	}

	idStr := c.FormValue("user_id")
	if idStr == "" {
		return seeOther(c, "/admin/users")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		s.flash.Warning("User not found, or you cannot delete yourself.")
		return seeOther(c, "/admin/users")
	}

	current := s.session.Current()
	target := s.store.UserByID(uint(id))
	if target == nil || target.ID == current.ID {
		s.flash.Warning("User not found, or you cannot delete yourself.")
		return seeOther(c, "/admin/users")
	}

	s.store.RemoveUser(target.ID)
	s.flash.Success(fmt.Sprintf("User ID %d deleted.", target.ID))
	return seeOther(c, "/admin/users")
}
