package server

import (
	"strings"
	"time"

	"vulnsocial/internal/models"
	"vulnsocial/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts.
//
// Content is taken as-is: no sanitization, no length limit. Whatever markup
// is accepted here comes back raw from the post renderer on every page load
// (stored XSS surface). The id is current post count + 1.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	user := s.session.Current()
	if user == nil {
		return seeOther(c, "/")
	}

	content := c.FormValue("content")
	if strings.TrimSpace(content) == "" {
		s.flash.Warning("Please enter some post content.")
		return seeOther(c, "/")
	}

	post := &models.Post{
		ID:        s.store.NextPostID(),
		UserID:    user.ID,
		Username:  user.Username,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.store.PrependPost(post)
	observability.PostsCreated.Inc()

	s.flash.Success("Post created!")
	return seeOther(c, "/")
}
