package server

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoginPostLogoutFlow walks the happy path end to end: log in with the
// seeded regular account, publish a post, log out, and check that the post
// outlives the session.
func TestLoginPostLogoutFlow(t *testing.T) {
	env := newTestEnv(t)

	env.login(t, "user", "123456")
	require.Equal(t, uint(2), env.sess.Current().ID)

	resp := env.postForm(t, "/posts", url.Values{"content": {"hi"}})
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	posts := env.store.Posts()
	require.Len(t, posts, 4)
	assert.Equal(t, uint(4), posts[0].ID)
	assert.Equal(t, uint(2), posts[0].UserID)
	assert.Equal(t, "user", posts[0].Username)
	assert.Equal(t, "hi", posts[0].Content)

	resp = env.postForm(t, "/logout", url.Values{})
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Nil(t, env.sess.Current())

	// The feed persists across sessions.
	assert.Equal(t, 4, env.store.PostCount())

	// Back on the login view.
	resp = env.get(t, "/")
	assert.Contains(t, bodyString(t, resp), `id="login-form"`)
}
