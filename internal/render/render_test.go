package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vulnsocial/internal/flash"
	"vulnsocial/internal/models"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestPostsContentIsRaw(t *testing.T) {
	r := newRenderer(t)

	posts := []*models.Post{
		{ID: 1, Username: "user", Content: "<script>alert('xss')</script>", Timestamp: time.Now()},
	}

	html, err := r.Posts(posts)
	require.NoError(t, err)

	// Stored content comes back verbatim.
	assert.Contains(t, string(html), "<script>alert('xss')</script>")
}

func TestPostsUsernameIsEscaped(t *testing.T) {
	r := newRenderer(t)

	posts := []*models.Post{
		{ID: 1, Username: "<i>user</i>", Content: "hello", Timestamp: time.Now()},
	}

	html, err := r.Posts(posts)
	require.NoError(t, err)

	assert.Contains(t, string(html), "&lt;i&gt;user&lt;/i&gt;")
	assert.NotContains(t, string(html), "<i>user</i>")
}

func TestPageReflectedIsRaw(t *testing.T) {
	r := newRenderer(t)

	page, err := r.Page(PageData{
		Title:     "t",
		Reflected: "<img src=x onerror=alert(1)>",
	})
	require.NoError(t, err)

	assert.Contains(t, page, "<img src=x onerror=alert(1)>")
}

func TestPageFlashTextIsEscaped(t *testing.T) {
	r := newRenderer(t)

	page, err := r.Page(PageData{
		Title: "t",
		Flashes: []flash.Message{
			{ID: "1", Kind: flash.KindWarning, Text: "<b>bold</b>"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, page, "&lt;b&gt;bold&lt;/b&gt;")
	assert.NotContains(t, page, "<b>bold</b>")
}

func TestOtherProfileIncludesPassword(t *testing.T) {
	r := newRenderer(t)

	html, err := r.OtherProfile(&models.User{
		ID: 3, Username: "alice", Password: "alice123",
		Email: "alice@vulnsocial.com", Bio: "Hi, I'm Alice!", Role: models.RoleUser,
	})
	require.NoError(t, err)

	assert.Contains(t, string(html), "alice123")
}

func TestOwnProfileOmitsPassword(t *testing.T) {
	r := newRenderer(t)

	html, err := r.OwnProfile(&models.User{
		ID: 3, Username: "alice", Password: "alice123",
		Email: "alice@vulnsocial.com", Bio: "Hi, I'm Alice!", Role: models.RoleUser,
	})
	require.NoError(t, err)

	assert.NotContains(t, string(html), "alice123")
	assert.Contains(t, string(html), "alice@vulnsocial.com")
}

func TestSearchResultsBioIsRaw(t *testing.T) {
	r := newRenderer(t)

	html, err := r.SearchResults([]*models.User{
		{ID: 2, Username: "user", Bio: "<img src=x onerror=alert(2)>"},
	})
	require.NoError(t, err)

	assert.Contains(t, string(html), "<img src=x onerror=alert(2)>")
}

func TestSearchResultsEmpty(t *testing.T) {
	r := newRenderer(t)

	html, err := r.SearchResults(nil)
	require.NoError(t, err)

	assert.Contains(t, string(html), "No matching users found.")
}

func TestSearchErrorIsRaw(t *testing.T) {
	r := newRenderer(t)

	html, err := r.SearchError("parse error near <b>here</b>")
	require.NoError(t, err)

	assert.Contains(t, string(html), "<b>here</b>")
}

func TestAdminUsersListsEveryField(t *testing.T) {
	r := newRenderer(t)

	html, err := r.AdminUsers([]*models.User{
		{ID: 1, Username: "admin", Password: "password", Email: "admin@vulnsocial.com", Bio: "Administrator account", Role: models.RoleAdmin},
		{ID: 5, Username: "charlie", Password: "charlie789", Email: "charlie@vulnsocial.com", Bio: "Charlie reporting in.", Role: models.RoleUser},
	})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "password")
	assert.Contains(t, out, "charlie789")
	assert.Contains(t, out, "admin@vulnsocial.com")
}

func TestPageAdminLinkFollowsRole(t *testing.T) {
	r := newRenderer(t)

	admin, err := r.Page(PageData{Title: "t", User: &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}})
	require.NoError(t, err)
	assert.Contains(t, admin, "/admin/users")

	regular, err := r.Page(PageData{Title: "t", User: &models.User{ID: 2, Username: "user", Role: models.RoleUser}})
	require.NoError(t, err)
	assert.NotContains(t, regular, "/admin/users")
}
