// Package render serializes entity state into the HTML fragments that make
// up the page.
//
// Rendering is default-safe: html/template escapes everything unless a value
// goes through the single "unescaped" helper. The app's demonstrated
// injection surfaces (reflected query echo, stored post content, search
// results, profile fields, the admin listing, and search error text) use
// that helper on purpose, so every deliberately unsafe insertion is visible
// at the template level.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"vulnsocial/internal/flash"
	"vulnsocial/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Unescaped marks s as raw markup, bypassing template escaping.
func Unescaped(s string) template.HTML {
	return template.HTML(s)
}

// Renderer renders page and fragment templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("root").Funcs(template.FuncMap{
		"unescaped": Unescaped,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// PageData is everything the page layout needs.
type PageData struct {
	Title   string
	User    *models.User
	Flashes []flash.Message
	// Reflected is the raw `message` query parameter, echoed unescaped at
	// the end of the body. Reflected XSS surface.
	Reflected string
	Body      template.HTML
}

// Page renders the full document.
func (r *Renderer) Page(data PageData) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Login renders the pre-login view.
func (r *Renderer) Login() (template.HTML, error) {
	return r.fragment("login.html", nil)
}

// Posts renders the post list in sequence order. Post content is inserted
// as raw markup; anything the creation handler accepted comes back verbatim
// on every render (stored XSS surface).
func (r *Renderer) Posts(posts []*models.Post) (template.HTML, error) {
	return r.fragment("posts.html", posts)
}

// Dashboard renders the authenticated landing view around the post list.
func (r *Renderer) Dashboard(posts []*models.Post) (template.HTML, error) {
	postsHTML, err := r.Posts(posts)
	if err != nil {
		return "", err
	}
	return r.fragment("dashboard.html", struct {
		PostsHTML template.HTML
	}{PostsHTML: postsHTML})
}

// Search renders the search view with body placed in the results region.
func (r *Renderer) Search(term string, body template.HTML) (template.HTML, error) {
	return r.fragment("search.html", struct {
		Term string
		Body template.HTML
	}{Term: term, Body: body})
}

// SearchResults renders matched users, or a no-results message.
func (r *Renderer) SearchResults(results []*models.User) (template.HTML, error) {
	return r.fragment("search_results.html", results)
}

// SearchError renders a predicate evaluation error. The error text is
// inserted as raw markup, which makes the error path itself injectable.
func (r *Renderer) SearchError(msg string) (template.HTML, error) {
	return r.fragment("search_error.html", msg)
}

// Message renders an escaped informational line.
func (r *Renderer) Message(text string) (template.HTML, error) {
	return r.fragment("message.html", text)
}

// Warning renders an escaped warning line.
func (r *Renderer) Warning(text string) (template.HTML, error) {
	return r.fragment("warning.html", text)
}

// OwnProfile renders the session user's profile. No password here; that
// only leaks through the other-profile and admin views.
func (r *Renderer) OwnProfile(u *models.User) (template.HTML, error) {
	return r.fragment("profile_own.html", u)
}

// ProfileViewer renders the lookup form with body in the result region.
func (r *Renderer) ProfileViewer(body template.HTML) (template.HTML, error) {
	return r.fragment("view_profile.html", struct {
		Body template.HTML
	}{Body: body})
}

// OtherProfile renders every field of a user, password included, for the
// profile-by-id view (IDOR surface).
func (r *Renderer) OtherProfile(u *models.User) (template.HTML, error) {
	return r.fragment("profile_other.html", u)
}

// Settings renders the settings form prefilled from the user record.
func (r *Renderer) Settings(u *models.User) (template.HTML, error) {
	return r.fragment("settings.html", u)
}

// AdminUsers renders every field of every user, passwords included.
func (r *Renderer) AdminUsers(users []*models.User) (template.HTML, error) {
	return r.fragment("admin_users.html", users)
}
