// Package store implements the in-memory entity store backing the application.
package store

import (
	"strings"
	"sync"

	"vulnsocial/internal/models"
)

// Store holds the user and post sequences for the lifetime of the process.
// Everything lives in memory and resets on restart. Records are stored as
// pointers so that a session reference aliases the stored record rather
// than a copy.
//
// No uniqueness or referential-integrity checks are enforced here; callers
// are responsible, and in this application no caller enforces them either.
// That absence of validation is part of what the app demonstrates.
type Store struct {
	mu    sync.RWMutex
	users []*models.User
	posts []*models.Post
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Users returns the user sequence in order. The returned slice is a copy,
// but the records themselves are shared.
func (s *Store) Users() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Posts returns the post sequence in display order (newest entries first
// once any have been created).
func (s *Store) Posts() []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// UserCount returns the number of user records.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// PostCount returns the number of post records.
func (s *Store) PostCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// FirstUser returns the first record in the user sequence, or nil when the
// store is empty. The simulated injection bypass authenticates as this
// record, whatever its role happens to be at the time.
func (s *Store) FirstUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.users) == 0 {
		return nil
	}
	return s.users[0]
}

// UserByID returns the user with the given id, or nil.
func (s *Store) UserByID(id uint) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByCredentials returns the user whose username and password exactly
// equal the supplied strings. Plaintext comparison, no hashing.
func (s *Store) UserByCredentials(username, password string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u
		}
	}
	return nil
}

// AppendUser appends a user to the end of the sequence.
func (s *Store) AppendUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

// RemoveUser removes the user with the given id and reports whether a
// record was removed. Posts authored by the user are left untouched.
func (s *Store) RemoveUser(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateUserFields writes email and bio onto the stored record with the
// given id, reporting whether a record matched. The settings handler also
// writes through the session alias; both targets are kept on purpose.
func (s *Store) UpdateUserFields(id uint, email, bio string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.Email = email
			u.Bio = bio
			return true
		}
	}
	return false
}

// AppendPost appends a post to the end of the sequence. Used by seeding;
// user-created posts go through PrependPost.
func (s *Store) AppendPost(p *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, p)
}

// PrependPost inserts a post at the front of the sequence (newest-first).
func (s *Store) PrependPost(p *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]*models.Post{p}, s.posts...)
}

// NextPostID returns current post count + 1. The scheme would collide if a
// post were ever deleted; no deletion path exists, so it never does.
func (s *Store) NextPostID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint(len(s.posts)) + 1
}

// SimulatedLoginQuery renders the SQL text the login handler pretends to
// run. Nothing executes it; it exists only to be logged.
func SimulatedLoginQuery(username, password string) string {
	var b strings.Builder
	b.WriteString("SELECT * FROM users WHERE username = '")
	b.WriteString(username)
	b.WriteString("' AND password = '")
	b.WriteString(password)
	b.WriteString("'")
	return b.String()
}
