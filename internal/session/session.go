// Package session holds the process-wide login state.
package session

import (
	"sync"

	"vulnsocial/internal/models"
)

// Manager is a single nullable reference to a user record. There is one
// session for the whole process, mirroring the one-browser-tab model of the
// app: no expiry, no token, unconditional overwrite, gone on restart.
//
// The reference aliases the record held by the store, so field mutations
// through the session are visible in the store and vice versa.
type Manager struct {
	mu      sync.RWMutex
	current *models.User
}

// NewManager returns a manager with no user logged in.
func NewManager() *Manager {
	return &Manager{}
}

// Set replaces the current user reference.
func (m *Manager) Set(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = u
}

// Current returns the logged-in user, or nil.
func (m *Manager) Current() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Clear logs the current user out.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}
