package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vulnsocial/internal/models"
	"vulnsocial/internal/store"
)

func TestSetCurrentClear(t *testing.T) {
	m := NewManager()
	assert.Nil(t, m.Current())

	u := &models.User{ID: 2, Username: "user"}
	m.Set(u)
	assert.Same(t, u, m.Current())

	// Unconditional overwrite
	other := &models.User{ID: 3, Username: "alice"}
	m.Set(other)
	assert.Same(t, other, m.Current())

	m.Clear()
	assert.Nil(t, m.Current())
}

func TestSessionAliasesStoreRecord(t *testing.T) {
	st := store.New()
	st.AppendUser(&models.User{ID: 2, Username: "user", Email: "user@vulnsocial.com"})

	m := NewManager()
	m.Set(st.UserByID(2))

	m.Current().Email = "updated@vulnsocial.com"
	assert.Equal(t, "updated@vulnsocial.com", st.UserByID(2).Email)

	st.UpdateUserFields(2, "store@vulnsocial.com", "bio")
	assert.Equal(t, "store@vulnsocial.com", m.Current().Email)
}
