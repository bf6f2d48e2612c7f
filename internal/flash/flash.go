// Package flash implements transient user-visible notices.
package flash

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind selects the styling of a notice.
type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

// DefaultTTL is how long a notice stays visible before it dismisses itself.
const DefaultTTL = 3 * time.Second

// Message is a single notice. Text is rendered escaped; flashes are not one
// of the app's raw-markup surfaces.
type Message struct {
	ID        string
	Kind      Kind
	Text      string
	CreatedAt time.Time
}

// Center collects active notices and drops each one after a fixed delay.
// Purely cosmetic; it never touches entity state.
type Center struct {
	mu       sync.Mutex
	ttl      time.Duration
	messages []Message
}

// NewCenter returns a center whose notices expire after ttl. A ttl of zero
// falls back to DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Success adds a success-styled notice and returns its id.
func (c *Center) Success(text string) string {
	return c.push(KindSuccess, text)
}

// Warning adds a warning-styled notice and returns its id.
func (c *Center) Warning(text string) string {
	return c.push(KindWarning, text)
}

func (c *Center) push(kind Kind, text string) string {
	msg := Message{
		ID:        uuid.NewString(),
		Kind:      kind,
		Text:      text,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() {
		c.Dismiss(msg.ID)
	})

	return msg.ID
}

// Dismiss removes the notice with the given id, reporting whether it was
// still active.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, m := range c.messages {
		if m.ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the notices that have not yet expired, oldest first.
func (c *Center) Active() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}
