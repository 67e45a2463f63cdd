// Package notify holds the single transient user-facing notification. A
// new Raise replaces whatever is showing; expiry is cooperative — the
// caller schedules a timer (tea.Tick in the TUI) carrying the sequence
// number returned by Raise, and a tick from a replaced notification is
// simply ignored.
package notify

import "time"

// TTL is how long a notification stays visible.
const TTL = 3 * time.Second

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one transient message.
type Notification struct {
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

// Channel owns the currently active notification.
type Channel struct {
	active *Notification
	seq    int
}

// Raise replaces the active notification and returns it with the sequence
// number its expiry timer must present to Expire.
func (c *Channel) Raise(message string, kind Kind) (Notification, int) {
	n := Notification{Message: message, Kind: kind, CreatedAt: time.Now()}
	c.active = &n
	c.seq++
	return n, c.seq
}

// Expire clears the active notification if seq still identifies it.
// Returns true when something was cleared.
func (c *Channel) Expire(seq int) bool {
	if c.active == nil || seq != c.seq {
		return false
	}
	c.active = nil
	return true
}

// Active returns the visible notification, if any.
func (c *Channel) Active() (Notification, bool) {
	if c.active == nil {
		return Notification{}, false
	}
	return *c.active, true
}
