// Package notify is the transient message surface: fire-and-forget
// notifications where the newest always replaces whatever is showing.
package notify

import (
	"sync"
	"time"
)

// Kind selects the icon and styling of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

var icons = map[Kind]string{
	KindSuccess: "✔",
	KindError:   "✖",
	KindWarning: "▲",
	KindInfo:    "ℹ",
}

// Icon returns the glyph for a kind. Unknown kinds get the info glyph.
func Icon(k Kind) string {
	if icon, ok := icons[k]; ok {
		return icon
	}
	return icons[KindInfo]
}

// Normalize maps unknown kinds to KindInfo so downstream lookups stay
// total.
func Normalize(k Kind) Kind {
	switch k {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return k
	default:
		return KindInfo
	}
}

// Notification is one transient message.
type Notification struct {
	Kind    Kind
	Title   string
	Message string
	At      time.Time
}

// Center holds at most one notification; each Notify supersedes the
// previous one. Safe for concurrent use.
type Center struct {
	mu      sync.Mutex
	current *Notification
	now     func() time.Time
}

func NewCenter() *Center {
	return &Center{now: time.Now}
}

// Notify replaces the current notification.
func (c *Center) Notify(kind Kind, title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &Notification{
		Kind:    Normalize(kind),
		Title:   title,
		Message: message,
		At:      c.now(),
	}
}

// Current returns the displayed notification, or nil.
func (c *Center) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Clear removes the current notification.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}
