package notify

import (
	"sync"
	"time"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 10 * time.Second

// Notification is a single transient user-facing message.
type Notification struct {
	Text      string
	Severity  Severity
	CreatedAt time.Time

	id uint64
}

// Channel is an in-process message bus for transient notifications. At most
// one notification is current at a time; a new Show replaces the previous
// one. Every notification owns its expiry timer, identified by a private id,
// so a stale timer firing late can never clear a newer notification.
type Channel struct {
	mu      sync.Mutex
	current *Notification
	nextID  uint64
	ttl     time.Duration
	subs    []func(*Notification)
}

// NewChannel creates a channel with the default 10 second expiry.
func NewChannel() *Channel {
	return NewChannelTTL(DefaultTTL)
}

// NewChannelTTL creates a channel with a custom expiry window.
func NewChannelTTL(ttl time.Duration) *Channel {
	return &Channel{ttl: ttl}
}

// Show replaces the current notification and schedules its removal after the
// channel's expiry window.
func (c *Channel) Show(text string, severity Severity) {
	c.mu.Lock()
	c.nextID++
	n := &Notification{
		Text:      text,
		Severity:  severity,
		CreatedAt: time.Now(),
		id:        c.nextID,
	}
	c.current = n
	subs := append([]func(*Notification){}, c.subs...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}

	id := n.id
	time.AfterFunc(c.ttl, func() {
		c.expire(id)
	})
}

// expire clears the display only when the notification that scheduled this
// timer is still the current one.
func (c *Channel) expire(id uint64) {
	c.mu.Lock()
	if c.current == nil || c.current.id != id {
		c.mu.Unlock()
		return
	}
	c.current = nil
	subs := append([]func(*Notification){}, c.subs...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// Current returns the visible notification, or nil when none is showing.
func (c *Channel) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe registers fn to be called with every new notification and with
// nil when the display clears.
func (c *Channel) Subscribe(fn func(*Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}
