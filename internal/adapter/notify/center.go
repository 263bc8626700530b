// Package notify holds transient notifications raised by the use cases.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/domain"
)

// Counter counts raised notifications.
type Counter interface {
	Notified(severity domain.Severity)
}

// Sink receives every notification as it is raised.
type Sink interface {
	Show(n domain.Notification)
}

// Center implements usecase.Notifier. Each notification expires on its own
// TTL; expired entries are dropped on the next read or write.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	items   []domain.Notification
	logger  zerolog.Logger
	counter Counter
	sinks   []Sink
}

// Option configures a Center.
type Option func(*Center)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Center) { c.logger = logger.With().Str("component", "notify").Logger() }
}

// WithCounter enables metrics.
func WithCounter(counter Counter) Option {
	return func(c *Center) { c.counter = counter }
}

// WithSink forwards notifications to s.
func WithSink(s Sink) Option {
	return func(c *Center) { c.sinks = append(c.sinks, s) }
}

// NewCenter creates a Center. A non-positive ttl uses domain.NotificationTTL.
func NewCenter(ttl time.Duration, opts ...Option) *Center {
	if ttl <= 0 {
		ttl = domain.NotificationTTL
	}

	c := &Center{
		ttl:    ttl,
		now:    time.Now,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Notify raises a notification.
func (c *Center) Notify(message string, severity domain.Severity) {
	now := c.now()
	n := domain.Notification{
		ID:        ulid.Make().String(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.items = append(c.prune(now), n)
	sinks := c.sinks
	c.mu.Unlock()

	c.logger.Debug().Str("id", n.ID).Str("severity", string(severity)).Msg(message)
	if c.counter != nil {
		c.counter.Notified(severity)
	}

	for _, s := range sinks {
		s.Show(n)
	}
}

// Active returns the unexpired notifications, oldest first.
func (c *Center) Active() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = c.prune(c.now())
	return append([]domain.Notification(nil), c.items...)
}

// Dismiss removes a notification before it expires.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Center) prune(now time.Time) []domain.Notification {
	kept := c.items[:0:0]
	for _, n := range c.items {
		if !n.Expired(now) {
			kept = append(kept, n)
		}
	}
	return kept
}

// Printer writes each notification as one line.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Show(n domain.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "%s %s\n", label(n.Severity), n.Message)
}

func label(s domain.Severity) string {
	switch s {
	case domain.SeveritySuccess:
		return "[ok]"
	case domain.SeverityWarning:
		return "[warn]"
	case domain.SeverityError:
		return "[error]"
	default:
		return "[info]"
	}
}
