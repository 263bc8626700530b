package notify

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/pixdash/internal/domain"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type severityCounter map[domain.Severity]int

func (s severityCounter) Notified(severity domain.Severity) { s[severity]++ }

func TestCenterExpiresIndependently(t *testing.T) {
	clk := &clock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	center := NewCenter(5*time.Second, WithClock(clk.Now))

	center.Notify("first", domain.SeverityInfo)
	clk.Advance(3 * time.Second)
	center.Notify("second", domain.SeverityError)

	active := center.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Message)
	assert.NotEqual(t, active[0].ID, active[1].ID)

	clk.Advance(2 * time.Second)
	active = center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Message)

	clk.Advance(3 * time.Second)
	assert.Empty(t, center.Active())
}

func TestCenterDefaultTTL(t *testing.T) {
	clk := &clock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	center := NewCenter(0, WithClock(clk.Now))

	center.Notify("saved", domain.SeveritySuccess)
	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, clk.Now().Add(domain.NotificationTTL), active[0].ExpiresAt)
}

func TestCenterDismiss(t *testing.T) {
	center := NewCenter(time.Minute)

	center.Notify("one", domain.SeverityInfo)
	center.Notify("two", domain.SeverityInfo)
	id := center.Active()[0].ID

	assert.True(t, center.Dismiss(id))
	assert.False(t, center.Dismiss(id))

	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "two", active[0].Message)
}

func TestCenterSinksAndCounter(t *testing.T) {
	var buf bytes.Buffer
	counter := severityCounter{}
	center := NewCenter(time.Minute, WithSink(NewPrinter(&buf)), WithCounter(counter))

	center.Notify("Transfer cancelled successfully", domain.SeveritySuccess)
	center.Notify("Insufficient balance", domain.SeverityError)
	center.Notify("enter an amount", domain.SeverityWarning)

	assert.Equal(t, "[ok] Transfer cancelled successfully\n[error] Insufficient balance\n[warn] enter an amount\n", buf.String())
	assert.Equal(t, 1, counter[domain.SeverityError])
	assert.Equal(t, 1, counter[domain.SeveritySuccess])
}

func TestCenterActiveReturnsCopy(t *testing.T) {
	center := NewCenter(time.Minute)
	center.Notify("one", domain.SeverityInfo)

	active := center.Active()
	active[0].Message = "changed"

	assert.Equal(t, "one", center.Active()[0].Message)
}
