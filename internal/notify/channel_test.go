package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_Show(t *testing.T) {
	ch := NewChannel()
	ch.Show("saved", SeveritySuccess)

	n := ch.Current()
	require.NotNil(t, n)
	assert.Equal(t, "saved", n.Text)
	assert.Equal(t, SeveritySuccess, n.Severity)
	assert.WithinDuration(t, time.Now(), n.CreatedAt, time.Second)
}

func TestChannel_Expiry(t *testing.T) {
	ch := NewChannelTTL(50 * time.Millisecond)
	ch.Show("ephemeral", SeverityInfo)
	require.NotNil(t, ch.Current())

	assert.Eventually(t, func() bool {
		return ch.Current() == nil
	}, time.Second, 10*time.Millisecond, "notification should expire after its window")
}

func TestChannel_Supersession(t *testing.T) {
	// A's timer fires after B replaced it; B must survive A's expiry and
	// clear on its own schedule.
	ch := NewChannelTTL(100 * time.Millisecond)
	ch.Show("A", SeverityInfo)

	time.Sleep(60 * time.Millisecond)
	ch.Show("B", SeverityError)

	// Past A's original window now; B is still inside its own.
	time.Sleep(80 * time.Millisecond)
	n := ch.Current()
	require.NotNil(t, n, "A's stale timer must not clear B")
	assert.Equal(t, "B", n.Text)

	assert.Eventually(t, func() bool {
		return ch.Current() == nil
	}, time.Second, 10*time.Millisecond, "B should expire on its own schedule")
}

func TestChannel_Replacement(t *testing.T) {
	ch := NewChannel()
	ch.Show("first", SeverityInfo)
	ch.Show("second", SeverityWarning)

	n := ch.Current()
	require.NotNil(t, n)
	assert.Equal(t, "second", n.Text, "a new notification replaces the previous one")
}

func TestChannel_Subscribe(t *testing.T) {
	ch := NewChannelTTL(30 * time.Millisecond)

	var mu sync.Mutex
	var events []string
	ch.Subscribe(func(n *Notification) {
		mu.Lock()
		defer mu.Unlock()
		if n == nil {
			events = append(events, "<clear>")
			return
		}
		events = append(events, n.Text)
	})

	ch.Show("hello", SeverityInfo)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 2 && events[0] == "hello" && events[1] == "<clear>"
	}, time.Second, 5*time.Millisecond)
}
