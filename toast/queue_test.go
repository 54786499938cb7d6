// SPDX-License-Identifier: Unlicense OR MIT

package toast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueUpdateStampsAndExpires(t *testing.T) {
	var q Queue
	q.Push(Toast{Text: "short", Duration: time.Second})
	q.Push(Toast{Text: "long", Duration: 5 * time.Second})

	t0 := time.Unix(100, 0)
	visible, next := q.update(t0, 10)
	require.Len(t, visible, 2)
	assert.Equal(t, t0.Add(time.Second), next, "wakeup must be the earliest expiry")

	// Halfway through nothing expires.
	visible, _ = q.update(t0.Add(500*time.Millisecond), 10)
	assert.Len(t, visible, 2)

	// Past the first window only the long toast survives.
	visible, next = q.update(t0.Add(1100*time.Millisecond), 10)
	require.Len(t, visible, 1)
	assert.Equal(t, "long", visible[0].Text)
	assert.Equal(t, t0.Add(5*time.Second), next)

	visible, next = q.update(t0.Add(6*time.Second), 10)
	assert.Empty(t, visible)
	assert.True(t, next.IsZero(), "no wakeup for an empty queue")
}

func TestQueueTrimsOldest(t *testing.T) {
	var q Queue
	q.Push(Toast{Text: "one"})
	q.Push(Toast{Text: "two"})
	q.Push(Toast{Text: "three"})

	visible, _ := q.update(time.Unix(100, 0), 2)
	require.Len(t, visible, 2)
	assert.Equal(t, "two", visible[0].Text)
	assert.Equal(t, "three", visible[1].Text)
	assert.Equal(t, 2, q.Len())
}

func TestQueueWindowStartsWhenShown(t *testing.T) {
	var q Queue
	q.Push(Toast{Text: "queued", Duration: time.Second})

	// Pushed long ago, shown only now: the window starts now.
	t0 := time.Unix(100, 0)
	visible, _ := q.update(t0, 1)
	require.Len(t, visible, 1)
	visible, _ = q.update(t0.Add(900*time.Millisecond), 1)
	assert.Len(t, visible, 1)
	visible, _ = q.update(t0.Add(1100*time.Millisecond), 1)
	assert.Empty(t, visible)
}

func TestQueueConcurrentPush(t *testing.T) {
	var (
		q  Queue
		wg sync.WaitGroup
	)
	const n = 64
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Push(Toast{Text: "bg"})
		}()
	}
	wg.Wait()
	assert.Equal(t, n, q.Len())
}

func TestExpiredZeroStart(t *testing.T) {
	var tst Toast
	assert.False(t, tst.Expired(time.Unix(100, 0)), "unshown toast must not expire")
	assert.Equal(t, DefaultDuration, tst.duration())
}
