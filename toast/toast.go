// SPDX-License-Identifier: Unlicense OR MIT

// Package toast implements transient notifications for Gio.
//
// Toasts are pushed onto a Queue, possibly from other goroutines,
// and drawn by a QueueStyle until their duration elapses. Expiry is
// driven by the frame clock: the style schedules a redraw for the
// next expiry so toasts disappear without user input.
package toast

import (
	"image/color"
	"sync"
	"time"
)

// DefaultDuration is the visibility window of a Toast with zero
// Duration.
const DefaultDuration = 3 * time.Second

// Toast is one transient notification.
type Toast struct {
	Text string

	// Color overrides the style's background for this toast. The
	// zero value keeps the default.
	Color color.NRGBA

	// Duration is the visibility window, measured from the first
	// frame the toast is shown. Zero means DefaultDuration.
	Duration time.Duration

	start time.Time
}

func (t Toast) duration() time.Duration {
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}

// Expired reports whether the toast's window has elapsed. A toast
// that has never been shown is not expired.
func (t Toast) Expired(now time.Time) bool {
	return !t.start.IsZero() && now.Sub(t.start) >= t.duration()
}

// expiry returns the instant the toast will expire, or the zero time
// if it has not been shown yet.
func (t Toast) expiry() time.Time {
	if t.start.IsZero() {
		return time.Time{}
	}
	return t.start.Add(t.duration())
}

// Queue is a FIFO of pending toasts. It is safe for concurrent use:
// background work may Push while the window loop lays the queue out.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
}

// Push appends a toast. Its visibility window starts on the first
// frame it is drawn, not at push time.
func (q *Queue) Push(t Toast) {
	q.mu.Lock()
	defer q.mu.Unlock()
	t.start = time.Time{}
	q.toasts = append(q.toasts, t)
}

// Len reports the number of queued toasts, shown or not.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

// update stamps unshown toasts, drops expired ones and trims the
// queue from the front so at most max remain. It returns the visible
// toasts, newest last, and the earliest upcoming expiry.
func (q *Queue) update(now time.Time, max int) ([]Toast, time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if t.Expired(now) {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) > max {
		kept = append(q.toasts[:0], kept[len(kept)-max:]...)
	}
	var next time.Time
	for i := range kept {
		if kept[i].start.IsZero() {
			kept[i].start = now
		}
		if e := kept[i].expiry(); next.IsZero() || e.Before(next) {
			next = e
		}
	}
	q.toasts = kept

	visible := make([]Toast, len(kept))
	copy(visible, kept)
	return visible, next
}
