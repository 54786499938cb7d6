// SPDX-License-Identifier: Unlicense OR MIT

package toast_test

import (
	"image"
	"testing"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/io/input"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/stretchr/testify/assert"

	"github.com/gioext/widgets/toast"
)

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	return th
}

func newContext(now time.Time) layout.Context {
	var r input.Router
	return layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Constraints{Max: image.Pt(400, 400)},
		Now:         now,
		Source:      r.Source(),
	}
}

func TestLayoutExpiresToasts(t *testing.T) {
	var q toast.Queue
	st := toast.Toasts(newTheme(), &q)
	q.Push(toast.Toast{Text: "saved", Duration: time.Second})

	t0 := time.Unix(100, 0)

	gtx := newContext(t0)
	dims := st.Layout(gtx)
	assert.NotZero(t, dims.Size.Y, "visible toast laid out empty")
	assert.Equal(t, 1, q.Len())

	gtx = newContext(t0.Add(500 * time.Millisecond))
	st.Layout(gtx)
	assert.Equal(t, 1, q.Len(), "expired early")

	gtx = newContext(t0.Add(1100 * time.Millisecond))
	dims = st.Layout(gtx)
	assert.Zero(t, q.Len(), "toast outlived its duration")
	assert.Equal(t, image.Point{}, dims.Size)
}

func TestLayoutMaxVisible(t *testing.T) {
	var q toast.Queue
	st := toast.Toasts(newTheme(), &q)
	st.MaxVisible = 2
	for _, txt := range []string{"one", "two", "three", "four"} {
		q.Push(toast.Toast{Text: txt})
	}

	gtx := newContext(time.Unix(100, 0))
	st.Layout(gtx)
	assert.Equal(t, 2, q.Len(), "queue not trimmed to the visible cap")
}

func TestLayoutEmptyQueue(t *testing.T) {
	var q toast.Queue
	st := toast.Toasts(newTheme(), &q)
	gtx := newContext(time.Unix(100, 0))
	dims := st.Layout(gtx)
	assert.Equal(t, image.Point{}, dims.Size)
}

func TestLayoutZeroConstraints(t *testing.T) {
	var q toast.Queue
	q.Push(toast.Toast{Text: "tiny"})
	st := toast.Toasts(newTheme(), &q)
	gtx := newContext(time.Unix(100, 0))
	gtx.Constraints = layout.Constraints{}
	assert.NotPanics(t, func() { st.Layout(gtx) })
}
