// SPDX-License-Identifier: Unlicense OR MIT

package toast

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/gioext/widgets/internal/f32color"
)

// QueueStyle draws the visible part of a Queue anchored within the
// current constraints.
type QueueStyle struct {
	Queue *Queue

	// MaxVisible caps how many toasts are shown at once; older ones
	// are dropped beyond it. Zero means one.
	MaxVisible int

	// Anchor places the pile. Bottom anchors keep the newest toast
	// nearest the edge.
	Anchor layout.Direction

	// Width is the width of every toast card.
	Width unit.Dp

	Fill        color.NRGBA
	BorderColor color.NRGBA
	TextColor   color.NRGBA
	TextSize    unit.Sp

	Inset        layout.Inset
	CornerRadius unit.Dp

	shaper *text.Shaper
}

// Toasts constructs a QueueStyle with the defaults of the pack:
// bottom-right anchor, one visible toast, 200dp wide cards.
func Toasts(th *material.Theme, q *Queue) QueueStyle {
	return QueueStyle{
		Queue:        q,
		MaxVisible:   1,
		Anchor:       layout.SE,
		Width:        200,
		Fill:         color.NRGBA{R: 0xc8, G: 0xc8, B: 0xff, A: 0xff},
		BorderColor:  color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff},
		TextColor:    color.NRGBA{A: 0xff},
		TextSize:     th.TextSize * 14.0 / 16.0,
		Inset:        layout.UniformInset(8),
		CornerRadius: 4,
		shaper:       th.Shaper,
	}
}

// Layout drops expired toasts, draws the survivors and schedules a
// redraw for the next expiry. An empty queue draws nothing.
func (s QueueStyle) Layout(gtx layout.Context) layout.Dimensions {
	max := s.MaxVisible
	if max <= 0 {
		max = 1
	}
	visible, next := s.Queue.update(gtx.Now, max)
	if !next.IsZero() {
		gtx.Execute(op.InvalidateCmd{At: next})
	}
	if len(visible) == 0 {
		return layout.Dimensions{}
	}

	width := gtx.Dp(s.Width)
	if width > gtx.Constraints.Max.X {
		width = gtx.Constraints.Max.X
	}
	if width < 1 {
		width = 1
	}
	bottom := s.Anchor == layout.S || s.Anchor == layout.SW || s.Anchor == layout.SE

	return s.Anchor.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Max.X = width
		children := make([]layout.FlexChild, 0, len(visible))
		for i := range visible {
			idx := i
			if !bottom {
				// Top anchors show the newest toast first.
				idx = len(visible) - 1 - i
			}
			t := visible[idx]
			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Bottom: 2}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return s.layoutCard(gtx, t)
				})
			}))
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func (s QueueStyle) layoutCard(gtx layout.Context, t Toast) layout.Dimensions {
	fill := s.Fill
	if t.Color != (color.NRGBA{}) {
		fill = t.Color
	}
	if !gtx.Enabled() {
		fill = f32color.Disabled(fill)
	}
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	border := widget.Border{
		Color:        s.BorderColor,
		CornerRadius: s.CornerRadius,
		Width:        unit.Dp(1),
	}
	return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		macro := op.Record(gtx.Ops)
		dims := s.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			textMacro := op.Record(gtx.Ops)
			paint.ColorOp{Color: s.TextColor}.Add(gtx.Ops)
			textMaterial := textMacro.Stop()
			lbl := widget.Label{}
			return lbl.Layout(gtx, s.shaper, font.Font{}, s.TextSize, t.Text, textMaterial)
		})
		call := macro.Stop()
		// The card spans the full width regardless of text length.
		dims.Size.X = gtx.Constraints.Max.X
		defer clip.UniformRRect(image.Rectangle{Max: dims.Size}, gtx.Dp(s.CornerRadius)).Push(gtx.Ops).Pop()
		paint.Fill(gtx.Ops, fill)
		call.Add(gtx.Ops)
		return dims
	})
}
