// SPDX-License-Identifier: Unlicense OR MIT

package alert

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// Message is one entry in a Stack: a severity and a text.
type Message struct {
	Level Level
	Text  string
}

// Stack holds the cross-frame state of a managed banner pile: one
// close state per message and the scroll position. The zero value is
// ready to use.
//
// The messages themselves stay in the caller's slice. Between two
// layouts the caller may append to it; removing or reordering entries
// is the stack's job and happens when a banner reports dismissal.
type Stack struct {
	list    widget.List
	banners []*Banner
}

// StackStyle draws a Stack anchored within the current constraints.
type StackStyle struct {
	Stack *Stack
	Theme *material.Theme

	// Anchor places the pile within the available space. Only the
	// top and bottom directions make sense; the newest message sits
	// nearest the anchored edge, like the toast convention.
	Anchor layout.Direction

	// MaxWidth and MaxHeight cap the pile. Zero means the available
	// space. Overflow past MaxHeight scrolls.
	MaxWidth  unit.Dp
	MaxHeight unit.Dp

	// Closable draws a close affordance on every banner and removes
	// dismissed messages from the caller's slice.
	Closable bool

	Inset        layout.Inset
	CornerRadius unit.Dp
}

// AlertStack constructs a StackStyle with the defaults of the pack:
// top-centered, closable, slightly rounded.
func AlertStack(th *material.Theme, state *Stack) StackStyle {
	return StackStyle{
		Stack:        state,
		Theme:        th,
		Anchor:       layout.N,
		Closable:     true,
		Inset:        layout.Inset{Bottom: 1},
		CornerRadius: 4,
	}
}

// Layout removes messages dismissed since the last frame and draws
// the remainder. An empty slice draws nothing.
func (s StackStyle) Layout(gtx layout.Context, msgs *[]Message) layout.Dimensions {
	s.Stack.list.Axis = layout.Vertical

	for len(s.Stack.banners) < len(*msgs) {
		s.Stack.banners = append(s.Stack.banners, new(Banner))
	}
	if s.Closable {
		kept := (*msgs)[:0]
		keptBanners := s.Stack.banners[:0]
		for i := range *msgs {
			if s.Stack.banners[i].Dismissed(gtx) {
				continue
			}
			kept = append(kept, (*msgs)[i])
			keptBanners = append(keptBanners, s.Stack.banners[i])
		}
		*msgs = kept
		s.Stack.banners = keptBanners
	}
	n := len(*msgs)
	if n == 0 {
		return layout.Dimensions{}
	}

	if mw := gtx.Dp(s.MaxWidth); mw > 0 && mw < gtx.Constraints.Max.X {
		gtx.Constraints.Max.X = mw
	}
	if mh := gtx.Dp(s.MaxHeight); mh > 0 && mh < gtx.Constraints.Max.Y {
		gtx.Constraints.Max.Y = mh
	}
	bottom := s.Anchor == layout.S || s.Anchor == layout.SW || s.Anchor == layout.SE

	element := func(gtx layout.Context, i int) layout.Dimensions {
		idx := i
		if !bottom {
			// Top anchors list the newest message first; bottom
			// anchors reach it by drawing in caller order.
			idx = n - 1 - i
		}
		m := (*msgs)[idx]
		var state *Banner
		if s.Closable {
			state = s.Stack.banners[idx]
		}
		banner := Alert(s.Theme, state, m.Level, m.Text)
		banner.CornerRadius = s.CornerRadius
		return s.Inset.Layout(gtx, banner.Layout)
	}
	return s.Anchor.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if s.MaxHeight > 0 {
			// Height-capped piles overflow into a scrollbar.
			return material.List(s.Theme, &s.Stack.list).Layout(gtx, n, element)
		}
		return s.Stack.list.List.Layout(gtx, n, element)
	})
}
