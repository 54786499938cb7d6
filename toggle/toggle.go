// SPDX-License-Identifier: Unlicense OR MIT

// Package toggle implements a two-state switch control for Gio.
//
// A Switch holds the caller-owned on/off value together with the
// transient gesture and animation state, mirroring how widget.Bool
// works in the host toolkit. The visual appearance is supplied per
// frame by a SwitchStyle.
package toggle

import (
	"image"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

// Switch is the persistent state of a toggle switch. The zero value
// is an unset switch in the off position.
type Switch struct {
	// Value is the on/off state. It is read and flipped by the
	// switch but owned by the caller.
	Value bool

	click gesture.Click

	snapped  bool
	progress float32
	lastTick time.Time
}

// Update processes pointer events since the previous frame and
// reports whether Value was flipped by a click completed inside the
// switch. A press that is released outside the switch leaves Value
// untouched. Interaction state is re-derived from the event source
// each frame; nothing is carried over.
func (s *Switch) Update(gtx layout.Context) bool {
	changed := false
	for {
		e, ok := s.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind == gesture.KindClick {
			s.Value = !s.Value
			changed = true
		}
	}
	return changed
}

// Hovered reports whether a pointer is over the switch.
func (s *Switch) Hovered() bool {
	return s.click.Hovered()
}

// Pressed reports whether a press on the switch is in progress.
func (s *Switch) Pressed() bool {
	return s.click.Pressed()
}

// Animating reports whether the thumb has not yet reached the
// position matching Value. It is purely cosmetic; Value is always
// current.
func (s *Switch) Animating() bool {
	return s.snapped && s.progress != s.target()
}

// Layout registers the hit region covering the minimum constraint.
// Styles call it after painting; it draws nothing itself.
func (s *Switch) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Min
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	pointer.CursorPointer.Add(gtx.Ops)
	semantic.Switch.Add(gtx.Ops)
	semantic.SelectedOp(s.Value).Add(gtx.Ops)
	semantic.EnabledOp(gtx.Enabled()).Add(gtx.Ops)
	s.click.Add(gtx.Ops)
	return layout.Dimensions{Size: size}
}

func (s *Switch) target() float32 {
	if s.Value {
		return 1
	}
	return 0
}

// step advances the thumb animation towards Value by the time elapsed
// since the previous frame and returns the new progress. The first
// frame, and any frame with a non-positive duration, snaps.
func (s *Switch) step(now time.Time, d time.Duration) float32 {
	target := s.target()
	if !s.snapped || d <= 0 {
		s.snapped = true
		s.progress = target
		s.lastTick = now
		return s.progress
	}
	dt := now.Sub(s.lastTick)
	s.lastTick = now
	if dt < 0 {
		dt = 0
	}
	step := float32(dt.Seconds() / d.Seconds())
	switch {
	case s.progress < target:
		s.progress += step
		if s.progress > target {
			s.progress = target
		}
	case s.progress > target:
		s.progress -= step
		if s.progress < target {
			s.progress = target
		}
	}
	return s.progress
}
