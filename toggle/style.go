// SPDX-License-Identifier: Unlicense OR MIT

package toggle

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/gioext/widgets/internal/f32color"
)

// SwitchStyle draws a Switch. It is recreated every frame; only the
// Switch it points to persists.
type SwitchStyle struct {
	Switch *Switch

	// TrackColor and ThumbColor hold the colors for the two logical
	// states. The drawn color is interpolated while the thumb is in
	// transit.
	TrackColor struct {
		On, Off color.NRGBA
	}
	ThumbColor struct {
		On, Off color.NRGBA
	}

	TrackWidth  unit.Dp
	TrackHeight unit.Dp
	ThumbSize   unit.Dp

	// Duration is the length of the thumb transition. Zero disables
	// the animation and the thumb snaps.
	Duration time.Duration
}

// Toggle constructs a SwitchStyle with colors from the theme palette.
func Toggle(th *material.Theme, sw *Switch) SwitchStyle {
	s := SwitchStyle{
		Switch:      sw,
		TrackWidth:  36,
		TrackHeight: 16,
		ThumbSize:   20,
		Duration:    150 * time.Millisecond,
	}
	s.TrackColor.On = f32color.MulAlpha(th.Palette.ContrastBg, 0x99)
	s.TrackColor.Off = f32color.MulAlpha(th.Palette.Fg, 0x66)
	s.ThumbColor.On = th.Palette.ContrastBg
	s.ThumbColor.Off = th.Palette.Bg
	return s
}

// Layout updates the switch and draws it. Degenerate constraints
// degrade to an empty draw.
//
// Layout drains pending clicks itself; a caller interested in change
// notification calls Switch.Update before Layout in the same frame.
func (s SwitchStyle) Layout(gtx layout.Context) layout.Dimensions {
	s.Switch.Update(gtx)

	trackWidth := gtx.Dp(s.TrackWidth)
	trackHeight := gtx.Dp(s.TrackHeight)
	thumbSize := gtx.Dp(s.ThumbSize)
	if thumbSize < trackHeight {
		thumbSize = trackHeight
	}
	size := gtx.Constraints.Constrain(image.Pt(trackWidth, thumbSize))
	if size.X == 0 || size.Y == 0 {
		return layout.Dimensions{Size: size}
	}
	if trackWidth > size.X {
		trackWidth = size.X
	}
	if thumbSize > size.Y {
		thumbSize = size.Y
	}
	if trackHeight > thumbSize {
		trackHeight = thumbSize
	}

	progress := s.Switch.step(gtx.Now, s.Duration)
	if s.Switch.Animating() {
		gtx.Execute(op.InvalidateCmd{})
	}

	trackColor := f32color.Lerp(s.TrackColor.Off, s.TrackColor.On, progress)
	thumbColor := f32color.Lerp(s.ThumbColor.Off, s.ThumbColor.On, progress)
	if !gtx.Enabled() {
		trackColor = f32color.Disabled(trackColor)
		thumbColor = f32color.Disabled(thumbColor)
	}

	// Track.
	trackOff := (thumbSize - trackHeight) / 2
	trackRect := image.Rect(0, trackOff, trackWidth, trackOff+trackHeight)
	paint.FillShape(gtx.Ops, trackColor,
		clip.UniformRRect(trackRect, trackHeight/2).Op(gtx.Ops))

	// Thumb, interpolated across the track.
	travel := trackWidth - thumbSize
	x := int(float32(travel)*progress + 0.5)
	thumbRect := image.Rect(x, 0, x+thumbSize, thumbSize)
	if s.Switch.Hovered() || s.Switch.Pressed() {
		halo := thumbRect.Inset(-gtx.Dp(4))
		paint.FillShape(gtx.Ops, f32color.MulAlpha(thumbColor, 0x30),
			clip.Ellipse(halo).Op(gtx.Ops))
	}
	paint.FillShape(gtx.Ops, f32color.Hovered(thumbColor),
		clip.Ellipse(thumbRect.Inset(-1)).Op(gtx.Ops))
	paint.FillShape(gtx.Ops, thumbColor, clip.Ellipse(thumbRect).Op(gtx.Ops))

	// Hit region.
	gtx.Constraints.Min = size
	s.Switch.Layout(gtx)

	return layout.Dimensions{Size: size}
}
