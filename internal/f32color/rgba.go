// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color carries the color mixing helpers the styles share.
// The host toolkit keeps equivalent helpers internal, so the pack has
// its own copy.
package f32color

import "image/color"

// MulAlpha scales the alpha channel of c by alpha.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xff)
	return c
}

// Disabled blends c towards its luminance and fades it, the treatment
// widgets apply when the frame is laid out without an event source.
func Disabled(c color.NRGBA) color.NRGBA {
	const ratio = 80
	lum := luminance(c)
	return color.NRGBA{
		R: uint8((int(c.R)*ratio + int(lum)*(256-ratio)) / 256),
		G: uint8((int(c.G)*ratio + int(lum)*(256-ratio)) / 256),
		B: uint8((int(c.B)*ratio + int(lum)*(256-ratio)) / 256),
		A: uint8(int(c.A) * 160 / 256),
	}
}

// Hovered nudges c towards white or black, whichever contrasts more.
func Hovered(c color.NRGBA) color.NRGBA {
	if c.A == 0 {
		// A reasonable hover layer for transparent widgets.
		return color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0x44}
	}
	m := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: c.A}
	if luminance(c) > 128 {
		m = color.NRGBA{A: c.A}
	}
	return mix(m, c, 0x20)
}

// Lerp interpolates between from and to. t is clamped to [0, 1].
func Lerp(from, to color.NRGBA, t float32) color.NRGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	lerp8 := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return color.NRGBA{
		R: lerp8(from.R, to.R),
		G: lerp8(from.G, to.G),
		B: lerp8(from.B, to.B),
		A: lerp8(from.A, to.A),
	}
}

// mix blends p towards q; 0xff is pure p, 0x00 pure q.
func mix(p, q color.NRGBA, ratio uint8) color.NRGBA {
	r := int(ratio)
	return color.NRGBA{
		R: uint8((int(p.R)*r + int(q.R)*(255-r)) / 255),
		G: uint8((int(p.G)*r + int(q.G)*(255-r)) / 255),
		B: uint8((int(p.B)*r + int(q.B)*(255-r)) / 255),
		A: uint8((int(p.A)*r + int(q.A)*(255-r)) / 255),
	}
}

func luminance(c color.NRGBA) uint8 {
	return uint8((int(c.R)*77 + int(c.G)*150 + int(c.B)*29) / 256)
}
