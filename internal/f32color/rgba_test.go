// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	from := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	to := color.NRGBA{R: 0xf0, G: 0xe0, B: 0xd0, A: 0x80}
	if got := Lerp(from, to, 0); got != from {
		t.Errorf("Lerp(..., 0) = %v, want %v", got, from)
	}
	if got := Lerp(from, to, 1); got != to {
		t.Errorf("Lerp(..., 1) = %v, want %v", got, to)
	}
	if got := Lerp(from, to, -2); got != from {
		t.Errorf("Lerp below range = %v, want %v", got, from)
	}
	if got := Lerp(from, to, 2); got != to {
		t.Errorf("Lerp above range = %v, want %v", got, to)
	}
}

func TestLerpMidpoint(t *testing.T) {
	from := color.NRGBA{A: 0xff}
	to := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	mid := Lerp(from, to, 0.5)
	for _, ch := range []uint8{mid.R, mid.G, mid.B} {
		if ch < 0x7e || ch > 0x81 {
			t.Fatalf("midpoint channel = %#x, want about 0x7f", ch)
		}
	}
}

func TestMulAlpha(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}
	got := MulAlpha(c, 0x80)
	if got.A != 0x80 {
		t.Errorf("alpha = %#x, want 0x80", got.A)
	}
	if got.R != c.R || got.G != c.G || got.B != c.B {
		t.Error("MulAlpha changed color channels")
	}
	if got := MulAlpha(c, 0); got.A != 0 {
		t.Errorf("alpha = %#x, want 0", got.A)
	}
}

func TestDisabledFades(t *testing.T) {
	c := color.NRGBA{R: 0xff, A: 0xff}
	got := Disabled(c)
	if got.A >= c.A {
		t.Error("Disabled did not fade alpha")
	}
	if got.R == c.R && got.G == c.G && got.B == c.B {
		t.Error("Disabled did not desaturate")
	}
}

func TestHoveredTransparent(t *testing.T) {
	got := Hovered(color.NRGBA{})
	if got.A == 0 {
		t.Error("Hovered over transparent should be visible")
	}
}
