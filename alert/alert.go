// SPDX-License-Identifier: Unlicense OR MIT

// Package alert implements severity-styled banner widgets for Gio.
//
// A banner is a pure function of its inputs: it draws a message with
// a severity color and, when closable, a close affordance. Dismissal
// is only reported; the caller owns visibility and stops rendering
// the banner itself.
package alert

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"

	"github.com/gioext/widgets/internal/f32color"
)

// Level is the severity of an alert. It selects the banner's
// background color and icon.
type Level uint8

const (
	Success Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Color returns the default background for the level.
func (l Level) Color() color.NRGBA {
	switch l {
	case Success:
		return nrgba(colornames.Lightgreen)
	case Warning:
		return nrgba(colornames.Lightyellow)
	case Error:
		return nrgba(colornames.Lightcoral)
	default:
		return nrgba(colornames.Lightblue)
	}
}

// Icon returns the severity icon for the level.
func (l Level) Icon() *widget.Icon {
	switch l {
	case Success:
		return successIcon
	case Warning:
		return warningIcon
	case Error:
		return errorIcon
	default:
		return infoIcon
	}
}

// Banner is the persistent state of one closable banner: the close
// affordance's click state, nothing else. The zero value is ready to
// use.
type Banner struct {
	close widget.Clickable
}

// Dismissed reports whether the close affordance was clicked since
// the last call. Each click is reported exactly once. Dismissed never
// mutates caller data; a nil Banner never reports.
func (b *Banner) Dismissed(gtx layout.Context) bool {
	if b == nil {
		return false
	}
	return b.close.Clicked(gtx)
}

// BannerStyle draws one alert banner.
type BannerStyle struct {
	// Banner holds the close state. It may be nil for a banner that
	// cannot be dismissed.
	Banner *Banner

	Level   Level
	Message string

	// Closable selects whether the close affordance is drawn. A nil
	// Banner forces it off.
	Closable bool

	Fill        color.NRGBA
	BorderColor color.NRGBA
	TextColor   color.NRGBA
	TextSize    unit.Sp

	Inset        layout.Inset
	CornerRadius unit.Dp
	IconSize     unit.Dp

	shaper *text.Shaper
}

// Alert constructs a BannerStyle for the level and message. The
// banner is closable exactly when state is non-nil.
func Alert(th *material.Theme, state *Banner, level Level, message string) BannerStyle {
	return BannerStyle{
		Banner:       state,
		Level:        level,
		Message:      message,
		Closable:     state != nil,
		Fill:         level.Color(),
		BorderColor:  color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff},
		TextColor:    color.NRGBA{A: 0xff},
		TextSize:     th.TextSize * 14.0 / 16.0,
		Inset:        layout.UniformInset(10),
		CornerRadius: 4,
		IconSize:     20,
		shaper:       th.Shaper,
	}
}

// Layout draws the banner. Two invocations with identical inputs and
// no intervening interaction produce identical output.
func (a BannerStyle) Layout(gtx layout.Context) layout.Dimensions {
	fill := a.Fill
	if !gtx.Enabled() {
		fill = f32color.Disabled(fill)
	}
	border := widget.Border{
		Color:        a.BorderColor,
		CornerRadius: a.CornerRadius,
		Width:        unit.Dp(1),
	}
	return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		semantic.LabelOp(a.Level.String() + ": " + a.Message).Add(gtx.Ops)
		macro := op.Record(gtx.Ops)
		dims := a.Inset.Layout(gtx, a.layoutContent)
		call := macro.Stop()
		defer clip.UniformRRect(image.Rectangle{Max: dims.Size}, gtx.Dp(a.CornerRadius)).Push(gtx.Ops).Pop()
		paint.Fill(gtx.Ops, fill)
		call.Add(gtx.Ops)
		return dims
	})
}

func (a BannerStyle) layoutContent(gtx layout.Context) layout.Dimensions {
	textMacro := op.Record(gtx.Ops)
	paint.ColorOp{Color: a.TextColor}.Add(gtx.Ops)
	textMaterial := textMacro.Stop()

	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			sz := gtx.Dp(a.IconSize)
			gtx.Constraints.Min = gtx.Constraints.Constrain(image.Pt(sz, sz))
			return a.Level.Icon().Layout(gtx, a.TextColor)
		}),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			lbl := widget.Label{}
			return lbl.Layout(gtx, a.shaper, font.Font{}, a.TextSize, a.Message, textMaterial)
		}),
	}
	if a.Closable && a.Banner != nil {
		children = append(children,
			layout.Rigid(layout.Spacer{Width: 8}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Clickable(gtx, &a.Banner.close, func(gtx layout.Context) layout.Dimensions {
					sz := gtx.Dp(a.IconSize - 2)
					gtx.Constraints.Min = gtx.Constraints.Constrain(image.Pt(sz, sz))
					return closeIcon.Layout(gtx, a.TextColor)
				})
			}),
		)
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}

var (
	closeIcon   = mustIcon(widget.NewIcon(icons.NavigationClose))
	successIcon = mustIcon(widget.NewIcon(icons.ActionCheckCircle))
	infoIcon    = mustIcon(widget.NewIcon(icons.ActionInfo))
	warningIcon = mustIcon(widget.NewIcon(icons.AlertWarning))
	errorIcon   = mustIcon(widget.NewIcon(icons.AlertError))
)

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

func nrgba(c color.RGBA) color.NRGBA {
	// colornames entries are opaque, so the channels carry over.
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
