// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	"github.com/gioext/widgets/alert"
	"github.com/gioext/widgets/styleconf"
	"github.com/gioext/widgets/toast"
	"github.com/gioext/widgets/toggle"
)

type gallery struct {
	w   *app.Window
	th  *material.Theme
	cfg *styleconf.Config
	log zerolog.Logger

	animated toggle.Switch
	snappy   toggle.Switch

	banner       alert.Banner
	bannerShown  bool
	stack        alert.Stack
	messages     []alert.Message
	pushAlertBtn widget.Clickable

	toasts       toast.Queue
	pushToastBtn widget.Clickable
	pushBgBtn    widget.Clickable

	list widget.List
}

func loop(w *app.Window, log zerolog.Logger, cfg *styleconf.Config) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	g := &gallery{
		w:           w,
		th:          th,
		cfg:         cfg,
		log:         log,
		bannerShown: true,
	}
	g.list.Axis = layout.Vertical

	var ops op.Ops
	for {
		switch e := w.NextEvent().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			g.update(gtx)
			g.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (g *gallery) update(gtx layout.Context) {
	if g.animated.Update(gtx) {
		g.log.Info().Bool("on", g.animated.Value).Msg("animated toggle changed")
	}
	if g.snappy.Update(gtx) {
		g.log.Info().Bool("on", g.snappy.Value).Msg("snappy toggle changed")
	}
	if g.banner.Dismissed(gtx) {
		// The banner never hides itself; visibility is ours.
		g.bannerShown = false
		g.log.Info().Msg("banner dismissed")
	}
	if g.pushAlertBtn.Clicked(gtx) {
		level := alert.Level(len(g.messages) % 4)
		g.messages = append(g.messages, alert.Message{
			Level: level,
			Text:  fmt.Sprintf("%s alert #%d", level, len(g.messages)+1),
		})
	}
	if g.pushToastBtn.Clicked(gtx) {
		g.toasts.Push(toast.Toast{
			Text:     "saved",
			Duration: g.cfg.Toast.DefaultDuration(),
		})
	}
	if g.pushBgBtn.Clicked(gtx) {
		// Exercise pushing from outside the frame loop.
		go func() {
			time.Sleep(750 * time.Millisecond)
			g.toasts.Push(toast.Toast{
				Text:     "background work done",
				Duration: g.cfg.Toast.DefaultDuration(),
			})
			g.w.Invalidate()
		}()
	}
}

func (g *gallery) layout(gtx layout.Context) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(16).Layout(gtx, g.layoutContent)
		}),
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			st := g.cfg.Alert.ApplyStack(alert.AlertStack(g.th, &g.stack))
			st.MaxWidth = 360
			st.MaxHeight = 220
			return st.Layout(gtx, &g.messages)
		}),
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			st := g.cfg.Toast.Apply(toast.Toasts(g.th, &g.toasts))
			st.MaxVisible = 3
			return layout.UniformInset(8).Layout(gtx, st.Layout)
		}),
	)
}

func (g *gallery) layoutContent(gtx layout.Context) layout.Dimensions {
	sections := []layout.Widget{
		material.H6(g.th, "Toggle switch").Layout,
		func(gtx layout.Context) layout.Dimensions {
			st := g.cfg.Toggle.Apply(toggle.Toggle(g.th, &g.animated))
			return g.row(gtx, st.Layout, "animated")
		},
		func(gtx layout.Context) layout.Dimensions {
			st := g.cfg.Toggle.Apply(toggle.Toggle(g.th, &g.snappy))
			st.Duration = 0
			return g.row(gtx, st.Layout, "no animation")
		},
		material.H6(g.th, "Alerts").Layout,
		func(gtx layout.Context) layout.Dimensions {
			if !g.bannerShown {
				return layout.Dimensions{}
			}
			banner := g.cfg.Alert.Apply(alert.Alert(g.th, &g.banner, alert.Warning,
				"This banner stays until you close it."))
			return banner.Layout(gtx)
		},
		func(gtx layout.Context) layout.Dimensions {
			banner := g.cfg.Alert.Apply(alert.Alert(g.th, nil, alert.Info,
				"This one cannot be dismissed."))
			return banner.Layout(gtx)
		},
		material.Button(g.th, &g.pushAlertBtn, "Push stacked alert").Layout,
		material.H6(g.th, "Toasts").Layout,
		material.Button(g.th, &g.pushToastBtn, "Push toast").Layout,
		material.Button(g.th, &g.pushBgBtn, "Push from goroutine").Layout,
	}
	return g.list.List.Layout(gtx, len(sections), func(gtx layout.Context, i int) layout.Dimensions {
		return layout.Inset{Bottom: 12}.Layout(gtx, sections[i])
	})
}

func (g *gallery) row(gtx layout.Context, w layout.Widget, label string) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(w),
		layout.Rigid(layout.Spacer{Width: 12}.Layout),
		layout.Rigid(material.Body1(g.th, label).Layout),
	)
}
