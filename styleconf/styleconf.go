// SPDX-License-Identifier: Unlicense OR MIT

// Package styleconf loads optional YAML style configuration for the
// widget pack. Colors are written as #rgb, #rrggbb, #rrggbbaa or any
// SVG 1.1 color name; durations use the Go duration syntax. A Config
// only overrides what it names, everything else keeps the style
// defaults.
package styleconf

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"gioui.org/unit"
	"github.com/go-playground/validator/v10"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gioext/widgets/alert"
	"github.com/gioext/widgets/toast"
	"github.com/gioext/widgets/toggle"
)

// Config is the root of a style file.
type Config struct {
	Toggle ToggleConfig `yaml:"toggle"`
	Alert  AlertConfig  `yaml:"alert"`
	Toast  ToastConfig  `yaml:"toast"`
}

// ToggleConfig overrides the toggle switch appearance.
type ToggleConfig struct {
	TrackOn  string `yaml:"track_on" validate:"omitempty,uicolor"`
	TrackOff string `yaml:"track_off" validate:"omitempty,uicolor"`
	ThumbOn  string `yaml:"thumb_on" validate:"omitempty,uicolor"`
	ThumbOff string `yaml:"thumb_off" validate:"omitempty,uicolor"`
	Duration string `yaml:"duration" validate:"omitempty,durationstr"`
}

// AlertConfig overrides the alert banner appearance.
type AlertConfig struct {
	TextColor    string `yaml:"text_color" validate:"omitempty,uicolor"`
	CornerRadius *int   `yaml:"corner_radius" validate:"omitempty,min=0,max=32"`
}

// ToastConfig overrides the toast appearance and queue behavior.
type ToastConfig struct {
	Background string `yaml:"background" validate:"omitempty,uicolor"`
	Duration   string `yaml:"duration" validate:"omitempty,durationstr"`
	MaxVisible *int   `yaml:"max_visible" validate:"omitempty,min=1,max=16"`
	Width      *int   `yaml:"width" validate:"omitempty,min=1,max=2000"`
}

// Load reads and validates a style file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates style configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse style config: %w", err)
	}
	if err := validatorInstance().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate style config: %w", err)
	}
	return &cfg, nil
}

// Apply overlays the configured toggle overrides onto st.
func (c ToggleConfig) Apply(st toggle.SwitchStyle) toggle.SwitchStyle {
	applyColor(&st.TrackColor.On, c.TrackOn)
	applyColor(&st.TrackColor.Off, c.TrackOff)
	applyColor(&st.ThumbColor.On, c.ThumbOn)
	applyColor(&st.ThumbColor.Off, c.ThumbOff)
	if d, err := parseDuration(c.Duration); err == nil {
		st.Duration = d
	}
	return st
}

// Apply overlays the configured alert overrides onto st.
func (c AlertConfig) Apply(st alert.BannerStyle) alert.BannerStyle {
	applyColor(&st.TextColor, c.TextColor)
	if c.CornerRadius != nil {
		st.CornerRadius = unitDp(*c.CornerRadius)
	}
	return st
}

// ApplyStack overlays the configured alert overrides onto st.
func (c AlertConfig) ApplyStack(st alert.StackStyle) alert.StackStyle {
	if c.CornerRadius != nil {
		st.CornerRadius = unitDp(*c.CornerRadius)
	}
	return st
}

// Apply overlays the configured toast overrides onto st.
func (c ToastConfig) Apply(st toast.QueueStyle) toast.QueueStyle {
	applyColor(&st.Fill, c.Background)
	if c.MaxVisible != nil {
		st.MaxVisible = *c.MaxVisible
	}
	if c.Width != nil {
		st.Width = unitDp(*c.Width)
	}
	return st
}

// DefaultDuration returns the configured toast duration, or zero when
// unset so toast.DefaultDuration applies.
func (c ToastConfig) DefaultDuration() time.Duration {
	d, err := parseDuration(c.Duration)
	if err != nil {
		return 0
	}
	return d
}

// ParseColor resolves a color written as #rgb, #rrggbb, #rrggbbaa or
// an SVG 1.1 color name.
func ParseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(s string) (color.NRGBA, error) {
	var chans [4]uint8
	chans[3] = 0xff
	switch len(s) {
	case 3:
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("bad hex color %q", "#"+s)
			}
			chans[i] = uint8(v * 0x11)
		}
	case 6, 8:
		for i := 0; i*2 < len(s); i++ {
			v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("bad hex color %q", "#"+s)
			}
			chans[i] = uint8(v)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", "#"+s)
	}
	return color.NRGBA{R: chans[0], G: chans[1], B: chans[2], A: chans[3]}, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}

func unitDp(v int) unit.Dp {
	return unit.Dp(v)
}

func applyColor(dst *color.NRGBA, s string) {
	if s == "" {
		return
	}
	if c, err := ParseColor(s); err == nil {
		*dst = c
	}
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
		must := func(err error) {
			if err != nil {
				panic(err)
			}
		}
		must(validate.RegisterValidation("uicolor", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		}))
		must(validate.RegisterValidation("durationstr", func(fl validator.FieldLevel) bool {
			_, err := parseDuration(fl.Field().String())
			return err == nil
		}))
	})
	return validate
}
