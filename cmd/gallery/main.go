// SPDX-License-Identifier: Unlicense OR MIT

// Command gallery opens a window showcasing every widget in the pack.
package main

import (
	"fmt"
	"os"
	"strings"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gioext/widgets/internal/version"
	"github.com/gioext/widgets/styleconf"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	stylePath string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "gallery",
		Short:         "Showcase the extension widgets in a Gio window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flags.logLevel)
			if err != nil {
				return err
			}
			cfg := &styleconf.Config{}
			if flags.stylePath != "" {
				cfg, err = styleconf.Load(flags.stylePath)
				if err != nil {
					return err
				}
				log.Info().Str("path", flags.stylePath).Msg("style config loaded")
			}
			go func() {
				w := app.NewWindow(
					app.Title("Widget gallery"),
					app.Size(unit.Dp(420), unit.Dp(640)),
				)
				if err := loop(w, log, cfg); err != nil {
					log.Error().Err(err).Msg("window closed with error")
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&flags.stylePath, "style", "", "Path to a YAML style config")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (trace..panic)")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the pack version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "widgets v%s\n", version.Version)
			return nil
		},
	}
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
	}
	console := zerolog.NewConsoleWriter()
	console.Out = os.Stderr
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}
