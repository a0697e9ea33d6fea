// Package cli is the command surface. It owns flag parsing and the
// config/flag layering; everything after that is internal/app.
package cli

import (
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cryback/amglabor/internal/app"
	"github.com/cryback/amglabor/internal/config"
	"github.com/cryback/amglabor/internal/logger"
	"github.com/cryback/amglabor/internal/watch"
)

// NewRootCmd builds the amglabor command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "amglabor",
		Short:         "Normalize a weekly labor/cost spreadsheet export into daily_totals.json",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (default "+config.DefaultPath+")")
	root.AddCommand(newBuildCmd())
	return root
}

// Execute runs the CLI and reports whether the run succeeded. Fatal
// errors log once here; callers only translate the result into an exit
// code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the canonical report from the raw spreadsheet export",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			if cfgPath == "" {
				cfgPath = os.Getenv("AMGLABOR_CONFIG")
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg)

			logger.SetLevel(cfg.App.LogLevel)
			logFile, err := setupLogOutput(cfg.App.LogPath)
			if err != nil {
				return err
			}
			if logFile != nil {
				defer logFile.Close()
			}

			if cfg.Build.Watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return watch.Run(ctx, cfg)
			}
			return app.Run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", config.Default().Build.Input, "raw rows file (.csv, .xlsx or .xlsm)")
	flags.StringP("output", "o", config.Default().Build.Output, "report output path")
	flags.String("rates", config.Default().Build.Rates, "rate table file (.json, .yaml or .yml)")
	flags.String("week-of", "", "week label override; skips resolution from rows")
	flags.String("sheet", "", "workbook sheet name (xlsx input only; default first sheet)")
	flags.String("chart", "", "also render an HTML chart page to this path")
	flags.Bool("watch", false, "rebuild whenever the input file changes")
	return cmd
}

// applyFlagOverrides layers explicitly-set flags over the config file.
// Flags left at their defaults never clobber file values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	set("input", &cfg.Build.Input)
	set("output", &cfg.Build.Output)
	set("rates", &cfg.Build.Rates)
	set("week-of", &cfg.Build.WeekOf)
	set("sheet", &cfg.Build.Sheet)
	set("chart", &cfg.Build.Chart)
	if cmd.Flags().Changed("watch") {
		cfg.Build.Watch, _ = cmd.Flags().GetBool("watch")
	}
}

// setupLogOutput tees logging into the configured file alongside
// stdout, creating parent directories as needed.
func setupLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, file))
	return file, nil
}
