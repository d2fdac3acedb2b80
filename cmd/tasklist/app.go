package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/tasklist/internal/config"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the streams and configuration shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	v          *viper.Viper
	configFile string
}

// bindFlags registers the persistent flags on root and binds them to the
// matching configuration keys.
func (a *app) bindFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./tasklist.yaml if present)")
	flags.String("backend", "", "backend to use: firebase or postgres")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	// Lookup never returns nil for flags registered above.
	_ = a.v.BindPFlag("backend.kind", flags.Lookup("backend"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
}

// setup loads the configuration and installs the logger. The returned
// function closes the log file, if one was opened.
func (a *app) setup() (*config.Config, *slog.Logger, func(), error) {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	out := a.stderr
	closeLog := func() {}
	if cfg.Log.File != "" {
		f, err := logger.OpenOutput(cfg.Log)
		if err != nil {
			return nil, nil, nil, err
		}
		out = f
		closeLog = func() { _ = f.Close() }
	}

	log, err := logger.Setup(cfg.Log, out)
	if err != nil {
		closeLog()
		return nil, nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Debug("configuration loaded",
		slog.String("backend", cfg.Backend.Kind),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("verify_password", cfg.Auth.VerifyPassword),
		slog.Bool("database_url_present", cfg.Database.URL != ""))

	return cfg, log, closeLog, nil
}
