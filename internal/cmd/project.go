package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jalon-sh/jalon/internal/config"
	"github.com/jalon-sh/jalon/internal/logging"
	"github.com/jalon-sh/jalon/internal/project"
	"github.com/jalon-sh/jalon/internal/projfile"
)

// loadProject builds a project from the definition file named by the --file
// flag. Construction is silent: no notifier is attached while the definition
// is replayed, so loading a file does not re-broadcast every addition.
func loadProject(cmd *cobra.Command) (*project.Project, *config.Config, error) {
	cfg := config.Get()

	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, nil, err
	}

	f, err := projfile.Load(path)
	if err != nil {
		return nil, nil, err
	}

	opts := []project.Option{}
	if log := newLogger(cfg); log != nil {
		opts = append(opts, project.WithLogger(log))
	}

	p, err := f.Build(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("building project from %s: %w", path, err)
	}
	return p, cfg, nil
}

// newLogger builds the process logger from config. Returns nil when logging
// is disabled.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return nil
	}
	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		// Logging is best-effort; commands still work without it.
		return nil
	}
	return log
}
