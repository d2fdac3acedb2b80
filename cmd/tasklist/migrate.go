package main

import (
	"fmt"

	"github.com/phrazzld/tasklist/internal/backend"
	"github.com/phrazzld/tasklist/internal/config"
	"github.com/phrazzld/tasklist/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect the PostgreSQL schema migrations",
		Long:      "Runs the embedded schema migrations against database.url. Only the postgres backend has a schema.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := postgres.MigrateUp
			if len(args) == 1 {
				command = args[0]
			}
			return a.runMigrate(cmd, command)
		},
	}
}

func (a *app) runMigrate(cmd *cobra.Command, command string) error {
	cfg, log, closeLog, err := a.setup()
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Backend.Kind != config.BackendPostgres {
		return fmt.Errorf("migrations require the postgres backend (configured: %s)", cfg.Backend.Kind)
	}

	ctx := cmd.Context()
	db, err := postgres.Open(ctx, cfg.Database.URL, log)
	if err != nil {
		return fmt.Errorf("%w: %w", backend.ErrInit, err)
	}
	defer func() { _ = db.Close() }()

	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "migrate %s: done\n", command)
	return nil
}
