package main

import (
	"io"
	"log/slog"

	"github.com/phrazzld/tasklist/internal/backend"
	"github.com/phrazzld/tasklist/internal/console"
	"github.com/phrazzld/tasklist/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
	}

	root := &cobra.Command{
		Use:   "tasklist",
		Short: "Manage your to-do list from the terminal",
		Long: "tasklist is an interactive to-do list. Create an account, sign in, " +
			"then add, list, modify and delete your tasks. Accounts and tasks are " +
			"kept in Firebase or PostgreSQL.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	a.bindFlags(root)
	root.AddCommand(newMigrateCmd(a))
	return root
}

// runInteractive initializes the backend and runs the menu loop.
func (a *app) runInteractive(cmd *cobra.Command) error {
	cfg, log, closeLog, err := a.setup()
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	b, err := backend.Open(ctx, cfg, log)
	if err != nil {
		log.Error("backend initialization failed", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Warn("failed to close backend", slog.String("error", err.Error()))
		}
	}()

	ctrl := session.NewController(console.New(a.stdin, a.stdout), b.Auth, b.Tasks, log)
	return ctrl.Run(ctx)
}
