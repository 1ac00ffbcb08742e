package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/client"
)

// version is set at build time with -ldflags "-X taskboard/internal/cli.version=..."
var version = "dev"

type runFunc func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error

// NewRootCommand builds the taskboard command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}
	var a *app

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Kanban boards from the terminal",
		Long: `taskboard talks to a taskboard server: sign in, manage boards, lists
and cards, reorder them and comment on cards.

Examples:
  taskboard login --email ada@example.com
  taskboard boards create "Roadmap"
  taskboard board show <board-id>
  taskboard cards move <card-id> --board <board-id> --list <list-id> --position 0`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.configPath == "" {
				flags.configPath = defaultConfigPath()
			}
			var err error
			a, err = newApp(cmd, flags)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.server, "server", "", "taskboard API base URL (default "+client.DefaultBaseURL+")")
	pf.StringVarP(&flags.output, "output", "o", FormatTable, "output format: table, json or yaml")
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/taskboard/config.yaml)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log requests and notifications to stderr")
	pf.DurationVar(&flags.timeout, "timeout", 30*time.Second, "per-command timeout")

	// Subcommands reach the app through this closure once the pre-run hook built it.
	wrap := func(fn runFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd.Context())
			defer cancel()
			return fn(ctx, a, cmd, args)
		}
	}
	authed := func(fn runFunc) func(*cobra.Command, []string) error {
		return wrap(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(ctx); err != nil {
				return err
			}
			return fn(ctx, a, cmd, args)
		})
	}

	root.AddCommand(
		newLoginCmd(wrap),
		newSignupCmd(wrap),
		newLogoutCmd(wrap),
		newWhoamiCmd(authed),
		newPasswordCmd(wrap, authed),
		newAvatarCmd(authed),
		newBoardsCmd(authed),
		newBoardCmd(authed),
		newListsCmd(authed),
		newCardsCmd(authed),
		newMyTasksCmd(authed),
		newThemeCmd(wrap),
		newSidebarCmd(wrap),
	)
	return root
}

type wrapper func(runFunc) func(*cobra.Command, []string) error
