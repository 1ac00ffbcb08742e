package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newMyTasksCmd(authed wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "my-tasks",
		Short: "Cards on your boards, earliest due date first",
		Args:  cobra.NoArgs,
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
			cards, err := a.myTasks().Load(ctx)
			if err != nil {
				return err
			}
			return a.printer.cards(cards)
		}),
	}
}

func newThemeCmd(wrap wrapper) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or set the color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: wrap(func(_ context.Context, a *app, _ *cobra.Command, args []string) error {
			theme := a.session.Theme()
			var err error
			switch {
			case len(args) == 0:
			case args[0] == "toggle":
				theme, err = a.session.ToggleTheme()
			default:
				theme, err = args[0], a.session.SetTheme(args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, theme)
			return nil
		}),
	}
}

func newSidebarCmd(wrap wrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Sidebar preference",
	}
	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Collapse or expand the sidebar",
		Args:  cobra.NoArgs,
		RunE: wrap(func(_ context.Context, a *app, _ *cobra.Command, _ []string) error {
			collapsed, err := a.session.ToggleSidebar()
			if err != nil {
				return err
			}
			if collapsed {
				fmt.Fprintln(a.out, "collapsed")
			} else {
				fmt.Fprintln(a.out, "expanded")
			}
			return nil
		}),
	}
	cmd.AddCommand(toggle)
	return cmd
}
