package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"taskboard/internal/api"
	"taskboard/internal/dnd"
	"taskboard/internal/views"
)

var errBoardFlagRequired = errors.New("--board is required")

func newBoardsCmd(authed wrapper) *cobra.Command {
	listRun := authed(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
		page := a.boardsPage()
		if err := page.Load(ctx); err != nil {
			return err
		}
		return a.printer.boards(page.Boards())
	})

	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List, create and delete boards",
		Args:  cobra.NoArgs,
		RunE:  listRun,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your boards, newest first",
		Args:  cobra.NoArgs,
		RunE:  listRun,
	}

	var description, color string
	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a board",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			board, err := a.boardsPage().Create(ctx, args[0], description, color)
			if err != nil {
				return err
			}
			return a.printer.boards([]api.Board{*board})
		}),
	}
	create.Flags().StringVarP(&description, "description", "d", "", "board description")
	create.Flags().StringVar(&color, "color", "", "background color")

	del := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board with its lists and cards",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			return a.boardsPage().Delete(ctx, args[0])
		}),
	}

	cmd.AddCommand(list, create, del)
	return cmd
}

func newBoardCmd(authed wrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect one board",
	}
	show := &cobra.Command{
		Use:   "show <board-id>",
		Short: "Show a board's lists and cards",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			detail := a.boardDetail(args[0])
			if err := detail.Load(ctx); err != nil {
				return err
			}
			return a.printer.board(detail.Lists())
		}),
	}
	cmd.AddCommand(show)
	return cmd
}

func loadBoard(ctx context.Context, a *app, boardID string) (*views.BoardDetail, error) {
	if boardID == "" {
		return nil, errBoardFlagRequired
	}
	detail := a.boardDetail(boardID)
	if err := detail.Load(ctx); err != nil {
		return nil, err
	}
	return detail, nil
}

func parsePosition(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil || pos < 0 {
		return 0, fmt.Errorf("invalid position %q: want a non-negative integer", s)
	}
	return pos, nil
}

func newListsCmd(authed wrapper) *cobra.Command {
	var boardID string
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage the lists of a board",
		Args:  cobra.NoArgs,
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
			detail, err := loadBoard(ctx, a, boardID)
			if err != nil {
				return err
			}
			return a.printer.board(detail.Lists())
		}),
	}
	cmd.PersistentFlags().StringVarP(&boardID, "board", "b", "", "board id")

	var description string
	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Append a list to the board",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			if boardID == "" {
				return errBoardFlagRequired
			}
			list, err := a.boardDetail(boardID).AddList(ctx, args[0], description)
			if err != nil {
				return err
			}
			return a.printer.list(list)
		}),
	}
	create.Flags().StringVarP(&description, "description", "d", "", "list description")

	var renameDescription string
	rename := &cobra.Command{
		Use:   "rename <list-id> <title>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			list, err := a.boardDetail(boardID).EditList(ctx, args[0], args[1], renameDescription)
			if err != nil {
				return err
			}
			return a.printer.list(list)
		}),
	}
	rename.Flags().StringVarP(&renameDescription, "description", "d", "", "list description")

	del := &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a list and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			return a.boardDetail(boardID).DeleteList(ctx, args[0])
		}),
	}

	move := &cobra.Command{
		Use:   "move <list-id> <position>",
		Short: "Move a list to a zero-based position",
		Args:  cobra.ExactArgs(2),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			pos, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			detail, err := loadBoard(ctx, a, boardID)
			if err != nil {
				return err
			}
			if _, err := moveList(ctx, detail, args[0], pos); err != nil {
				return err
			}
			return a.printer.board(detail.Lists())
		}),
	}

	cmd.AddCommand(create, rename, del, move)
	return cmd
}

// moveList drags listID onto the list currently at pos.
func moveList(ctx context.Context, detail *views.BoardDetail, listID string, pos int) (dnd.Outcome, error) {
	lists := detail.Lists()
	if len(lists) == 0 {
		return dnd.Unchanged, dnd.ErrUnknownItem
	}
	pos = min(pos, len(lists)-1)

	drag := detail.Drag()
	if err := drag.Start(listID); err != nil {
		return dnd.Unchanged, err
	}
	return drag.End(ctx, listID, lists[pos].ID)
}

// moveCard drags cardID into listID so that it ends at pos.
func moveCard(ctx context.Context, detail *views.BoardDetail, cardID, listID string, pos int) (dnd.Outcome, error) {
	_, from, ok := detail.FindCard(cardID)
	if !ok {
		return dnd.Unchanged, dnd.ErrUnknownItem
	}
	if listID == "" {
		listID = from
	}
	var target *api.List
	lists := detail.Lists()
	for i := range lists {
		if lists[i].ID == listID {
			target = &lists[i]
		}
	}
	if target == nil {
		return dnd.Unchanged, dnd.ErrUnknownItem
	}

	drag := detail.Drag()
	if err := drag.Start(cardID); err != nil {
		return dnd.Unchanged, err
	}
	if from != listID {
		over := listID
		if pos < len(target.Cards) {
			over = target.Cards[pos].ID
		}
		drag.Over(cardID, over, false)
		return drag.End(ctx, cardID, cardID)
	}
	pos = min(pos, len(target.Cards)-1)
	return drag.End(ctx, cardID, target.Cards[pos].ID)
}
