package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/api"
	"taskboard/internal/views"
)

func newCardsCmd(authed wrapper) *cobra.Command {
	var boardID string
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage cards",
	}
	cmd.PersistentFlags().StringVarP(&boardID, "board", "b", "", "board id")

	list := &cobra.Command{
		Use:   "list <list-id>",
		Short: "List the cards of a list in order",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			cards, err := a.client.Cards(ctx, args[0])
			if err != nil {
				a.toasts.Error(err.Error())
				return err
			}
			return a.printer.cards(cards)
		}),
	}

	var description string
	create := &cobra.Command{
		Use:   "create <list-id> <title>",
		Short: "Append a card to a list",
		Args:  cobra.ExactArgs(2),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			card, err := a.boardDetail(boardID).AddCard(ctx, args[0], args[1], description)
			if err != nil {
				return err
			}
			return a.printer.card(card)
		}),
	}
	create.Flags().StringVarP(&description, "description", "d", "", "card description")

	show := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			detail, err := loadBoard(ctx, a, boardID)
			if err != nil {
				return err
			}
			card, _, ok := detail.FindCard(args[0])
			if !ok {
				return fmt.Errorf("card %s is not on board %s", args[0], boardID)
			}
			return a.printer.card(&card)
		}),
	}

	cmd.AddCommand(list, create, show, newCardEditCmd(authed, &boardID), newCardMoveCmd(authed, &boardID))

	del := &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			return a.boardDetail(boardID).DeleteCard(ctx, args[0])
		}),
	}

	comment := &cobra.Command{
		Use:   "comment <card-id> <text>",
		Short: "Comment on a card",
		Args:  cobra.ExactArgs(2),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			card, err := a.boardDetail(boardID).AddComment(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return a.printer.card(card)
		}),
	}

	uncomment := &cobra.Command{
		Use:   "uncomment <card-id> <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(2),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			card, err := a.boardDetail(boardID).DeleteComment(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return a.printer.card(card)
		}),
	}

	cmd.AddCommand(del, comment, uncomment)
	return cmd
}

func newCardEditCmd(authed wrapper, boardID *string) *cobra.Command {
	var (
		title, description, due string
		clearDue, clearLabels   bool
		labels                  []string
	)
	cmd := &cobra.Command{
		Use:   "edit <card-id>",
		Short: "Edit title, description, due date or labels",
		Long: `Edit a card. Fields that are not given keep their current value.

Examples:
  taskboard cards edit <card-id> -b <board-id> --due 2026-03-01 --label bug --label urgent
  taskboard cards edit <card-id> -b <board-id> --clear-due`,
		Args: cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			detail, err := loadBoard(ctx, a, *boardID)
			if err != nil {
				return err
			}
			card, _, ok := detail.FindCard(args[0])
			if !ok {
				return fmt.Errorf("card %s is not on board %s", args[0], *boardID)
			}

			form := views.CardDetail{
				Title:       card.Title,
				Description: card.Description,
				DueDate:     card.DueDate,
				Labels:      card.Labels,
			}
			if cmd.Flags().Changed("title") {
				form.Title = title
			}
			if cmd.Flags().Changed("description") {
				form.Description = description
			}
			switch {
			case clearDue:
				form.DueDate = nil
			case due != "":
				t, err := api.ParseDate(due)
				if err != nil {
					return err
				}
				form.DueDate = &t
			}
			switch {
			case clearLabels:
				form.Labels = []string{}
			case len(labels) > 0:
				form.Labels = labels
			}

			saved, err := detail.SaveCardDetail(ctx, args[0], form)
			if err != nil {
				return err
			}
			return a.printer.card(saved)
		}),
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "remove the due date")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "label to set (repeatable): bug, feature, design, urgent")
	cmd.Flags().BoolVar(&clearLabels, "clear-labels", false, "remove all labels")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	cmd.MarkFlagsMutuallyExclusive("label", "clear-labels")
	return cmd
}

func newCardMoveCmd(authed wrapper, boardID *string) *cobra.Command {
	var listID string
	var position int
	cmd := &cobra.Command{
		Use:   "move <card-id>",
		Short: "Move a card within its list or to another list",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			if position < 0 {
				return fmt.Errorf("invalid position %d: want a non-negative integer", position)
			}
			detail, err := loadBoard(ctx, a, *boardID)
			if err != nil {
				return err
			}
			if _, err := moveCard(ctx, detail, args[0], listID, position); err != nil {
				return err
			}
			return a.printer.board(detail.Lists())
		}),
	}
	cmd.Flags().StringVarP(&listID, "list", "l", "", "target list id (default: the card's list)")
	cmd.Flags().IntVarP(&position, "position", "p", 0, "zero-based position in the target list")
	return cmd
}
