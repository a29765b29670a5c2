package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/get-theo-ai/langfuse/internal/api"
	"github.com/get-theo-ai/langfuse/internal/review"
)

func newEnrollCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enroll <queue> <type:id>...",
		Short: "Add reviewed objects to a queue as pending items",
		Long: `Add reviewed objects to a queue as pending items.

References use the form type:id, for example observation:obs-1 or
trace:tr-9. Objects that already have a pending item in the queue are
skipped without error.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				refs, err := parseRefArgs(args[1:])
				if err != nil {
					return err
				}
				result, err := store.Enroll(cmd.Context(), queue.ID, refs, time.Now().UTC())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Enrolled %d of %d (requested %d)\n",
					result.Created, result.Attempted, result.Requested)
				return nil
			})
		},
	}
	return cmd
}

func newClaimCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "claim <queue> <reviewer-id>",
		Short: "Claim the next eligible item in a queue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				svc := api.NewReviewService(store)
				item, err := svc.Claim(cmd.Context(), queue.ID, args[1])
				if err != nil {
					return err
				}
				if item == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No eligible item")
					return nil
				}
				if jsonOut || !stdoutIsTerminal() {
					return writeJSON(cmd, item)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Item:     %s\n", item.ID)
				fmt.Fprintf(out, "Object:   %s:%s\n", item.ObjectType, item.ObjectID)
				if item.ParentTraceID != "" {
					fmt.Fprintf(out, "Trace:    %s\n", item.ParentTraceID)
				}
				fmt.Fprintf(out, "Leased:   %s\n", item.LeaseStartedAt)
				fmt.Fprintf(out, "Holder:   %s\n", item.LeaseHolderID)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}

func newCompleteCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <queue> <type:id> <reviewer-id>",
		Short: "Mark an item completed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				ref, err := parseRefArg(args[1])
				if err != nil {
					return err
				}
				count, err := store.Complete(cmd.Context(), queue.ID, ref, args[2], time.Now().UTC())
				if err != nil {
					return err
				}
				if count == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to complete")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Completed %d item(s)\n", count)
				return nil
			})
		},
	}
	return cmd
}

func newItemsCommand(ctx *commandContext) *cobra.Command {
	var statusFilters []string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "items <queue>",
		Short: "List a queue's items in creation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				var statuses []review.Status
				for _, raw := range statusFilters {
					status, ok := review.ParseStatus(raw)
					if !ok {
						return fmt.Errorf("unknown status %q", raw)
					}
					statuses = append(statuses, status)
				}
				items, err := store.ItemsByQueue(cmd.Context(), queue.ID, statuses...)
				if err != nil {
					return err
				}
				dtos := api.FromItems(items)
				if jsonOut || !stdoutIsTerminal() {
					return writeJSON(cmd, dtos)
				}
				if len(dtos) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty")
					return nil
				}
				rows := make([][]string, 0, len(dtos))
				for _, item := range dtos {
					rows = append(rows, []string{
						item.ID,
						item.ObjectType + ":" + item.ObjectID,
						item.Status,
						item.LeaseHolderID,
						item.CreatedAt,
					})
				}
				out := renderTable(
					[]tableColumn{{title: "ID"}, {title: "Object"}, {title: "Status"}, {title: "Holder"}, {title: "Created"}},
					rows,
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&statusFilters, "status", nil, "Filter by status (pending, completed)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}

func newAuditCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit <queue>",
		Short: "Show a queue's audit log, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				entries, err := store.AuditEntries(cmd.Context(), queue.ID, limit)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No audit entries")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						entry.CreatedAt.UTC().Format(time.RFC3339),
						string(entry.Action),
						entry.ActorID,
						entry.Detail,
					})
				}
				out := renderTable(
					[]tableColumn{{title: "When"}, {title: "Action"}, {title: "Actor"}, {title: "Detail"}},
					rows,
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum entries to show (0 for all)")
	return cmd
}
