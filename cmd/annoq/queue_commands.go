package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/get-theo-ai/langfuse/internal/api"
	"github.com/get-theo-ai/langfuse/internal/review"
)

func newQueueCommand(ctx *commandContext) *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and manage annotation queues",
	}

	queueCmd.AddCommand(newQueueCreateCommand(ctx))
	queueCmd.AddCommand(newQueueListCommand(ctx))
	queueCmd.AddCommand(newQueueRenameCommand(ctx))
	queueCmd.AddCommand(newQueueDescribeCommand(ctx))
	queueCmd.AddCommand(newQueueStatsCommand(ctx))
	queueCmd.AddCommand(newQueueDeleteCommand(ctx))

	return queueCmd
}

func newQueueCreateCommand(ctx *commandContext) *cobra.Command {
	var description string
	var scoreConfigs []string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an annotation queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := store.CreateQueue(cmd.Context(), args[0], description, scoreConfigs)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created queue %s (%s)\n", queue.Name, queue.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "Queue description")
	cmd.Flags().StringSliceVar(&scoreConfigs, "score-config", nil, "Score configuration id to associate (repeatable)")
	return cmd
}

func newQueueListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List annotation queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				svc := api.NewQueueService(store)
				queues, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut || !stdoutIsTerminal() {
					return writeJSON(cmd, queues)
				}
				if len(queues) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No queues")
					return nil
				}
				rows := make([][]string, 0, len(queues))
				for _, queue := range queues {
					rows = append(rows, []string{
						queue.ID,
						queue.Name,
						queue.Description,
						strconv.Itoa(len(queue.ScoreConfigIDs)),
						queue.CreatedAt,
					})
				}
				out := renderTable(
					[]tableColumn{
						{title: "ID"},
						{title: "Name"},
						{title: "Description"},
						{title: "Score Configs", rightAlign: true},
						{title: "Created"},
					},
					rows,
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}

func newQueueRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <queue> <new-name>",
		Short: "Rename an annotation queue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				if err := store.RenameQueue(cmd.Context(), queue.ID, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed queue %s to %s\n", queue.Name, args[1])
				return nil
			})
		},
	}
}

func newQueueDescribeCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "describe <queue>",
		Short: "Show one queue's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				dto := api.FromQueue(queue)
				if jsonOut || !stdoutIsTerminal() {
					return writeJSON(cmd, dto)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:            %s\n", dto.ID)
				fmt.Fprintf(out, "Name:          %s\n", dto.Name)
				fmt.Fprintf(out, "Description:   %s\n", dto.Description)
				fmt.Fprintf(out, "Score configs: %s\n", strings.Join(dto.ScoreConfigIDs, ", "))
				fmt.Fprintf(out, "Created:       %s\n", dto.CreatedAt)
				fmt.Fprintf(out, "Updated:       %s\n", dto.UpdatedAt)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}

func newQueueStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats <queue>",
		Short: "Show item counts for a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				stats, err := store.Stats(cmd.Context(), queue.ID)
				if err != nil {
					return err
				}
				dto := api.FromStats(stats)
				if jsonOut || !stdoutIsTerminal() {
					return writeJSON(cmd, dto)
				}
				rows := [][]string{
					{"pending", strconv.Itoa(dto.Pending)},
					{"completed", strconv.Itoa(dto.Completed)},
					{"total", strconv.Itoa(dto.Total)},
				}
				out := renderTable([]tableColumn{{title: "Status"}, {title: "Count", rightAlign: true}}, rows)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}

func newQueueDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <queue>",
		Short: "Delete a queue and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				queue, err := resolveQueue(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				removed, err := store.DeleteQueue(cmd.Context(), queue.ID)
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted queue %s\n", queue.Name)
				return nil
			})
		},
	}
}
