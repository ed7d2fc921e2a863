// Package cli implements gapcli, a terminal front end for the research gap
// server.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:3000"

type options struct {
	server  string
	timeout time.Duration
}

func (o *options) client() *Client {
	return NewClient(o.server, o.timeout)
}

// NewRootCmd builds the gapcli command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gapcli",
		Short: "Explore research landscapes and gaps from the terminal",
		Long: `gapcli queries a running research-gap server and renders the
landscape report in the terminal.

Examples:
  # Full landscape report
  gapcli search "mental health in Africa"

  # Regenerate the insight block only
  gapcli insights "coral reef restoration"

  # Saved queries
  gapcli saved list
  gapcli saved delete 3f1c...

  # Follow completed searches on the event bus
  gapcli watch`,
		SilenceUsage: true,
	}

	server := os.Getenv("GAPCLI_SERVER")
	if server == "" {
		server = defaultServer
	}
	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", server, "Base URL of the research-gap server")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 3*time.Minute, "Request timeout")

	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newInsightsCmd(opts))
	cmd.AddCommand(newSavedCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newWatchCmd())

	return cmd
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search [topic]",
		Short: "Run the full landscape analysis for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			res, err := opts.client().Search(ctx, args[0])
			if err != nil {
				return err
			}
			RenderResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newInsightsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insights [topic]",
		Short: "Regenerate refined insights and grouped questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			res, err := opts.client().Insights(ctx, args[0])
			if err != nil {
				return err
			}
			RenderInsights(cmd.OutOrStdout(), args[0], res)
			return nil
		},
	}
}

func newSavedCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved research queries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved queries, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := opts.client().SavedQueries(cmd.Context())
			if err != nil {
				return err
			}
			RenderSaved(cmd.OutOrStdout(), saved)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a saved query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().DeleteSavedQuery(cmd.Context(), args[0]); err != nil {
				return err
			}
			bullet.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func newHistoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recently researched topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, err := opts.client().History(cmd.Context())
			if err != nil {
				return err
			}
			renderList(cmd.OutOrStdout(), "Recent topics", topics)
			return nil
		},
	}
}
