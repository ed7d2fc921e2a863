package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"research-gap-be/pkg/events"
	pktNats "research-gap-be/pkg/nats"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		natsURL string
		durable string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print research.completed events as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := pktNats.NewSubscriber(natsURL)
			if err != nil {
				return err
			}
			defer sub.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			muted.Fprintf(cmd.OutOrStdout(), "Watching %s on %s (Ctrl+C to stop)\n",
				pktNats.Subject(events.TypeResearchCompleted), natsURL)

			out := cmd.OutOrStdout()
			return sub.Subscribe(ctx, pktNats.Subject(events.TypeResearchCompleted), durable,
				func(_ context.Context, e events.Event) error {
					RenderEvent(out, e)
					return nil
				})
		},
	}

	natsURL = os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	cmd.Flags().StringVar(&natsURL, "nats", natsURL, "NATS server URL")
	cmd.Flags().StringVar(&durable, "durable", "", "Durable consumer name; empty follows new events only")

	return cmd
}

// RenderEvent prints one completed-research event on a single line.
func RenderEvent(w io.Writer, e events.Event) {
	p := e.Payload()
	status := bullet.Sprint("ok")
	if degraded, _ := p["degraded"].(bool); degraded {
		status = warning.Sprint("degraded")
	}
	fmt.Fprintf(w, "%s  %-17s %-8s %v (%v insights, %v questions)\n",
		muted.Sprint(e.Timestamp().Local().Format("15:04:05")),
		p["endpoint"], status, p["topic"], p["insightCount"], p["questionCount"])
}
