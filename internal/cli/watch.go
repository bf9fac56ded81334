package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/neocapy/friend-reader/internal/domain"
)

// WatchOptions — флаги watch.
type WatchOptions struct {
	ClientOptions
	Interval time.Duration
}

// NewWatchCommand — живой лог перемещений читателей.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:          "watch <server-url>",
		Short:        "Follow reader movements until interrupted",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, opts, args[0], cmd.OutOrStdout())
		},
	}
	opts.bind(cmd)
	cmd.Flags().DurationVar(&opts.Interval, "interval", time.Second, "poll interval")
	return cmd
}

func runWatch(ctx context.Context, opts *WatchOptions, serverURL string, out io.Writer) error {
	api := opts.api(serverURL)
	t := time.NewTicker(opts.Interval)
	defer t.Stop()

	last := map[string]domain.Position{}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}

		rctx, cancel := context.WithTimeout(ctx, opts.Timeout)
		users, err := api.Positions(rctx)
		cancel()
		if err != nil {
			fmt.Fprintf(out, "%s pull failed: %v\n", stamp(), err)
			continue
		}

		names := make([]string, 0, len(users))
		for name := range users {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			pos := users[name].Position
			if prev, ok := last[name]; !ok {
				fmt.Fprintf(out, "%s %s joined at %d-%d\n", stamp(), name, pos.StartElement, pos.EndElement)
			} else if prev != pos {
				fmt.Fprintf(out, "%s %s moved to %d-%d\n", stamp(), name, pos.StartElement, pos.EndElement)
			}
			last[name] = pos
		}
		for name := range last {
			if _, ok := users[name]; !ok {
				fmt.Fprintf(out, "%s %s left\n", stamp(), name)
				delete(last, name)
			}
		}
	}
}

func stamp() string {
	return time.Now().Format("15:04:05")
}
