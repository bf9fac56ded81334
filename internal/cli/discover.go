package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/neocapy/friend-reader/internal/discovery"
)

// DiscoverOptions — флаги discover.
type DiscoverOptions struct {
	Timeout time.Duration
}

// NewDiscoverCommand — поиск серверов книги в локальной сети.
func NewDiscoverCommand() *cobra.Command {
	opts := &DiscoverOptions{}

	cmd := &cobra.Command{
		Use:          "discover",
		Short:        "Find book servers announced on the local network",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 5*time.Second, "how long to browse")
	return cmd
}

func runDiscover(opts *DiscoverOptions, out io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	found, err := discovery.Browse(ctx, log.New(io.Discard, "", 0))
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Fprintln(out, "no servers found")
		return nil
	}

	for _, f := range found {
		lock := ""
		if f.Protected {
			lock = " (password)"
		}
		fmt.Fprintf(out, "%-28s %s  %q%s\n", f.Instance, f.URL(), f.Title, lock)
	}
	return nil
}
