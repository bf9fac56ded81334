package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

// NewPeersCommand — разовый снимок читателей.
func NewPeersCommand() *cobra.Command {
	opts := &ClientOptions{}

	cmd := &cobra.Command{
		Use:          "peers <server-url>",
		Short:        "List connected readers and their positions",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeers(opts, args[0], cmd.OutOrStdout())
		},
	}
	opts.bind(cmd)
	return cmd
}

func runPeers(opts *ClientOptions, serverURL string, out io.Writer) error {
	api := opts.api(serverURL)
	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	users, err := api.Positions(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(out, "no readers connected")
		return nil
	}

	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		u := users[name]
		fmt.Fprintf(out, "%-20s %s  elements %d-%d\n",
			u.Name, u.Color, u.Position.StartElement, u.Position.EndElement)
	}
	return nil
}
