package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/neocapy/friend-reader/internal/auth/secret"
	"github.com/neocapy/friend-reader/internal/client"
)

// ClientOptions — общие флаги команд, ходящих на чужой сервер.
type ClientOptions struct {
	Password string
	Timeout  time.Duration
}

func (o *ClientOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Password, "password", "", "room password")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", 10*time.Second, "request timeout")
}

func (o *ClientOptions) api(serverURL string) *client.Client {
	hash := ""
	if o.Password != "" {
		hash = secret.Hash(o.Password)
	}
	return client.New(serverURL, hash, log.New(io.Discard, "", 0))
}

// NewInfoCommand — сводка о сервере и книге.
func NewInfoCommand() *cobra.Command {
	opts := &ClientOptions{}

	cmd := &cobra.Command{
		Use:          "info <server-url>",
		Short:        "Show server status and book metadata",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(opts, args[0], cmd.OutOrStdout())
		},
	}
	opts.bind(cmd)
	return cmd
}

func runInfo(opts *ClientOptions, serverURL string, out io.Writer) error {
	api := opts.api(serverURL)
	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	h, err := api.Health(ctx)
	if err != nil {
		return err
	}
	doc, err := api.Document(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "server:   %s\n", api.BaseURL())
	fmt.Fprintf(out, "status:   %s\n", h.Status)
	fmt.Fprintf(out, "password: %v\n", h.RequiresPassword)
	fmt.Fprintf(out, "title:    %s\n", strOr(doc.Metadata.Title))
	fmt.Fprintf(out, "author:   %s\n", strOr(doc.Metadata.Author))
	fmt.Fprintf(out, "language: %s\n", strOr(doc.Metadata.Language))
	fmt.Fprintf(out, "elements: %d\n", len(doc.Elements))
	return nil
}

func strOr(s *string) string {
	if s != nil && *s != "" {
		return *s
	}
	return "(unknown)"
}
