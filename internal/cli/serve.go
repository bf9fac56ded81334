package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neocapy/friend-reader/internal/app"
	"github.com/neocapy/friend-reader/internal/config"
)

// ServeOptions — флаги serve; непереданные берутся из окружения.
type ServeOptions struct {
	Addr     string
	Password string
	Announce bool
}

// NewServeCommand — запуск сервера книги.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve <book.epub|document.json>",
		Short: "Share a book on the local network",
		Long: `Parse the book, start the HTTP server and keep the presence
registry until interrupted. Flags override APP_* environment keys.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = opts.Addr
			}
			if cmd.Flags().Changed("password") {
				cfg.Password = opts.Password
			}
			if cmd.Flags().Changed("announce") {
				cfg.Announce = opts.Announce
			}
			return runServe(cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", config.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.Password, "password", "", "room password (empty - open access)")
	cmd.Flags().BoolVar(&opts.Announce, "announce", true, "announce the server over mDNS")

	return cmd
}

func runServe(cfg *config.Config, bookPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, bookPath)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
