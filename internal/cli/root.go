// Package cli — команды friendread: сервер книги и утилиты вокруг
// протокола присутствия.
package cli

import "github.com/spf13/cobra"

// NewRootCommand собирает дерево команд.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friendread",
		Short: "Friend Reader - shared reading over the local network",
		Long: `Friend Reader serves a book to friends on the local network and
keeps everyone's reading position in sync. One of you runs serve,
the rest connect with their readers.`,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewInfoCommand())
	cmd.AddCommand(NewPeersCommand())
	cmd.AddCommand(NewWatchCommand())
	cmd.AddCommand(NewDiscoverCommand())
	cmd.AddCommand(NewHashCommand())

	return cmd
}
