package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neocapy/friend-reader/internal/auth/secret"
)

// NewHashCommand печатает password_hash для пароля: удобно для curl
// и для проверки, совпадают ли секреты.
func NewHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "hash <password>",
		Short:        "Print the password_hash digest for a password",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), secret.Hash(args[0]))
			return nil
		},
	}
}
