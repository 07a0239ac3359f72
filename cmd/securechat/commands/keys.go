package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "keys [username]",
		Short:   "Fetch a peer's public keys",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			username := args[0]

			xPub, err := appCtx.API.UserX25519Key(ctx, username)
			if err != nil {
				return err
			}
			edPub, err := appCtx.API.UserEd25519Key(ctx, username)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "x25519:  %s\ned25519: %s\n", xPub, edPub)
			return nil
		},
	}
}
