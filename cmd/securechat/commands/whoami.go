package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the authenticated profile and key state",
		Args:    cobra.NoArgs,
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, _ := appCtx.Creds.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\nNickname: %s\nID:       %s\n", u.Username, u.Nickname, u.ID)

			keys := appCtx.Creds.PrivateKeys()
			switch {
			case keys.X25519PrivateKey != "" && keys.Ed25519PrivateKey != "":
				fmt.Fprintln(cmd.OutOrStdout(), "Keys:     key-exchange and signing keys present")
			case keys.Empty():
				fmt.Fprintln(cmd.OutOrStdout(), "Keys:     none on this device")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Keys:     incomplete (one of two private keys present)")
			}
			return nil
		},
	}
}
