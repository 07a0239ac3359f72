package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Authenticate on this device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return errors.New("password required (-p)")
			}

			res, err := appCtx.Auth.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if !res.Success {
				return errors.New(res.Message)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", args[0])
			// Login never creates keys; on a fresh device the user should
			// know encrypted history is unreadable until keys are restored.
			if appCtx.Creds.PrivateKeys().Empty() {
				appCtx.Notify.Warning("No private keys on this device. Messages encrypted for your previous keys cannot be read here.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}
