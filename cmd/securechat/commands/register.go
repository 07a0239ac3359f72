package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	var password, nickname string

	cmd := &cobra.Command{
		Use:   "register [username]",
		Short: "Create an account and generate its key pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			if password == "" {
				return errors.New("password required (-p)")
			}
			if nickname == "" {
				nickname = username
			}

			res, err := appCtx.Auth.Register(cmd.Context(), username, password, nickname)
			if err != nil {
				return err
			}
			if !res.Success {
				return errors.New(res.Message)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered as %s. Key pairs generated and bound to the account.\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVarP(&nickname, "nickname", "n", "", "display name (defaults to username)")
	return cmd
}
