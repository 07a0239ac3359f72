package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"securechat/internal/api"
	"securechat/internal/domain"
)

func uploadCmd() *cobra.Command {
	var sendTo string

	cmd := &cobra.Command{
		Use:     "upload [path]",
		Short:   "Upload a file, optionally sending it to a friend",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			up, err := appCtx.API.UploadFile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%d bytes) -> %s\n", up.OriginalFilename, up.Size, up.FileURL)

			if sendTo == "" {
				return nil
			}
			_, err = appCtx.API.SendMessage(ctx, api.SendMessageRequest{
				ReceiverUsername: sendTo,
				MessageType:      domain.MessageFile,
				FileURL:          up.FileURL,
				OriginalFilename: up.OriginalFilename,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "File message sent to %s.\n", sendTo)
			return nil
		},
	}

	cmd.Flags().StringVar(&sendTo, "to", "", "send the uploaded file to this friend")
	return cmd
}
