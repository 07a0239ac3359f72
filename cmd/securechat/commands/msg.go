package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"securechat/internal/api"
	"securechat/internal/domain"
)

func msgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "msg",
		Short: "Send messages and read conversations",
	}

	send := &cobra.Command{
		Use:     "send [username] [content]",
		Short:   "Send a message",
		Long:    "Sends content as-is. Payload encryption happens before this client is invoked; the backend and this tool treat content as opaque.",
		Args:    cobra.ExactArgs(2),
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appCtx.API.SendMessage(cmd.Context(), api.SendMessageRequest{
				ReceiverUsername: args[0],
				EncryptedContent: args[1],
				MessageType:      domain.MessageText,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Message sent to %s.\n", args[0])
			return nil
		},
	}

	history := &cobra.Command{
		Use:     "history [username]",
		Short:   "Show the conversation with a user",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := appCtx.API.Conversation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, m := range msgs {
				body := m.EncryptedContent
				if m.MessageType == domain.MessageFile {
					body = fmt.Sprintf("[file] %s (%s)", m.OriginalFilename, m.FileURL)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s: %s\n", m.Timestamp, m.SenderUsername, body)
			}
			return nil
		},
	}

	cmd.AddCommand(send, history)
	return cmd
}
