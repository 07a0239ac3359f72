package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func friendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Manage the friend list and requests",
	}

	list := &cobra.Command{
		Use:     "list",
		Short:   "List confirmed friends",
		Args:    cobra.NoArgs,
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			friends, err := appCtx.API.MyFriends(cmd.Context())
			if err != nil {
				return err
			}
			if len(friends) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No friends yet.")
				return nil
			}
			for _, f := range friends {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", f.Username, f.Nickname)
			}
			return nil
		},
	}

	pending := &cobra.Command{
		Use:     "pending",
		Short:   "List inbound friend requests",
		Args:    cobra.NoArgs,
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := appCtx.API.PendingRequests(cmd.Context())
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending requests.")
				return nil
			}
			for _, r := range reqs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) sent %s\n", r.Username, r.Nickname, r.SentAt)
			}
			return nil
		},
	}

	// The remaining subcommands share the shape "one username in, message out".
	type action struct {
		use, short, done string
		call             func(cmd *cobra.Command, username string) error
	}
	actions := []action{
		{"add", "Send a friend request", "Friend request sent to %s.\n",
			func(cmd *cobra.Command, u string) error { return appCtx.API.SendFriendRequest(cmd.Context(), u) }},
		{"accept", "Accept a pending request", "Friend request from %s accepted.\n",
			func(cmd *cobra.Command, u string) error { return appCtx.API.AcceptFriendRequest(cmd.Context(), u) }},
		{"decline", "Decline a pending request", "Friend request from %s declined.\n",
			func(cmd *cobra.Command, u string) error { return appCtx.API.DeclineFriendRequest(cmd.Context(), u) }},
		{"remove", "Remove a friend", "Unfriended %s.\n",
			func(cmd *cobra.Command, u string) error { return appCtx.API.Unfriend(cmd.Context(), u) }},
		{"block", "Block a user", "Blocked %s.\n",
			func(cmd *cobra.Command, u string) error { return appCtx.API.BlockUser(cmd.Context(), u) }},
		{"unblock", "Unblock a user", "Unblocked %s.\n",
			func(cmd *cobra.Command, u string) error { return appCtx.API.UnblockUser(cmd.Context(), u) }},
	}

	cmd.AddCommand(list, pending)
	for _, a := range actions {
		a := a
		cmd.AddCommand(&cobra.Command{
			Use:     a.use + " [username]",
			Short:   a.short,
			Args:    cobra.ExactArgs(1),
			PreRunE: requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.call(cmd, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), a.done, args[0])
				return nil
			},
		})
	}
	return cmd
}
