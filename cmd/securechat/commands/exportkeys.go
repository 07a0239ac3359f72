package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

func exportKeysCmd() *cobra.Command {
	var toClipboard bool
	var passphrase string

	cmd := &cobra.Command{
		Use:   "export-keys",
		Short: "Write or copy the private keys",
		Long: "Writes the private keys as a JSON artifact into the export directory, " +
			"or copies them to the clipboard. With --passphrase the file artifact is " +
			"encrypted instead of written in the clear.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := appCtx.Creds.PrivateKeys()
			if keys.Empty() {
				return errors.New("no private keys stored on this device")
			}
			label := ""
			if u, ok := appCtx.Creds.User(); ok {
				label = u.Username
			}

			var ok bool
			switch {
			case toClipboard:
				ok = appCtx.Exporter.ToClipboard(keys)
			case passphrase != "":
				ok = appCtx.Exporter.ToEncryptedFile(keys, label, passphrase)
			default:
				ok = appCtx.Exporter.ToFile(keys, label)
			}
			if !ok {
				return errors.New("export did not complete")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "copy to the clipboard instead of a file")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "encrypt the file artifact under this passphrase")
	return cmd
}
