package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"securechat/internal/app"
)

var (
	cfgPath   string
	serverURL string
	home      string
	verbose   bool

	appCtx *app.App
)

// Execute runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:           "securechat",
		Short:         "Command-line client for the SecureChat backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(cfgPath)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			if home != "" {
				cfg.Home = home
			}

			log := zap.NewNop()
			if verbose {
				if log, err = zap.NewDevelopment(); err != nil {
					return err
				}
			}

			prompt := &stdinPrompter{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
			appCtx, err = app.New(cfg, prompt, log)
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.securechat/config.yaml)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL override")
	root.PersistentFlags().StringVar(&home, "home", "", "state dir override (default ~/.securechat)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		exportKeysCmd(),
		keysCmd(),
		friendsCmd(),
		msgCmd(),
		uploadCmd(),
	)
	return root.Execute()
}

// requireSession gates protected commands the way a router guard gates
// protected views.
func requireSession(cmd *cobra.Command, args []string) error {
	return appCtx.Guard.Require(cmd.Context())
}
