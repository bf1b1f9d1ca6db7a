package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "stitch",
		Short:         "stitch: App Services developer console",
		Long:          "stitch logs in to a hosted App Services application, calls its server-side functions with JSON arguments and converts RQL queries and sync changesets through an external codec.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(cmd.ErrOrStderr(), verbose)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newCallCmd(app),
		newConsoleCmd(app),
		newRQLCmd(app),
		newChangesetCmd(app),
	)

	return rootCmd
}
