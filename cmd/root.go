package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gk",
		Short:         "gamekit (gk): player data lifecycle and instance pool tooling",
		Long:          "gk loads, edits and saves the player profile and settings through the gamekit persistence layer, inspects save payloads, benchmarks the instance pool and runs a signal-driven save loop.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.Close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProfileCmd(app),
		newSettingsCmd(app),
		newSaveCmd(app),
		newPoolCmd(app),
		newRunCmd(app),
	)

	return rootCmd
}
