package cmd

import (
	"context"

	"github.com/bnema/gamekit/internal/application"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Edit audio and haptics settings",
	}

	settingsCmd.AddCommand(newSettingsSetCmd(app))
	return settingsCmd
}

func newSettingsSetCmd(app *app) *cobra.Command {
	var (
		master    float64
		music     float64
		sfx       float64
		vibration bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings and save",
		RunE: func(cmd *cobra.Command, _ []string) error {
			update := application.UpdateSettingsCommand{}
			if cmd.Flags().Changed("master") {
				update.MasterVolume = &master
			}
			if cmd.Flags().Changed("music") {
				update.MusicVolume = &music
			}
			if cmd.Flags().Changed("sfx") {
				update.SFXVolume = &sfx
			}
			if cmd.Flags().Changed("vibration") {
				update.Vibration = &vibration
			}
			if update.Empty() {
				return errNoChanges
			}

			return app.session(cmd.Context(), func(ctx context.Context) error {
				if _, err := app.profiles.UpdateSettings(ctx, update); err != nil {
					return err
				}
				return writeProfileOutput(cmd, app, app.profiles.Status(), false)
			})
		},
	}

	cmd.Flags().Float64Var(&master, "master", 1, "Master volume between 0 and 1")
	cmd.Flags().Float64Var(&music, "music", 0.8, "Music volume between 0 and 1")
	cmd.Flags().Float64Var(&sfx, "sfx", 0.8, "Sound effects volume between 0 and 1")
	cmd.Flags().BoolVar(&vibration, "vibration", true, "Enable vibration")
	return cmd
}
