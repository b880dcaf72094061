package cmd

import (
	"context"
	"errors"

	"github.com/bnema/gamekit/internal/application"
	"github.com/spf13/cobra"
)

var errNoChanges = errors.New("no changes requested")

func newProfileCmd(app *app) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the player profile",
	}

	profileCmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))
	return profileCmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the player profile and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.session(cmd.Context(), func(context.Context) error {
				return writeProfileOutput(cmd, app, app.profiles.Status(), asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newProfileSetCmd(app *app) *cobra.Command {
	var (
		name     string
		language string
		country  string
		consent  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields and save",
		RunE: func(cmd *cobra.Command, _ []string) error {
			update := application.UpdateProfileCommand{}
			if cmd.Flags().Changed("name") {
				update.DisplayName = &name
			}
			if cmd.Flags().Changed("language") {
				update.LanguageCode = &language
			}
			if cmd.Flags().Changed("country") {
				update.CountryCode = &country
			}
			if cmd.Flags().Changed("consent") {
				update.AnalyticsConsent = &consent
			}
			if update.Empty() {
				return errNoChanges
			}

			return app.session(cmd.Context(), func(ctx context.Context) error {
				if _, err := app.profiles.UpdateProfile(ctx, update); err != nil {
					return err
				}
				return writeProfileOutput(cmd, app, app.profiles.Status(), false)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&language, "language", "", "Language code, e.g. en")
	cmd.Flags().StringVar(&country, "country", "", "Country code, e.g. MX")
	cmd.Flags().BoolVar(&consent, "consent", true, "Analytics consent")
	return cmd
}
