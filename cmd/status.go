package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/gamekit/internal/adapters/render/status"
	"github.com/bnema/gamekit/internal/application"
	"github.com/spf13/cobra"
)

func writeProfileOutput(cmd *cobra.Command, app *app, status application.ProfileStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	rendered, err := app.profileRenderer(status, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render profile: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
