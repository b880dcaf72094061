package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSaveCmd(app *app) *cobra.Command {
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Inspect save payloads",
	}

	saveCmd.AddCommand(newSaveInspectCmd(app))
	return saveCmd
}

func newSaveInspectCmd(app *app) *cobra.Command {
	var fileName string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the fragment layout of a multi-object save",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fileName == "" {
				fileName = app.cfg.Save.File
			}

			envelope, found, err := app.backend.Inspect(cmd.Context(), fileName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "file: %s\nbackend: %s\nformat: %s\n", fileName, app.cfg.Save.Backend, app.backend.Codec().Name()); err != nil {
				return err
			}
			if !found {
				_, err := fmt.Fprintln(out, "status: no save yet")
				return err
			}

			if _, err := fmt.Fprintf(out, "version: %d\nfragments: %d\n", envelope.Version, len(envelope.Fragments)); err != nil {
				return err
			}
			for i, fragment := range envelope.Fragments {
				state := fmt.Sprintf("%d bytes", len(fragment))
				if fragment == "" {
					state = "empty"
				}
				if _, err := fmt.Fprintf(out, "  [%d] %s\n", i, state); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fileName, "file", "", "Save name (defaults to save.file)")
	return cmd
}
