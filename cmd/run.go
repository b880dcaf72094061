package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/gamekit/internal/adapters/lifecycle"
	statusadapter "github.com/bnema/gamekit/internal/adapters/render/status"
	"github.com/bnema/gamekit/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var (
		autosave    string
		duration    time.Duration
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the save loop driven by OS signals",
		Long:  "run loads the player save and keeps it in memory. SIGUSR1 saves as a suspend, SIGCONT resumes, SIGINT or SIGTERM saves and exits. --autosave adds cron-scheduled checkpoints.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := app.lifecycle.Start(ctx); err != nil {
				return fmt.Errorf("start session: %w", err)
			}

			signals := make(chan domain.LifecycleSignal, 4)
			stopSignals := app.signals.Watch(ctx, signals)
			defer stopSignals()

			if autosave == "" {
				autosave = app.cfg.Lifecycle.Autosave
			}
			if autosave != "" {
				scheduler, err := lifecycle.NewAutosave(autosave, signals, app.log)
				if err != nil {
					return err
				}
				scheduler.Start()
				defer scheduler.Stop()
			}

			if duration > 0 {
				timer := time.AfterFunc(duration, func() {
					select {
					case signals <- domain.SignalTerminate:
					default:
					}
				})
				defer timer.Stop()
			}

			err := statusadapter.RunLoop(ctx, cmd.ErrOrStderr(), "Save loop running, interrupt to save and exit...", func(ctx context.Context, report func(domain.LifecycleSignal, error)) error {
				return app.lifecycle.RunReporting(ctx, signals, report)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "session ended: %s\n", app.lifecycle.FileName()); err != nil {
				return err
			}
			if showMetrics {
				return app.metrics.WriteText(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&autosave, "autosave", "", "Cron schedule for checkpoints, e.g. \"@every 5m\" (defaults to lifecycle.autosave)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Terminate the loop after this long")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print Prometheus metrics on exit")
	return cmd
}
