package cmd

import (
	"fmt"

	"github.com/bnema/gamekit/internal/application"
	"github.com/spf13/cobra"
)

func newPoolCmd(app *app) *cobra.Command {
	poolCmd := &cobra.Command{
		Use:   "pool",
		Short: "Exercise the instance pool",
	}

	poolCmd.AddCommand(newPoolBenchCmd(app))
	return poolCmd
}

func newPoolBenchCmd(app *app) *cobra.Command {
	var (
		warm        int
		spawn       int
		recycle     int
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Spawn, recycle and respawn pooled instances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.pools.Bench(application.PoolBenchRequest{Warm: warm, Spawn: spawn, Recycle: recycle})
			if err != nil {
				return err
			}

			rendered, err := app.benchRenderer(report)
			if err != nil {
				return fmt.Errorf("render pool bench: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			if showMetrics {
				return app.metrics.WriteText(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&warm, "warm", app.cfg.Pool.WarmCount, "Instances cloned up front")
	cmd.Flags().IntVar(&spawn, "spawn", 20, "Instances to spawn")
	cmd.Flags().IntVar(&recycle, "recycle", 5, "Spawned instances to recycle and respawn")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print Prometheus metrics after the bench")
	return cmd
}
