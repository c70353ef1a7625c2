package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajwerner/avltree/internal/config"
	"github.com/ajwerner/avltree/internal/harness"
)

func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time RemoveMin on every queue implementation",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	cmd.Flags().Int("size", config.DefaultBenchSize, "number of elements to fill the queue with")
	cmd.Flags().Int("every", config.DefaultEvery, "record every n-th removal")
	return cmd
}

func runBench(cmd *cobra.Command, _ []string) error {
	cfg, log, err := load(cmd, "bench")
	if err != nil {
		return err
	}
	runs := make([]harness.Run, 0, 2)
	for _, impl := range []string{config.ImplHeap, config.ImplTree} {
		q, err := harness.NewQueue(impl)
		if err != nil {
			return err
		}
		samples, total, err := harness.BenchRemoveMin(q, cfg.Bench.Size, cfg.Bench.Every)
		if err != nil {
			return fmt.Errorf("bench %s: %w", impl, err)
		}
		log.Info().
			Str("impl", impl).
			Int("size", cfg.Bench.Size).
			Dur("total", total).
			Msg("bench finished")
		runs = append(runs, harness.Run{
			Impl:    impl,
			Size:    cfg.Bench.Size,
			Samples: samples,
			Total:   total,
		})
	}
	return harness.Report(cmd.OutOrStdout(), runs)
}
