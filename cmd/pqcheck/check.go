package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajwerner/avltree/internal/config"
	"github.com/ajwerner/avltree/internal/harness"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify a queue implementation with sorted random values",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
	cmd.Flags().String("impl", config.DefaultImpl, "queue implementation: tree or heap")
	cmd.Flags().Int("size", config.DefaultSize, "number of values")
	cmd.Flags().Int64("seed", config.DefaultSeed, "random seed for the values")
	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, log, err := load(cmd, "check")
	if err != nil {
		return err
	}
	q, err := harness.NewQueue(cfg.Impl)
	if err != nil {
		return err
	}
	log = log.With().Str("impl", cfg.Impl).Logger()
	vals := harness.SortedValues(cfg.Check.Size, cfg.Check.Seed)
	if err := harness.CheckQueue(q, vals, log); err != nil {
		return fmt.Errorf("check %s: %w", cfg.Impl, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: all %d values passed\n", cfg.Impl, len(vals))
	return nil
}
