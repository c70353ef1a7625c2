// Package main provides the pqcheck tool, which checks and times the
// priority queues of github.com/ajwerner/avltree/pqueue.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ajwerner/avltree/internal/config"
	"github.com/ajwerner/avltree/internal/logger"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

var configPath string

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pqcheck",
		Short: "Check and time priority queue implementations",
		Long: `pqcheck exercises the tree and heap backed priority queues.

Commands:
  check     Insert and remove sorted values, verifying every step
  bench     Time every RemoveMin on a full queue`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is .pqcheck.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format: console or json")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newBenchCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pqcheck %s\n", version)
		},
	}
}

// load reads the configuration for cmd and builds its logger.
func load(cmd *cobra.Command, section string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath, section, cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}
