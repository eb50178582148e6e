// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-sync CLI.
//
// Run without arguments, scholar-sync fetches the Google Scholar profile
// listing and rewrites the publications block of the website's data.js.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	logger  = zap.NewNop()
	verbose bool

	// buildLogger creates the run logger; tests replace it.
	buildLogger = newLogger
)

// rootCmd runs the sync itself; subcommands are helpers around it.
var rootCmd = &cobra.Command{
	Use:   "scholar-sync",
	Short: "Regenerate the website publications block from Google Scholar",
	Long: `scholar-sync fetches the publication listing of a Google Scholar profile,
classifies every entry (journal, conference, preprint, article), and rewrites
the "const publications = [...]" block inside the website's data.js. Content
outside the block is left untouched.

The first entries in listing order are marked visible for the featured list;
every entry carries its listing position as "order".

Settings come from scholar-sync.yaml (current directory or the XDG config
home), a .env file, or SCHOLAR_SYNC_* environment variables.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := buildLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	RunE: runUpdate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-sync.yaml or $XDG_CONFIG_HOME/scholar-sync/scholar-sync.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().Bool("dry-run", false, "print the generated block instead of writing the data file")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// execute runs the CLI with args and returns the process exit code. The
// logger is synced on every path, failed commands included.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	defer func() { _ = logger.Sync() }()
	if err != nil {
		if cmd == rootCmd {
			fmt.Fprintf(stderr, "Error updating publications: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
