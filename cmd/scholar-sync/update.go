package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vinit-katariya/scholar-sync/internal/update"
)

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	res, err := update.Run(context.Background(), cfg, update.Options{
		DryRun: dryRun,
		Out:    out,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	switch {
	case dryRun:
		fmt.Fprintf(cmd.ErrOrStderr(), "Dry run: generated %d publications, %s not modified.\n", res.Count(), cfg.DataFile)
	case !res.Changed:
		fmt.Fprintf(out, "%s already up to date with %d publications from Google Scholar.\n", cfg.DataFile, res.Count())
	default:
		fmt.Fprintf(out, "Updated %s with %d publications from Google Scholar.\n", cfg.DataFile, res.Count())
	}
	return nil
}
