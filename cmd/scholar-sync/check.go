package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vinit-katariya/scholar-sync/internal/datajs"
	"github.com/vinit-katariya/scholar-sync/internal/update"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the publications block currently in data.js",
	Long: `Check reads the publications block from data.js without any network access
and verifies that it parses and that order and visibility are consistent.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	block, err := datajs.ReadBlock(cfg.DataFile, cfg.BlockName)
	if err != nil {
		return err
	}
	_, pubs, err := datajs.ParseBlock(block)
	if err != nil {
		return err
	}
	if err := update.Verify(pubs, cfg.FeaturedCount); err != nil {
		return fmt.Errorf("%s: %w", cfg.DataFile, err)
	}

	visible := 0
	for _, p := range pubs {
		if p.Visible {
			visible++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d publications, %d visible.\n", cfg.DataFile, len(pubs), visible)
	return nil
}
