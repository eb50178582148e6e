package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vinit-katariya/scholar-sync/internal/report"
	"github.com/vinit-katariya/scholar-sync/internal/update"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fetch and show publications without touching data.js",
	Long: `Preview fetches the profile listing and prints the assembled publications
as a Markdown table, YAML, JSON, or the exact data.js block ("js").`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("format", string(report.FormatMarkdown), "output format: js, yaml, json, markdown")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(name)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	pubs, err := update.Collect(context.Background(), cfg, nil, logger)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), format, pubs, cfg)
}
