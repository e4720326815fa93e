package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylesync/internal/stylesync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Export styles and update references across the project",
	Long: `Extract the latest styles, diff them against the previous export,
rewrite renamed references, keep deprecated styles that are still used
and regenerate the style code.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runSync,
}

func init() {
	f := syncCmd.Flags()
	f.String("color-template", "", "Template for color code (default: built-in Go template)")
	f.String("text-template", "", "Template for text style code (default: built-in Go template)")
	f.String("color-output-dir", "internal/styles", "Output directory for generated color code")
	f.String("text-output-dir", "", "Output directory for generated text style code (default: color-output-dir)")
	f.String("snapshot-dir", ".stylesync", "Directory holding the style snapshots")
	f.StringSlice("exclude", nil, "Glob patterns of project files never rewritten")
	f.Int("workers", stylesync.DefaultWorkers, "Files processed concurrently")
	f.Bool("dry-run", false, "Compute every change and preview it without writing")
	f.String("output-format", "", "Output format: summary|json")
}

func runSync(_ *cobra.Command, _ []string) error {
	config := buildSyncConfig()

	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := stylesync.ShouldUseColors(getBoolWithFallback("color", "color", false))
	format := stylesync.DetermineOutputFormat(getStringWithFallback("output-format", "sync.output-format", ""))

	// Progress goes to stderr so JSON output stays parseable
	logger := stylesync.NewLogger(os.Stderr, useColors, config.Verbose)
	logger.SetQuiet(quiet)

	result, err := stylesync.Sync(config, logger)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if !quiet {
		stylesync.WriteSyncOutput(os.Stdout, result, format, useColors)
	}

	return nil
}
