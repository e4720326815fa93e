package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylesync/internal/stylesync"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report references to deprecated styles",
	Long: `Read the style snapshots and report every place in the project that still
references a deprecated style, in golangci-lint format.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	f := checkCmd.Flags()
	f.String("snapshot-dir", ".stylesync", "Directory holding the style snapshots")
	f.StringSlice("exclude", nil, "Glob patterns of project files never checked")
	f.Bool("strict", false, "Exit 1 on any deprecated reference (CI mode)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.String("output-format", "", "Output format: issues|json")
}

func runCheck() error {
	config, err := buildCheckConfig()
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	verbose := getBoolWithFallback("verbose", "verbose", false)

	logger := stylesync.NewLogger(os.Stderr, stylesync.ShouldUseColors(config.UseColors), verbose)
	logger.SetQuiet(quiet)

	result, err := stylesync.Check(config, logger)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	format := stylesync.OutputIssues
	if getStringWithFallback("output-format", "check.output-format", "") == string(stylesync.OutputJSON) {
		format = stylesync.OutputJSON
	}

	if !quiet {
		stylesync.WriteCheckOutput(os.Stdout, result, format, config)
	}

	if config.Strict && len(result.Issues) > 0 {
		os.Exit(1)
	}

	return nil
}
