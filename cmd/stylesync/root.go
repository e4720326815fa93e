package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stylesync",
	Short: "Export design styles to code and migrate their references",
	Long: `Reads colors and text styles from a design document, compares them with
the previous export by identifier, rewrites renamed references across the
project and regenerates the style code with a semantic version.`,
	// Default behavior: run sync when no subcommand is given.
	// We must call loadConfig here because PreRunE of syncCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runSync(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")
	pf.String("document", "design/styles.json", "Design document (.json or .css)")
	pf.String("project", ".", "Project root whose style references are updated")
	pf.String("naming", "camel", "Variable naming: camel|pascal|snake")
	pf.String("package", "styles", "Package name passed to templates")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
