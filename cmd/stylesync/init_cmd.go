package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylesync/internal/stylesync"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylesync.yaml config file",
	Long: `Create a .stylesync.yaml configuration file in the current directory.
With --interactive the settings are asked one by one; an empty answer keeps
the default.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		interactive, _ := cmd.Flags().GetBool("interactive")

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = defaultConfigFile
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		answers := stylesync.DefaultInitAnswers()
		if interactive {
			var err error
			answers, err = stylesync.NewQuestionnaire(cmd.InOrStdin(), cmd.OutOrStdout()).Run(answers)
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(path, []byte(renderConfig(answers)), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const configTemplate = `# stylesync configuration

# Shared settings
document: %s
project: %s
naming: %s         # camel | pascal | snake
package: styles
verbose: false

# Export settings
sync:
  color-template: %s
  text-template: %s
  color-output-dir: %s
  snapshot-dir: .stylesync
  exclude:
    - "vendor/**"
  workers: 4
  dry-run: false
  output-format: summary   # summary | json

# Deprecated reference check
check:
  strict: false
  print-lines: true
`

// renderConfig writes answers into the config file layout. Paths are quoted
// so YAML never reinterprets them; empty templates select the built-in ones.
func renderConfig(answers stylesync.InitAnswers) string {
	return fmt.Sprintf(configTemplate,
		strconv.Quote(answers.Document),
		strconv.Quote(answers.Project),
		answers.Naming,
		strconv.Quote(answers.ColorTemplate),
		strconv.Quote(answers.TextTemplate),
		strconv.Quote(answers.OutputDir),
	)
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
	initCmd.Flags().BoolP("interactive", "i", false, "Ask for each setting")
}
