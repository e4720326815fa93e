package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/stylesync/internal/stylesync"
)

// defaultConfigFile is read from the working directory unless --config is given
const defaultConfigFile = ".stylesync.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLESYNC_* prefix)
	if err := k.Load(env.Provider("STYLESYNC_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// configSections are the nested blocks of the config file
var configSections = []string{"sync", "check"}

// envKey maps an environment variable to a config key. Only the underscore
// after a section name separates levels; the others become hyphens.
//
//	STYLESYNC_SYNC_WORKERS          -> sync.workers
//	STYLESYNC_SYNC_COLOR_OUTPUT_DIR -> sync.color-output-dir
//	STYLESYNC_CHECK_PRINT_LINES     -> check.print-lines
//	STYLESYNC_DOCUMENT              -> document
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "STYLESYNC_"))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildSyncConfig constructs the library's Config struct from koanf state.
func buildSyncConfig() stylesync.Config {
	config := stylesync.Config{
		DocumentPath:   getStringWithFallback("document", "document", stylesync.DefaultDocument),
		ProjectDir:     getStringWithFallback("project", "project", stylesync.DefaultProjectDir),
		Naming:         getStringWithFallback("naming", "naming", stylesync.NamingCamel),
		PackageName:    getStringWithFallback("package", "package", stylesync.DefaultPackage),
		ColorTemplate:  getStringWithFallback("color-template", "sync.color-template", ""),
		TextTemplate:   getStringWithFallback("text-template", "sync.text-template", ""),
		ColorOutputDir: getStringWithFallback("color-output-dir", "sync.color-output-dir", stylesync.DefaultOutputDir),
		SnapshotDir:    getStringWithFallback("snapshot-dir", "sync.snapshot-dir", stylesync.DefaultSnapshotDir),
		Workers:        getIntWithFallback("workers", "sync.workers", stylesync.DefaultWorkers),
		DryRun:         getBoolWithFallback("dry-run", "sync.dry-run", false),
		Verbose:        getBoolWithFallback("verbose", "verbose", false),
		Excludes:       getStringsWithFallback("exclude", "sync.exclude"),
	}
	config.TextOutputDir = getStringWithFallback("text-output-dir", "sync.text-output-dir", config.ColorOutputDir)

	return config
}

// buildCheckConfig constructs the library's CheckConfig struct from koanf state.
// Generated files of the sync configuration are never checked.
func buildCheckConfig() (stylesync.CheckConfig, error) {
	syncConfig := buildSyncConfig()

	generated, err := stylesync.GeneratedPaths(syncConfig)
	if err != nil {
		return stylesync.CheckConfig{}, err
	}

	return stylesync.CheckConfig{
		ProjectDir:     syncConfig.ProjectDir,
		SnapshotDir:    syncConfig.SnapshotDir,
		Excludes:       syncConfig.Excludes,
		Strict:         getBoolWithFallback("strict", "check.strict", false),
		PrintLines:     getBoolWithFallback("print-lines", "check.print-lines", true),
		UseColors:      getBoolWithFallback("color", "color", false),
		GeneratedFiles: append(generated, syncConfig.DocumentPath),
	}, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key.
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	return k.Strings(configKey)
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
