// Package cmd implements the specforge CLI commands.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kestrel-tools/specforge/internal/config"
	"github.com/kestrel-tools/specforge/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "specforge",
	Short: "Specification-driven workflow scaffold",
	Long: `Specforge guides a project through a four-phase specification-driven
workflow (Constitute → Specify → Plan → Implement), persisting progress as
JSON state and generating markdown artifacts.

The plan phase parses a task list with declared dependencies, validates the
dependency graph, computes a parallel execution schedule in waves, and
reports the estimated time savings.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/specforge/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/specforge")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SPECFORGE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SPECFORGE_PLAN_FILE for plan.file
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the command logger from the loaded config. Logging
// failures fall back to a nop logger rather than blocking the command.
func newLogger(cfg *config.Config, command string) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger().WithCommand(command)
	}
	logger, err := logging.NewLogger(cfg.Workspace.Dir, cfg.Logging.Level)
	if err != nil {
		return logging.NopLogger().WithCommand(command)
	}
	return logger.WithCommand(command)
}
