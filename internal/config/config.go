// Package config defines the specforge configuration, loaded through viper
// from a config file, environment variables, and flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete specforge configuration
type Config struct {
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	Plan      PlanConfig      `mapstructure:"plan"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	TUI       TUIConfig       `mapstructure:"tui"`
}

// WorkspaceConfig controls where specforge keeps its state and artifacts
type WorkspaceConfig struct {
	// Dir is the workspace directory relative to the project root (default: ".specforge")
	Dir string `mapstructure:"dir"`
}

// PlanConfig controls the plan phase
type PlanConfig struct {
	// File is the plan document read by the plan and validate commands (default: "PLAN.md")
	File string `mapstructure:"file"`
	// ReportFile is where the rendered schedule report is written, relative
	// to the workspace dir (default: "plan-report.md")
	ReportFile string `mapstructure:"report_file"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled turns on JSON debug logging to the workspace log directory (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level to log: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// TUIConfig controls terminal output
type TUIConfig struct {
	// MaxNameWidth truncates task names in styled output (default: 60)
	MaxNameWidth int `mapstructure:"max_name_width"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		Workspace: WorkspaceConfig{Dir: ".specforge"},
		Plan: PlanConfig{
			File:       "PLAN.md",
			ReportFile: "plan-report.md",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		TUI: TUIConfig{MaxNameWidth: 60},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("workspace.dir", defaults.Workspace.Dir)
	viper.SetDefault("plan.file", defaults.Plan.File)
	viper.SetDefault("plan.report_file", defaults.Plan.ReportFile)
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("tui.max_name_width", defaults.TUI.MaxNameWidth)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if the
// loaded configuration is unusable
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "specforge")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".specforge"
	}
	return filepath.Join(home, ".config", "specforge")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
