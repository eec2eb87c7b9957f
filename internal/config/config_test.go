package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Workspace.Dir != ".specforge" {
		t.Errorf("expected workspace dir .specforge, got %q", cfg.Workspace.Dir)
	}
	if cfg.Plan.File != "PLAN.md" {
		t.Errorf("expected plan file PLAN.md, got %q", cfg.Plan.File)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("defaults should validate cleanly, got %v", errs)
	}
}

func TestLoad_UsesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_OverridesFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("plan.file", "docs/plan.md")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Plan.File != "docs/plan.md" {
		t.Errorf("expected override docs/plan.md, got %q", cfg.Plan.File)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Plan.File = ""
	cfg.Logging.Level = "loud"
	cfg.TUI.MaxNameWidth = 2

	errs := cfg.Validate()
	if len(errs) != 3 {
		t.Fatalf("expected 3 validation errors, got %d: %v", len(errs), errs)
	}

	combined := ValidationErrors(errs).Error()
	if !strings.Contains(combined, "plan.file") || !strings.Contains(combined, "logging.level") {
		t.Errorf("combined error should name failing fields: %s", combined)
	}
}
