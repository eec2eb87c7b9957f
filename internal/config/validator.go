package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "plan.file")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Workspace.Dir) == "" {
		errors = append(errors, ValidationError{
			Field:   "workspace.dir",
			Value:   c.Workspace.Dir,
			Message: "must not be empty",
		})
	}

	if strings.TrimSpace(c.Plan.File) == "" {
		errors = append(errors, ValidationError{
			Field:   "plan.file",
			Value:   c.Plan.File,
			Message: "must not be empty",
		})
	}

	if strings.TrimSpace(c.Plan.ReportFile) == "" {
		errors = append(errors, ValidationError{
			Field:   "plan.report_file",
			Value:   c.Plan.ReportFile,
			Message: "must not be empty",
		})
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.TUI.MaxNameWidth < 10 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_name_width",
			Value:   c.TUI.MaxNameWidth,
			Message: "must be at least 10",
		})
	}

	return errors
}
