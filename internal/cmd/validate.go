package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrel-tools/specforge/internal/config"
	"github.com/kestrel-tools/specforge/internal/taskgraph"
	"github.com/kestrel-tools/specforge/internal/tui/styles"
)

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate the plan document's dependency graph",
	Long: `Parse the plan document and check its task dependency graph without
scheduling it.

This command checks:
  - Referential integrity: every dependency names a task in the document
  - Acyclicity: no circular dependency chains

All errors are reported together. The exit code indicates the result:
  0 - Plan is valid
  1 - Plan has validation errors or could not be read

Examples:
  # Validate the default plan document
  specforge validate

  # Validate a specific document with JSON output
  specforge validate --json docs/plan.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output validation result as JSON")
	rootCmd.AddCommand(validateCmd)
}

// ValidationOutput is the JSON output format for validation results.
type ValidationOutput struct {
	Valid      bool     `json:"valid"`
	FilePath   string   `json:"file_path"`
	TaskCount  int      `json:"task_count"`
	ErrorCount int      `json:"error_count"`
	Errors     []string `json:"errors"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger := newLogger(cfg, "validate")
	defer logger.Close()

	planFile := cfg.Plan.File
	if len(args) > 0 {
		planFile = args[0]
	}

	text, err := os.ReadFile(planFile)
	if err != nil {
		return fmt.Errorf("failed to read plan document: %w", err)
	}

	graph := taskgraph.Extract(string(text))
	result := taskgraph.Validate(graph)
	logger.Info("plan validated", "file", planFile, "tasks", graph.Len(), "valid", result.Valid)

	if validateJSON {
		out := ValidationOutput{
			Valid:      result.Valid,
			FilePath:   planFile,
			TaskCount:  graph.Len(),
			ErrorCount: len(result.Errors),
			Errors:     result.Errors,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else if result.Valid {
		fmt.Println(styles.Secondary.Render(fmt.Sprintf("✓ %s is valid (%d tasks)", planFile, graph.Len())))
	} else {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %s has %d errors:", planFile, len(result.Errors))))
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	if !result.Valid {
		return fmt.Errorf("plan document failed validation")
	}
	return nil
}
