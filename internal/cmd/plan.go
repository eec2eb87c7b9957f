package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kestrel-tools/specforge/internal/config"
	"github.com/kestrel-tools/specforge/internal/taskgraph"
	"github.com/kestrel-tools/specforge/internal/tui/styles"
	"github.com/kestrel-tools/specforge/internal/workflow"
)

var (
	planForce    bool
	planScaffold bool
)

var planCmd = &cobra.Command{
	Use:   "plan [plan-file]",
	Short: "Analyze the plan document and compute the execution schedule (phase 3)",
	Long: `Parse the plan document into a task dependency graph, validate it, group
the tasks into parallel execution waves, and report the parallelization
score and estimated time savings.

Validation runs first and the command refuses to schedule an invalid
graph: every missing dependency reference and the first dependency cycle
are printed together.

The rendered report is written to the workspace directory and the plan
phase is marked complete.

Examples:
  # Analyze the default plan document
  specforge plan

  # Analyze a specific document
  specforge plan docs/plan.md

  # Write a starter plan document to get going
  specforge plan --scaffold`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planForce, "force", false, "ignore phase ordering")
	planCmd.Flags().BoolVar(&planScaffold, "scaffold", false, "write a starter plan document and exit")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger := newLogger(cfg, "plan").WithPhase(string(workflow.PhasePlan))
	defer logger.Close()

	planFile := cfg.Plan.File
	if len(args) > 0 {
		planFile = args[0]
	}

	if planScaffold {
		fm := workflow.FrontMatter{Title: "Plan", Phase: workflow.PhasePlan, CreatedAt: time.Now()}
		if err := workflow.WriteArtifact(planFile, fm, workflow.PlanTemplate, false); err != nil {
			return err
		}
		fmt.Printf("Wrote starter plan to %s — fill in your tasks, then rerun 'specforge plan'.\n", planFile)
		return nil
	}

	state, err := workflow.Load(cfg.Workspace.Dir)
	if err != nil {
		return err
	}
	if err := state.Start(workflow.PhasePlan, planForce); err != nil {
		return err
	}

	text, err := os.ReadFile(planFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("plan document %s not found (try 'specforge plan --scaffold')", planFile)
		}
		return fmt.Errorf("failed to read plan document: %w", err)
	}

	graph := taskgraph.Extract(string(text))
	logger.Info("plan document parsed", "file", planFile, "tasks", graph.Len())

	result := taskgraph.Validate(graph)
	if !result.Valid {
		fmt.Println(styles.Error.Render(fmt.Sprintf("Plan is invalid (%d errors):", len(result.Errors))))
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
		logger.Warn("plan validation failed", "errors", len(result.Errors))
		return fmt.Errorf("plan document failed validation")
	}

	waves, err := taskgraph.Schedule(graph)
	if err != nil {
		return err
	}
	metrics := taskgraph.ComputeMetrics(graph, waves)
	report := taskgraph.Render(graph, waves, metrics)

	fmt.Print(report)
	logger.Info("schedule computed", "waves", len(waves), "score", metrics.Score)

	reportPath := filepath.Join(cfg.Workspace.Dir, cfg.Plan.ReportFile)
	fm := workflow.FrontMatter{Title: "Plan Report", Phase: workflow.PhasePlan, CreatedAt: time.Now()}
	if err := workflow.WriteArtifact(reportPath, fm, report, true); err != nil {
		return err
	}

	state.Complete(workflow.PhasePlan, reportPath)
	if err := state.Save(cfg.Workspace.Dir); err != nil {
		return err
	}

	fmt.Printf("\nReport written to %s\n", reportPath)
	return nil
}
