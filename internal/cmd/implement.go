package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrel-tools/specforge/internal/config"
	"github.com/kestrel-tools/specforge/internal/taskgraph"
	"github.com/kestrel-tools/specforge/internal/tui"
	"github.com/kestrel-tools/specforge/internal/util"
	"github.com/kestrel-tools/specforge/internal/workflow"
)

var (
	implementForce       bool
	implementInteractive bool
	implementDone        bool
)

var implementCmd = &cobra.Command{
	Use:   "implement",
	Short: "Work through the execution schedule (phase 4)",
	Long: `Print the wave-by-wave execution checklist computed by the plan phase and
mark the implement phase in progress. Tasks within one wave have no
dependencies on each other and can be worked on in parallel.

With --interactive, open a viewer to browse the phases and waves.
With --done, mark the implement phase (and the workflow) complete.`,
	RunE: runImplement,
}

func init() {
	implementCmd.Flags().BoolVar(&implementForce, "force", false, "ignore phase ordering")
	implementCmd.Flags().BoolVarP(&implementInteractive, "interactive", "i", false, "open the interactive viewer")
	implementCmd.Flags().BoolVar(&implementDone, "done", false, "mark the implement phase complete")
	rootCmd.AddCommand(implementCmd)
}

func runImplement(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger := newLogger(cfg, "implement").WithPhase(string(workflow.PhaseImplement))
	defer logger.Close()

	state, err := workflow.Load(cfg.Workspace.Dir)
	if err != nil {
		return err
	}

	if implementDone {
		state.Complete(workflow.PhaseImplement, "")
		if err := state.Save(cfg.Workspace.Dir); err != nil {
			return err
		}
		fmt.Println("Implement phase complete. The workflow is finished.")
		return nil
	}

	if err := state.Start(workflow.PhaseImplement, implementForce); err != nil {
		return err
	}
	if err := state.Save(cfg.Workspace.Dir); err != nil {
		return err
	}

	text, err := os.ReadFile(cfg.Plan.File)
	if err != nil {
		return fmt.Errorf("failed to read plan document: %w", err)
	}

	graph := taskgraph.Extract(string(text))
	if result := taskgraph.Validate(graph); !result.Valid {
		return fmt.Errorf("plan document is no longer valid; rerun 'specforge validate'")
	}
	waves, err := taskgraph.Schedule(graph)
	if err != nil {
		return err
	}
	metrics := taskgraph.ComputeMetrics(graph, waves)
	logger.Info("implement phase started", "waves", len(waves))

	if implementInteractive {
		return tui.Run(tui.NewModel(state, graph, waves, metrics, cfg.TUI.MaxNameWidth))
	}

	for i, wave := range waves {
		fmt.Printf("Wave %d:\n", i+1)
		for _, id := range wave {
			task := graph.Get(id)
			fmt.Printf("  [ ] %s: %s\n", id, util.TruncateString(task.Name, cfg.TUI.MaxNameWidth))
		}
	}
	fmt.Println("\nRun 'specforge implement --done' when all tasks are finished.")
	return nil
}
