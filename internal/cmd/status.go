package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrel-tools/specforge/internal/config"
	"github.com/kestrel-tools/specforge/internal/tui/styles"
	"github.com/kestrel-tools/specforge/internal/workflow"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workflow phase status",
	Long:  `Display the status of each workflow phase and its generated artifact.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	state, err := workflow.Load(cfg.Workspace.Dir)
	if err != nil {
		return err
	}

	fmt.Println(styles.Title.Render("Workflow status"))
	for _, p := range workflow.Phases() {
		ps := state.Phases[p]
		line := fmt.Sprintf("%s %-11s %s", styles.StatusIcon(string(ps.Status)), p.Title(), ps.Status)
		if ps.Artifact != "" {
			line += styles.Muted.Render(fmt.Sprintf("  → %s", ps.Artifact))
		}
		fmt.Println(line)
	}
	fmt.Printf("\nUpdated %s\n", state.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
