package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrel-tools/specforge/internal/config"
	"github.com/kestrel-tools/specforge/internal/workflow"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a specforge workspace",
	Long: `Create the workspace directory and an initial workflow state with all
four phases pending. Run this once per project before any phase command.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger := newLogger(cfg, "init")
	defer logger.Close()

	if _, err := workflow.Load(cfg.Workspace.Dir); err == nil {
		return fmt.Errorf("workspace already initialized in %s", cfg.Workspace.Dir)
	} else if !errors.Is(err, workflow.ErrNotInitialized) {
		return err
	}

	state := workflow.NewState()
	if err := state.Save(cfg.Workspace.Dir); err != nil {
		return err
	}
	logger.Info("workspace initialized", "dir", cfg.Workspace.Dir)

	fmt.Printf("Initialized specforge workspace in %s\n\n", cfg.Workspace.Dir)
	fmt.Println("Next steps:")
	fmt.Println("  specforge constitute   # write the project constitution")
	fmt.Println("  specforge specify      # write the specification")
	fmt.Printf("  specforge plan         # analyze %s\n", cfg.Plan.File)
	fmt.Println("  specforge implement    # work through the schedule")
	return nil
}
