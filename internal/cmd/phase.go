package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kestrel-tools/specforge/internal/config"
	"github.com/kestrel-tools/specforge/internal/workflow"
)

var (
	constituteForce bool
	specifyForce    bool
)

var constituteCmd = &cobra.Command{
	Use:   "constitute",
	Short: "Generate the project constitution (phase 1)",
	Long: `Generate constitution.md, the artifact of the first workflow phase: the
project's non-negotiable principles and constraints. The phase is marked
complete once the artifact is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArtifactPhase(workflow.PhaseConstitute, "constitution.md", "Constitution", constituteForce)
	},
}

var specifyCmd = &cobra.Command{
	Use:   "specify",
	Short: "Generate the specification (phase 2)",
	Long: `Generate specification.md, the artifact of the second workflow phase.
Requires the constitute phase to be complete unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArtifactPhase(workflow.PhaseSpecify, "specification.md", "Specification", specifyForce)
	},
}

func init() {
	constituteCmd.Flags().BoolVar(&constituteForce, "force", false, "regenerate the artifact and ignore phase ordering")
	specifyCmd.Flags().BoolVar(&specifyForce, "force", false, "regenerate the artifact and ignore phase ordering")
	rootCmd.AddCommand(constituteCmd)
	rootCmd.AddCommand(specifyCmd)
}

// runArtifactPhase is the shared implementation of the two template-artifact
// phases: start the phase, write its markdown artifact, mark it complete.
func runArtifactPhase(phase workflow.Phase, artifact, title string, force bool) error {
	cfg := config.Get()
	logger := newLogger(cfg, string(phase)).WithPhase(string(phase))
	defer logger.Close()

	state, err := workflow.Load(cfg.Workspace.Dir)
	if err != nil {
		return err
	}

	if err := state.Start(phase, force); err != nil {
		return err
	}

	fm := workflow.FrontMatter{
		Title:     title,
		Phase:     phase,
		CreatedAt: time.Now(),
	}
	if err := workflow.WriteArtifact(artifact, fm, workflow.ArtifactBody(phase), force); err != nil {
		return err
	}
	logger.Info("artifact written", "path", artifact)

	state.Complete(phase, artifact)
	if err := state.Save(cfg.Workspace.Dir); err != nil {
		return err
	}

	fmt.Printf("Wrote %s — edit it, then continue with the next phase.\n", artifact)
	return nil
}
