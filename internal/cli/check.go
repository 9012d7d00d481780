package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cymig/cymig/internal/migrate"
	"github.com/cymig/cymig/internal/runner"
	"github.com/cymig/cymig/internal/vfs"
	"github.com/cymig/cymig/internal/workspace"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which targets are eligible for migration",
	Long: `Check each target of a project against the migration gates (legacy
executor, old config present, new config absent, Cypress version) and
report the result. Nothing is written.`,
	Example: `  cymig check --project app-e2e
  cymig check --project app-e2e --targets e2e,e2e-ci`,
	RunE: runCheck,
}

var (
	checkProject string
	checkTargets []string
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkProject, "project", "p", "", "Project name in the workspace")
	checkCmd.Flags().StringSliceVarP(&checkTargets, "targets", "t", []string{"e2e"}, "Targets to check")
	checkCmd.MarkFlagRequired("project")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, workspaceDir, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}
	marks := newStatusMarks(cfg.NoColor)

	tree, err := vfs.LoadDir(workspaceDir)
	if err != nil {
		return fmt.Errorf("loading workspace: %w", err)
	}
	store := workspace.NewStore(tree, cfg.WorkspaceFile)
	project, err := store.ReadProjectConfiguration(checkProject)
	if err != nil {
		return err
	}

	major, err := runner.InstalledMajorVersion(tree)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, target := range checkTargets {
		elig := migrate.CheckEligibility(tree, project, target, major, cmd.ErrOrStderr())
		if elig.Eligible {
			fmt.Fprintf(out, "%s %s:%s  %s -> %s\n", marks.ok, checkProject, target, elig.OldConfigPath, elig.NewConfigPath)
		} else {
			fmt.Fprintf(out, "%s %s:%s not eligible\n", marks.dim("-"), checkProject, target)
		}
	}
	return nil
}
