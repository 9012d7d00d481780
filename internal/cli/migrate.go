package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cymig/cymig/internal/config"
	"github.com/cymig/cymig/internal/migrate"
	"github.com/cymig/cymig/internal/vfs"
	"github.com/cymig/cymig/internal/workspace"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Convert a project's e2e setup to the config-based schema",
	Long: `Convert the named targets of a project from cypress.json plus the
src/integration layout to cypress.config.ts plus the src/e2e layout.

Targets that are not eligible (wrong executor, config already migrated,
Cypress older than v` + fmt.Sprint(migrate.MinRunnerMajor) + `) are skipped. A failing target aborts that
target only; remaining targets still run.`,
	Example: `  cymig migrate --project app-e2e --targets e2e
  cymig migrate --project app-e2e --targets e2e,e2e-ci --dry-run`,
	RunE: runMigrate,
}

var (
	migrateProject string
	migrateTargets []string
	migrateDryRun  bool
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().StringVarP(&migrateProject, "project", "p", "", "Project name in the workspace")
	migrateCmd.Flags().StringSliceVarP(&migrateTargets, "targets", "t", []string{"e2e"}, "Targets to migrate")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Report planned changes without writing to disk")
	migrateCmd.MarkFlagRequired("project")
}

func runMigrate(cmd *cobra.Command, args []string) error {
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
	migrator := migrate.New(tree, store, migrate.WithOutput(cmd.ErrOrStderr()))

	spin := startSpinner(fmt.Sprintf("Migrating %s [%s]", migrateProject, strings.Join(migrateTargets, ", ")))
	results, runErr := migrator.Run(migrateProject, migrateTargets)
	if spin != nil {
		spin.Stop()
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		switch {
		case res.Migrated:
			fmt.Fprintf(out, "%s migrated %s:%s\n", marks.ok, migrateProject, res.Target)
		case res.Skipped:
			fmt.Fprintf(out, "%s skipped %s:%s (not eligible)\n", marks.dim("-"), migrateProject, res.Target)
		default:
			fmt.Fprintf(out, "%s failed %s:%s: %v\n", marks.fail, migrateProject, res.Target, res.Err)
		}
	}

	if migrateDryRun {
		printJournal(out, tree, marks)
		fmt.Fprintln(out, "Dry run: no files were written.")
		return runErr
	}
	if err := tree.Flush(workspaceDir); err != nil {
		return fmt.Errorf("writing changes: %w", err)
	}
	return runErr
}

// loadToolConfig resolves the tool configuration and workspace directory
// from the persistent flags.
func loadToolConfig(cmd *cobra.Command) (*config.Configuration, string, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", err
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	workspaceDir, _ := cmd.Flags().GetString("workspace")
	if workspaceDir == "" {
		workspaceDir = "."
	}
	return cfg, workspaceDir, nil
}

func printJournal(out io.Writer, tree *vfs.MemTree, marks statusMarks) {
	for _, c := range tree.Journal() {
		switch c.Op {
		case vfs.OpRename:
			fmt.Fprintf(out, "  %s %s -> %s\n", marks.dim("rename"), c.Path, c.To)
		default:
			fmt.Fprintf(out, "  %s %s\n", marks.dim(string(c.Op)), c.Path)
		}
	}
}

// startSpinner starts a progress spinner when stderr is a terminal.
// Returns nil in non-interactive runs.
func startSpinner(msg string) *spinner.Spinner {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " " + msg
	s.Start()
	return s
}

// statusMarks holds the per-run output decorations.
type statusMarks struct {
	ok   string
	fail string
	dim  func(a ...interface{}) string
}

func newStatusMarks(noColor bool) statusMarks {
	if noColor {
		color.NoColor = true
	}
	return statusMarks{
		ok:   color.New(color.FgGreen).Sprint("✓"),
		fail: color.New(color.FgRed).Sprint("✗"),
		dim:  color.New(color.Faint).SprintFunc(),
	}
}
