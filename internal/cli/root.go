// Package cli provides the Cobra-based commands for the cymig migration
// tool: migrate (perform the conversion), check (report eligibility
// without writing), and version.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cymig",
	Short: "Migrate Cypress e2e projects to the config-based setup",
	Long: `cymig upgrades a workspace project's end-to-end test setup from the
legacy cypress.json schema to the modern cypress.config.ts schema:

  - cypress.json            ->  cypress.config.ts
  - src/integration/        ->  src/e2e/
  - *.spec.{js,ts,...}      ->  *.cy.{js,ts,...}
  - src/support/index.ts    ->  src/support/e2e.ts

Changes are staged in memory and written to disk only when the whole
migration succeeds, so a failed run leaves the workspace untouched.`,
	Example: `  # Report which targets are eligible, changing nothing
  cymig check --project app-e2e

  # Migrate the e2e target of a project
  cymig migrate --project app-e2e --targets e2e

  # See what would change without writing
  cymig migrate --project app-e2e --targets e2e --dry-run`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".cymig.json", "Path to cymig config file")
	rootCmd.PersistentFlags().StringP("workspace", "w", "", "Workspace directory (default current directory)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
}
