package migrate

// Shared layout constants. The translator, path migrator, and emitter all
// derive paths from these so the two schemas cannot drift apart between
// components.
const (
	// LegacyExecutor marks a target as using the old Cypress integration.
	LegacyExecutor = "@nrwl/cypress:cypress"

	// File names for the two config schemas, resolved under the project root.
	OldConfigFileName = "cypress.json"
	NewConfigFileName = "cypress.config.ts"

	// Defaults under the new layout, relative to the project root.
	DefaultIntegrationFolder = "src/e2e"
	DefaultSupportFile       = "src/support/e2e.ts"

	// SpecPattern is the fixed glob for spec files under the new layout.
	SpecPattern = "src/e2e/**/*.cy.{js,jsx,ts,tsx}"

	// Conventional legacy markers, relative to the project source root.
	legacySupportIndex   = "support/index.ts"
	legacyIntegrationDir = "integration"

	// Suffix naming conventions for spec files.
	oldSpecMarker = ".spec."
	newSpecMarker = ".cy."

	// MinRunnerMajor is the lowest Cypress major this migration supports.
	MinRunnerMajor = 8

	migrationGuideURL = "https://docs.cypress.io/guides/references/migration-guide"
)

// rewritableExtensions lists the file extensions whose import statements
// are rewritten when the support file moves.
var rewritableExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
}
