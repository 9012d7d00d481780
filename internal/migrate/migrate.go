// Package migrate converts a project's e2e test setup from the legacy
// schema (cypress.json, src/integration, *.spec.* files) to the modern
// one (cypress.config.ts, src/e2e, *.cy.* files). All work happens
// against a virtual file tree; nothing here touches the real filesystem.
package migrate

import (
	"errors"
	"fmt"
	"io"

	"github.com/cymig/cymig/internal/runner"
	"github.com/cymig/cymig/internal/vfs"
	"github.com/cymig/cymig/internal/workspace"
)

// Migrator runs migrations for the targets of one workspace.
type Migrator struct {
	tree        vfs.Tree
	store       *workspace.Store
	out         io.Writer
	runnerMajor func(vfs.Tree) (int, error)
}

// Option configures a Migrator.
type Option func(*Migrator)

// WithOutput directs warnings and notes to w instead of io.Discard.
func WithOutput(w io.Writer) Option {
	return func(m *Migrator) { m.out = w }
}

// WithRunnerVersion overrides how the installed Cypress major version is
// detected. Used by tests and by callers that already know the version.
func WithRunnerVersion(fn func(vfs.Tree) (int, error)) Option {
	return func(m *Migrator) { m.runnerMajor = fn }
}

// New returns a Migrator over the given tree and workspace store.
func New(tree vfs.Tree, store *workspace.Store, opts ...Option) *Migrator {
	m := &Migrator{
		tree:        tree,
		store:       store,
		out:         io.Discard,
		runnerMajor: runner.InstalledMajorVersion,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Result reports the outcome for one target.
type Result struct {
	Target   string
	Migrated bool
	Skipped  bool
	Err      error
}

// Run migrates each named target of the project in order. A failing
// target aborts that target only; remaining targets still run. The
// returned error joins all per-target failures.
func (m *Migrator) Run(projectName string, targets []string) ([]Result, error) {
	var errs []error
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		res, err := m.MigrateTarget(projectName, target)
		if err != nil {
			res.Err = err
			errs = append(errs, fmt.Errorf("target %s: %w", target, err))
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

// MigrateTarget migrates a single target to completion: eligibility gate,
// config translation, path relocation, config emission, old-config
// removal, and the project descriptor update. Ineligible targets are
// skipped without error.
func (m *Migrator) MigrateTarget(projectName, targetName string) (Result, error) {
	res := Result{Target: targetName}

	project, err := m.store.ReadProjectConfiguration(projectName)
	if err != nil {
		return res, err
	}

	major, err := m.runnerMajor(m.tree)
	if err != nil {
		fmt.Fprintf(m.out, "Warning: could not detect the installed Cypress version: %v\n", err)
		res.Skipped = true
		return res, nil
	}

	elig := CheckEligibility(m.tree, project, targetName, major, m.out)
	if !elig.Eligible {
		res.Skipped = true
		return res, nil
	}

	pair, err := Translate(m.tree, project, elig.OldConfigPath)
	if err != nil {
		return res, err
	}

	plan, err := MigratePaths(m.tree, project, pair)
	if err != nil {
		return res, err
	}
	for _, note := range plan.Notes {
		fmt.Fprintf(m.out, "Note: %s\n", note)
	}

	if err := m.tree.Write(elig.NewConfigPath, Emit(pair.New)); err != nil {
		return res, err
	}
	if err := m.tree.Delete(elig.OldConfigPath); err != nil {
		return res, err
	}

	target := project.Targets[targetName]
	if target.Options == nil {
		target.Options = make(map[string]interface{})
	}
	target.Options["cypressConfig"] = elig.NewConfigPath
	target.Options["testingType"] = "e2e"
	project.Targets[targetName] = target
	if err := m.store.UpdateProjectConfiguration(projectName, project); err != nil {
		return res, err
	}

	res.Migrated = true
	return res, nil
}
