// Package testutil provides test helpers for building virtual trees and
// workspace fixtures.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/cymig/cymig/internal/vfs"
	"github.com/cymig/cymig/internal/workspace"
)

// NewTree builds a MemTree pre-populated with the given files. The
// journal is reset afterwards so tests observe only the mutations made
// by the code under test.
func NewTree(t *testing.T, files map[string]string) *vfs.MemTree {
	t.Helper()

	tree := vfs.NewMemTree()
	for path, content := range files {
		if err := tree.Write(path, content); err != nil {
			t.Fatalf("failed to seed tree with %s: %v", path, err)
		}
	}
	tree.ResetJournal()
	return tree
}

// WriteWorkspace writes a workspace.json containing the given projects
// into the tree and returns a store over it.
func WriteWorkspace(t *testing.T, tree *vfs.MemTree, projects map[string]workspace.ProjectConfiguration) *workspace.Store {
	t.Helper()

	doc := map[string]interface{}{
		"version":  2,
		"projects": projects,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("failed to encode workspace fixture: %v", err)
	}
	if err := tree.Write(workspace.DefaultFile, string(data)); err != nil {
		t.Fatalf("failed to write workspace fixture: %v", err)
	}
	return workspace.NewStore(tree, workspace.DefaultFile)
}

// WritePackageJSON writes a root package.json declaring the given
// Cypress version as a devDependency.
func WritePackageJSON(t *testing.T, tree *vfs.MemTree, cypressVersion string) {
	t.Helper()

	content := `{"devDependencies": {"cypress": "` + cypressVersion + `"}}`
	if err := tree.Write("package.json", content); err != nil {
		t.Fatalf("failed to write package.json fixture: %v", err)
	}
}

// E2EProject returns a conventional e2e project descriptor rooted at
// apps/<name> with a single target using the given executor.
func E2EProject(name, executor string) workspace.ProjectConfiguration {
	root := "apps/" + name
	return workspace.ProjectConfiguration{
		Root:       root,
		SourceRoot: root + "/src",
		Targets: map[string]workspace.TargetConfiguration{
			"e2e": {Executor: executor},
		},
	}
}
