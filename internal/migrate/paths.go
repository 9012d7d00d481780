package migrate

import (
	"fmt"
	"path"
	"strings"

	"github.com/cymig/cymig/internal/vfs"
	"github.com/cymig/cymig/internal/workspace"
)

// Move is one planned file relocation. Rewrite marks files whose import
// statements must be updated after the move.
type Move struct {
	From    string
	To      string
	Rewrite bool
}

// PathPlan is the full set of relocations and rewrites for one target,
// computed up front so the planning logic stays pure and the effects run
// in one place.
type PathPlan struct {
	SupportRename *Move
	Moves         []Move

	// OldLeaf/NewLeaf are the import fragments other files use to
	// reference the support file; set only when RewriteImports is true.
	OldLeaf        string
	NewLeaf        string
	RewriteImports bool

	// CleanupDir is the old integration folder, deleted after the moves
	// if it ended up empty.
	CleanupDir string

	Notes []string
}

// PlanPaths computes the relocation plan for a translated config pair.
// It reads the tree but never mutates it.
func PlanPaths(tree vfs.Tree, project *workspace.ProjectConfiguration, pair *ConfigPair) (*PathPlan, error) {
	oldFolder := path.Join(project.Root, pair.Old.IntegrationFolder)
	newIntegration, ok := pair.New.E2E["integrationFolder"].StringVal()
	if !ok {
		return nil, fmt.Errorf("translated config has no integration folder")
	}
	newFolder := path.Join(project.Root, newIntegration)

	plan := &PathPlan{CleanupDir: oldFolder}

	if oldSupport, ok := pair.Old.SupportFile.StringVal(); ok && pair.Old.SupportFile.Truthy() {
		newSupport, ok := pair.New.E2E["supportFile"].StringVal()
		if !ok {
			return nil, fmt.Errorf("translated config has a disabled support file for an in-use legacy one")
		}
		from := path.Join(project.Root, oldSupport)
		to := path.Join(project.Root, newSupport)
		plan.SupportRename = &Move{From: from, To: to}
		plan.RewriteImports = true
		plan.OldLeaf = ImportLeaf(from)
		plan.NewLeaf = ImportLeaf(to)
	} else if idx := path.Join(project.SourceRoot, legacySupportIndex); tree.Exists(idx) {
		// The support file is unused, but the conventional default still
		// exists on disk. Rename it anyway to keep the layout consistent.
		plan.SupportRename = &Move{From: idx, To: path.Join(project.SourceRoot, "support/e2e.ts")}
		plan.Notes = append(plan.Notes,
			fmt.Sprintf("renamed unused support file %s to match the new layout", idx))
	}

	err := tree.VisitNotIgnoredFiles(project.SourceRoot, func(p string) error {
		rel, ok := pathWithin(p, oldFolder)
		if !ok {
			return nil
		}
		name := path.Base(rel)
		if strings.Contains(name, oldSpecMarker) {
			name = strings.Replace(name, oldSpecMarker, newSpecMarker, 1)
		}
		to := path.Join(newFolder, path.Dir(rel), name)
		plan.Moves = append(plan.Moves, Move{
			From:    p,
			To:      to,
			Rewrite: plan.RewriteImports && rewritableExtensions[path.Ext(to)],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Apply performs the plan against the tree: the support rename, the spec
// moves with import rewrites, then deletion of the old integration folder
// if it is empty. Failures propagate immediately; partially applied plans
// are not rolled back here (the staged tree gives callers that option).
func (plan *PathPlan) Apply(tree vfs.Tree) error {
	if plan.SupportRename != nil {
		if err := tree.Rename(plan.SupportRename.From, plan.SupportRename.To); err != nil {
			return fmt.Errorf("moving support file: %w", err)
		}
	}
	for _, mv := range plan.Moves {
		if err := tree.Rename(mv.From, mv.To); err != nil {
			return fmt.Errorf("moving %s: %w", mv.From, err)
		}
		if !mv.Rewrite {
			continue
		}
		content, err := tree.Read(mv.To)
		if err != nil {
			return err
		}
		if updated := RewriteImports(content, plan.OldLeaf, plan.NewLeaf); updated != content {
			if err := tree.Write(mv.To, updated); err != nil {
				return err
			}
		}
	}
	if tree.Exists(plan.CleanupDir) {
		children, err := tree.Children(plan.CleanupDir)
		if err != nil {
			return err
		}
		if len(children) == 0 {
			if err := tree.Delete(plan.CleanupDir); err != nil {
				return err
			}
		}
	}
	return nil
}

// MigratePaths plans and applies the relocation in one call.
func MigratePaths(tree vfs.Tree, project *workspace.ProjectConfiguration, pair *ConfigPair) (*PathPlan, error) {
	plan, err := PlanPaths(tree, project, pair)
	if err != nil {
		return nil, err
	}
	if err := plan.Apply(tree); err != nil {
		return nil, err
	}
	return plan, nil
}

// ImportLeaf returns the path fragment an import statement would use to
// reference the support file at p: "<parentDir>/<basename>" without the
// extension, collapsing to just "<parentDir>" for index files.
func ImportLeaf(p string) string {
	dir := path.Base(path.Dir(p))
	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if base == "index" {
		return dir
	}
	return dir + "/" + base
}

// pathWithin reports whether p is inside dir, comparing whole path
// segments: "src/e2e-old/a.ts" is not within "src/e2e".
func pathWithin(p, dir string) (rel string, ok bool) {
	prefix := dir + "/"
	if !strings.HasPrefix(p, prefix) {
		return "", false
	}
	return strings.TrimPrefix(p, prefix), true
}
