package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cymig/cymig/internal/vfs"
)

const fixture = `{
  "version": 2,
  "generators": {"@nrwl/react": {"library": {"style": "css"}}},
  "projects": {
    "app-e2e": {
      "root": "apps/app-e2e",
      "sourceRoot": "apps/app-e2e/src",
      "targets": {
        "e2e": {
          "executor": "@nrwl/cypress:cypress",
          "options": {"cypressConfig": "apps/app-e2e/cypress.json"}
        }
      }
    },
    "lib": {"root": "libs/lib"}
  }
}`

func newStore(t *testing.T) (*vfs.MemTree, *Store) {
	t.Helper()
	tree := vfs.NewMemTree()
	require.NoError(t, tree.Write(DefaultFile, fixture))
	return tree, NewStore(tree, DefaultFile)
}

func TestReadProjectConfiguration(t *testing.T) {
	t.Parallel()

	_, store := newStore(t)
	cfg, err := store.ReadProjectConfiguration("app-e2e")
	require.NoError(t, err)

	assert.Equal(t, "apps/app-e2e", cfg.Root)
	assert.Equal(t, "apps/app-e2e/src", cfg.SourceRoot)
	require.Contains(t, cfg.Targets, "e2e")
	assert.Equal(t, "@nrwl/cypress:cypress", cfg.Targets["e2e"].Executor)
	assert.Equal(t, "apps/app-e2e/cypress.json", cfg.Targets["e2e"].Options["cypressConfig"])
}

func TestReadProjectConfiguration_NotFound(t *testing.T) {
	t.Parallel()

	_, store := newStore(t)
	_, err := store.ReadProjectConfiguration("ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `project "ghost" not found`)
}

func TestReadProjectConfiguration_MissingWorkspaceFile(t *testing.T) {
	t.Parallel()

	store := NewStore(vfs.NewMemTree(), DefaultFile)
	_, err := store.ReadProjectConfiguration("app-e2e")
	assert.ErrorIs(t, err, vfs.ErrNotExist)
}

func TestReadProjectConfiguration_MalformedJSON(t *testing.T) {
	t.Parallel()

	tree := vfs.NewMemTree()
	require.NoError(t, tree.Write(DefaultFile, "{not json"))
	_, err := NewStore(tree, DefaultFile).ReadProjectConfiguration("app-e2e")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestUpdateProjectConfiguration(t *testing.T) {
	t.Parallel()

	tree, store := newStore(t)
	cfg, err := store.ReadProjectConfiguration("app-e2e")
	require.NoError(t, err)

	cfg.Targets["e2e"] = TargetConfiguration{
		Executor: cfg.Targets["e2e"].Executor,
		Options: map[string]interface{}{
			"cypressConfig": "apps/app-e2e/cypress.config.ts",
			"testingType":   "e2e",
		},
	}
	require.NoError(t, store.UpdateProjectConfiguration("app-e2e", cfg))

	updated, err := store.ReadProjectConfiguration("app-e2e")
	require.NoError(t, err)
	assert.Equal(t, "apps/app-e2e/cypress.config.ts", updated.Targets["e2e"].Options["cypressConfig"])
	assert.Equal(t, "e2e", updated.Targets["e2e"].Options["testingType"])

	// Unrelated keys and sibling projects survive the rewrite
	content, err := tree.Read(DefaultFile)
	require.NoError(t, err)
	assert.Contains(t, content, "@nrwl/react")
	other, err := store.ReadProjectConfiguration("lib")
	require.NoError(t, err)
	assert.Equal(t, "libs/lib", other.Root)
}

func TestUpdateProjectConfiguration_RejectsMissingRoot(t *testing.T) {
	t.Parallel()

	_, store := newStore(t)
	err := store.UpdateProjectConfiguration("app-e2e", &ProjectConfiguration{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestProjectNames(t *testing.T) {
	t.Parallel()

	_, store := newStore(t)
	names, err := store.ProjectNames()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"app-e2e", "lib"}, names)
}
