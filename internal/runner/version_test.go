package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cymig/cymig/internal/vfs"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Version
	}{
		{"10.2.0", Version{Major: 10, Minor: 2, Patch: 0}},
		{"^9.1.0", Version{Major: 9, Minor: 1, Patch: 0}},
		{"~8.0", Version{Major: 8}},
		{"v8.1.1", Version{Major: 8, Minor: 1, Patch: 1}},
		{">=7.0.0", Version{Major: 7}},
		{"10.x", Version{Major: 10}},
		{">=8.0.0 <11.0.0", Version{Major: 8}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVersion(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Major, got.Major)
			assert.Equal(t, tt.want.Minor, got.Minor)
			assert.Equal(t, tt.want.Patch, got.Patch)
			assert.Equal(t, tt.input, got.Raw)
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "^", "not-a-version"} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseVersion(input)
			assert.Error(t, err)
		})
	}
}

func TestInstalledVersion_DevDependenciesPreferred(t *testing.T) {
	t.Parallel()

	tree := vfs.NewMemTree()
	require.NoError(t, tree.Write("package.json", `{
		"dependencies": {"cypress": "^8.0.0"},
		"devDependencies": {"cypress": "^10.2.0"}
	}`))

	v, err := InstalledVersion(tree)
	require.NoError(t, err)
	assert.Equal(t, 10, v.Major)
}

func TestInstalledVersion_FallsBackToDependencies(t *testing.T) {
	t.Parallel()

	tree := vfs.NewMemTree()
	require.NoError(t, tree.Write("package.json", `{"dependencies": {"cypress": "9.5.1"}}`))

	major, err := InstalledMajorVersion(tree)
	require.NoError(t, err)
	assert.Equal(t, 9, major)
}

func TestInstalledVersion_NotADependency(t *testing.T) {
	t.Parallel()

	tree := vfs.NewMemTree()
	require.NoError(t, tree.Write("package.json", `{"devDependencies": {"jest": "^29.0.0"}}`))

	_, err := InstalledVersion(tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a dependency")
}

func TestInstalledVersion_NoPackageJSON(t *testing.T) {
	t.Parallel()

	_, err := InstalledVersion(vfs.NewMemTree())
	assert.ErrorIs(t, err, vfs.ErrNotExist)
}
