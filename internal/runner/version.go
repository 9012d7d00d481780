// Package runner detects the installed Cypress version from the
// workspace's package.json. The migration only uses the major version as
// a gate, but the full parsed version is kept for messages.
package runner

import (
	"fmt"
	"strconv"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"

	"github.com/cymig/cymig/internal/vfs"
)

// PackageName is the npm package whose version gates the migration.
const PackageName = "cypress"

// Version is a parsed semantic version.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses a version or npm range string such as "10.2.0",
// "^9.1.0", "~8.0", or "v8.1.1". Range operators are stripped and
// wildcard components ("x", "*") count as zero. For compound ranges only
// the first clause is considered.
func ParseVersion(raw string) (*Version, error) {
	v := strings.TrimSpace(raw)
	if i := strings.IndexAny(v, " |,"); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimLeft(v, "^~><=v")
	if v == "" {
		return nil, fmt.Errorf("parsing version %q: empty after stripping range operators", raw)
	}

	parts := strings.SplitN(v, ".", 3)
	nums := [3]int{}
	for i, part := range parts {
		if part == "x" || part == "*" || part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parsing version %q: %w", raw, err)
		}
		nums[i] = n
	}
	return &Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Raw: raw}, nil
}

// InstalledVersion reads the root package.json from the tree and returns
// the declared Cypress version, preferring devDependencies over
// dependencies. A workspace without a Cypress dependency is an error.
func InstalledVersion(tree vfs.Tree) (*Version, error) {
	content, err := tree.Read("package.json")
	if err != nil {
		return nil, fmt.Errorf("reading package.json: %w", err)
	}
	doc, err := kjson.Parser().Unmarshal([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	for _, section := range []string{"devDependencies", "dependencies"} {
		deps, _ := doc[section].(map[string]interface{})
		if raw, ok := deps[PackageName].(string); ok {
			return ParseVersion(raw)
		}
	}
	return nil, fmt.Errorf("%s is not a dependency of this workspace", PackageName)
}

// InstalledMajorVersion is InstalledVersion reduced to the major
// component, for use as a migration gate.
func InstalledMajorVersion(tree vfs.Tree) (int, error) {
	v, err := InstalledVersion(tree)
	if err != nil {
		return 0, err
	}
	return v.Major, nil
}
