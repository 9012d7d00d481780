package migrate

import (
	"fmt"
	"io"
	"path"

	"github.com/cymig/cymig/internal/vfs"
	"github.com/cymig/cymig/internal/workspace"
)

// Eligibility is the result of the pre-migration gate. When Eligible is
// false the caller skips the target; the config paths are still resolved
// whenever the target exists so callers can report them.
type Eligibility struct {
	Eligible      bool
	OldConfigPath string
	NewConfigPath string
}

// CheckEligibility decides whether the named target of project can be
// migrated. It has no side effects beyond a warning on out when the
// installed runner is below the supported version floor.
func CheckEligibility(tree vfs.Tree, project *workspace.ProjectConfiguration, targetName string, runnerMajor int, out io.Writer) Eligibility {
	target, ok := project.Targets[targetName]
	if !ok {
		return Eligibility{}
	}

	oldConfigPath := path.Join(project.Root, OldConfigFileName)
	if declared, ok := target.Options["cypressConfig"].(string); ok && declared != "" {
		oldConfigPath = declared
	}
	newConfigPath := path.Join(project.Root, NewConfigFileName)
	result := Eligibility{OldConfigPath: oldConfigPath, NewConfigPath: newConfigPath}

	if runnerMajor < MinRunnerMajor {
		fmt.Fprintf(out, "Warning: Cypress v%d is installed, but this migration needs at least v%d. Upgrade Cypress first: %s\n",
			runnerMajor, MinRunnerMajor, migrationGuideURL)
		return result
	}

	result.Eligible = target.Executor == LegacyExecutor &&
		tree.Exists(oldConfigPath) &&
		!tree.Exists(newConfigPath)
	return result
}
