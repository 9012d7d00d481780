package migrate

import (
	"fmt"
	"path"

	kjson "github.com/knadh/koanf/parsers/json"

	"github.com/cymig/cymig/internal/cfgval"
	"github.com/cymig/cymig/internal/vfs"
	"github.com/cymig/cymig/internal/workspace"
)

// ParseError reports a malformed legacy config file. It is not recovered
// from: translation aborts the target's migration.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LegacyConfig holds the recognized fields of the old cypress.json, with
// defaults applied, plus every unrecognized key as passthrough. The
// deprecated modifyObstructiveCode key is dropped during translation.
type LegacyConfig struct {
	BaseURL           cfgval.Value
	IntegrationFolder string
	SupportFile       cfgval.Value // string path, or false when disabled
	Passthrough       map[string]cfgval.Value
}

// NewConfig is the translated configuration that the emitter serializes
// into cypress.config.ts.
type NewConfig struct {
	BaseURL cfgval.Value // null unless the legacy value was truthy
	E2E     map[string]cfgval.Value
}

// ConfigPair carries both sides of one translation; the path migrator
// needs the old values to find files and the new values to place them.
type ConfigPair struct {
	Old *LegacyConfig
	New *NewConfig
}

// Translate reads and parses the legacy config file and produces the new
// configuration. New-layout defaults are applied only when the matching
// conventional marker exists in the tree: a project already on a
// non-default legacy layout keeps its own paths.
func Translate(tree vfs.Tree, project *workspace.ProjectConfiguration, oldConfigPath string) (*ConfigPair, error) {
	content, err := tree.Read(oldConfigPath)
	if err != nil {
		return nil, err
	}
	raw, err := kjson.Parser().Unmarshal([]byte(content))
	if err != nil {
		return nil, &ParseError{Path: oldConfigPath, Err: err}
	}

	old := &LegacyConfig{
		BaseURL:           cfgval.NewNull(),
		IntegrationFolder: DefaultIntegrationFolder,
		SupportFile:       cfgval.NewString(DefaultSupportFile),
		Passthrough:       make(map[string]cfgval.Value),
	}
	for key, value := range raw {
		switch key {
		case "baseUrl":
			old.BaseURL = cfgval.FromJSON(value)
		case "modifyObstructiveCode":
			// Dropped: the new runner no longer supports it.
		case "integrationFolder":
			if s, ok := value.(string); ok {
				old.IntegrationFolder = s
			}
		case "supportFile":
			old.SupportFile = cfgval.FromJSON(value)
		default:
			old.Passthrough[key] = cfgval.FromJSON(value)
		}
	}

	e2e := make(map[string]cfgval.Value, len(old.Passthrough)+3)
	for key, value := range old.Passthrough {
		e2e[key] = value
	}
	e2e["specPattern"] = cfgval.NewString(SpecPattern)

	if old.SupportFile.Truthy() && tree.Exists(path.Join(project.SourceRoot, legacySupportIndex)) {
		e2e["supportFile"] = cfgval.NewString(DefaultSupportFile)
	} else {
		e2e["supportFile"] = old.SupportFile
	}

	if tree.Exists(path.Join(project.SourceRoot, legacyIntegrationDir)) {
		e2e["integrationFolder"] = cfgval.NewString(DefaultIntegrationFolder)
	} else {
		e2e["integrationFolder"] = cfgval.NewString(old.IntegrationFolder)
	}

	newCfg := &NewConfig{BaseURL: cfgval.NewNull(), E2E: e2e}
	if old.BaseURL.Truthy() {
		newCfg.BaseURL = old.BaseURL
	}
	return &ConfigPair{Old: old, New: newCfg}, nil
}
