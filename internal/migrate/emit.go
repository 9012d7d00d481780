package migrate

import (
	"fmt"
	"path"
	"strings"

	"github.com/cymig/cymig/internal/cfgval"
)

// Emit serializes the new configuration into cypress.config.ts source
// text. The e2e object loses its pluginsFile and integrationFolder keys
// before serialization: the new schema never carries a standalone
// integrationFolder, and a truthy pluginsFile turns into an import plus a
// setupNodeEvents reference instead. Output is syntactically valid
// TypeScript; formatting beyond that is left to downstream tooling.
func Emit(cfg *NewConfig) string {
	e2e := make(map[string]cfgval.Value, len(cfg.E2E))
	for key, value := range cfg.E2E {
		e2e[key] = value
	}
	pluginsFile := e2e["pluginsFile"]
	delete(e2e, "pluginsFile")
	delete(e2e, "integrationFolder")

	pluginImport := ""
	setupNodeEvents := ""
	if pluginsFile.Truthy() {
		if p, ok := pluginsFile.StringVal(); ok {
			pluginImport = fmt.Sprintf("import setupNodeEvents from '%s';\n", trimSourceExt(p))
			setupNodeEvents = "    setupNodeEvents,\n"
		}
	}

	topLevel := ""
	if cfg.BaseURL.Truthy() {
		topLevel = fmt.Sprintf("  baseUrl: %s,\n", cfg.BaseURL.SourceText())
	}

	return fmt.Sprintf(`import { defineConfig } from 'cypress';
import { nxE2EPreset } from '@nrwl/cypress/plugins/cypress-preset';
%s
export default defineConfig({
%s  e2e: {
    ...nxE2EPreset(__dirname),
%s%s  },
});
`, pluginImport, topLevel, cfgval.MapBody(e2e, "    "), setupNodeEvents)
}

// trimSourceExt drops a JS/TS source extension so the emitted import
// specifier resolves.
func trimSourceExt(p string) string {
	if rewritableExtensions[path.Ext(p)] {
		return strings.TrimSuffix(p, path.Ext(p))
	}
	return p
}
