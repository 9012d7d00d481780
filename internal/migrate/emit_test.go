package migrate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cymig/cymig/internal/cfgval"
)

func newConfigFixture(e2e map[string]cfgval.Value) *NewConfig {
	base := map[string]cfgval.Value{
		"specPattern":       cfgval.NewString(SpecPattern),
		"supportFile":       cfgval.NewString(DefaultSupportFile),
		"integrationFolder": cfgval.NewString(DefaultIntegrationFolder),
	}
	for k, v := range e2e {
		base[k] = v
	}
	return &NewConfig{BaseURL: cfgval.NewNull(), E2E: base}
}

func TestEmit_Template(t *testing.T) {
	t.Parallel()

	cfg := newConfigFixture(nil)
	cfg.BaseURL = cfgval.NewString("http://localhost:4200")
	src := Emit(cfg)

	assert.Contains(t, src, "import { defineConfig } from 'cypress';")
	assert.Contains(t, src, "import { nxE2EPreset } from '@nrwl/cypress/plugins/cypress-preset';")
	assert.Contains(t, src, "export default defineConfig({")
	assert.Contains(t, src, "baseUrl: 'http://localhost:4200',")
	assert.Contains(t, src, "...nxE2EPreset(__dirname),")
	assert.Contains(t, src, "specPattern: 'src/e2e/**/*.cy.{js,jsx,ts,tsx}',")
	assert.Contains(t, src, "supportFile: 'src/support/e2e.ts',")
}

func TestEmit_OmitsBaseURLWhenUnset(t *testing.T) {
	t.Parallel()

	src := Emit(newConfigFixture(nil))
	assert.NotContains(t, src, "baseUrl")
}

func TestEmit_StripsIntegrationFolder(t *testing.T) {
	t.Parallel()

	src := Emit(newConfigFixture(nil))
	assert.NotContains(t, src, "integrationFolder")
}

func TestEmit_PluginsFile(t *testing.T) {
	t.Parallel()

	src := Emit(newConfigFixture(map[string]cfgval.Value{
		"pluginsFile": cfgval.NewString("src/plugins/index.ts"),
	}))
	assert.Contains(t, src, "import setupNodeEvents from 'src/plugins/index';")
	assert.Contains(t, src, "setupNodeEvents,")
	assert.NotContains(t, src, "pluginsFile")
}

func TestEmit_PluginsFileFalse(t *testing.T) {
	t.Parallel()

	src := Emit(newConfigFixture(map[string]cfgval.Value{
		"pluginsFile": cfgval.NewBool(false),
	}))
	assert.NotContains(t, src, "setupNodeEvents")
	assert.NotContains(t, src, "pluginsFile")
}

func TestEmit_PassthroughSerialized(t *testing.T) {
	t.Parallel()

	src := Emit(newConfigFixture(map[string]cfgval.Value{
		"video":         cfgval.NewBool(false),
		"viewportWidth": cfgval.NewNumber(1280),
		"env":           cfgval.NewMap(map[string]cfgval.Value{"API_URL": cfgval.NewString("http://localhost:3000")}),
	}))
	assert.Contains(t, src, "video: false,")
	assert.Contains(t, src, "viewportWidth: 1280,")
	assert.Contains(t, src, "env: { API_URL: 'http://localhost:3000' },")
}

func TestEmit_BalancedBraces(t *testing.T) {
	t.Parallel()

	src := Emit(newConfigFixture(map[string]cfgval.Value{
		"pluginsFile": cfgval.NewString("src/plugins/index.ts"),
	}))
	assert.Equal(t, strings.Count(src, "{"), strings.Count(src, "}"))
	assert.Equal(t, strings.Count(src, "("), strings.Count(src, ")"))
}
