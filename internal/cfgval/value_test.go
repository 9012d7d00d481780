package cfgval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_Kinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Null, FromJSON(nil).Kind())
	assert.Equal(t, Bool, FromJSON(true).Kind())
	assert.Equal(t, Number, FromJSON(4.0).Kind())
	assert.Equal(t, Number, FromJSON(7).Kind())
	assert.Equal(t, String, FromJSON("x").Kind())
	assert.Equal(t, List, FromJSON([]interface{}{1.0, "a"}).Kind())
	assert.Equal(t, Map, FromJSON(map[string]interface{}{"a": 1.0}).Kind())
}

func TestFromJSON_Nested(t *testing.T) {
	t.Parallel()

	v := FromJSON(map[string]interface{}{
		"env": map[string]interface{}{"API_URL": "http://localhost:3000"},
	})
	m, ok := v.MapVal()
	require.True(t, ok)
	env, ok := m["env"].MapVal()
	require.True(t, ok)
	s, ok := env["API_URL"].StringVal()
	require.True(t, ok)
	assert.Equal(t, "http://localhost:3000", s)
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"null", NewNull(), false},
		{"false", NewBool(false), false},
		{"true", NewBool(true), true},
		{"zero", NewNumber(0), false},
		{"number", NewNumber(3), true},
		{"empty string", NewString(""), false},
		{"string", NewString("src/support/e2e.ts"), true},
		{"empty list", NewList(), true},
		{"map", NewMap(nil), true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.value.Truthy())
		})
	}
}

func TestSourceText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"null", NewNull(), "null"},
		{"bool", NewBool(false), "false"},
		{"integer number", NewNumber(1280), "1280"},
		{"fractional number", NewNumber(0.5), "0.5"},
		{"string", NewString("http://x"), "'http://x'"},
		{"string with quote", NewString("it's"), `'it\'s'`},
		{"list", NewList(NewNumber(1), NewString("a")), "[1, 'a']"},
		{"empty map", NewMap(nil), "{}"},
		{
			"map sorted keys",
			NewMap(map[string]Value{"b": NewNumber(2), "a": NewNumber(1)}),
			"{ a: 1, b: 2 }",
		},
		{
			"map quoted key",
			NewMap(map[string]Value{"retry-count": NewNumber(2)}),
			"{ 'retry-count': 2 }",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.value.SourceText())
		})
	}
}

func TestMapBody(t *testing.T) {
	t.Parallel()

	body := MapBody(map[string]Value{
		"video":       NewBool(true),
		"specPattern": NewString("src/e2e/**/*.cy.{js,jsx,ts,tsx}"),
	}, "  ")
	assert.Equal(t, "  specPattern: 'src/e2e/**/*.cy.{js,jsx,ts,tsx}',\n  video: true,\n", body)
}
