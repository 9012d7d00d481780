package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"workspace_file": "workspace.json",
		"verbose":        false,
		"no_color":       false,
	}
}
