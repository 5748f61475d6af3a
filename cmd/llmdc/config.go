package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Stevenic/llmd/compile"
	"github.com/Stevenic/llmd/internal/llmdutil"
)

// loadConfig reads a YAML document at path into a compile.Config seeded from
// compile.DefaultConfig, so a config file only needs to mention the fields it
// overrides. An empty path falls back to an implicit ".llmdc.yaml" discovered
// by walking up from the working directory; if neither is found the default
// configuration is returned unchanged.
func loadConfig(path string) (compile.Config, error) {
	cfg := compile.DefaultConfig()

	if path == "" {
		if _, found, err := llmdutil.FindWDFile(".llmdc.yaml"); err == nil {
			path = found
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
