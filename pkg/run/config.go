package run

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file of the interpreter. Flags
// override its values.
type Config struct {
	// ModuleDirs are extra directories searched by import.
	ModuleDirs []string `yaml:"module-dirs"`
	// NoHistory disables the REPL history store.
	NoHistory bool `yaml:"no-history"`
	// DB overrides the path of the history database.
	DB string `yaml:"db"`
}

// configPath resolves the configuration file path: the -config flag, then
// $SMYTHONCONFIG, then config.yaml under the user config directory.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("SMYTHONCONFIG"); env != "" {
		return env
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "smython", "config.yaml")
}

// loadConfig reads the configuration file. A missing file is not an error;
// it yields the zero configuration.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return cfg, nil
}
