package polint

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-scoped configuration stored in
// .lint-po-args.yaml at the project root. Flags override these values.
type ProjectConfig struct {
	Lint    LintConfig    `yaml:"lint"`
	Watch   WatchConfig   `yaml:"watch,omitempty"`
	Journal JournalConfig `yaml:"journal,omitempty"`
}

// LintConfig holds default check settings.
type LintConfig struct {
	Printf bool `yaml:"printf,omitempty"`
	Jobs   int  `yaml:"jobs,omitempty"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	Debounce string `yaml:"debounce,omitempty"` // Go duration string, e.g. "300ms"
	Notify   string `yaml:"notify,omitempty"`   // none, local or cmd:<template>
}

// JournalConfig holds run-history settings.
type JournalConfig struct {
	Enabled  bool `yaml:"enabled,omitempty"`
	KeepDays int  `yaml:"keep_days,omitempty"`
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ".lint-po-args.yaml")
}

// LoadProjectConfig reads the project config from .lint-po-args.yaml.
// Returns a zero-value config (no error) if the file does not exist.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	data, err := os.ReadFile(ProjectConfigPath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ProjectConfig{}, nil
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadProjectConfigFile reads the config from an explicit path. Unlike
// LoadProjectConfig, a missing file is an error here: the caller asked
// for this file by name.
func LoadProjectConfigFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveProjectConfig writes the project config to .lint-po-args.yaml.
func SaveProjectConfig(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(ProjectConfigPath(dir), data, 0644)
}
