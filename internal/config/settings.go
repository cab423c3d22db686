package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unvalley/rt/internal/detect"
)

// Settings holds persistent CLI defaults loaded from a config file.
type Settings struct {
	// Runner forces a specific runner instead of probing the directory.
	Runner string `yaml:"runner"`
	// Plain disables the interactive picker; `rt` with no task prints the
	// catalog instead.
	Plain bool `yaml:"plain"`
	// NoHistory disables the execution ledger.
	NoHistory bool `yaml:"no_history"`
	// NoShellHistory disables mirroring runs into $HISTFILE.
	NoShellHistory bool `yaml:"no_shell_history"`
}

// LoadSettings reads a YAML config file into Settings.
// If the file does not exist, it returns zero-value Settings and nil error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.Runner == "" {
		return nil
	}
	if _, err := s.ForcedRunner(); err != nil {
		return err
	}
	return nil
}

// ForcedRunner maps the configured runner name onto a detect.Runner.
func (s *Settings) ForcedRunner() (detect.Runner, error) {
	switch s.Runner {
	case "just":
		return detect.Just, nil
	case "task":
		return detect.Task, nil
	case "mise":
		return detect.Mise, nil
	case "mask":
		return detect.Mask, nil
	case "cargo-make":
		return detect.CargoMake, nil
	case "make":
		return detect.Make, nil
	default:
		return 0, fmt.Errorf("unknown runner %q in config", s.Runner)
	}
}
