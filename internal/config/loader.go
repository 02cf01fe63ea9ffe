package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadRoster reads and validates a roster file.
func LoadRoster(path string) (*RosterConfig, error) {
	var rc RosterConfig
	if err := loadYAML(path, &rc); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	if errs := rc.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("roster %s: %w", path, ValidationErrors(errs))
	}
	return &rc, nil
}

// DefaultRoster returns the roster compiled into the binary. It panics if
// the embedded file does not parse or validate.
func DefaultRoster() *RosterConfig {
	rc, err := parseRoster(defaultRoster)
	if err != nil {
		panic(fmt.Sprintf("embedded roster: %v", err))
	}
	return rc
}

func parseRoster(b []byte) (*RosterConfig, error) {
	var rc RosterConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, err
	}
	if errs := rc.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &rc, nil
}

// LoadRosterOrDefault loads path, or the embedded roster when path is empty.
func LoadRosterOrDefault(path string) (*RosterConfig, error) {
	if path == "" {
		return DefaultRoster(), nil
	}
	return LoadRoster(path)
}
