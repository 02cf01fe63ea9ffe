package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings is the teamcalc run configuration.
type Settings struct {
	Roster  RosterSettings  `mapstructure:"roster"`
	Enabled []string        `mapstructure:"enabled"`
	Times   map[string]int  `mapstructure:"times"`
	Filter  FilterSettings  `mapstructure:"filter"`
	Output  OutputSettings  `mapstructure:"output"`
	Logging LoggingSettings `mapstructure:"logging"`
}

// RosterSettings selects the roster source
type RosterSettings struct {
	// Path is a roster yaml file; empty uses the embedded roster
	Path string `mapstructure:"path"`
}

// FilterSettings holds turn targets and inclusive numeric bounds
type FilterSettings struct {
	Turns    []int   `mapstructure:"turns"`
	MinSpeed float64 `mapstructure:"min_speed"`
	MaxSpeed float64 `mapstructure:"max_speed"`
	MinCost  int     `mapstructure:"min_cost"`
	MaxCost  int     `mapstructure:"max_cost"`
}

// OutputSettings controls how results are written
type OutputSettings struct {
	// Format is "table" or "json"
	Format string `mapstructure:"format"`
	// File receives the output; empty writes to stdout
	File string `mapstructure:"file"`
}

// LoggingSettings controls the debug log
type LoggingSettings struct {
	Level string `mapstructure:"level"`
	// File is the log destination; empty logs to stderr
	File string `mapstructure:"file"`
}

// Default returns Settings with the stock values
func Default() *Settings {
	return &Settings{
		Enabled: []string{}, // empty means every roster unit
		Times:   map[string]int{},
		Filter: FilterSettings{
			Turns:    []int{4, 5},
			MinSpeed: 0,
			MaxSpeed: 999,
			MinCost:  0,
			MaxCost:  99,
		},
		Output: OutputSettings{
			Format: "table",
		},
		Logging: LoggingSettings{
			Level: "warn",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	d := Default()

	viper.SetDefault("roster.path", d.Roster.Path)
	viper.SetDefault("enabled", d.Enabled)
	viper.SetDefault("times", d.Times)

	viper.SetDefault("filter.turns", d.Filter.Turns)
	viper.SetDefault("filter.min_speed", d.Filter.MinSpeed)
	viper.SetDefault("filter.max_speed", d.Filter.MaxSpeed)
	viper.SetDefault("filter.min_cost", d.Filter.MinCost)
	viper.SetDefault("filter.max_cost", d.Filter.MaxCost)

	viper.SetDefault("output.format", d.Output.Format)
	viper.SetDefault("output.file", d.Output.File)

	viper.SetDefault("logging.level", d.Logging.Level)
	viper.SetDefault("logging.file", d.Logging.File)
}

// Load reads the settings from viper and validates them
func Load() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, err
	}
	if errs := s.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &s, nil
}

// ConfigDir returns the user's teamcalc config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teamcalc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teamcalc"
	}
	return filepath.Join(home, ".config", "teamcalc")
}

// ValidOutputFormats returns the accepted output.format values
func ValidOutputFormats() []string {
	return []string{"table", "json"}
}
