package cmd

import (
	"fmt"

	"speedtune/internal/combat"
	"speedtune/internal/config"
	"speedtune/internal/logging"
)

// runtime is what every subcommand needs after config is read.
type runtime struct {
	settings *config.Settings
	log      *logging.Logger
	roster   combat.Roster
	order    []string
}

func loadRuntime(name string) (*runtime, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	base, err := logging.NewLogger(settings.Logging.File, settings.Logging.Level)
	if err != nil {
		return nil, err
	}
	log := base.With("cmd", name)

	rc, err := config.LoadRosterOrDefault(settings.Roster.Path)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	roster, order := combat.NewRoster(rc)
	source := settings.Roster.Path
	if source == "" {
		source = "builtin"
	}
	log.Info("roster loaded", "source", source, "units", len(order))

	return &runtime{settings: settings, log: log, roster: roster, order: order}, nil
}

func (r *runtime) Close() error { return r.log.Close() }
