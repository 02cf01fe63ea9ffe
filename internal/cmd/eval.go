package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"speedtune/internal/combat"
	"speedtune/internal/config"
	"speedtune/internal/report"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "List the teams that reach the turn targets within the filters",
		Long: `Enumerate every three-unit team of the enabled units (units sharing a
base are never combined), compute the required carry panel speed for each
turn target, and print the rows whose speed and cost fall inside the
inclusive filter ranges, sorted by cost descending.`,
		RunE: runEval,
	}

	f := cmd.Flags()
	f.StringSlice("enable", nil, "unit ids to consider, in enumeration order (default: whole roster)")
	f.IntSlice("turns", nil, "turn targets (default 4,5)")
	f.StringToInt("times", nil, "advance activations per unit, e.g. --times wang_e2=2")
	f.Float64("min-speed", 0, "minimum required speed, inclusive")
	f.Float64("max-speed", 0, "maximum required speed, inclusive")
	f.Int("min-cost", 0, "minimum team cost, inclusive")
	f.Int("max-cost", 0, "maximum team cost, inclusive")
	f.String("format", "", "output format: table or json")
	f.StringP("out", "o", "", "write output to this file instead of stdout")

	for key, flag := range map[string]string{
		"enabled":          "enable",
		"filter.turns":     "turns",
		"times":            "times",
		"filter.min_speed": "min-speed",
		"filter.max_speed": "max-speed",
		"filter.min_cost":  "min-cost",
		"filter.max_cost":  "max-cost",
		"output.format":    "format",
		"output.file":      "out",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd.Name())
	if err != nil {
		return err
	}
	defer rt.Close()

	q := buildQuery(rt.settings, rt.order)
	rows, err := combat.NewEvaluator(rt.log).Evaluate(rt.roster, q)
	if err != nil {
		rt.log.Error("evaluation failed", "error", err)
		return err
	}
	if len(rows) == 0 {
		rt.log.Warn("no team matches the filters",
			"enabled", len(q.Enabled),
			"min_speed", q.MinSpeed,
			"max_speed", q.MaxSpeed,
			"min_cost", q.MinCost,
			"max_cost", q.MaxCost,
		)
	}
	rt.log.Info("evaluation finished", "rows", len(rows), "turns", q.Turns)

	format, doc := rt.settings.Output.Format, report.Build(rt.roster, rows)
	if path := rt.settings.Output.File; path != "" {
		return writeFile(path, func(w io.Writer) error { return writeRows(w, format, q, doc) })
	}
	return writeRows(cmd.OutOrStdout(), format, q, doc)
}

// writeFile creates path and hands it to write. The close error is returned
// so a failed flush is not reported as success.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func buildQuery(s *config.Settings, order []string) combat.Query {
	enabled := s.Enabled
	if len(enabled) == 0 {
		enabled = order
	}
	return combat.Query{
		Enabled:  enabled,
		Turns:    s.Filter.Turns,
		Times:    s.Times,
		MinSpeed: s.Filter.MinSpeed,
		MaxSpeed: s.Filter.MaxSpeed,
		MinCost:  s.Filter.MinCost,
		MaxCost:  s.Filter.MaxCost,
	}
}

func writeRows(w io.Writer, format string, q combat.Query, rows []report.Row) error {
	if format == "json" {
		return report.WriteJSON(w, q, rows)
	}
	return report.WriteTable(w, rows)
}
