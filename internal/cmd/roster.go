package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"speedtune/internal/report"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Show the loaded roster",
		RunE:  runRoster,
	}
	cmd.Flags().Bool("json", false, "Output the roster as JSON")
	return cmd
}

func runRoster(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	rt, err := loadRuntime(cmd.Name())
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.OutOrStdout()
	if asJSON {
		units := make([]any, 0, len(rt.order))
		for _, id := range rt.order {
			units = append(units, rt.roster[id])
		}
		_, err := fmt.Fprintln(out, string(report.MarshalPretty(units)))
		return err
	}

	fmt.Fprintf(out, "%-18s %-14s %-10s %6s %8s %5s %5s  %-6s %s\n", "ID", "NAME", "BASE", "SPD%", "ADVANCE", "TIMES", "COST", "TAGS", "NOTE")
	fmt.Fprintln(out, strings.Repeat("─", 96))
	for _, id := range rt.order {
		u := rt.roster[id]
		fmt.Fprintf(out, "%-18s %-14s %-10s %5.0f%% %7.0f%% %5d %5d  %-6s %s\n",
			u.ID, u.DisplayName(), u.Base, u.SpdPct*100, u.Advance*100, u.Activations(), u.Cost, strings.Join(u.Tags, ","), u.Note)
	}
	return nil
}
