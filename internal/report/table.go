package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	costStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// WriteTable renders rows as a bordered terminal table.
func WriteTable(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no team matches the filters")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TEAM", "COST", "TURNS", "SPEED", "ADVANCE", "SPD%").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		t.Row(
			formatMembers(r.Members),
			fmt.Sprintf("%d", r.Cost),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%.1f", r.RequiredSpeed),
			fmt.Sprintf("%.0f%%", r.AdvancePct),
			fmt.Sprintf("%.0f%%", r.SpdPct),
		)
	}

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d teams\n", len(rows))
	return err
}

// formatMembers joins names with their badges, e.g. "6魂大丽花[+6] 开拓者(555)<555>".
func formatMembers(ms []Member) string {
	parts := make([]string, 0, len(ms))
	for _, m := range ms {
		s := m.Name
		if m.CostBadge > 0 {
			s += costStyle.Render(fmt.Sprintf("[+%d]", m.CostBadge))
		}
		for _, tag := range m.Tags {
			s += tagStyle.Render("<" + tag + ">")
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
