// Package report turns evaluation rows into presentation-ready data.
package report

import (
	"encoding/json"
	"io"

	"speedtune/internal/combat"
)

// Member is one portrait slot of a row.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// CostBadge is cost-1, shown only for units costing more than 1
	CostBadge int      `json:"cost_badge,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

type Row struct {
	Members       []Member `json:"members"`
	Turns         int      `json:"turns"`
	RequiredSpeed float64  `json:"required_speed"`
	AdvancePct    float64  `json:"advance_pct"`
	SpdPct        float64  `json:"spd_pct"`
	Cost          int      `json:"cost"`
}

type Document struct {
	Query combat.Query `json:"query"`
	Count int          `json:"count"`
	Rows  []Row        `json:"rows"`
}

// Build annotates rows with display names and badges. Every member id must be
// present in roster, which holds for rows produced by combat.Evaluate.
func Build(roster combat.Roster, results []combat.ScoredTeam) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		row := Row{
			Turns:         r.Turns,
			RequiredSpeed: r.RequiredSpeed,
			AdvancePct:    r.TotalAdvance * 100,
			SpdPct:        r.TotalSpdPct * 100,
			Cost:          r.TotalCost,
		}
		for _, id := range r.Members {
			u := roster[id]
			m := Member{ID: id, Name: u.DisplayName(), Tags: u.Tags}
			if u.Cost > 1 {
				m.CostBadge = u.Cost - 1
			}
			row.Members = append(row.Members, m)
		}
		rows = append(rows, row)
	}
	return rows
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}

// WriteJSON writes the query and its rows as one indented document.
func WriteJSON(w io.Writer, q combat.Query, rows []Row) error {
	doc := Document{Query: q, Count: len(rows), Rows: rows}
	b := append(MarshalPretty(doc), '\n')
	_, err := w.Write(b)
	return err
}
