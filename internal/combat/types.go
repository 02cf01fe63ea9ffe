package combat

import "speedtune/internal/config"

// Unit is a roster entry.
type Unit struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	SpdPct  float64  `json:"spd_pct"`
	Advance float64  `json:"advance"`
	Base    string   `json:"base"`
	Cost    int      `json:"cost"`
	Times   int      `json:"times"`
	Tags    []string `json:"tags,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// DisplayName falls back to the id when no name is configured.
func (u Unit) DisplayName() string {
	if u.Name == "" {
		return u.ID
	}
	return u.Name
}

// Activations is the configured activation count, 1 when unset.
func (u Unit) Activations() int {
	if u.Times < 1 {
		return 1
	}
	return u.Times
}

// Roster maps unit id to its attributes.
type Roster map[string]Unit

// NewRoster builds a Roster from the yaml definition and returns the ids in
// file order, which callers use as the default enabled ordering. A repeated
// id keeps its first definition.
func NewRoster(cfg *config.RosterConfig) (Roster, []string) {
	r := Roster{}
	if cfg == nil {
		return r, nil
	}
	order := make([]string, 0, len(cfg.Units))
	for i, id := range cfg.IDs() {
		if _, dup := r[id]; dup {
			continue
		}
		d := cfg.Units[i]
		order = append(order, id)
		r[id] = Unit{
			ID:      d.ID,
			Name:    d.Name,
			SpdPct:  d.SpdPct,
			Advance: d.Advance,
			Base:    d.Base,
			Cost:    d.Cost,
			Times:   d.Times,
			Tags:    append([]string(nil), d.Tags...),
			Note:    d.Note,
		}
	}
	return r, order
}

// Query carries the caller-owned selection and filter state for one
// evaluation.
type Query struct {
	Enabled []string       `json:"enabled"`
	Turns   []int          `json:"turns"`
	Times   map[string]int `json:"times,omitempty"` // overrides Unit.Times

	MinSpeed float64 `json:"min_speed"`
	MaxSpeed float64 `json:"max_speed"`
	MinCost  int     `json:"min_cost"`
	MaxCost  int     `json:"max_cost"`
}

// ScoredTeam is one (team, turn target) row of an evaluation.
type ScoredTeam struct {
	Members       [3]string `json:"members"`
	Turns         int       `json:"turns"`
	TotalAdvance  float64   `json:"total_advance"`
	TotalSpdPct   float64   `json:"total_spd_pct"`
	TotalCost     int       `json:"total_cost"`
	RequiredSpeed float64   `json:"required_speed"`
}
