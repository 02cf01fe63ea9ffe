package config

type RosterConfig struct {
	Units []UnitDef `yaml:"units"`
}

type UnitDef struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	SpdPct  float64  `yaml:"spd_pct"`
	Advance float64  `yaml:"advance"`
	Base    string   `yaml:"base"`
	Cost    int      `yaml:"cost"`
	Times   int      `yaml:"times"` // 0 表示默认 1 次
	Tags    []string `yaml:"tags"`
	Note    string   `yaml:"note"`
}

// IDs returns the unit ids in file order.
func (rc *RosterConfig) IDs() []string {
	out := make([]string, 0, len(rc.Units))
	for _, u := range rc.Units {
		out = append(out, u.ID)
	}
	return out
}
