package combat

// Party is a candidate three-unit team.
type Party struct {
	Units [3]Unit
	times map[string]int
}

func newParty(a, b, c Unit, times map[string]int) Party {
	return Party{Units: [3]Unit{a, b, c}, times: times}
}

// Valid reports whether the three bases are pairwise distinct.
func (p Party) Valid() bool {
	u := p.Units
	return u[0].Base != u[1].Base && u[0].Base != u[2].Base && u[1].Base != u[2].Base
}

func (p Party) IDs() [3]string {
	return [3]string{p.Units[0].ID, p.Units[1].ID, p.Units[2].ID}
}

func (p Party) timesOf(u Unit) int {
	if n, ok := p.times[u.ID]; ok && n >= 1 {
		return n
	}
	return u.Activations()
}

// TotalAdvance sums advance × activations.
func (p Party) TotalAdvance() float64 {
	sum := 0.0
	for _, u := range p.Units {
		sum += u.Advance * float64(p.timesOf(u))
	}
	return sum
}

func (p Party) TotalSpdPct() float64 {
	sum := 0.0
	for _, u := range p.Units {
		sum += u.SpdPct
	}
	return sum
}

func (p Party) TotalCost() int {
	sum := 0
	for _, u := range p.Units {
		sum += u.Cost
	}
	return sum
}

// Score produces the row for one turn target.
func (p Party) Score(turns int) ScoredTeam {
	adv := p.TotalAdvance()
	spd := p.TotalSpdPct()
	return ScoredTeam{
		Members:       p.IDs(),
		Turns:         turns,
		TotalAdvance:  adv,
		TotalSpdPct:   spd,
		TotalCost:     p.TotalCost(),
		RequiredSpeed: RequiredSpeed(turns, adv, spd),
	}
}

// forEachTriple visits every i<j<k index triple in lexicographic order.
func forEachTriple(n int, fn func(i, j, k int)) {
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				fn(i, j, k)
			}
		}
	}
}
