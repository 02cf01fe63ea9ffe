package combat

import (
	"math"
	"sort"

	"speedtune/internal/logging"
)

// Evaluator enumerates and scores teams. It holds no state besides its
// logger, so one value can serve any number of calls.
type Evaluator struct {
	log *logging.Logger
}

func NewEvaluator(log *logging.Logger) *Evaluator {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Evaluator{log: log}
}

// Evaluate runs a query with a silent evaluator.
func Evaluate(roster Roster, q Query) ([]ScoredTeam, error) {
	return NewEvaluator(nil).Evaluate(roster, q)
}

// Evaluate returns every (team, turn target) row that passes the query's
// filters, ordered by total cost descending. Equal costs keep enumeration
// order over q.Enabled, then ascending turn target.
func (e *Evaluator) Evaluate(roster Roster, q Query) ([]ScoredTeam, error) {
	if err := validateQuery(roster, q); err != nil {
		return nil, err
	}

	enabled := dedupe(q.Enabled)
	turns := normalizeTurns(q.Turns)
	log := e.log.With("turns", turns)
	if len(enabled) < 3 || len(turns) == 0 {
		log.Debug("nothing to evaluate", "enabled", len(enabled))
		return []ScoredTeam{}, nil
	}

	units := make([]Unit, len(enabled))
	for i, id := range enabled {
		units[i] = roster[id]
	}

	out := make([]ScoredTeam, 0)
	candidates, rejected := 0, 0
	forEachTriple(len(units), func(i, j, k int) {
		candidates++
		p := newParty(units[i], units[j], units[k], q.Times)
		if !p.Valid() {
			rejected++
			return
		}
		for _, m := range turns {
			row := p.Score(m)
			if row.TotalCost < q.MinCost || row.TotalCost > q.MaxCost {
				continue
			}
			if !speedInRange(row.RequiredSpeed, q.MinSpeed, q.MaxSpeed) {
				continue
			}
			out = append(out, row)
		}
	})

	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalCost > out[j].TotalCost })

	log.Debug("evaluated teams",
		"enabled", len(enabled),
		"candidates", candidates,
		"base_conflicts", rejected,
		"rows", len(out),
	)
	return out, nil
}

func validateQuery(roster Roster, q Query) error {
	for _, id := range q.Enabled {
		if _, ok := roster[id]; !ok {
			return newRosterReferenceError("enabled", id, roster)
		}
	}
	timesIDs := make([]string, 0, len(q.Times))
	for id := range q.Times {
		timesIDs = append(timesIDs, id)
	}
	sort.Strings(timesIDs)
	for _, id := range timesIDs {
		if _, ok := roster[id]; !ok {
			return newRosterReferenceError("times", id, roster)
		}
		if q.Times[id] < 1 {
			return &FilterRangeError{Field: "times." + id, Value: q.Times[id], Message: "must be at least 1"}
		}
	}

	for _, f := range []struct {
		name string
		v    float64
	}{{"min_speed", q.MinSpeed}, {"max_speed", q.MaxSpeed}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &FilterRangeError{Field: f.name, Value: f.v, Message: "must be a finite number"}
		}
	}
	if q.MinSpeed > q.MaxSpeed {
		return &FilterRangeError{Field: "speed", Value: [2]float64{q.MinSpeed, q.MaxSpeed}, Message: "min_speed must not exceed max_speed"}
	}
	if q.MinCost > q.MaxCost {
		return &FilterRangeError{Field: "cost", Value: [2]int{q.MinCost, q.MaxCost}, Message: "min_cost must not exceed max_cost"}
	}
	for _, m := range q.Turns {
		if m < 1 {
			return &FilterRangeError{Field: "turns", Value: m, Message: "turn targets must be positive"}
		}
	}
	return nil
}

// dedupe keeps the first occurrence of each id.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func normalizeTurns(turns []int) []int {
	seen := map[int]bool{}
	out := make([]int, 0, len(turns))
	for _, m := range turns {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Ints(out)
	return out
}
