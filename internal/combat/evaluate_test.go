package combat

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speedtune/internal/logging"
	"speedtune/internal/util"
)

// scenarioRoster: A 与 D 同 base，不能同队
func scenarioRoster() Roster {
	return Roster{
		"A": {ID: "A", Base: "x", Cost: 1},
		"B": {ID: "B", Base: "y", SpdPct: 0.1},
		"C": {ID: "C", Base: "z", Advance: 0.24},
		"D": {ID: "D", Base: "x", Cost: 7, Advance: 0.2, SpdPct: 0.3},
	}
}

func wideQuery(enabled []string, turns ...int) Query {
	return Query{
		Enabled:  enabled,
		Turns:    turns,
		MinSpeed: 0,
		MaxSpeed: 1000,
		MinCost:  0,
		MaxCost:  100,
	}
}

func TestEvaluate_Scenario(t *testing.T) {
	rows, err := Evaluate(scenarioRoster(), wideQuery([]string{"A", "B", "C", "D"}, 5))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// cost 降序：BCD(7) 在 ABC(1) 之前
	assert.Equal(t, [3]string{"B", "C", "D"}, rows[0].Members)
	assert.Equal(t, 7, rows[0].TotalCost)
	assert.InDelta(t, 147.6, rows[0].RequiredSpeed, 1e-9)

	abc := rows[1]
	assert.Equal(t, [3]string{"A", "B", "C"}, abc.Members)
	assert.Equal(t, 5, abc.Turns)
	assert.InDelta(t, 0.24, abc.TotalAdvance, 1e-12)
	assert.InDelta(t, 0.1, abc.TotalSpdPct, 1e-12)
	assert.Equal(t, 1, abc.TotalCost)
	assert.InDelta(t, 192.8, abc.RequiredSpeed, 1e-9)
}

func TestEvaluate_SpeedBoundary(t *testing.T) {
	q := wideQuery([]string{"A", "B", "C"}, 5)

	q.MinSpeed, q.MaxSpeed = 192.8, 192.8
	rows, err := Evaluate(scenarioRoster(), q)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, [3]string{"A", "B", "C"}, rows[0].Members)

	q.MinSpeed, q.MaxSpeed = 0, 192.7
	rows, err = Evaluate(scenarioRoster(), q)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEvaluate_CostBoundary(t *testing.T) {
	q := wideQuery([]string{"A", "B", "C", "D"}, 5)
	q.MinCost, q.MaxCost = 7, 7

	rows, err := Evaluate(scenarioRoster(), q)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, [3]string{"B", "C", "D"}, rows[0].Members)
}

func TestEvaluate_FewerThanThreeEnabled(t *testing.T) {
	for _, enabled := range [][]string{nil, {}, {"A"}, {"A", "B"}, {"A", "A", "B"}} {
		t.Run(fmt.Sprint(enabled), func(t *testing.T) {
			rows, err := Evaluate(scenarioRoster(), wideQuery(enabled, 4, 5))
			require.NoError(t, err)
			assert.NotNil(t, rows)
			assert.Empty(t, rows)
		})
	}
}

func TestEvaluate_NoTurnTargets(t *testing.T) {
	rows, err := Evaluate(scenarioRoster(), wideQuery([]string{"A", "B", "C"}))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEvaluate_DuplicateEnabledCollapsed(t *testing.T) {
	a, err := Evaluate(scenarioRoster(), wideQuery([]string{"A", "B", "A", "C"}, 4))
	require.NoError(t, err)
	b, err := Evaluate(scenarioRoster(), wideQuery([]string{"A", "B", "C"}, 4))
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestEvaluate_TimesOverride(t *testing.T) {
	q := wideQuery([]string{"A", "B", "C"}, 5)
	q.Times = map[string]int{"C": 2}

	rows, err := Evaluate(scenarioRoster(), q)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 0.48, rows[0].TotalAdvance, 1e-12)
	assert.InDelta(t, RequiredSpeed(5, 0.48, 0.1), rows[0].RequiredSpeed, 1e-12)
}

func TestEvaluate_UnitTimes(t *testing.T) {
	r := scenarioRoster()
	c := r["C"]
	c.Times = 3
	r["C"] = c

	rows, err := Evaluate(r, wideQuery([]string{"A", "B", "C"}, 5))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 0.72, rows[0].TotalAdvance, 1e-12)
}

func TestEvaluate_TieOrder(t *testing.T) {
	r := Roster{
		"P": {ID: "P", Base: "p"},
		"Q": {ID: "Q", Base: "q"},
		"R": {ID: "R", Base: "r"},
		"S": {ID: "S", Base: "s", Cost: 2},
	}
	rows, err := Evaluate(r, wideQuery([]string{"P", "Q", "R", "S"}, 5, 4, 5))
	require.NoError(t, err)

	type key struct {
		m     [3]string
		turns int
	}
	got := make([]key, 0, len(rows))
	for _, row := range rows {
		got = append(got, key{row.Members, row.Turns})
	}
	want := []key{
		{[3]string{"P", "Q", "S"}, 4},
		{[3]string{"P", "Q", "S"}, 5},
		{[3]string{"P", "R", "S"}, 4},
		{[3]string{"P", "R", "S"}, 5},
		{[3]string{"Q", "R", "S"}, 4},
		{[3]string{"Q", "R", "S"}, 5},
		{[3]string{"P", "Q", "R"}, 4},
		{[3]string{"P", "Q", "R"}, 5},
	}
	assert.Equal(t, want, got)
}

func TestEvaluate_EnumerationFollowsEnabledOrder(t *testing.T) {
	rows, err := Evaluate(scenarioRoster(), wideQuery([]string{"C", "B", "A"}, 4))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, [3]string{"C", "B", "A"}, rows[0].Members)
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Query)
		target error
	}{
		{"unknown enabled id", func(q *Query) { q.Enabled = append(q.Enabled, "Ax") }, ErrInvalidRosterReference},
		{"unknown times id", func(q *Query) { q.Times = map[string]int{"Z": 2} }, ErrInvalidRosterReference},
		{"zero times", func(q *Query) { q.Times = map[string]int{"A": 0} }, ErrInvalidFilterRange},
		{"inverted speed", func(q *Query) { q.MinSpeed, q.MaxSpeed = 200, 100 }, ErrInvalidFilterRange},
		{"inverted cost", func(q *Query) { q.MinCost, q.MaxCost = 5, 4 }, ErrInvalidFilterRange},
		{"nan speed", func(q *Query) { q.MaxSpeed = math.NaN() }, ErrInvalidFilterRange},
		{"inf speed", func(q *Query) { q.MinSpeed = math.Inf(-1) }, ErrInvalidFilterRange},
		{"zero turn target", func(q *Query) { q.Turns = []int{4, 0} }, ErrInvalidFilterRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := wideQuery([]string{"A", "B", "C", "D"}, 4, 5)
			tt.mutate(&q)
			rows, err := Evaluate(scenarioRoster(), q)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Nil(t, rows)
		})
	}
}

func TestEvaluate_RosterReferenceSuggestion(t *testing.T) {
	q := wideQuery([]string{"A", "B", "Ax"}, 4)
	_, err := Evaluate(scenarioRoster(), q)

	var refErr *RosterReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "Ax", refErr.ID)
	assert.Equal(t, "enabled", refErr.Field)
	assert.Equal(t, "A", refErr.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "A"`)
}

func TestEvaluate_ReferenceCheckedBeforeSizeShortcut(t *testing.T) {
	_, err := Evaluate(scenarioRoster(), wideQuery([]string{"nobody"}, 4))
	assert.ErrorIs(t, err, ErrInvalidRosterReference)
}

// ============== 随机 roster 性质测试 ==============

func randomRoster(rng *rand.Rand, n int) (Roster, []string) {
	bases := []string{"b0", "b1", "b2", "b3", "b4"}
	r := Roster{}
	order := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("u%02d", i)
		r[id] = Unit{
			ID:      id,
			Base:    bases[rng.Intn(len(bases))],
			Cost:    rng.Intn(8),
			SpdPct:  float64(rng.Intn(4)) * 0.1,
			Advance: float64(rng.Intn(5)) * 0.06,
			Times:   rng.Intn(3),
		}
		order = append(order, id)
	}
	return r, order
}

func TestEvaluate_Properties(t *testing.T) {
	rng := util.New(12345)

	for round := 0; round < 50; round++ {
		roster, order := randomRoster(rng, 3+rng.Intn(8))
		q := Query{
			Enabled:  order,
			Turns:    []int{3, 4},
			MinSpeed: 100 + float64(rng.Intn(60)),
			MinCost:  rng.Intn(3),
		}
		q.MaxSpeed = q.MinSpeed + float64(rng.Intn(150))
		q.MaxCost = q.MinCost + rng.Intn(15)

		rows, err := Evaluate(roster, q)
		require.NoError(t, err)

		for i, row := range rows {
			a, b, c := roster[row.Members[0]], roster[row.Members[1]], roster[row.Members[2]]
			assert.NotEqual(t, a.Base, b.Base)
			assert.NotEqual(t, a.Base, c.Base)
			assert.NotEqual(t, b.Base, c.Base)

			assert.GreaterOrEqual(t, row.RequiredSpeed, q.MinSpeed-speedTolerance)
			assert.LessOrEqual(t, row.RequiredSpeed, q.MaxSpeed+speedTolerance)
			assert.GreaterOrEqual(t, row.TotalCost, q.MinCost)
			assert.LessOrEqual(t, row.TotalCost, q.MaxCost)
			assert.GreaterOrEqual(t, row.RequiredSpeed, FireflyBaseSpd)

			if i > 0 {
				assert.GreaterOrEqual(t, rows[i-1].TotalCost, row.TotalCost, "round %d row %d", round, i)
			}
		}

		again, err := Evaluate(roster, q)
		require.NoError(t, err)
		assert.Equal(t, rows, again)

		// 增加一个目标轮数：原有行保持不变且相对顺序不变
		wider := q
		wider.Turns = []int{3, 4, 5}
		more, err := Evaluate(roster, wider)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(more), len(rows))
		assert.Equal(t, rows, withoutTurns(more, 5))
	}
}

func withoutTurns(rows []ScoredTeam, turns int) []ScoredTeam {
	out := make([]ScoredTeam, 0, len(rows))
	for _, r := range rows {
		if r.Turns != turns {
			out = append(out, r)
		}
	}
	return out
}

func TestEvaluator_NilLogger(t *testing.T) {
	e := NewEvaluator(nil)
	rows, err := e.Evaluate(scenarioRoster(), wideQuery([]string{"A", "B", "C"}, 4))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestEvaluator_LogsTurnTargets(t *testing.T) {
	var buf bytes.Buffer
	e := NewEvaluator(logging.New(&buf, logging.LevelDebug))
	_, err := e.Evaluate(scenarioRoster(), wideQuery([]string{"A", "B", "C", "D"}, 5, 4, 5))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"evaluated teams"`)
	assert.Contains(t, out, `"turns":[4,5]`)
	assert.Contains(t, out, `"base_conflicts":2`)
}
