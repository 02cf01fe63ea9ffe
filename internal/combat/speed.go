package combat

import "math"

// Fixed game constants. The carry's base speed, the flat speed granted by
// her ultimate, and the speed of the summon whose countdown she must beat.
const (
	FireflyBaseSpd = 104.0
	FireflyUltFlat = 60.0
	SummonSpeed    = 70.0

	// ActionGauge is the distance a unit travels between two turns.
	ActionGauge = 10000.0
)

// speedTolerance absorbs float noise when comparing against decimal bounds.
const speedTolerance = 1e-9

// CountdownAV is the action value between two summon turns.
func CountdownAV() float64 { return ActionGauge / SummonSpeed }

// RequiredSpeed returns the panel speed needed to take `turns` actions before
// the summon countdown has fired turns-1 times, given the team's summed
// advance and speed-percent bonuses. Never below 0 or the base speed.
func RequiredSpeed(turns int, totalAdvance, totalSpdPct float64) float64 {
	intervals := float64(turns - 1)
	distance := ActionGauge*intervals - ActionGauge*totalAdvance
	ingame := distance / CountdownAV()
	panel := ingame - FireflyUltFlat - FireflyBaseSpd*totalSpdPct
	return math.Max(0, math.Max(panel, FireflyBaseSpd))
}

func speedInRange(v, lo, hi float64) bool {
	return v >= lo-speedTolerance && v <= hi+speedTolerance
}
