// Package combat scores three-unit teams for the summon speed-tuning puzzle.
//
// # Overview
//
// A team of three supports is built around a carry whose ultimate must land
// a given number of turns before an enemy summon's countdown fires. Each
// support contributes a speed-percent bonus on the carry's base speed and a
// turn advance per activation; units sharing a base character are mutually
// exclusive.
//
// For every valid triple and every requested turn target the package
// computes the panel speed the carry needs:
//
//	countdownAV = 10000 / SummonSpeed
//	distance    = 10000*(turns-1) - 10000*Σ(advance×times)
//	panel       = distance/countdownAV - FireflyUltFlat - FireflyBaseSpd*Σspd_pct
//	required    = max(0, panel, FireflyBaseSpd)
//
// # Usage
//
//	roster, order := combat.NewRoster(rosterCfg)
//	rows, err := combat.NewEvaluator(log).Evaluate(roster, combat.Query{
//	    Enabled:  order,
//	    Turns:    []int{4, 5},
//	    MinSpeed: 160, MaxSpeed: 180,
//	    MinCost:  0, MaxCost: 10,
//	})
//
// Evaluation is a pure function of its inputs; results are sorted by total
// cost descending with a stable enumeration-order tie-break.
package combat
