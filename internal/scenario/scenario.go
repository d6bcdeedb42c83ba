// Package scenario evaluates every registered configuration against the
// current input state. It is pure and allocation-light, called once per
// frame or input event by the TUI and once per invocation by the CLI.
package scenario

import (
	"math"

	"github.com/Kemerd/aircraft-tug-physics/internal/lever"
	"github.com/Kemerd/aircraft-tug-physics/internal/surface"
	"github.com/Kemerd/aircraft-tug-physics/internal/tug"
)

// GroupTolerance is the absolute F2 difference (lbf) within which two
// diagrams are shown as a matching group. Coarser than the balanced check
// on purpose: grouping is a display aid, balance is a physics claim.
const GroupTolerance = 5.0

// LeverReport is the full display state for the lever demonstrator.
type LeverReport struct {
	F1       float64
	Results  []lever.TorqueResult
	Balanced bool
	Groups   []int
}

// EvaluateLevers runs every configuration with the shared applied force.
func EvaluateLevers(f1 float64, set []lever.Configuration) (LeverReport, error) {
	results := make([]lever.TorqueResult, 0, len(set))
	for _, cfg := range set {
		res, err := lever.Evaluate(f1, cfg)
		if err != nil {
			return LeverReport{}, err
		}
		results = append(results, res)
	}
	return LeverReport{
		F1:       f1,
		Results:  results,
		Balanced: lever.Balanced(results, lever.BalancedTolerance),
		Groups:   groupByF2(results),
	}, nil
}

// groupByF2 assigns a group index to each result; results whose F2 values
// agree within GroupTolerance share a group.
func groupByF2(results []lever.TorqueResult) []int {
	groups := make([]int, len(results))
	for i := range groups {
		groups[i] = -1
	}
	next := 0
	for i := range results {
		if groups[i] != -1 {
			continue
		}
		groups[i] = next
		for j := i + 1; j < len(results); j++ {
			if groups[j] == -1 && math.Abs(results[i].F2-results[j].F2) <= GroupTolerance {
				groups[j] = next
			}
		}
		next++
	}
	return groups
}

// TugReport is the full display state for the tug calculator: one result
// per configuration with the scenario held constant, and the index of the
// configuration needing the least handle force.
type TugReport struct {
	WeightLb   float64
	Surface    surface.Preset
	InclineDeg float64
	Results    []tug.Result
	BestIndex  int
}

// EvaluateTug runs every configuration against the shared scenario inputs.
func EvaluateTug(weightLb float64, sfc surface.Preset, inclineDeg float64, set []tug.Configuration) (TugReport, error) {
	results := make([]tug.Result, 0, len(set))
	best := -1
	for i, cfg := range set {
		res, err := tug.Evaluate(tug.Scenario{
			WeightLb:   weightLb,
			Surface:    sfc,
			InclineDeg: inclineDeg,
			Config:     cfg,
		})
		if err != nil {
			return TugReport{}, err
		}
		results = append(results, res)
		if best == -1 || math.Abs(res.HandleForce) < math.Abs(results[best].HandleForce) {
			best = i
		}
	}
	return TugReport{
		WeightLb:   weightLb,
		Surface:    sfc,
		InclineDeg: inclineDeg,
		Results:    results,
		BestIndex:  best,
	}, nil
}
