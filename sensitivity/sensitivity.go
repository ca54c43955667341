// Package sensitivity sweeps a ProjectModel across named variables and
// percentage variations, collecting indicator results and a tornado-ordered
// summary.
package sensitivity

import (
	"sort"

	"projectio/adjustment"
	"projectio/facade"
	"projectio/model"
)

// DefaultVariations is the percent-delta sweep applied when the caller does
// not supply one.
var DefaultVariations = []float64{-20, -15, -10, -5, 0, 5, 10, 15, 20}

// Sweep runs base through facade.Run once per (variable, variation) pair,
// applying the delta via the adjustment layer first. Results are returned
// in the order variables × variations were given; the engine itself runs
// single-threaded — callers wanting parallelism drive Sweep's inner loop
// themselves.
func Sweep(base model.ProjectModel, be facade.BreakEvenParams, variables []string, variations []float64) ([]model.SensitivityResult, error) {
	if len(variations) == 0 {
		variations = DefaultVariations
	}

	results := make([]model.SensitivityResult, 0, len(variables)*len(variations))
	for _, variable := range variables {
		for _, variation := range variations {
			adjusted := adjustment.Apply(base, map[string]float64{variable: variation})
			bundle, _, err := facade.Run(adjusted, be)
			if err != nil {
				return nil, err
			}
			results = append(results, model.SensitivityResult{
				Variable:  variable,
				Variation: variation,
				NPV:       bundle.Indicators.NPV,
				IRR:       bundle.Indicators.IRR,
			})
		}
	}
	return results, nil
}

// Tornado summarises a Sweep's results per variable: the minimum and
// maximum NPV observed across its variations (baseline included), the NPV
// at variation 0, and the absolute impact between the extremes. Rows are
// sorted descending by impact.
func Tornado(results []model.SensitivityResult) []model.TornadoRow {
	byVariable := make(map[string][]model.SensitivityResult)
	var order []string
	for _, r := range results {
		if _, seen := byVariable[r.Variable]; !seen {
			order = append(order, r.Variable)
		}
		byVariable[r.Variable] = append(byVariable[r.Variable], r)
	}

	rows := make([]model.TornadoRow, 0, len(order))
	for _, variable := range order {
		samples := byVariable[variable]
		low, high := samples[0].NPV, samples[0].NPV
		var base float64
		for _, s := range samples {
			if s.NPV < low {
				low = s.NPV
			}
			if s.NPV > high {
				high = s.NPV
			}
			if s.Variation == 0 {
				base = s.NPV
			}
		}
		impact := high - low
		if impact < 0 {
			impact = -impact
		}
		rows = append(rows, model.TornadoRow{
			Variable: variable,
			LowNPV:   low,
			BaseNPV:  base,
			HighNPV:  high,
			Impact:   impact,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Impact > rows[j].Impact })
	return rows
}
