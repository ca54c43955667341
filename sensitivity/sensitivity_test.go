package sensitivity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"projectio/facade"
	"projectio/model"
)

func sweepModel() model.ProjectModel {
	return model.ProjectModel{
		Parameters: model.ProjectParameters{
			ConstructionYears: 1,
			OperationYears:    5,
			DiscountRate:      10,
			TaxRate:           25,
		},
		Investments: []model.Investment{
			{Category: model.CategoryMachinery, Amount: 10000, Year: 0, UsefulLife: 5, DepreciationMethod: model.StraightLine},
		},
		Products: []model.Product{
			{
				Name:      "widget",
				UnitPrice: 100,
				ProductionSchedule: []model.ProductionScheduleRow{
					{Year: 1, Quantity: 100},
					{Year: 2, Quantity: 100},
					{Year: 3, Quantity: 100},
					{Year: 4, Quantity: 100},
					{Year: 5, Quantity: 100},
				},
			},
		},
		OperatingCosts: []model.OperatingCost{
			{CostType: model.CostVariable, Amount: 2000, StartYear: 1},
		},
		Financings: []model.Financing{
			{Type: model.FinancingEquity, Amount: 10000},
		},
	}
}

func TestSweep_DefaultVariationsProduceNineResultsPerVariable(t *testing.T) {
	results, err := Sweep(sweepModel(), facade.BreakEvenParams{}, []string{"revenue"}, nil)
	assert.NoError(t, err)
	assert.Len(t, results, len(DefaultVariations))
}

func TestSweep_ZeroVariationMatchesUnadjustedNPV(t *testing.T) {
	base := sweepModel()
	baseline, _, err := facade.Run(base, facade.BreakEvenParams{})
	assert.NoError(t, err)

	results, err := Sweep(base, facade.BreakEvenParams{}, []string{"revenue"}, []float64{0})
	assert.NoError(t, err)
	assert.InDelta(t, baseline.Indicators.NPV, results[0].NPV, 1e-6)
}

func TestSweep_HigherRevenueIncreasesNPV(t *testing.T) {
	results, err := Sweep(sweepModel(), facade.BreakEvenParams{}, []string{"revenue"}, []float64{-10, 0, 10})
	assert.NoError(t, err)
	assert.Less(t, results[0].NPV, results[1].NPV)
	assert.Less(t, results[1].NPV, results[2].NPV)
}

func TestTornado_SortsDescendingByImpact(t *testing.T) {
	results, err := Sweep(sweepModel(), facade.BreakEvenParams{}, []string{"revenue", "costs"}, []float64{-20, 0, 20})
	assert.NoError(t, err)

	rows := Tornado(results)
	assert.Len(t, rows, 2)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Impact, rows[i].Impact)
	}
}

func TestTornado_BaseNPVMatchesZeroVariation(t *testing.T) {
	results, err := Sweep(sweepModel(), facade.BreakEvenParams{}, []string{"revenue"}, []float64{-10, 0, 10})
	assert.NoError(t, err)

	rows := Tornado(results)
	var zeroResult model.SensitivityResult
	for _, r := range results {
		if r.Variation == 0 {
			zeroResult = r
		}
	}
	assert.InDelta(t, zeroResult.NPV, rows[0].BaseNPV, 1e-9)
}
