package statements

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"projectio/model"
)

func sampleModel() model.ProjectModel {
	return model.ProjectModel{
		Parameters: model.ProjectParameters{
			ConstructionYears: 1,
			OperationYears:    5,
			DiscountRate:      10,
			TaxRate:           25,
		},
		Investments: []model.Investment{
			{Category: model.CategoryMachinery, Amount: 10000, Year: 0, UsefulLife: 5, SalvageValue: 0, DepreciationMethod: model.StraightLine},
			{Category: model.CategoryLand, Amount: 2000, Year: 0, UsefulLife: 1, DepreciationMethod: model.StraightLine},
		},
		Products: []model.Product{
			{
				Name:      "widget",
				UnitPrice: 20,
				ProductionSchedule: []model.ProductionScheduleRow{
					{Year: 1, Quantity: 500},
					{Year: 2, Quantity: 500},
					{Year: 3, Quantity: 500},
					{Year: 4, Quantity: 500},
					{Year: 5, Quantity: 500},
				},
			},
		},
		OperatingCosts: []model.OperatingCost{
			{CostType: model.CostVariable, Amount: 2000, StartYear: 1},
		},
		Financings: []model.Financing{
			{Type: model.FinancingLoan, Amount: 8000, InterestRate: 8, TermYears: 5, GracePeriod: 0, DisbursementYear: 0, RepaymentStartYear: 1},
			{Type: model.FinancingEquity, Amount: 4000, DisbursementYear: 0},
		},
	}
}

// Invariant 1: balance sheet identity holds every year.
func TestBuild_BalanceSheetIdentityHolds(t *testing.T) {
	st := Build(sampleModel())
	for _, bs := range st.BalanceSheets {
		diff := math.Abs(bs.TotalAssets() - bs.TotalLiabilitiesAndEquity())
		tolerance := 1e-6 * math.Max(1, bs.TotalAssets())
		assert.LessOrEqual(t, diff, tolerance, "year %d: assets=%v liab+equity=%v", bs.Year, bs.TotalAssets(), bs.TotalLiabilitiesAndEquity())
	}
}

func TestBuild_ConstructionYearIncomeStatementIsZeroed(t *testing.T) {
	st := Build(sampleModel())
	assert.Equal(t, model.IncomeStatementYear{Year: 0}, st.IncomeStatements[0])
}

func TestBuild_CumulativeCashFlowIsRunningSum(t *testing.T) {
	st := Build(sampleModel())
	var running float64
	for _, cf := range st.CashFlows {
		running += cf.NetCashFlow
		assert.InDelta(t, running, cf.CumulativeCashFlow, 1e-9)
	}
}

func TestBuild_NonDepreciableCategoriesNeverDepreciate(t *testing.T) {
	st := Build(sampleModel())
	// Land investment contributes 0 depreciation; only the machinery's
	// straight-line charge of 2000/year should appear. Years 0 and 1 are
	// zeroed rows (no operations yet), and the machinery bought in year 0
	// with a 5-year life is charged in years 0-4 only.
	for _, is := range st.IncomeStatements {
		expected := 0.0
		if is.Year >= 2 && is.Year <= 4 {
			expected = 2000.0
		}
		assert.InDelta(t, expected, is.Depreciation, 1e-6, "year %d", is.Year)
	}
}

func TestBuild_DiscountedCashFlowMatchesManualDiscount(t *testing.T) {
	st := Build(sampleModel())
	for _, cf := range st.CashFlows {
		expected := cf.NetCashFlow / math.Pow(1.10, float64(cf.Year))
		assert.InDelta(t, expected, cf.DiscountedCashFlow, 1e-6)
	}
}

func TestBuild_ZeroProductsAndCosts_RevenueAndCostsAreZero(t *testing.T) {
	m := sampleModel()
	m.Products = nil
	m.OperatingCosts = nil
	st := Build(m)
	for _, cf := range st.CashFlows {
		assert.Equal(t, 0.0, cf.OperatingInflow)
	}
}

func TestBuild_DecliningBalanceHittingSalvageFloorWarns(t *testing.T) {
	m := sampleModel()
	m.Investments = append(m.Investments, model.Investment{
		Category:           model.CategoryMachinery,
		Amount:             1000,
		Year:               0,
		UsefulLife:         10,
		SalvageValue:       900,
		DepreciationMethod: model.DecliningBalance,
		DepreciationRate:   50,
	})
	st := Build(m)

	var found bool
	for _, d := range st.Diagnostics {
		if d.Kind == model.DiagnosticWarning && d.Source == "depreciation" {
			found = true
		}
	}
	assert.True(t, found, "expected a depreciation salvage-floor warning, got %+v", st.Diagnostics)
}
