package reportio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"projectio/facade"
	"projectio/model"
)

func sampleBundle(t *testing.T) facade.Bundle {
	t.Helper()
	m := model.ProjectModel{
		Parameters: model.ProjectParameters{
			ConstructionYears: 1,
			OperationYears:    3,
			DiscountRate:      10,
			TaxRate:           20,
		},
		Investments: []model.Investment{
			{Category: model.CategoryMachinery, Amount: 5000, UsefulLife: 3, DepreciationMethod: model.StraightLine},
		},
		Products: []model.Product{
			{
				Name:      "widget",
				UnitPrice: 50,
				ProductionSchedule: []model.ProductionScheduleRow{
					{Year: 1, Quantity: 100},
					{Year: 2, Quantity: 100},
					{Year: 3, Quantity: 100},
				},
			},
		},
		Financings: []model.Financing{{Type: model.FinancingEquity, Amount: 5000}},
	}
	bundle, _, err := facade.Run(m, facade.BreakEvenParams{FixedCosts: 1000, UnitPrice: 50, VariableCostPerUnit: 20})
	assert.NoError(t, err)
	return bundle
}

func TestToJSON_ProducesValidNonEmptyDocument(t *testing.T) {
	r := New(sampleBundle(t))
	out, err := r.ToJSON()
	assert.NoError(t, err)
	assert.Contains(t, out, "CashFlows")
}

func TestToCSV_HasHeaderAndOneRowPerYear(t *testing.T) {
	r := New(sampleBundle(t))
	out, err := r.ToCSV()
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 1+len(r.bundle.CashFlows), len(lines))
}

func TestToCLI_ContainsAllFourSections(t *testing.T) {
	r := New(sampleBundle(t))
	out := r.ToCLI()
	assert.Contains(t, out, "CASH FLOW STATEMENT")
	assert.Contains(t, out, "INCOME STATEMENT")
	assert.Contains(t, out, "BALANCE SHEET")
	assert.Contains(t, out, "PROFITABILITY INDICATORS")
}

func TestFormatPercentPtr_NilMeansNotConverged(t *testing.T) {
	assert.Equal(t, "not converged", formatPercentPtr(nil))
}

func TestFormatYears_NegativeMeansNever(t *testing.T) {
	assert.Equal(t, "never", formatYears(-1))
}
