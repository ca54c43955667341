package adjustment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"projectio/model"
)

func fixtureModel() model.ProjectModel {
	return model.ProjectModel{
		Parameters: model.ProjectParameters{DiscountRate: 10},
		Products: []model.Product{
			{
				UnitPrice: 100,
				ProductionSchedule: []model.ProductionScheduleRow{
					{Year: 1, Quantity: 50},
				},
			},
		},
		OperatingCosts: []model.OperatingCost{{Amount: 200}},
		Investments:    []model.Investment{{Amount: 1000}},
	}
}

func TestApply_RevenueScalesUnitPrice(t *testing.T) {
	out := Apply(fixtureModel(), map[string]float64{"revenue": 10})
	assert.InDelta(t, 110.0, out.Products[0].UnitPrice, 1e-9)
}

func TestApply_PriceAliasMatchesRevenue(t *testing.T) {
	out := Apply(fixtureModel(), map[string]float64{"price": -20})
	assert.InDelta(t, 80.0, out.Products[0].UnitPrice, 1e-9)
}

func TestApply_QuantityScalesScheduleRows(t *testing.T) {
	out := Apply(fixtureModel(), map[string]float64{"quantity": 20})
	assert.InDelta(t, 60.0, out.Products[0].ProductionSchedule[0].Quantity, 1e-9)
}

func TestApply_CostsScalesOperatingCostAmount(t *testing.T) {
	out := Apply(fixtureModel(), map[string]float64{"costs": -10})
	assert.InDelta(t, 180.0, out.OperatingCosts[0].Amount, 1e-9)
}

func TestApply_InvestmentScalesAmount(t *testing.T) {
	out := Apply(fixtureModel(), map[string]float64{"investment": 5})
	assert.InDelta(t, 1050.0, out.Investments[0].Amount, 1e-9)
}

func TestApply_DiscountRateIsMultiplicativeOnRateItself(t *testing.T) {
	out := Apply(fixtureModel(), map[string]float64{"discountRate": 10})
	assert.InDelta(t, 11.0, out.Parameters.DiscountRate, 1e-9)
}

func TestApply_UnknownNameIsIgnored(t *testing.T) {
	out := Apply(fixtureModel(), map[string]float64{"frobnicate": 50})
	assert.Equal(t, fixtureModel(), out)
}

func TestApply_OriginalModelUntouched(t *testing.T) {
	original := fixtureModel()
	_ = Apply(original, map[string]float64{"revenue": 50})
	assert.InDelta(t, 100.0, original.Products[0].UnitPrice, 1e-9)
}

func TestApply_MultipleDeltasComposeOnDisjointFields(t *testing.T) {
	out := Apply(fixtureModel(), map[string]float64{"revenue": 10, "costs": -10})
	assert.InDelta(t, 110.0, out.Products[0].UnitPrice, 1e-9)
	assert.InDelta(t, 180.0, out.OperatingCosts[0].Amount, 1e-9)
}
