package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validModel() ProjectModel {
	return ProjectModel{
		Parameters: ProjectParameters{
			ConstructionYears: 1,
			OperationYears:    5,
			DiscountRate:      10,
			TaxRate:           25,
		},
		Investments: []Investment{
			{Category: CategoryMachinery, Amount: 1000, Year: 0, UsefulLife: 5, SalvageValue: 100, DepreciationMethod: StraightLine},
		},
		Products: []Product{
			{Name: "widget", UnitPrice: 10, ProductionSchedule: []ProductionScheduleRow{{Year: 1, Quantity: 100}}},
		},
		OperatingCosts: []OperatingCost{
			{CostType: CostVariable, Amount: 100, StartYear: 1},
		},
		Financings: []Financing{
			{Type: FinancingLoan, Amount: 500, InterestRate: 10, TermYears: 5, GracePeriod: 1, RepaymentStartYear: 2},
		},
	}
}

func TestValidate_AcceptsWellFormedModel(t *testing.T) {
	assert.Empty(t, Validate(validModel()))
}

func TestValidate_RejectsSalvageAboveCost(t *testing.T) {
	m := validModel()
	m.Investments[0].SalvageValue = 2000
	problems := Validate(m)
	assert.NotEmpty(t, problems)
	assert.Equal(t, "investments[0].salvageValue", problems[0].Field)
}

func TestValidate_RejectsGracePeriodNotLessThanTerm(t *testing.T) {
	m := validModel()
	m.Financings[0].GracePeriod = 5
	problems := Validate(m)
	found := false
	for _, p := range problems {
		if p.Field == "financings[0].gracePeriod" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_RejectsDuplicateScheduleYears(t *testing.T) {
	m := validModel()
	m.Products[0].ProductionSchedule = append(m.Products[0].ProductionSchedule, ProductionScheduleRow{Year: 1, Quantity: 50})
	problems := Validate(m)
	found := false
	for _, p := range problems {
		if p.Message == "duplicate year 1" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_RejectsScheduleYearOutOfRange(t *testing.T) {
	m := validModel()
	m.Products[0].ProductionSchedule[0].Year = 99
	problems := Validate(m)
	assert.NotEmpty(t, problems)
}

func TestClone_IsIndependentOfOriginal(t *testing.T) {
	m := validModel()
	clone := m.Clone()
	clone.Investments[0].Amount = 9999
	clone.Products[0].ProductionSchedule[0].Quantity = 1
	assert.Equal(t, 1000.0, m.Investments[0].Amount)
	assert.Equal(t, 100.0, m.Products[0].ProductionSchedule[0].Quantity)
}
