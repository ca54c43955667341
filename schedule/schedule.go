// Package schedule implements the per-year revenue, operating-cost, capex,
// and financing inflow evaluator.
package schedule

import (
	"github.com/shopspring/decimal"

	"projectio/model"
)

const pointDivider = 100

// YearEvaluation is everything the schedule evaluator can say about a
// single absolute project year.
type YearEvaluation struct {
	Year             int
	Revenue          float64
	COGS             float64 // variable operating costs
	OperatingExpense float64 // fixed operating costs
	CapitalOutflow   float64
	FinancingInflow  float64
}

// OperatingCosts is the sum of COGS and OperatingExpense.
func (y YearEvaluation) OperatingCosts() float64 {
	return y.COGS + y.OperatingExpense
}

// Evaluate computes the schedule-driven figures for absolute year Y. Escalation
// is compounded annually and anchored at each entity's own first applicable
// year, so (1+r)^0 == 1 always reproduces the unescalated input exactly.
func Evaluate(m model.ProjectModel, year int) YearEvaluation {
	out := YearEvaluation{Year: year}

	out.CapitalOutflow = capexForYear(m.Investments, year)
	out.FinancingInflow = financingInflowForYear(m.Financings, year)

	if year <= m.Parameters.ConstructionYears {
		return out
	}
	operatingYear := year - m.Parameters.ConstructionYears

	out.Revenue = revenueForOperatingYear(m.Products, operatingYear)
	out.COGS, out.OperatingExpense = costsForOperatingYear(m.OperatingCosts, operatingYear)

	return out
}

func revenueForOperatingYear(products []model.Product, operatingYear int) float64 {
	total := decimal.Zero
	one := decimal.NewFromInt(1)
	divider := decimal.NewFromInt(pointDivider)
	for _, p := range products {
		row, ok := p.ScheduleRow(operatingYear)
		if !ok {
			continue
		}
		rate := decimal.NewFromFloat(p.PriceEscalation).Div(divider)
		escalation := one.Add(rate).Pow(decimal.NewFromInt(int64(operatingYear - 1)))
		contribution := decimal.NewFromFloat(row.Quantity).Mul(decimal.NewFromFloat(p.UnitPrice)).Mul(escalation)
		total = total.Add(contribution)
	}
	return total.InexactFloat64()
}

func costsForOperatingYear(costs []model.OperatingCost, operatingYear int) (cogs, opex float64) {
	one := decimal.NewFromInt(1)
	divider := decimal.NewFromInt(pointDivider)
	cogsTotal := decimal.Zero
	opexTotal := decimal.Zero
	for _, c := range costs {
		if c.StartYear > operatingYear {
			continue
		}
		rate := decimal.NewFromFloat(c.EscalationRate).Div(divider)
		escalation := one.Add(rate).Pow(decimal.NewFromInt(int64(operatingYear - c.StartYear)))
		contribution := decimal.NewFromFloat(c.Amount).Mul(escalation)
		switch c.CostType {
		case model.CostVariable:
			cogsTotal = cogsTotal.Add(contribution)
		case model.CostFixed:
			opexTotal = opexTotal.Add(contribution)
		}
	}
	return cogsTotal.InexactFloat64(), opexTotal.InexactFloat64()
}

func capexForYear(investments []model.Investment, year int) float64 {
	total := decimal.Zero
	for _, inv := range investments {
		if inv.Year == year {
			total = total.Add(decimal.NewFromFloat(inv.Amount))
		}
	}
	return total.InexactFloat64()
}

func financingInflowForYear(financings []model.Financing, year int) float64 {
	total := decimal.Zero
	for _, f := range financings {
		if f.DisbursementYear == year {
			total = total.Add(decimal.NewFromFloat(f.Amount))
		}
	}
	return total.InexactFloat64()
}
