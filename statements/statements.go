// Package statements composes the depreciation, amortisation, and schedule
// kernels into the three pro-forma annual statements: cash flow, income
// statement, and balance sheet.
package statements

import (
	"github.com/shopspring/decimal"

	"projectio/amortization"
	"projectio/depreciation"
	"projectio/model"
	"projectio/schedule"
)

const pointDivider = 100

// Statements holds the three parallel annual series produced by Build, plus
// the WARNING diagnostics raised while building them.
type Statements struct {
	CashFlows        []model.CashFlowYear
	IncomeStatements []model.IncomeStatementYear
	BalanceSheets    []model.BalanceSheetYear
	Diagnostics      []model.Diagnostic
}

// Build computes all three statements over years [0, constructionYears+operationYears].
// It is the sole place the three statements' cross-referential
// invariants (shared depreciation, shared debt service) are assembled.
func Build(m model.ProjectModel) Statements {
	totalYears := m.Parameters.TotalYears()
	var out Statements

	diagnostics := checkLoanWarnings(m.Financings)
	depreciableInvestments := depreciableOnly(m.Investments)
	diagnostics = append(diagnostics, checkDepreciationWarnings(depreciableInvestments)...)
	out.Diagnostics = diagnostics

	cumulativeCash := decimal.Zero
	cumulativeRetained := decimal.Zero
	taxRate := decimal.NewFromFloat(m.Parameters.TaxRate).Div(decimal.NewFromInt(pointDivider))
	discountRate := decimal.NewFromFloat(m.Parameters.DiscountRate).Div(decimal.NewFromInt(pointDivider))

	for y := 0; y <= totalYears; y++ {
		ev := schedule.Evaluate(m, y)
		debtService := amortization.AggregateDebtService(m.Financings, y)
		depYear := totalDepreciation(depreciableInvestments, y)

		revenue := decimal.NewFromFloat(ev.Revenue)
		operatingCosts := decimal.NewFromFloat(ev.OperatingCosts())
		dep := decimal.NewFromFloat(depYear)
		interest := decimal.NewFromFloat(debtService.Interest)

		taxableIncomeForCash := revenue.Sub(operatingCosts).Sub(dep).Sub(interest)
		taxes := decimal.Zero
		if taxableIncomeForCash.IsPositive() {
			taxes = taxableIncomeForCash.Mul(taxRate)
		}

		cf := model.CashFlowYear{
			Year:             y,
			OperatingInflow:  ev.Revenue,
			OperatingOutflow: operatingCosts.Add(taxes).InexactFloat64(),
			InvestingOutflow: ev.CapitalOutflow,
			FinancingInflow:  ev.FinancingInflow,
			FinancingOutflow: debtService.Total(),
		}
		netCashFlow := decimal.NewFromFloat(cf.OperatingInflow).
			Sub(decimal.NewFromFloat(cf.OperatingOutflow)).
			Sub(decimal.NewFromFloat(cf.InvestingOutflow)).
			Add(decimal.NewFromFloat(cf.FinancingInflow)).
			Sub(decimal.NewFromFloat(cf.FinancingOutflow))
		cf.NetCashFlow = netCashFlow.InexactFloat64()
		cumulativeCash = cumulativeCash.Add(netCashFlow)
		cf.CumulativeCashFlow = cumulativeCash.InexactFloat64()
		cf.DiscountedCashFlow = discount(netCashFlow, discountRate, y).InexactFloat64()
		out.CashFlows = append(out.CashFlows, cf)

		var is model.IncomeStatementYear
		is.Year = y
		netIncome := decimal.Zero
		if y > m.Parameters.ConstructionYears {
			is.Revenue = ev.Revenue
			is.CostOfGoodsSold = ev.COGS
			grossProfit := revenue.Sub(decimal.NewFromFloat(ev.COGS))
			is.GrossProfit = grossProfit.InexactFloat64()
			is.OperatingExpense = ev.OperatingExpense
			is.Depreciation = depYear
			operatingIncome := grossProfit.Sub(decimal.NewFromFloat(ev.OperatingExpense)).Sub(dep)
			is.OperatingIncome = operatingIncome.InexactFloat64()
			is.InterestExpense = debtService.Interest
			taxableIncome := operatingIncome.Sub(interest)
			is.TaxableIncome = taxableIncome.InexactFloat64()
			isTaxes := decimal.Zero
			if taxableIncome.IsPositive() {
				isTaxes = taxableIncome.Mul(taxRate)
			}
			is.Taxes = isTaxes.InexactFloat64()
			netIncome = taxableIncome.Sub(isTaxes)
			is.NetIncome = netIncome.InexactFloat64()
		}
		out.IncomeStatements = append(out.IncomeStatements, is)
		cumulativeRetained = cumulativeRetained.Add(netIncome)

		bs := buildBalanceSheetRow(m, y, depreciableInvestments, cumulativeRetained)
		out.BalanceSheets = append(out.BalanceSheets, bs)
	}

	return out
}

func depreciableOnly(investments []model.Investment) []model.Investment {
	out := make([]model.Investment, 0, len(investments))
	for _, inv := range investments {
		if inv.IsDepreciable() {
			out = append(out, inv)
		}
	}
	return out
}

func totalDepreciation(investments []model.Investment, year int) float64 {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(decimal.NewFromFloat(depreciation.Charge(inv, year)))
	}
	return total.InexactFloat64()
}

func totalAccumulatedDepreciation(investments []model.Investment, year int) float64 {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(decimal.NewFromFloat(depreciation.AccumulatedCharge(inv, year)))
	}
	return total.InexactFloat64()
}

func discount(amount, rate decimal.Decimal, year int) decimal.Decimal {
	if rate.IsZero() {
		return amount
	}
	one := decimal.NewFromInt(1)
	discountFactor := one.Add(rate).Pow(decimal.NewFromInt(int64(year)))
	return amount.Div(discountFactor)
}

func buildBalanceSheetRow(m model.ProjectModel, year int, depreciableInvestments []model.Investment, cumulativeRetained decimal.Decimal) model.BalanceSheetYear {
	var bs model.BalanceSheetYear
	bs.Year = year

	fixedAssets := decimal.Zero
	cumulativeWorkingCapital := decimal.Zero
	for _, inv := range m.Investments {
		if inv.Year > year {
			continue
		}
		amount := decimal.NewFromFloat(inv.Amount)
		if inv.Category == model.CategoryWorkingCapital {
			cumulativeWorkingCapital = cumulativeWorkingCapital.Add(amount)
			continue
		}
		fixedAssets = fixedAssets.Add(amount)
	}
	bs.FixedAssets = fixedAssets.InexactFloat64()
	bs.AccumulatedDepreciation = totalAccumulatedDepreciation(depreciableInvestments, year)
	netFixedAssets := fixedAssets.Sub(decimal.NewFromFloat(bs.AccumulatedDepreciation))
	bs.NetFixedAssets = netFixedAssets.InexactFloat64()
	bs.Receivables = 0
	inventory := cumulativeWorkingCapital.Mul(decimal.NewFromFloat(0.6))
	bs.Inventory = inventory.InexactFloat64()

	longTermDebt := decimal.Zero
	shareCapital := decimal.Zero
	for _, f := range m.Financings {
		switch f.Type {
		case model.FinancingLoan:
			longTermDebt = longTermDebt.Add(decimal.NewFromFloat(amortization.LoanOutstandingBalance(f, year)))
		case model.FinancingEquity:
			if f.DisbursementYear <= year {
				shareCapital = shareCapital.Add(decimal.NewFromFloat(f.Amount))
			}
		}
	}
	bs.LongTermDebt = longTermDebt.InexactFloat64()
	bs.ShareCapital = shareCapital.InexactFloat64()
	bs.RetainedEarnings = cumulativeRetained.InexactFloat64()

	// Cash is the plug: chosen so the accounting identity holds, clamped
	// to >= 0.
	totalLiabilitiesAndEquity := longTermDebt.Add(shareCapital).Add(cumulativeRetained)
	plug := totalLiabilitiesAndEquity.Sub(decimal.NewFromFloat(bs.Receivables)).Sub(inventory).Sub(netFixedAssets)
	if plug.IsNegative() {
		plug = decimal.Zero
	}
	bs.Cash = plug.InexactFloat64()

	return bs
}

func checkLoanWarnings(financings []model.Financing) []model.Diagnostic {
	var diagnostics []model.Diagnostic
	for _, f := range financings {
		if f.Type != model.FinancingLoan {
			continue
		}
		if f.TermYears <= f.GracePeriod {
			diagnostics = append(diagnostics, model.Diagnostic{
				Kind:    model.DiagnosticWarning,
				Source:  "amortization",
				Message: "loan \"" + f.Name + "\" is entirely within its grace period; no principal is ever repaid",
			})
		}
	}
	return diagnostics
}

// checkDepreciationWarnings flags declining-balance assets whose book value
// reaches the salvage floor before the last year of their useful life, so
// the remaining years of the schedule carry zero depreciation charge.
func checkDepreciationWarnings(depreciableInvestments []model.Investment) []model.Diagnostic {
	var diagnostics []model.Diagnostic
	for _, inv := range depreciableInvestments {
		if inv.DepreciationMethod != model.DecliningBalance || inv.UsefulLife <= 1 {
			continue
		}
		lastYear := inv.Year + inv.UsefulLife - 1
		for y := inv.Year; y < lastYear; y++ {
			if depreciation.Charge(inv, y) == 0 {
				diagnostics = append(diagnostics, model.Diagnostic{
					Kind:    model.DiagnosticWarning,
					Source:  "depreciation",
					Message: "investment \"" + inv.ID.String() + "\" reaches its salvage floor before the end of its useful life; remaining years carry zero depreciation",
				})
				break
			}
		}
	}
	return diagnostics
}
