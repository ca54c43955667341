// Package facade is the single entry point into the projection engine:
// given a ProjectModel, it returns the complete bundle of statements,
// amortisation schedules, and indicators.
package facade

import (
	"projectio/amortization"
	"projectio/indicators"
	"projectio/model"
	"projectio/statements"
)

// Bundle is the complete output of a projection run.
type Bundle struct {
	CashFlows        []model.CashFlowYear
	IncomeStatements []model.IncomeStatementYear
	BalanceSheets    []model.BalanceSheetYear
	Amortizations    map[string][]amortization.Row
	Indicators       model.FinancialIndicators
}

// BreakEvenParams lets the caller supply the break-even inputs explicitly
// rather than have the façade infer them from a heterogeneous product/cost
// list. UnitPrice and VariableCostPerUnit are caller-chosen single
// figures; FixedCosts is the annual fixed-cost total.
type BreakEvenParams struct {
	FixedCosts          float64
	UnitPrice           float64
	VariableCostPerUnit float64
}

// Run validates m, then computes the statements, per-loan amortisation
// schedules, and the full indicator suite in one pass. On INVALID_MODEL
// it returns a non-nil *model.ValidationError and a zero Bundle — no
// partial results.
func Run(m model.ProjectModel, breakEven BreakEvenParams) (Bundle, []model.Diagnostic, error) {
	if problems := model.Validate(m); len(problems) > 0 {
		return Bundle{}, nil, &model.ValidationError{Problems: problems}
	}

	st := statements.Build(m)

	amortizations := make(map[string][]amortization.Row, len(m.Financings))
	for _, f := range m.Financings {
		if f.Type != model.FinancingLoan {
			continue
		}
		amortizations[f.Name] = amortization.Schedule(f.Amount, f.InterestRate, f.TermYears, f.GracePeriod)
	}

	ind, indDiagnostics := computeIndicators(st, m, breakEven)
	diagnostics := append(append([]model.Diagnostic{}, st.Diagnostics...), indDiagnostics...)

	return Bundle{
		CashFlows:        st.CashFlows,
		IncomeStatements: st.IncomeStatements,
		BalanceSheets:    st.BalanceSheets,
		Amortizations:    amortizations,
		Indicators:       ind,
	}, diagnostics, nil
}

func computeIndicators(st statements.Statements, m model.ProjectModel, be BreakEvenParams) (model.FinancialIndicators, []model.Diagnostic) {
	netFlows := make([]float64, len(st.CashFlows))
	var totalInvestment, totalNetIncome float64
	for i, cf := range st.CashFlows {
		netFlows[i] = cf.NetCashFlow
		totalInvestment += cf.InvestingOutflow
	}
	for _, is := range st.IncomeStatements {
		totalNetIncome += is.NetIncome
	}

	var out model.FinancialIndicators
	var diagnostics []model.Diagnostic
	out.NPV = indicators.NPV(netFlows, m.Parameters.DiscountRate)

	if rate, ok := indicators.IRR(netFlows); ok {
		out.IRR = &rate
		mirr := indicators.MIRR(netFlows, m.Parameters.DiscountRate, m.Parameters.DiscountRate)
		out.MIRR = &mirr
	} else {
		diagnostics = append(diagnostics, model.Diagnostic{
			Kind:    model.DiagnosticNotConverged,
			Source:  "indicators",
			Message: "IRR did not converge; IRR and MIRR are omitted",
		})
	}

	out.SimplePaybackYears = indicators.SimplePayback(netFlows)
	out.DiscountedPaybackYears = indicators.DiscountedPayback(netFlows, m.Parameters.DiscountRate)
	out.ROI = indicators.ROI(totalNetIncome, totalInvestment)
	out.BCR = indicators.BCR(netFlows, m.Parameters.DiscountRate)
	out.BreakEvenUnits, out.BreakEvenRevenue = indicators.BreakEven(be.FixedCosts, be.UnitPrice, be.VariableCostPerUnit)

	return out, diagnostics
}
