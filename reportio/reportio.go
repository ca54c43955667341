// Package reportio renders a projection bundle to the report formats a
// caller needs: a CLI table, JSON, CSV, and an XLSX workbook. It consumes
// the output bundle and never recomputes anything.
package reportio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"projectio/facade"
)

// Report wraps a projection bundle for rendering.
type Report struct {
	bundle facade.Bundle
}

// New wraps bundle for rendering in any of the supported formats.
func New(bundle facade.Bundle) *Report {
	return &Report{bundle: bundle}
}

// ToJSON returns the bundle as indented JSON.
func (r *Report) ToJSON() (string, error) {
	data, err := json.MarshalIndent(r.bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal bundle: %w", err)
	}
	return string(data), nil
}

// ToCSV returns the cash flow statement as CSV — the series report writers
// most commonly need for spreadsheet import.
func (r *Report) ToCSV() (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"year", "operatingInflow", "operatingOutflow", "investingOutflow", "financingInflow", "financingOutflow", "netCashFlow", "cumulativeCashFlow", "discountedCashFlow"}); err != nil {
		return "", err
	}
	for _, cf := range r.bundle.CashFlows {
		record := []string{
			strconv.Itoa(cf.Year),
			formatFloat(cf.OperatingInflow),
			formatFloat(cf.OperatingOutflow),
			formatFloat(cf.InvestingOutflow),
			formatFloat(cf.FinancingInflow),
			formatFloat(cf.FinancingOutflow),
			formatFloat(cf.NetCashFlow),
			formatFloat(cf.CumulativeCashFlow),
			formatFloat(cf.DiscountedCashFlow),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ToCLI renders the three statements and the indicator suite as fixed-width
// tables, one section per statement.
func (r *Report) ToCLI() string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("=============================================================================\n")
	sb.WriteString("                      PROJECT FINANCIAL PROJECTION\n")
	sb.WriteString("=============================================================================\n")

	sb.WriteString(r.cashFlowSection())
	sb.WriteString(r.incomeStatementSection())
	sb.WriteString(r.balanceSheetSection())
	sb.WriteString(r.indicatorSection())

	return sb.String()
}

func (r *Report) cashFlowSection() string {
	var sb strings.Builder
	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  CASH FLOW STATEMENT\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Header("Year", "Op Inflow", "Op Outflow", "Investing", "Fin Inflow", "Fin Outflow", "Net CF", "Cum CF", "Disc CF")
	for _, cf := range r.bundle.CashFlows {
		table.Append([]string{
			strconv.Itoa(cf.Year),
			formatMoney(cf.OperatingInflow),
			formatMoney(cf.OperatingOutflow),
			formatMoney(cf.InvestingOutflow),
			formatMoney(cf.FinancingInflow),
			formatMoney(cf.FinancingOutflow),
			formatMoney(cf.NetCashFlow),
			formatMoney(cf.CumulativeCashFlow),
			formatMoney(cf.DiscountedCashFlow),
		})
	}
	table.Render()
	return sb.String()
}

func (r *Report) incomeStatementSection() string {
	var sb strings.Builder
	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  INCOME STATEMENT\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Header("Year", "Revenue", "COGS", "Gross Profit", "OpEx", "Depreciation", "EBIT", "Interest", "Taxes", "Net Income")
	for _, is := range r.bundle.IncomeStatements {
		table.Append([]string{
			strconv.Itoa(is.Year),
			formatMoney(is.Revenue),
			formatMoney(is.CostOfGoodsSold),
			formatMoney(is.GrossProfit),
			formatMoney(is.OperatingExpense),
			formatMoney(is.Depreciation),
			formatMoney(is.OperatingIncome),
			formatMoney(is.InterestExpense),
			formatMoney(is.Taxes),
			formatMoney(is.NetIncome),
		})
	}
	table.Render()
	return sb.String()
}

func (r *Report) balanceSheetSection() string {
	var sb strings.Builder
	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  BALANCE SHEET\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Header("Year", "Net Fixed Assets", "Cash", "Total Assets", "LT Debt", "Share Capital", "Retained Earnings")
	for _, bs := range r.bundle.BalanceSheets {
		table.Append([]string{
			strconv.Itoa(bs.Year),
			formatMoney(bs.NetFixedAssets),
			formatMoney(bs.Cash),
			formatMoney(bs.TotalAssets()),
			formatMoney(bs.LongTermDebt),
			formatMoney(bs.ShareCapital),
			formatMoney(bs.RetainedEarnings),
		})
	}
	table.Render()
	return sb.String()
}

func (r *Report) indicatorSection() string {
	var sb strings.Builder
	ind := r.bundle.Indicators

	sb.WriteString("\n-----------------------------------------------------------------------------\n")
	sb.WriteString("  PROFITABILITY INDICATORS\n")
	sb.WriteString("-----------------------------------------------------------------------------\n")

	table := tablewriter.NewTable(&sb)
	table.Append([]string{"NPV", formatMoney(ind.NPV)})
	table.Append([]string{"IRR", formatPercentPtr(ind.IRR)})
	table.Append([]string{"MIRR", formatPercentPtr(ind.MIRR)})
	table.Append([]string{"Simple Payback (years)", formatYears(ind.SimplePaybackYears)})
	table.Append([]string{"Discounted Payback (years)", formatYears(ind.DiscountedPaybackYears)})
	table.Append([]string{"ROI", fmt.Sprintf("%.2f%%", ind.ROI)})
	table.Append([]string{"BCR", fmt.Sprintf("%.2f", ind.BCR)})
	table.Append([]string{"Break-even units", formatYears(ind.BreakEvenUnits)})
	table.Append([]string{"Break-even revenue", formatMoney(ind.BreakEvenRevenue)})
	table.Render()

	return sb.String()
}

func formatMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.0f", -v)
	}
	return fmt.Sprintf("$%.0f", v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatPercentPtr(v *float64) string {
	if v == nil {
		return "not converged"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func formatYears(v float64) string {
	if v < 0 {
		return "never"
	}
	return fmt.Sprintf("%.2f", v)
}
