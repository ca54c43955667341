package reportio

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ToXLSX writes the three statements to a workbook at filename, one sheet
// per statement.
func (r *Report) ToXLSX(filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := r.writeCashFlowSheet(f); err != nil {
		return err
	}
	if err := r.writeIncomeStatementSheet(f); err != nil {
		return err
	}
	if err := r.writeBalanceSheetSheet(f); err != nil {
		return err
	}
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (r *Report) writeCashFlowSheet(f *excelize.File) error {
	const sheet = "Cash Flow"
	f.NewSheet(sheet)
	headers := []string{"Year", "Operating Inflow", "Operating Outflow", "Investing Outflow", "Financing Inflow", "Financing Outflow", "Net Cash Flow", "Cumulative Cash Flow", "Discounted Cash Flow"}
	writeHeaderRow(f, sheet, headers)
	for i, cf := range r.bundle.CashFlows {
		row := i + 2
		values := []any{cf.Year, cf.OperatingInflow, cf.OperatingOutflow, cf.InvestingOutflow, cf.FinancingInflow, cf.FinancingOutflow, cf.NetCashFlow, cf.CumulativeCashFlow, cf.DiscountedCashFlow}
		writeDataRow(f, sheet, row, values)
	}
	return nil
}

func (r *Report) writeIncomeStatementSheet(f *excelize.File) error {
	const sheet = "Income Statement"
	f.NewSheet(sheet)
	headers := []string{"Year", "Revenue", "COGS", "Gross Profit", "Operating Expense", "Depreciation", "Operating Income", "Interest Expense", "Taxable Income", "Taxes", "Net Income"}
	writeHeaderRow(f, sheet, headers)
	for i, is := range r.bundle.IncomeStatements {
		row := i + 2
		values := []any{is.Year, is.Revenue, is.CostOfGoodsSold, is.GrossProfit, is.OperatingExpense, is.Depreciation, is.OperatingIncome, is.InterestExpense, is.TaxableIncome, is.Taxes, is.NetIncome}
		writeDataRow(f, sheet, row, values)
	}
	return nil
}

func (r *Report) writeBalanceSheetSheet(f *excelize.File) error {
	const sheet = "Balance Sheet"
	f.NewSheet(sheet)
	headers := []string{"Year", "Fixed Assets", "Accumulated Depreciation", "Net Fixed Assets", "Receivables", "Inventory", "Cash", "Long Term Debt", "Share Capital", "Retained Earnings", "Total Assets"}
	writeHeaderRow(f, sheet, headers)
	for i, bs := range r.bundle.BalanceSheets {
		row := i + 2
		values := []any{bs.Year, bs.FixedAssets, bs.AccumulatedDepreciation, bs.NetFixedAssets, bs.Receivables, bs.Inventory, bs.Cash, bs.LongTermDebt, bs.ShareCapital, bs.RetainedEarnings, bs.TotalAssets()}
		writeDataRow(f, sheet, row, values)
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
}

func writeDataRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
