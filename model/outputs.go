package model

// CashFlowYear is one absolute project year's cash flow statement row.
type CashFlowYear struct {
	Year               int
	OperatingInflow    float64
	OperatingOutflow   float64
	InvestingOutflow   float64
	FinancingInflow    float64
	FinancingOutflow   float64
	NetCashFlow        float64
	CumulativeCashFlow float64
	DiscountedCashFlow float64
}

// IncomeStatementYear is one absolute project year's income statement row.
// Construction years are zeroed rows.
type IncomeStatementYear struct {
	Year             int
	Revenue          float64
	CostOfGoodsSold  float64
	GrossProfit      float64
	OperatingExpense float64
	Depreciation     float64
	OperatingIncome  float64
	InterestExpense  float64
	TaxableIncome    float64
	Taxes            float64
	NetIncome        float64
}

// BalanceSheetYear is one absolute project year's balance sheet row,
// including year 0.
type BalanceSheetYear struct {
	Year                    int
	FixedAssets             float64
	AccumulatedDepreciation float64
	NetFixedAssets          float64
	Receivables             float64
	Inventory               float64
	Cash                    float64
	LongTermDebt            float64
	ShareCapital            float64
	RetainedEarnings        float64
}

// TotalAssets is cash + receivables + inventory + net fixed assets.
func (b BalanceSheetYear) TotalAssets() float64 {
	return b.Cash + b.Receivables + b.Inventory + b.NetFixedAssets
}

// TotalLiabilitiesAndEquity is long-term debt + share capital + retained
// earnings — the right-hand side of the balance sheet identity.
func (b BalanceSheetYear) TotalLiabilitiesAndEquity() float64 {
	return b.LongTermDebt + b.ShareCapital + b.RetainedEarnings
}

// FinancialIndicators holds the full suite of profitability indicators.
// IRR and MIRR are pointers: nil means NOT_CONVERGED or otherwise
// undefined, never NaN.
type FinancialIndicators struct {
	NPV                    float64
	IRR                    *float64
	MIRR                   *float64
	SimplePaybackYears     float64 // -1 if never recouped
	DiscountedPaybackYears float64 // -1 if never recouped
	ROI                    float64 // percent
	BCR                    float64
	BreakEvenUnits         float64 // -1 if contribution margin <= 0
	BreakEvenRevenue       float64 // -1 if contribution margin <= 0
}

// SensitivityResult is one (variable, variation) sample from a sweep.
type SensitivityResult struct {
	Variable  string
	Variation float64 // percent delta applied
	NPV       float64
	IRR       *float64
}

// TornadoRow summarises one variable's NPV impact across all its
// variations plus the baseline.
type TornadoRow struct {
	Variable string
	LowNPV   float64
	BaseNPV  float64
	HighNPV  float64
	Impact   float64
}
