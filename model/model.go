// Package model defines the immutable input contract for the projection
// engine: a ProjectModel and its constituent entities, plus the derived
// value objects the engine produces.
package model

import "github.com/google/uuid"

// InvestmentCategory classifies a capital outlay.
type InvestmentCategory string

const (
	CategoryLand           InvestmentCategory = "land"
	CategoryBuildings      InvestmentCategory = "buildings"
	CategoryMachinery      InvestmentCategory = "machinery"
	CategoryEquipment      InvestmentCategory = "equipment"
	CategoryVehicles       InvestmentCategory = "vehicles"
	CategoryFurniture      InvestmentCategory = "furniture"
	CategoryPreproduction  InvestmentCategory = "preproduction"
	CategoryWorkingCapital InvestmentCategory = "working_capital"
	CategoryOther          InvestmentCategory = "other"
)

// DepreciationMethod selects how an Investment's cost is expensed over time.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "straight_line"
	DecliningBalance DepreciationMethod = "declining_balance"
	NoDepreciation   DepreciationMethod = "none"
)

// CostType distinguishes variable (COGS) from fixed (opex) operating costs.
type CostType string

const (
	CostFixed    CostType = "fixed"
	CostVariable CostType = "variable"
)

// FinancingType classifies a source of capital.
type FinancingType string

const (
	FinancingEquity FinancingType = "equity"
	FinancingLoan   FinancingType = "loan"
	FinancingGrant  FinancingType = "grant"
)

// ProjectParameters holds the macro and timeline settings for a single run.
// Rates are percent (10 means ten percent), not fractions.
type ProjectParameters struct {
	ConstructionYears int     // [0,10]
	OperationYears    int     // [1,50]
	DiscountRate      float64 // percent
	InflationRate     float64 // percent, carried for display only — see Non-goals
	TaxRate           float64 // percent, [0,100]
	StartDate         string  // informational only, ISO-8601; engine does not interpret it
}

// TotalYears is the full span of the run: construction plus operation.
func (p ProjectParameters) TotalYears() int {
	return p.ConstructionYears + p.OperationYears
}

// Investment is a single capital outlay with its own depreciation treatment.
type Investment struct {
	ID                 uuid.UUID
	Category           InvestmentCategory
	Amount             float64
	Year               int // absolute project year, >= 0
	UsefulLife         int // years, >= 1
	SalvageValue       float64
	DepreciationMethod DepreciationMethod
	DepreciationRate   float64 // percent, used only by declining_balance
}

// IsDepreciable reports whether this investment is ever expensed through
// depreciation, independent of its stated DepreciationMethod: land and
// working capital never depreciate.
func (inv Investment) IsDepreciable() bool {
	if inv.Category == CategoryLand || inv.Category == CategoryWorkingCapital {
		return false
	}
	return inv.DepreciationMethod != NoDepreciation
}

// ProductionScheduleRow is one year's planned output for a Product.
type ProductionScheduleRow struct {
	Year                int // operating-year index, 1-based
	CapacityUtilization float64 // percent, [0,100]
	Quantity            float64 // authoritative field used for revenue
}

// Product is a single output stream with an escalating unit price and a
// sparse, year-keyed production schedule.
type Product struct {
	Name                string
	Unit                string
	UnitPrice           float64
	PriceEscalation     float64 // percent per year, compounded
	InstalledCapacity   float64
	CapacityUnit        string
	ProductionSchedule  []ProductionScheduleRow
}

// ScheduleRow returns the production row for operating year o, and whether
// one was found. Missing years imply zero output (spec invariant).
func (p Product) ScheduleRow(o int) (ProductionScheduleRow, bool) {
	for _, row := range p.ProductionSchedule {
		if row.Year == o {
			return row, true
		}
	}
	return ProductionScheduleRow{}, false
}

// OperatingCost is a single recurring cost line, fixed or variable, with
// its own escalation rate and start year.
type OperatingCost struct {
	Category       string
	Description    string
	CostType       CostType
	Amount         float64 // first-year annual figure
	UnitCost       float64 // used only for break-even
	EscalationRate float64 // percent per year, compounded
	StartYear      int     // operating-year index, >= 1
}

// Financing is a single source of capital: equity, a loan, or a grant.
type Financing struct {
	ID                  uuid.UUID
	Type                FinancingType
	Name                string
	Amount              float64
	InterestRate        float64 // percent, loans only
	TermYears           int     // loans only
	GracePeriod         int     // loans only, years
	DisbursementYear    int     // absolute project year
	RepaymentStartYear  int     // absolute project year, loans only, >= 1
}

// ProjectModel is the full, frozen input to a projection run. The engine
// never mutates a ProjectModel it is given; the Adjustment layer (C6)
// always returns a modified copy.
type ProjectModel struct {
	Parameters     ProjectParameters
	Investments    []Investment
	Products       []Product
	OperatingCosts []OperatingCost
	Financings     []Financing
}

// Clone returns a deep copy safe for independent mutation — used by the
// adjustment layer (C6) so sensitivity/scenario runs never alias the
// caller's slices.
func (m ProjectModel) Clone() ProjectModel {
	out := m
	out.Investments = append([]Investment(nil), m.Investments...)
	out.Financings = append([]Financing(nil), m.Financings...)
	out.OperatingCosts = append([]OperatingCost(nil), m.OperatingCosts...)
	out.Products = make([]Product, len(m.Products))
	for i, p := range m.Products {
		p.ProductionSchedule = append([]ProductionScheduleRow(nil), p.ProductionSchedule...)
		out.Products[i] = p
	}
	return out
}
