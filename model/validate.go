package model

import "fmt"

// Problem describes a single structural violation found during validation.
type Problem struct {
	Field   string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Field, p.Message)
}

// ValidationError wraps the full list of problems found by Validate. The
// façade returns this as the INVALID_MODEL failure kind: a
// single-pass check performed before any computation begins.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid project model: " + e.Problems[0].String()
	}
	return fmt.Sprintf("invalid project model: %d problems, first: %s", len(e.Problems), e.Problems[0].String())
}

// Validate performs a single-pass structural check over the model. It
// never computes a projection; it only checks shape and range.
func Validate(m ProjectModel) []Problem {
	var problems []Problem
	add := func(field, format string, args ...any) {
		problems = append(problems, Problem{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	p := m.Parameters
	if p.ConstructionYears < 0 || p.ConstructionYears > 10 {
		add("parameters.constructionYears", "must be in [0,10], got %d", p.ConstructionYears)
	}
	if p.OperationYears < 1 || p.OperationYears > 50 {
		add("parameters.operationYears", "must be in [1,50], got %d", p.OperationYears)
	}
	if p.TaxRate < 0 || p.TaxRate > 100 {
		add("parameters.taxRate", "must be in [0,100], got %g", p.TaxRate)
	}

	for i, inv := range m.Investments {
		field := fmt.Sprintf("investments[%d]", i)
		if inv.Amount < 0 {
			add(field+".amount", "must be >= 0, got %g", inv.Amount)
		}
		if inv.Year < 0 {
			add(field+".year", "must be >= 0, got %d", inv.Year)
		}
		if inv.UsefulLife < 1 {
			add(field+".usefulLife", "must be >= 1, got %d", inv.UsefulLife)
		}
		if inv.SalvageValue < 0 {
			add(field+".salvageValue", "must be >= 0, got %g", inv.SalvageValue)
		}
		if inv.SalvageValue > inv.Amount {
			add(field+".salvageValue", "must be <= amount (%g), got %g", inv.Amount, inv.SalvageValue)
		}
		if !validCategory(inv.Category) {
			add(field+".category", "unknown category %q", inv.Category)
		}
		if !validDepreciationMethod(inv.DepreciationMethod) {
			add(field+".depreciationMethod", "unknown method %q", inv.DepreciationMethod)
		}
		if inv.DepreciationRate < 0 || inv.DepreciationRate > 100 {
			add(field+".depreciationRate", "must be in [0,100], got %g", inv.DepreciationRate)
		}
	}

	for i, prod := range m.Products {
		field := fmt.Sprintf("products[%d]", i)
		if prod.UnitPrice < 0 {
			add(field+".unitPrice", "must be >= 0, got %g", prod.UnitPrice)
		}
		if prod.PriceEscalation < 0 || prod.PriceEscalation > 100 {
			add(field+".priceEscalation", "must be in [0,100], got %g", prod.PriceEscalation)
		}
		if prod.InstalledCapacity < 0 {
			add(field+".installedCapacity", "must be >= 0, got %g", prod.InstalledCapacity)
		}
		seenYears := make(map[int]bool)
		for j, row := range prod.ProductionSchedule {
			rf := fmt.Sprintf("%s.productionSchedule[%d]", field, j)
			if row.Year < 1 || row.Year > p.OperationYears {
				add(rf+".year", "must be in [1,%d], got %d", p.OperationYears, row.Year)
			}
			if seenYears[row.Year] {
				add(rf+".year", "duplicate year %d", row.Year)
			}
			seenYears[row.Year] = true
			if row.CapacityUtilization < 0 || row.CapacityUtilization > 100 {
				add(rf+".capacityUtilization", "must be in [0,100], got %g", row.CapacityUtilization)
			}
			if row.Quantity < 0 {
				add(rf+".quantity", "must be >= 0, got %g", row.Quantity)
			}
		}
	}

	for i, c := range m.OperatingCosts {
		field := fmt.Sprintf("operatingCosts[%d]", i)
		if !validCostType(c.CostType) {
			add(field+".costType", "unknown cost type %q", c.CostType)
		}
		if c.Amount < 0 {
			add(field+".amount", "must be >= 0, got %g", c.Amount)
		}
		if c.UnitCost < 0 {
			add(field+".unitCost", "must be >= 0, got %g", c.UnitCost)
		}
		if c.EscalationRate < 0 || c.EscalationRate > 100 {
			add(field+".escalationRate", "must be in [0,100], got %g", c.EscalationRate)
		}
		if c.StartYear < 1 {
			add(field+".startYear", "must be >= 1, got %d", c.StartYear)
		}
	}

	for i, f := range m.Financings {
		field := fmt.Sprintf("financings[%d]", i)
		if !validFinancingType(f.Type) {
			add(field+".type", "unknown type %q", f.Type)
		}
		if f.Amount < 0 {
			add(field+".amount", "must be >= 0, got %g", f.Amount)
		}
		if f.Type == FinancingLoan {
			if f.InterestRate < 0 || f.InterestRate > 100 {
				add(field+".interestRate", "must be in [0,100], got %g", f.InterestRate)
			}
			if f.GracePeriod >= f.TermYears {
				add(field+".gracePeriod", "must be < termYears (%d), got %d", f.TermYears, f.GracePeriod)
			}
			if f.RepaymentStartYear < 1 {
				add(field+".repaymentStartYear", "must be >= 1, got %d", f.RepaymentStartYear)
			}
		}
		if f.DisbursementYear < 0 {
			add(field+".disbursementYear", "must be >= 0, got %d", f.DisbursementYear)
		}
	}

	return problems
}

func validCategory(c InvestmentCategory) bool {
	switch c {
	case CategoryLand, CategoryBuildings, CategoryMachinery, CategoryEquipment,
		CategoryVehicles, CategoryFurniture, CategoryPreproduction, CategoryWorkingCapital, CategoryOther:
		return true
	}
	return false
}

func validDepreciationMethod(d DepreciationMethod) bool {
	switch d {
	case StraightLine, DecliningBalance, NoDepreciation:
		return true
	}
	return false
}

func validCostType(c CostType) bool {
	switch c {
	case CostFixed, CostVariable:
		return true
	}
	return false
}

func validFinancingType(f FinancingType) bool {
	switch f {
	case FinancingEquity, FinancingLoan, FinancingGrant:
		return true
	}
	return false
}
