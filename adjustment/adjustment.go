// Package adjustment applies named percentage deltas to a ProjectModel,
// producing an adjusted copy for the sensitivity and scenario drivers.
package adjustment

import "projectio/model"

// Apply returns a deep copy of m with each recognised variable in deltas
// adjusted by its percentage delta. Unknown names are silently ignored;
// the original model is never mutated.
func Apply(m model.ProjectModel, deltas map[string]float64) model.ProjectModel {
	out := m.Clone()
	for variable, delta := range deltas {
		factor := 1 + delta/100
		switch variable {
		case "revenue", "price":
			for i := range out.Products {
				out.Products[i].UnitPrice *= factor
			}
		case "quantity", "sales":
			for i := range out.Products {
				for j := range out.Products[i].ProductionSchedule {
					out.Products[i].ProductionSchedule[j].Quantity *= factor
				}
			}
		case "costs", "operatingCosts":
			for i := range out.OperatingCosts {
				out.OperatingCosts[i].Amount *= factor
			}
		case "investment":
			for i := range out.Investments {
				out.Investments[i].Amount *= factor
			}
		case "discountRate":
			out.Parameters.DiscountRate *= factor
		}
	}
	return out
}
