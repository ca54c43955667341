// Package depreciation implements the per-asset annual and accumulated
// depreciation kernel.
package depreciation

import (
	"github.com/shopspring/decimal"

	"projectio/model"
)

const pointDivider = 100

// Charge returns the depreciation expense attributable to queryYear for a
// single asset purchased in purchaseYear. The kernel is category-blind:
// callers (schedule/statements) are responsible for filtering out
// non-depreciable categories (land, working_capital) before calling this.
func Charge(inv model.Investment, queryYear int) float64 {
	if inv.UsefulLife <= 0 {
		return 0
	}
	if queryYear < inv.Year || queryYear-inv.Year >= inv.UsefulLife {
		return 0
	}
	cost := decimal.NewFromFloat(inv.Amount)
	salvage := decimal.NewFromFloat(inv.SalvageValue)
	if cost.LessThanOrEqual(salvage) {
		return 0
	}

	switch inv.DepreciationMethod {
	case model.StraightLine:
		return straightLineCharge(cost, salvage, inv.UsefulLife)
	case model.DecliningBalance:
		return decliningBalanceCharge(cost, salvage, inv.DepreciationRate, queryYear-inv.Year)
	default:
		return 0
	}
}

func straightLineCharge(cost, salvage decimal.Decimal, usefulLife int) float64 {
	charge := cost.Sub(salvage).Div(decimal.NewFromInt(int64(usefulLife)))
	return charge.InexactFloat64()
}

// decliningBalanceCharge walks the book value forward from the purchase
// year to the year offsetFromPurchase steps later, clamping so that book
// value never drops below salvage.
func decliningBalanceCharge(cost, salvage decimal.Decimal, ratePercent float64, offsetFromPurchase int) float64 {
	rate := decimal.NewFromFloat(ratePercent).Div(decimal.NewFromInt(pointDivider))
	bookValue := cost
	var charge decimal.Decimal
	for step := 0; step <= offsetFromPurchase; step++ {
		if bookValue.LessThanOrEqual(salvage) {
			charge = decimal.Zero
			continue
		}
		proposed := bookValue.Mul(rate)
		maxAllowed := bookValue.Sub(salvage)
		if proposed.GreaterThan(maxAllowed) {
			proposed = maxAllowed
		}
		charge = proposed
		bookValue = bookValue.Sub(proposed)
	}
	return charge.InexactFloat64()
}

// AccumulatedCharge sums annual charges from the purchase year through
// queryYear inclusive, clamped to cost - salvageValue.
func AccumulatedCharge(inv model.Investment, queryYear int) float64 {
	if queryYear < inv.Year {
		return 0
	}
	cap := decimal.NewFromFloat(inv.Amount).Sub(decimal.NewFromFloat(inv.SalvageValue))
	if cap.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	sum := decimal.Zero
	for y := inv.Year; y <= queryYear; y++ {
		sum = sum.Add(decimal.NewFromFloat(Charge(inv, y)))
		if sum.GreaterThan(cap) {
			sum = cap
		}
	}
	return sum.InexactFloat64()
}
