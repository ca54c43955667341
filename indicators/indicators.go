// Package indicators computes the profitability indicator suite (NPV,
// IRR, MIRR, payback, ROI, BCR, break-even) from a net cash flow series.
package indicators

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	irrInitialGuess    = 0.10
	irrMaxIterations   = 100
	irrTolerance       = 1e-4
	irrDerivativeFloor = 1e-10
	bisectionLow       = -0.999
	bisectionHigh      = 10.0
)

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

func toDecimals(cashFlows []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(cashFlows))
	for i, cf := range cashFlows {
		out[i] = decimal.NewFromFloat(cf)
	}
	return out
}

// NPV returns the net present value of a net-cash-flow series at ratePercent,
// index 0 is year 0. A zero discount rate is a plain sum.
func NPV(cashFlows []float64, ratePercent float64) float64 {
	if ratePercent == 0 {
		sum := decimal.Zero
		for _, cf := range cashFlows {
			sum = sum.Add(decimal.NewFromFloat(cf))
		}
		return sum.InexactFloat64()
	}
	rate := decimal.NewFromFloat(ratePercent).Div(hundred)
	return npvAtFraction(toDecimals(cashFlows), rate).InexactFloat64()
}

func npvDerivative(cashFlows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	d := decimal.Zero
	for t, cf := range cashFlows {
		if t == 0 {
			continue
		}
		tf := decimal.NewFromInt(int64(t))
		discountFactor := one.Add(rate).Pow(tf.Add(one))
		d = d.Sub(tf.Mul(cf).Div(discountFactor))
	}
	return d
}

func npvAtFraction(cashFlows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	npv := decimal.Zero
	for t, cf := range cashFlows {
		discountFactor := one.Add(rate).Pow(decimal.NewFromInt(int64(t)))
		npv = npv.Add(cf.Div(discountFactor))
	}
	return npv
}

// IRR finds the rate (as a percent) at which NPV(cashFlows, rate) == 0,
// using Newton-Raphson from a 10% starting guess with a bisection fallback
// on a bracketed sign change. When Newton-Raphson stops without converging
// (the derivative collapses or the iteration cap is reached), the bisection
// fallback runs. It returns (rate, true) on convergence of either method,
// or (0, false) (NOT_CONVERGED) when Newton-Raphson fails and no sign change
// can be bracketed for the fallback.
func IRR(cashFlows []float64) (float64, bool) {
	if len(cashFlows) == 0 {
		return 0, false
	}
	flows := toDecimals(cashFlows)

	rate := decimal.NewFromFloat(irrInitialGuess)
	tolerance := decimal.NewFromFloat(irrTolerance)
	derivativeFloor := decimal.NewFromFloat(irrDerivativeFloor)
	npvFloor := decimal.NewFromFloat(1e-7)

	for i := 0; i < irrMaxIterations; i++ {
		npv := npvAtFraction(flows, rate)
		if npv.Abs().LessThan(npvFloor) {
			return rate.Mul(hundred).InexactFloat64(), true
		}
		d := npvDerivative(flows, rate)
		if d.Abs().LessThan(derivativeFloor) {
			break // derivative collapse, fall through to bisection
		}
		next := rate.Sub(npv.Div(d))
		if next.Sub(rate).Abs().LessThan(tolerance) {
			return next.Mul(hundred).InexactFloat64(), true
		}
		rate = next
	}

	if r, ok := bisectIRR(flows); ok {
		return r, true
	}
	return 0, false
}

func bisectIRR(cashFlows []decimal.Decimal) (float64, bool) {
	low := decimal.NewFromFloat(bisectionLow)
	high := decimal.NewFromFloat(bisectionHigh)
	npvLow := npvAtFraction(cashFlows, low)
	npvHigh := npvAtFraction(cashFlows, high)
	if sameSign(npvLow, npvHigh) {
		return 0, false
	}

	midFloor := decimal.NewFromFloat(1e-4)
	rangeTolerance := decimal.NewFromFloat(irrTolerance)

	for i := 0; i < irrMaxIterations; i++ {
		mid := low.Add(high).Div(two)
		npvMid := npvAtFraction(cashFlows, mid)
		if npvMid.Abs().LessThan(midFloor) || high.Sub(low).Abs().LessThan(rangeTolerance) {
			return mid.Mul(hundred).InexactFloat64(), true
		}
		if sameSign(npvMid, npvLow) {
			low, npvLow = mid, npvMid
		} else {
			high = mid
		}
	}
	return low.Add(high).Div(two).Mul(hundred).InexactFloat64(), true
}

func sameSign(a, b decimal.Decimal) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.IsPositive() == b.IsPositive()
}

// MIRR computes the modified internal rate of return using financeRatePercent
// for negative flows and reinvestRatePercent for positive flows.
// Zero PV of negative flows returns 0.
func MIRR(cashFlows []float64, financeRatePercent, reinvestRatePercent float64) float64 {
	n := len(cashFlows) - 1
	if n <= 0 {
		return 0
	}
	fRate := decimal.NewFromFloat(financeRatePercent).Div(hundred)
	rRate := decimal.NewFromFloat(reinvestRatePercent).Div(hundred)

	pvNeg := decimal.Zero
	fvPos := decimal.Zero
	for t, cfF := range cashFlows {
		cf := decimal.NewFromFloat(cfF)
		switch {
		case cf.IsNegative():
			pvNeg = pvNeg.Add(cf.Div(one.Add(fRate).Pow(decimal.NewFromInt(int64(t)))))
		case cf.IsPositive():
			fvPos = fvPos.Add(cf.Mul(one.Add(rRate).Pow(decimal.NewFromInt(int64(n - t)))))
		}
	}
	if pvNeg.IsZero() {
		return 0
	}

	// The n-th root below is a fractional exponent decimal.Pow cannot take
	// (it assumes an integer exponent); every term feeding into it was
	// still accumulated in decimal.
	ratio := fvPos.Neg().Div(pvNeg).InexactFloat64()
	mirr := math.Pow(ratio, 1.0/float64(n)) - 1
	return mirr * 100
}

// SimplePayback returns the smallest fractional period p such that the
// cumulative undiscounted cash flow crosses zero, via linear interpolation
// across the crossing year. Returns -1 if the series never turns
// non-negative.
func SimplePayback(cashFlows []float64) float64 {
	return payback(toDecimals(cashFlows))
}

// DiscountedPayback is the same construction as SimplePayback but applied
// to the discounted cash flow series.
func DiscountedPayback(cashFlows []float64, ratePercent float64) float64 {
	rate := decimal.NewFromFloat(ratePercent).Div(hundred)
	discounted := make([]decimal.Decimal, len(cashFlows))
	for t, cf := range cashFlows {
		discountFactor := one.Add(rate).Pow(decimal.NewFromInt(int64(t)))
		discounted[t] = decimal.NewFromFloat(cf).Div(discountFactor)
	}
	return payback(discounted)
}

func payback(cashFlows []decimal.Decimal) float64 {
	cumulative := decimal.Zero
	prevCumulative := decimal.Zero
	for t, cf := range cashFlows {
		prevCumulative = cumulative
		cumulative = cumulative.Add(cf)
		if !cumulative.IsNegative() {
			if t == 0 {
				return 0
			}
			if cf.IsZero() {
				return float64(t)
			}
			// Linear interpolation within the crossing year.
			fraction := prevCumulative.Neg().Div(cf)
			return float64(t-1) + fraction.InexactFloat64()
		}
	}
	return -1
}

// ROI is total net income over total investment, expressed as a percent.
// Returns 0 if totalInvestment is zero.
func ROI(totalNetIncome, totalInvestment float64) float64 {
	if totalInvestment == 0 {
		return 0
	}
	income := decimal.NewFromFloat(totalNetIncome)
	investment := decimal.NewFromFloat(totalInvestment)
	return income.Div(investment).Mul(hundred).InexactFloat64()
}

// BCR is the present value of positive operating cash flows over the
// present value of costs (|CF0| plus PV of later negative flows). Returns
// 0 if the denominator is zero.
func BCR(cashFlows []float64, ratePercent float64) float64 {
	if len(cashFlows) == 0 {
		return 0
	}
	rate := decimal.NewFromFloat(ratePercent).Div(hundred)
	pvBenefits := decimal.Zero
	pvCosts := decimal.NewFromFloat(cashFlows[0]).Abs()
	for t := 1; t < len(cashFlows); t++ {
		discountFactor := one.Add(rate).Pow(decimal.NewFromInt(int64(t)))
		discounted := decimal.NewFromFloat(cashFlows[t]).Div(discountFactor)
		if !discounted.IsNegative() {
			pvBenefits = pvBenefits.Add(discounted)
		} else {
			pvCosts = pvCosts.Add(discounted.Neg())
		}
	}
	if pvCosts.IsZero() {
		return 0
	}
	return pvBenefits.Div(pvCosts).InexactFloat64()
}

// BreakEven returns the output level (units, revenue) at which revenue
// equals total cost, given fixed costs and a per-unit contribution margin
// (unitPrice - variableCostPerUnit). When the contribution margin is <= 0,
// returns the sentinel (-1, -1) rather than a nonsensical or infinite
// value.
func BreakEven(fixedCosts, unitPrice, variableCostPerUnit float64) (units, revenue float64) {
	margin := decimal.NewFromFloat(unitPrice).Sub(decimal.NewFromFloat(variableCostPerUnit))
	if !margin.IsPositive() {
		return -1, -1
	}
	unitsDec := decimal.NewFromFloat(fixedCosts).Div(margin)
	revenueDec := unitsDec.Mul(decimal.NewFromFloat(unitPrice))
	return unitsDec.InexactFloat64(), revenueDec.InexactFloat64()
}
