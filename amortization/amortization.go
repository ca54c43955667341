// Package amortization implements the equal-principal loan schedule and
// aggregate debt-service calculation.
package amortization

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"projectio/model"
)

const pointDivider = 100

// Row is one year of a loan's amortisation schedule.
type Row struct {
	Year              int
	BeginningBalance  float64
	Interest          float64
	PrincipalPaid     float64
	Payment           float64
	EndingBalance     float64
}

// Schedule generates the equal-principal amortisation table for a loan
// financing entry. The method is equal-principal, not
// equal-payment: interest declines every year as the balance falls.
//
// termYears == 0 returns an empty schedule. termYears <= gracePeriod is a
// WARNING condition (the loan never repays any principal within its
// stated term) — the caller should validate this upstream; Schedule
// itself still returns a well-formed, all-grace schedule rather than
// panicking.
func Schedule(principal, annualRatePercent float64, termYears, gracePeriod int) []Row {
	if termYears <= 0 {
		return nil
	}

	p := decimal.NewFromFloat(principal)
	rate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(pointDivider))

	repaymentYears := termYears - gracePeriod
	var principalPerYear decimal.Decimal
	if repaymentYears > 0 {
		principalPerYear = p.Div(decimal.NewFromInt(int64(repaymentYears)))
	}

	rows := make([]Row, 0, termYears)
	balance := p
	for y := 1; y <= termYears; y++ {
		beginning := balance
		interest := beginning.Mul(rate)

		var principalPaid decimal.Decimal
		if y > gracePeriod && repaymentYears > 0 {
			principalPaid = principalPerYear
		}

		ending := beginning.Sub(principalPaid)
		if ending.IsNegative() {
			ending = decimal.Zero
		}

		rows = append(rows, Row{
			Year:             y,
			BeginningBalance: beginning.InexactFloat64(),
			Interest:         interest.InexactFloat64(),
			PrincipalPaid:    principalPaid.InexactFloat64(),
			Payment:          principalPaid.Add(interest).InexactFloat64(),
			EndingBalance:    ending.InexactFloat64(),
		})
		balance = ending
	}

	return rows
}

// RemainingBalance returns the loan's outstanding principal given that
// paymentsElapsed annual payments have landed (0 means none yet).
func RemainingBalance(principal, annualRatePercent float64, termYears, gracePeriod, paymentsElapsed int) float64 {
	rows := Schedule(principal, annualRatePercent, termYears, gracePeriod)
	if paymentsElapsed <= 0 {
		return principal
	}
	if paymentsElapsed >= len(rows) {
		if len(rows) == 0 {
			return principal
		}
		return rows[len(rows)-1].EndingBalance
	}
	return rows[paymentsElapsed-1].EndingBalance
}

// DebtService is the aggregate principal and interest due across all loan
// financings in absolute project year Y.
type DebtService struct {
	Principal float64
	Interest  float64
}

func (d DebtService) Total() float64 { return d.Principal + d.Interest }

// AggregateDebtService sums principal and interest across every loan
// financing whose repayment window covers absolute year Y. Equity and
// grants contribute nothing.
func AggregateDebtService(financings []model.Financing, year int) DebtService {
	var out DebtService
	for _, f := range financings {
		if f.Type != model.FinancingLoan {
			continue
		}
		offset := year - f.RepaymentStartYear
		if offset < 0 || offset >= f.TermYears {
			continue
		}
		rows := Schedule(f.Amount, f.InterestRate, f.TermYears, f.GracePeriod)
		if offset >= len(rows) {
			continue
		}
		out.Principal += rows[offset].PrincipalPaid
		out.Interest += rows[offset].Interest
	}
	return out
}

// LoanOutstandingBalance returns a loan's remaining principal at absolute
// project year Y, used by the balance sheet composer for long-term debt.
func LoanOutstandingBalance(f model.Financing, year int) float64 {
	if year < f.RepaymentStartYear {
		return f.Amount
	}
	elapsed := year - f.RepaymentStartYear + 1
	return RemainingBalance(f.Amount, f.InterestRate, f.TermYears, f.GracePeriod, elapsed)
}

// Report renders a human-readable summary of a schedule: total interest,
// total principal, and payoff year.
func Report(name string, rows []Row) string {
	var sb strings.Builder
	var totalInterest, totalPrincipal decimal.Decimal
	for _, r := range rows {
		totalInterest = totalInterest.Add(decimal.NewFromFloat(r.Interest))
		totalPrincipal = totalPrincipal.Add(decimal.NewFromFloat(r.PrincipalPaid))
	}

	fmt.Fprintf(&sb, "Loan: %s\n", name)
	fmt.Fprintf(&sb, "  Term:            %d years\n", len(rows))
	fmt.Fprintf(&sb, "  Total Principal: %s\n", totalPrincipal.Round(2).String())
	fmt.Fprintf(&sb, "  Total Interest:  %s\n", totalInterest.Round(2).String())
	if len(rows) > 0 {
		fmt.Fprintf(&sb, "  Payoff Year:     %d (schedule year; year 1 is the repayment start year)\n", len(rows))
	}
	return sb.String()
}
