package amortization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"projectio/model"
)

// S4 — Loan amortisation.
func TestSchedule_S4(t *testing.T) {
	rows := Schedule(100000, 10, 5, 0)
	assert.Len(t, rows, 5)
	assert.InDelta(t, 10000.0, rows[0].Interest, 1e-6)

	var totalPrincipal float64
	for _, r := range rows {
		totalPrincipal += r.PrincipalPaid
	}
	assert.InDelta(t, 100000.0, totalPrincipal, 1e-6)
	assert.InDelta(t, 0.0, rows[len(rows)-1].EndingBalance, 1e-6)
}

// S5 — Grace period.
func TestSchedule_S5_GracePeriod(t *testing.T) {
	rows := Schedule(100000, 10, 5, 2)
	assert.Len(t, rows, 5)
	assert.Equal(t, 0.0, rows[0].PrincipalPaid)
	assert.Equal(t, 0.0, rows[1].PrincipalPaid)
	assert.InDelta(t, 100000.0/3.0, rows[2].PrincipalPaid, 1e-6)
	assert.InDelta(t, 100000.0/3.0, rows[3].PrincipalPaid, 1e-6)
	assert.InDelta(t, 100000.0/3.0, rows[4].PrincipalPaid, 1e-6)
}

func TestSchedule_ZeroTermReturnsEmpty(t *testing.T) {
	assert.Empty(t, Schedule(1000, 5, 0, 0))
}

func TestSchedule_GraceEqualsEntireTerm_AllZeroPrincipal(t *testing.T) {
	rows := Schedule(1000, 5, 3, 3)
	assert.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, 0.0, r.PrincipalPaid)
		assert.Equal(t, r.BeginningBalance, r.EndingBalance)
	}
}

func TestSchedule_GraceOneLessThanTerm_SinglePayment(t *testing.T) {
	rows := Schedule(50000, 8, 4, 3)
	assert.Len(t, rows, 4)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, rows[i].PrincipalPaid)
	}
	assert.InDelta(t, 50000.0, rows[3].PrincipalPaid, 1e-6)
	assert.InDelta(t, 0.0, rows[3].EndingBalance, 1e-6)
}

func TestAggregateDebtService_SumsAcrossLoansIgnoresEquityAndGrants(t *testing.T) {
	financings := []model.Financing{
		{Type: model.FinancingLoan, Amount: 100000, InterestRate: 10, TermYears: 5, GracePeriod: 0, RepaymentStartYear: 1},
		{Type: model.FinancingEquity, Amount: 50000},
		{Type: model.FinancingGrant, Amount: 20000},
	}
	ds := AggregateDebtService(financings, 1)
	assert.InDelta(t, 10000.0, ds.Interest, 1e-6)
	assert.InDelta(t, 20000.0, ds.Principal, 1e-6)
	assert.InDelta(t, 30000.0, ds.Total(), 1e-6)
}

func TestAggregateDebtService_OutsideWindowIsZero(t *testing.T) {
	financings := []model.Financing{
		{Type: model.FinancingLoan, Amount: 100000, InterestRate: 10, TermYears: 5, GracePeriod: 0, RepaymentStartYear: 3},
	}
	ds := AggregateDebtService(financings, 1)
	assert.Equal(t, DebtService{}, ds)
	ds = AggregateDebtService(financings, 10)
	assert.Equal(t, DebtService{}, ds)
}

func TestLoanOutstandingBalance_TracksSchedule(t *testing.T) {
	f := model.Financing{Amount: 100000, InterestRate: 10, TermYears: 5, GracePeriod: 0, RepaymentStartYear: 1}
	assert.InDelta(t, 100000.0, LoanOutstandingBalance(f, 0), 1e-6)
	assert.InDelta(t, 80000.0, LoanOutstandingBalance(f, 1), 1e-6)
	assert.InDelta(t, 0.0, LoanOutstandingBalance(f, 5), 1e-6)
	assert.InDelta(t, 0.0, LoanOutstandingBalance(f, 10), 1e-6)
}
