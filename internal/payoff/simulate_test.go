package payoff

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// TestSimulateSingleDebtSchedule проверяет помесячный график одного долга.
func TestSimulateSingleDebtSchedule(t *testing.T) {
	debts := []DebtSnapshot{
		{ID: "a", Name: "Card", CurrentBalance: dec("1200"), AnnualRate: dec("12"), MinimumPayment: dec("200")},
	}

	run, err := simulate(debts, decimal.Zero, StrategySnowball, DefaultMaxMonths)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(run.Months) != 7 {
		t.Fatalf("expected 7 months, got %d", len(run.Months))
	}

	first := run.Months[0]
	if !first.CumulativeInterest.Equal(dec("12")) {
		t.Fatalf("expected first month interest 12.00, got %s", first.CumulativeInterest)
	}
	if !first.TotalBalance.Equal(dec("1012")) {
		t.Fatalf("expected balance 1012.00 after month 1, got %s", first.TotalBalance)
	}

	if !run.TotalInterest.Equal(dec("43.85")) {
		t.Fatalf("expected total interest 43.85, got %s", run.TotalInterest)
	}
	if !run.TotalPayments.Equal(dec("1243.85")) {
		t.Fatalf("expected total payments 1243.85, got %s", run.TotalPayments)
	}

	if len(run.Order) != 1 || run.Order[0].PaidOffMonth != 7 {
		t.Fatalf("expected debt paid off in month 7, got %+v", run.Order)
	}
}

// TestSimulateBalanceMonotonic проверяет невозрастание суммарного баланса.
func TestSimulateBalanceMonotonic(t *testing.T) {
	debts := testDebts()

	run, err := simulate(debts, dec("100"), StrategyAvalanche, DefaultMaxMonths)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	previous := dec("5500")
	for _, month := range run.Months {
		if month.TotalBalance.GreaterThan(previous) {
			t.Fatalf("month %d: balance %s grew above %s", month.Month, month.TotalBalance, previous)
		}
		previous = month.TotalBalance
	}

	last := run.Months[len(run.Months)-1]
	if !last.TotalBalance.IsZero() {
		t.Fatalf("expected final balance zero, got %s", last.TotalBalance)
	}
}

// TestSimulateOverflowRollsWithinMonth проверяет перетекание излишка в том же месяце.
func TestSimulateOverflowRollsWithinMonth(t *testing.T) {
	debts := []DebtSnapshot{
		{ID: "a", Name: "Small", CurrentBalance: dec("100"), AnnualRate: dec("0"), MinimumPayment: dec("50")},
		{ID: "b", Name: "Big", CurrentBalance: dec("1000"), AnnualRate: dec("0"), MinimumPayment: dec("50")},
	}

	run, err := simulate(debts, dec("100"), StrategySnowball, DefaultMaxMonths)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Месяц 1: 150 на малый долг закрывает его, излишек 50 уходит большому,
	// большой получает 50 + 50 и заканчивает месяц с балансом 900.
	first := run.Months[0]
	if !first.TotalBalance.Equal(dec("900")) {
		t.Fatalf("expected balance 900.00 after month 1, got %s", first.TotalBalance)
	}
	if !first.Paid.Equal(dec("200")) {
		t.Fatalf("expected 200.00 paid in month 1, got %s", first.Paid)
	}

	if len(run.Order) < 1 || run.Order[0].ID != "a" || run.Order[0].PaidOffMonth != 1 {
		t.Fatalf("expected small debt paid off in month 1, got %+v", run.Order)
	}

	// Месяц 2: минимум закрытого долга влился в пул, большой долг получает
	// 50 + 100 + 50 = 200 и опускается до 700.
	second := run.Months[1]
	if !second.Paid.Equal(dec("200")) {
		t.Fatalf("expected 200.00 paid in month 2, got %s", second.Paid)
	}
	if !second.TotalBalance.Equal(dec("700")) {
		t.Fatalf("expected balance 700.00 after month 2, got %s", second.TotalBalance)
	}

	if len(run.Months) != 6 {
		t.Fatalf("expected payoff in 6 months, got %d", len(run.Months))
	}
}

// TestSimulateRollsFreedMinimums проверяет, что после закрытия долга его
// минимальный платеж усиливает следующий долг, и месячный бюджет не проседает.
func TestSimulateRollsFreedMinimums(t *testing.T) {
	debts := []DebtSnapshot{
		{ID: "a", Name: "Small", CurrentBalance: dec("100"), AnnualRate: dec("0"), MinimumPayment: dec("100")},
		{ID: "b", Name: "Big", CurrentBalance: dec("1000"), AnnualRate: dec("0"), MinimumPayment: dec("100")},
	}

	run, err := simulate(debts, decimal.Zero, StrategySnowball, DefaultMaxMonths)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !run.MonthlyPayment.Equal(dec("200")) {
		t.Fatalf("expected monthly payment 200.00, got %s", run.MonthlyPayment)
	}
	if len(run.Months) != 6 {
		t.Fatalf("expected payoff in 6 months, got %d", len(run.Months))
	}

	// Все месяцы, кроме последнего, тратят полный месячный бюджет.
	for _, month := range run.Months[:len(run.Months)-1] {
		if !month.Paid.Equal(run.MonthlyPayment) {
			t.Fatalf("month %d: expected paid %s, got %s", month.Month, run.MonthlyPayment, month.Paid)
		}
	}

	last := run.Months[len(run.Months)-1]
	if !last.Paid.Equal(dec("100")) {
		t.Fatalf("expected final month paid 100.00, got %s", last.Paid)
	}
}

// TestSimulateConservation проверяет, что выплаченное тело равно исходным балансам.
func TestSimulateConservation(t *testing.T) {
	debts := testDebts()

	for _, strategy := range []Strategy{StrategySnowball, StrategyAvalanche} {
		run, err := simulate(debts, dec("150"), strategy, DefaultMaxMonths)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", strategy, err)
		}

		principal := run.TotalPayments.Sub(run.TotalInterest)
		if !principal.Equal(dec("5500")) {
			t.Fatalf("%s: expected principal 5500.00, got %s", strategy, principal)
		}
	}
}

// TestSimulateCapAborts проверяет срабатывание защиты от несходимости.
func TestSimulateCapAborts(t *testing.T) {
	// Минимальный платеж ровно равен месячным процентам: баланс не убывает.
	debts := []DebtSnapshot{
		{ID: "a", Name: "Stuck", CurrentBalance: dec("1000"), AnnualRate: dec("12"), MinimumPayment: dec("10")},
	}

	_, err := simulate(debts, decimal.Zero, StrategyAvalanche, 24)

	var insufficient *InsufficientPaymentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientPaymentError, got %v", err)
	}
	if insufficient.MonthsSimulated != 24 {
		t.Fatalf("expected 24 months simulated, got %d", insufficient.MonthsSimulated)
	}
}
