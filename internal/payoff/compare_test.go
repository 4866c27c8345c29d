package payoff

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

// TestComputeRejectsNegativeMinimumPayment проверяет ошибку валидации входа.
func TestComputeRejectsNegativeMinimumPayment(t *testing.T) {
	debts := []DebtSnapshot{
		{ID: "a", CurrentBalance: dec("100"), AnnualRate: dec("10"), MinimumPayment: dec("-5")},
	}

	_, err := Compute(debts, decimal.Zero, testNow, DefaultOptions())

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validation.Field != "minimumPayment" || validation.DebtID != "a" {
		t.Fatalf("unexpected error details: %+v", validation)
	}
}

// TestComputeEmptyInput проверяет ошибку при пустом и полностью погашенном входе.
func TestComputeEmptyInput(t *testing.T) {
	if _, err := Compute(nil, decimal.Zero, testNow, DefaultOptions()); !errors.Is(err, ErrNoActiveDebts) {
		t.Fatalf("expected ErrNoActiveDebts, got %v", err)
	}

	paidOff := []DebtSnapshot{
		{ID: "a", CurrentBalance: decimal.Zero, AnnualRate: dec("10"), MinimumPayment: decimal.Zero},
	}
	if _, err := Compute(paidOff, decimal.Zero, testNow, DefaultOptions()); !errors.Is(err, ErrNoActiveDebts) {
		t.Fatalf("expected ErrNoActiveDebts, got %v", err)
	}
}

// TestComputeInsufficientUpfront проверяет проверку бюджета до симуляции.
func TestComputeInsufficientUpfront(t *testing.T) {
	// Проценты первого месяца по долгу: 10000 * 24 / 1200 = 200, бюджет всего 50.
	debts := []DebtSnapshot{
		{ID: "a", CurrentBalance: dec("10000"), AnnualRate: dec("24"), MinimumPayment: dec("50")},
	}

	_, err := Compute(debts, decimal.Zero, testNow, DefaultOptions())

	var insufficient *InsufficientPaymentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientPaymentError, got %v", err)
	}
	if insufficient.MonthsSimulated != 0 {
		t.Fatalf("expected upfront detection, got %d months simulated", insufficient.MonthsSimulated)
	}
	if !insufficient.MonthlyInterest.Equal(dec("200")) {
		t.Fatalf("expected first-month interest 200.00, got %s", insufficient.MonthlyInterest)
	}
}

// TestComputeNonConvergenceGuard проверяет срабатывание потолка месяцев.
func TestComputeNonConvergenceGuard(t *testing.T) {
	// Минимальные платежи в сумме равны процентам первого месяца: нулевой прогресс.
	debts := []DebtSnapshot{
		{ID: "a", CurrentBalance: dec("6000"), AnnualRate: dec("12"), MinimumPayment: dec("60")},
	}

	_, err := Compute(debts, decimal.Zero, testNow, Options{MaxMonths: 120, MaterialityPercent: decimal.NewFromInt(1)})

	var insufficient *InsufficientPaymentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientPaymentError, got %v", err)
	}
	if insufficient.MonthsSimulated != 120 {
		t.Fatalf("expected cap at 120 months, got %d", insufficient.MonthsSimulated)
	}
}

// TestComputeSameFirstDebt проверяет сценарий, где обе стратегии закрывают один долг первым.
func TestComputeSameFirstDebt(t *testing.T) {
	debts := []DebtSnapshot{
		{ID: "a", Name: "A", CurrentBalance: dec("500"), AnnualRate: dec("20"), MinimumPayment: dec("50")},
		{ID: "b", Name: "B", CurrentBalance: dec("5000"), AnnualRate: dec("5"), MinimumPayment: dec("100")},
	}

	result, err := Compute(debts, dec("200"), testNow, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Snowball.PayoffOrder[0].DebtID != "a" {
		t.Fatalf("snowball: expected debt a first, got %s", result.Snowball.PayoffOrder[0].DebtID)
	}
	if result.Avalanche.PayoffOrder[0].DebtID != "a" {
		t.Fatalf("avalanche: expected debt a first, got %s", result.Avalanche.PayoffOrder[0].DebtID)
	}
}

// TestComputeAvalancheOptimality проверяет, что лавина не платит больше процентов.
func TestComputeAvalancheOptimality(t *testing.T) {
	result, err := Compute(testDebts(), dec("100"), testNow, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Avalanche.TotalInterest > result.Snowball.TotalInterest {
		t.Fatalf("avalanche interest %.2f exceeds snowball %.2f",
			result.Avalanche.TotalInterest, result.Snowball.TotalInterest)
	}
	if result.Comparison.InterestSavings < 0 {
		t.Fatalf("expected non-negative interest savings, got %.2f", result.Comparison.InterestSavings)
	}
}

// TestComputeDeterminism проверяет побайтовую повторяемость результата.
func TestComputeDeterminism(t *testing.T) {
	first, err := Compute(testDebts(), dec("75"), testNow, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := Compute(testDebts(), dec("75"), testNow, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical results for identical input")
	}
}

// TestComputeOrderingCorrectness проверяет порядок закрытия долгов по стратегиям.
// Дополнительный платеж выбран достаточно большим, чтобы долги закрывались
// строго в порядке приоритета: при маленьком пуле долг с низкой ставкой может
// погаситься собственным минимумом раньше более приоритетного.
func TestComputeOrderingCorrectness(t *testing.T) {
	result, err := Compute(testDebts(), dec("1000"), testNow, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	starting := map[string]decimal.Decimal{"a": dec("3000"), "b": dec("500"), "c": dec("2000")}
	rates := map[string]decimal.Decimal{"a": dec("25"), "b": dec("5"), "c": dec("15")}

	for i := 1; i < len(result.Snowball.PayoffOrder); i++ {
		prev := starting[result.Snowball.PayoffOrder[i-1].DebtID]
		curr := starting[result.Snowball.PayoffOrder[i].DebtID]
		if curr.LessThan(prev) {
			t.Fatalf("snowball payoff order not ascending by balance: %+v", result.Snowball.PayoffOrder)
		}
	}

	for i := 1; i < len(result.Avalanche.PayoffOrder); i++ {
		prev := rates[result.Avalanche.PayoffOrder[i-1].DebtID]
		curr := rates[result.Avalanche.PayoffOrder[i].DebtID]
		if curr.GreaterThan(prev) {
			t.Fatalf("avalanche payoff order not descending by rate: %+v", result.Avalanche.PayoffOrder)
		}
	}
}

// TestComputeMonthlyPaymentAndDate проверяет месячный бюджет и дату погашения.
func TestComputeMonthlyPaymentAndDate(t *testing.T) {
	debts := []DebtSnapshot{
		{ID: "a", Name: "Card", CurrentBalance: dec("1200"), AnnualRate: dec("12"), MinimumPayment: dec("200")},
	}

	result, err := Compute(debts, dec("50"), testNow, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Snowball.MonthlyPayment != 250 {
		t.Fatalf("expected monthly payment 250.00, got %.2f", result.Snowball.MonthlyPayment)
	}

	expected := testNow.AddDate(0, result.Snowball.MonthsToPayoff, 0).Format("2006-01-02")
	if result.Snowball.PayoffDate != expected {
		t.Fatalf("expected payoff date %s, got %s", expected, result.Snowball.PayoffDate)
	}
}

// TestComputeRecommendation проверяет политику выбора метода и уверенность.
func TestComputeRecommendation(t *testing.T) {
	// Заметная разница ставок при большом дополнительном платеже: лавина
	// экономит существенно больше порога.
	spread := []DebtSnapshot{
		{ID: "a", Name: "A", CurrentBalance: dec("9000"), AnnualRate: dec("36"), MinimumPayment: dec("300")},
		{ID: "b", Name: "B", CurrentBalance: dec("1000"), AnnualRate: dec("1"), MinimumPayment: dec("100")},
	}

	result, err := Compute(spread, dec("50"), testNow, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Recommendation.Method != StrategyAvalanche {
		t.Fatalf("expected avalanche recommendation, got %s", result.Recommendation.Method)
	}

	// Одинаковые ставки: стратегии совпадают, экономия нулевая.
	flat := []DebtSnapshot{
		{ID: "a", Name: "A", CurrentBalance: dec("2000"), AnnualRate: dec("10"), MinimumPayment: dec("60")},
		{ID: "b", Name: "B", CurrentBalance: dec("3000"), AnnualRate: dec("10"), MinimumPayment: dec("90")},
	}

	result, err = Compute(flat, dec("100"), testNow, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Recommendation.Method != StrategySnowball {
		t.Fatalf("expected snowball recommendation, got %s", result.Recommendation.Method)
	}
	if result.Recommendation.Confidence != ConfidenceLow {
		t.Fatalf("expected low confidence, got %s", result.Recommendation.Confidence)
	}
	if result.Comparison.FasterMethod != StrategyAvalanche {
		t.Fatalf("expected tie to favor avalanche, got %s", result.Comparison.FasterMethod)
	}
}
