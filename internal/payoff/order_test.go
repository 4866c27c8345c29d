package payoff

import "testing"

func testDebts() []DebtSnapshot {
	return []DebtSnapshot{
		{ID: "a", Name: "Card A", CurrentBalance: dec("3000"), AnnualRate: dec("25"), MinimumPayment: dec("60")},
		{ID: "b", Name: "Card B", CurrentBalance: dec("500"), AnnualRate: dec("5"), MinimumPayment: dec("25")},
		{ID: "c", Name: "Loan C", CurrentBalance: dec("2000"), AnnualRate: dec("15"), MinimumPayment: dec("40")},
	}
}

func assertOrder(t *testing.T, got []DebtSnapshot, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d debts, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

// TestOrderSnowball проверяет сортировку по возрастанию баланса.
func TestOrderSnowball(t *testing.T) {
	ordered := orderForStrategy(testDebts(), StrategySnowball)
	assertOrder(t, ordered, "b", "c", "a")
}

// TestOrderAvalanche проверяет сортировку по убыванию ставки.
func TestOrderAvalanche(t *testing.T) {
	ordered := orderForStrategy(testDebts(), StrategyAvalanche)
	assertOrder(t, ordered, "a", "c", "b")
}

// TestOrderSnowballTieBreaks проверяет разрешение ничьих: приоритет, ставка, id.
func TestOrderSnowballTieBreaks(t *testing.T) {
	debts := []DebtSnapshot{
		{ID: "x", CurrentBalance: dec("1000"), AnnualRate: dec("10"), MinimumPayment: dec("30")},
		{ID: "y", CurrentBalance: dec("1000"), AnnualRate: dec("20"), MinimumPayment: dec("30"), IsPriority: true},
		{ID: "z", CurrentBalance: dec("1000"), AnnualRate: dec("10"), MinimumPayment: dec("30")},
	}

	ordered := orderForStrategy(debts, StrategySnowball)
	assertOrder(t, ordered, "y", "x", "z")
}

// TestOrderAvalancheTieBreaks проверяет ничьи по ставке: приоритет, баланс, id.
func TestOrderAvalancheTieBreaks(t *testing.T) {
	debts := []DebtSnapshot{
		{ID: "x", CurrentBalance: dec("900"), AnnualRate: dec("18"), MinimumPayment: dec("30")},
		{ID: "y", CurrentBalance: dec("400"), AnnualRate: dec("18"), MinimumPayment: dec("30")},
		{ID: "z", CurrentBalance: dec("2000"), AnnualRate: dec("18"), MinimumPayment: dec("30"), IsPriority: true},
	}

	ordered := orderForStrategy(debts, StrategyAvalanche)
	assertOrder(t, ordered, "z", "y", "x")
}

// TestOrderDoesNotMutateInput проверяет, что исходный срез не переупорядочивается.
func TestOrderDoesNotMutateInput(t *testing.T) {
	debts := testDebts()
	_ = orderForStrategy(debts, StrategyAvalanche)

	if debts[0].ID != "a" || debts[1].ID != "b" || debts[2].ID != "c" {
		t.Fatalf("input slice was mutated: %s %s %s", debts[0].ID, debts[1].ID, debts[2].ID)
	}
}
