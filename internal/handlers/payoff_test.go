package handlers

import (
	"testing"

	"github.com/google/uuid"

	"example.com/debt-payoff-planner/internal/models"
)

// TestMapDebtKind проверяет маппинг видов долгов.
func TestMapDebtKind(t *testing.T) {
	value, ok := mapDebtKind("credit_card")
	if !ok || value != models.DebtKindCreditCard {
		t.Fatalf("expected credit_card, got %v (ok=%v)", value, ok)
	}

	value, ok = mapDebtKind("loan")
	if !ok || value != models.DebtKindLoan {
		t.Fatalf("expected loan, got %v (ok=%v)", value, ok)
	}

	value, ok = mapDebtKind("mortgage")
	if !ok || value != models.DebtKindMortgage {
		t.Fatalf("expected mortgage, got %v (ok=%v)", value, ok)
	}

	value, ok = mapDebtKind("other")
	if !ok || value != models.DebtKindOther {
		t.Fatalf("expected other, got %v (ok=%v)", value, ok)
	}

	if _, ok := mapDebtKind("payday"); ok {
		t.Fatal("expected invalid debt kind")
	}
}

// TestToSnapshots проверяет перевод центов и базисных пунктов в десятичные значения.
func TestToSnapshots(t *testing.T) {
	debt := models.Debt{
		ID:              uuid.New(),
		Name:            "Visa",
		BalanceCents:    123456,
		APRBps:          1999,
		MinPaymentCents: 2500,
		IsPriority:      true,
	}

	snapshots := toSnapshots([]models.Debt{debt})
	if len(snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snapshots))
	}

	snapshot := snapshots[0]
	if snapshot.ID != debt.ID.String() {
		t.Fatalf("expected id %s, got %s", debt.ID, snapshot.ID)
	}
	if got := snapshot.CurrentBalance.StringFixed(2); got != "1234.56" {
		t.Fatalf("expected balance 1234.56, got %s", got)
	}
	if got := snapshot.AnnualRate.StringFixed(2); got != "19.99" {
		t.Fatalf("expected rate 19.99, got %s", got)
	}
	if got := snapshot.MinimumPayment.StringFixed(2); got != "25.00" {
		t.Fatalf("expected payment 25.00, got %s", got)
	}
	if !snapshot.IsPriority {
		t.Fatal("expected priority flag to carry over")
	}
}

// TestToCents проверяет округление долларов к центам.
func TestToCents(t *testing.T) {
	if got := toCents(12.34); got != 1234 {
		t.Fatalf("expected 1234, got %d", got)
	}
	if got := toCents(0.125); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
	if got := toCents(0.004); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := toCents(100); got != 10000 {
		t.Fatalf("expected 10000, got %d", got)
	}
}
