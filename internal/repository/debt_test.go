package repository

import "testing"

// TestDebtOrderClause проверяет выбор ORDER BY по ключу сортировки.
func TestDebtOrderClause(t *testing.T) {
	cases := map[string]string{
		"balance": "balance_cents DESC, id",
		"rate":    "apr_bps DESC, id",
		"name":    "name, id",
		"":        "created_at, id",
		"bogus":   "created_at, id",
	}

	for sort, want := range cases {
		if got := debtOrderClause(sort); got != want {
			t.Fatalf("sort %q: expected %q, got %q", sort, want, got)
		}
	}
}
