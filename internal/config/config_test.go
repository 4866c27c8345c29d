package config

import (
	"reflect"
	"testing"
)

// TestParseCSVEnv проверяет разбор списка email из ENV.
func TestParseCSVEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Admin@example.com, ,USER@Example.com ")

	got := parseCSVEnv("ADMIN_EMAILS")
	want := []string{"admin@example.com", "user@example.com"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestParseFloatEnv проверяет разбор порога существенности.
func TestParseFloatEnv(t *testing.T) {
	t.Setenv("PAYOFF_MATERIALITY_PERCENT", "2.5")

	got, err := parseFloatEnv("PAYOFF_MATERIALITY_PERCENT", 1.0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}

	if got, err = parseFloatEnv("MISSING_ENV", 1.0); err != nil || got != 1.0 {
		t.Fatalf("expected fallback 1.0, got %v (err=%v)", got, err)
	}
}

// TestParseFloatEnvInvalid проверяет ошибки для нечисловых и неположительных значений.
func TestParseFloatEnvInvalid(t *testing.T) {
	t.Setenv("PAYOFF_MATERIALITY_PERCENT", "lots")
	if _, err := parseFloatEnv("PAYOFF_MATERIALITY_PERCENT", 1.0); err == nil {
		t.Fatal("expected error for non-numeric value")
	}

	t.Setenv("PAYOFF_MATERIALITY_PERCENT", "0")
	if _, err := parseFloatEnv("PAYOFF_MATERIALITY_PERCENT", 1.0); err == nil {
		t.Fatal("expected error for zero value")
	}
}
