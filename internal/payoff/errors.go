package payoff

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNoActiveDebts возвращается, когда после фильтрации не осталось долгов для расчета.
var ErrNoActiveDebts = errors.New("no active debts to simulate")

// ValidationError описывает некорректное поле входного долга.
type ValidationError struct {
	DebtID  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.DebtID == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("debt %s: %s: %s", e.DebtID, e.Field, e.Message)
}

// InsufficientPaymentError означает, что месячный бюджет не гасит проценты
// и балансы не сходятся к нулю.
type InsufficientPaymentError struct {
	MonthlyBudget   decimal.Decimal
	MonthlyInterest decimal.Decimal
	MonthsSimulated int
}

func (e *InsufficientPaymentError) Error() string {
	if e.MonthsSimulated > 0 {
		return fmt.Sprintf("balances did not reach zero within %d months", e.MonthsSimulated)
	}
	return fmt.Sprintf(
		"monthly budget %s does not cover first-month interest %s on the highest-rate debt",
		e.MonthlyBudget.StringFixed(2), e.MonthlyInterest.StringFixed(2),
	)
}
