// Package payoff реализует движок сравнения стратегий погашения долгов.
// Все денежные значения считаются через shopspring/decimal, движок не делает
// I/O и не хранит состояние между вызовами.
package payoff

import "github.com/shopspring/decimal"

// DebtSnapshot — неизменяемый входной снимок одного долга на момент расчета.
type DebtSnapshot struct {
	ID             string
	Name           string
	CurrentBalance decimal.Decimal
	AnnualRate     decimal.Decimal // годовая ставка в процентах
	MinimumPayment decimal.Decimal
	IsPriority     bool
}

// normalizeSnapshots проверяет входные долги, отбрасывает уже погашенные и
// убеждается, что бюджет покрывает проценты первого месяца по самой дорогой ставке.
func normalizeSnapshots(debts []DebtSnapshot, extraPayment decimal.Decimal) ([]DebtSnapshot, error) {
	if extraPayment.IsNegative() {
		return nil, &ValidationError{Field: "extraPayment", Message: "must not be negative"}
	}

	active := make([]DebtSnapshot, 0, len(debts))
	for _, debt := range debts {
		if debt.CurrentBalance.IsNegative() {
			return nil, &ValidationError{DebtID: debt.ID, Field: "currentBalance", Message: "must not be negative"}
		}
		if debt.AnnualRate.IsNegative() {
			return nil, &ValidationError{DebtID: debt.ID, Field: "annualInterestRate", Message: "must not be negative"}
		}
		if debt.MinimumPayment.IsNegative() {
			return nil, &ValidationError{DebtID: debt.ID, Field: "minimumPayment", Message: "must not be negative"}
		}
		if debt.CurrentBalance.IsZero() {
			continue
		}
		if debt.MinimumPayment.IsZero() {
			return nil, &ValidationError{DebtID: debt.ID, Field: "minimumPayment", Message: "required while balance is outstanding"}
		}
		active = append(active, debt)
	}

	if len(active) == 0 {
		return nil, ErrNoActiveDebts
	}

	budget := extraPayment
	for _, debt := range active {
		budget = budget.Add(debt.MinimumPayment)
	}

	steepest := active[0]
	for _, debt := range active[1:] {
		if debt.AnnualRate.GreaterThan(steepest.AnnualRate) {
			steepest = debt
		}
	}

	firstMonthInterest := monthlyInterest(steepest.CurrentBalance, steepest.AnnualRate)
	if budget.LessThan(firstMonthInterest) {
		return nil, &InsufficientPaymentError{
			MonthlyBudget:   budget,
			MonthlyInterest: firstMonthInterest,
		}
	}

	return active, nil
}
