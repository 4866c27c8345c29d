package payoff

import "github.com/shopspring/decimal"

var (
	monthsPerYearTimesHundred = decimal.NewFromInt(1200)
	minorUnitPlaces           = int32(2)
)

type stepResult struct {
	NewBalance    decimal.Decimal
	InterestPaid  decimal.Decimal
	PrincipalPaid decimal.Decimal
	Overflow      decimal.Decimal
	PaidOff       bool
}

// monthlyInterest начисляет проценты за месяц с банковским округлением до цента.
func monthlyInterest(balance, annualRate decimal.Decimal) decimal.Decimal {
	return balance.Mul(annualRate).Div(monthsPerYearTimesHundred).RoundBank(minorUnitPlaces)
}

// step продвигает один долг на один месяц: начисляет проценты и применяет платеж.
// Излишек платежа сверх полного закрытия возвращается как Overflow и должен
// уйти следующему по приоритету долгу в том же месяце.
func step(balance, annualRate, payment decimal.Decimal) stepResult {
	interest := monthlyInterest(balance, annualRate)
	owed := balance.Add(interest)

	if payment.GreaterThanOrEqual(owed) {
		return stepResult{
			NewBalance:    decimal.Zero,
			InterestPaid:  interest,
			PrincipalPaid: balance,
			Overflow:      payment.Sub(owed),
			PaidOff:       true,
		}
	}

	principal := payment.Sub(interest)
	if principal.IsNegative() {
		// Платеж не покрыл проценты: баланс растет на непокрытую часть.
		principal = decimal.Zero
	}

	return stepResult{
		NewBalance:    owed.Sub(payment),
		InterestPaid:  interest,
		PrincipalPaid: principal,
		Overflow:      decimal.Zero,
	}
}
