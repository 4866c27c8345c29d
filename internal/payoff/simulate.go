package payoff

import "github.com/shopspring/decimal"

type debtState struct {
	snapshot     DebtSnapshot
	balance      decimal.Decimal
	totalPaid    decimal.Decimal
	paidOffMonth int
}

type monthTotals struct {
	Month              int
	TotalBalance       decimal.Decimal
	CumulativeInterest decimal.Decimal
	Paid               decimal.Decimal
}

type debtOutcome struct {
	ID           string
	Name         string
	PaidOffMonth int
	TotalPaid    decimal.Decimal
}

type strategyRun struct {
	Strategy       Strategy
	Months         []monthTotals
	Order          []debtOutcome
	TotalInterest  decimal.Decimal
	TotalPayments  decimal.Decimal
	MonthlyPayment decimal.Decimal
}

// simulate прогоняет одну стратегию до полного погашения всех долгов.
// Каждый месяц: минимальные платежи всем, пул сверхплатежа — первому
// непогашенному долгу по приоритету, излишек от закрытого долга перетекает
// к следующему долгу в том же месяце. Минимум закрытого долга со следующего
// месяца пополняет пул, поэтому суммарный месячный платеж не убывает.
func simulate(debts []DebtSnapshot, extraPayment decimal.Decimal, strategy Strategy, maxMonths int) (strategyRun, error) {
	ordered := orderForStrategy(debts, strategy)

	states := make([]*debtState, 0, len(ordered))
	monthlyPayment := extraPayment
	for _, debt := range ordered {
		states = append(states, &debtState{snapshot: debt, balance: debt.CurrentBalance})
		monthlyPayment = monthlyPayment.Add(debt.MinimumPayment)
	}

	run := strategyRun{Strategy: strategy, MonthlyPayment: monthlyPayment}

	cumulativeInterest := decimal.Zero
	totalPaid := decimal.Zero
	rolledMinimums := decimal.Zero

	for month := 1; ; month++ {
		if month > maxMonths {
			return run, &InsufficientPaymentError{
				MonthlyBudget:   monthlyPayment,
				MonthsSimulated: maxMonths,
			}
		}

		// Пул сверхплатежа: дополнительный платеж плюс минимумы закрытых долгов.
		pool := extraPayment.Add(rolledMinimums)
		monthPaid := decimal.Zero
		overflow := decimal.Zero
		poolApplied := false

		for _, state := range states {
			if state.balance.IsZero() {
				continue
			}

			payment := state.snapshot.MinimumPayment.Add(overflow)
			overflow = decimal.Zero
			if !poolApplied {
				payment = payment.Add(pool)
				poolApplied = true
			}

			result := step(state.balance, state.snapshot.AnnualRate, payment)
			state.balance = result.NewBalance

			// Фактически внесенные деньги: платеж минус излишек, ушедший дальше.
			paid := payment.Sub(result.Overflow)
			state.totalPaid = state.totalPaid.Add(paid)
			monthPaid = monthPaid.Add(paid)
			cumulativeInterest = cumulativeInterest.Add(result.InterestPaid)

			if result.PaidOff {
				state.paidOffMonth = month
				run.Order = append(run.Order, debtOutcome{
					ID:           state.snapshot.ID,
					Name:         state.snapshot.Name,
					PaidOffMonth: month,
					TotalPaid:    state.totalPaid,
				})
				rolledMinimums = rolledMinimums.Add(state.snapshot.MinimumPayment)
				overflow = result.Overflow
			}
		}

		totalPaid = totalPaid.Add(monthPaid)

		remaining := decimal.Zero
		for _, state := range states {
			remaining = remaining.Add(state.balance)
		}

		run.Months = append(run.Months, monthTotals{
			Month:              month,
			TotalBalance:       remaining,
			CumulativeInterest: cumulativeInterest,
			Paid:               monthPaid,
		})

		if remaining.IsZero() {
			break
		}
	}

	run.TotalInterest = cumulativeInterest
	run.TotalPayments = totalPaid
	return run, nil
}
