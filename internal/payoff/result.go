package payoff

import "time"

// Имена JSON-полей ниже — публичный контракт ответа и должны сохраняться
// байт-в-байт ради совместимости с существующими клиентами.

const dateLayout = "2006-01-02"

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MonthRecord — итог одного месяца симуляции по всем долгам.
type MonthRecord struct {
	Month         int     `json:"month"`
	TotalBalance  float64 `json:"totalBalance"`
	TotalInterest float64 `json:"totalInterest"`
	Payments      float64 `json:"payments"`
}

// PayoffOrderEntry — один долг в порядке его фактического закрытия.
type PayoffOrderEntry struct {
	DebtID       string  `json:"debtId"`
	Name         string  `json:"name"`
	PaidOffMonth int     `json:"paidOffMonth"`
	TotalPaid    float64 `json:"totalPaid"`
}

// StrategyResult — полный результат одной стратегии.
type StrategyResult struct {
	Strategy       Strategy           `json:"strategy"`
	MonthsToPayoff int                `json:"monthsToPayoff"`
	PayoffDate     string             `json:"payoffDate"`
	TotalInterest  float64            `json:"totalInterest"`
	TotalPayments  float64            `json:"totalPayments"`
	MonthlyPayment float64            `json:"monthlyPayment"`
	PayoffOrder    []PayoffOrderEntry `json:"payoffOrder"`
	Simulation     []MonthRecord      `json:"simulation"`
}

type Recommendation struct {
	Method     Strategy   `json:"method"`
	Reason     string     `json:"reason"`
	Confidence Confidence `json:"confidence"`
}

type Comparison struct {
	InterestSavings float64  `json:"interestSavings"`
	TimeDifference  int      `json:"timeDifference"`
	FasterMethod    Strategy `json:"fasterMethod"`
}

// ComparisonResult — итог сравнения двух стратегий, верхний уровень ответа движка.
type ComparisonResult struct {
	Snowball       StrategyResult `json:"snowball"`
	Avalanche      StrategyResult `json:"avalanche"`
	Recommendation Recommendation `json:"recommendation"`
	Comparison     Comparison     `json:"comparison"`
}

func buildStrategyResult(run strategyRun, now time.Time) StrategyResult {
	months := len(run.Months)

	simulation := make([]MonthRecord, 0, months)
	for _, month := range run.Months {
		simulation = append(simulation, MonthRecord{
			Month:         month.Month,
			TotalBalance:  month.TotalBalance.InexactFloat64(),
			TotalInterest: month.CumulativeInterest.InexactFloat64(),
			Payments:      month.Paid.InexactFloat64(),
		})
	}

	order := make([]PayoffOrderEntry, 0, len(run.Order))
	for _, outcome := range run.Order {
		order = append(order, PayoffOrderEntry{
			DebtID:       outcome.ID,
			Name:         outcome.Name,
			PaidOffMonth: outcome.PaidOffMonth,
			TotalPaid:    outcome.TotalPaid.InexactFloat64(),
		})
	}

	return StrategyResult{
		Strategy:       run.Strategy,
		MonthsToPayoff: months,
		PayoffDate:     now.AddDate(0, months, 0).Format(dateLayout),
		TotalInterest:  run.TotalInterest.InexactFloat64(),
		TotalPayments:  run.TotalPayments.InexactFloat64(),
		MonthlyPayment: run.MonthlyPayment.InexactFloat64(),
		PayoffOrder:    order,
		Simulation:     simulation,
	}
}
