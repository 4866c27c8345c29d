package payoff

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMaxMonths — жесткий потолок симуляции (100 лет).
const DefaultMaxMonths = 1200

// Options настраивает движок. MaterialityPercent — процент от суммарного долга,
// начиная с которого экономия на процентах считается существенной.
type Options struct {
	MaxMonths          int
	MaterialityPercent decimal.Decimal
}

// DefaultOptions возвращает настройки по умолчанию: 1200 месяцев, порог 1%.
func DefaultOptions() Options {
	return Options{
		MaxMonths:          DefaultMaxMonths,
		MaterialityPercent: decimal.NewFromInt(1),
	}
}

// Compute прогоняет обе стратегии над одним набором долгов и возвращает
// сравнение с рекомендацией. Часы инжектируются через now, внутри симуляции
// движок к системному времени не обращается.
func Compute(debts []DebtSnapshot, extraPayment decimal.Decimal, now time.Time, opts Options) (*ComparisonResult, error) {
	if opts.MaxMonths <= 0 {
		opts.MaxMonths = DefaultMaxMonths
	}
	if opts.MaterialityPercent.Sign() <= 0 {
		opts.MaterialityPercent = decimal.NewFromInt(1)
	}

	active, err := normalizeSnapshots(debts, extraPayment)
	if err != nil {
		return nil, err
	}

	snowball, err := simulate(active, extraPayment, StrategySnowball, opts.MaxMonths)
	if err != nil {
		return nil, err
	}

	avalanche, err := simulate(active, extraPayment, StrategyAvalanche, opts.MaxMonths)
	if err != nil {
		return nil, err
	}

	totalDebt := decimal.Zero
	for _, debt := range active {
		totalDebt = totalDebt.Add(debt.CurrentBalance)
	}

	savings := snowball.TotalInterest.Sub(avalanche.TotalInterest)
	threshold := totalDebt.Mul(opts.MaterialityPercent).Div(decimal.NewFromInt(100))

	snowballMonths := len(snowball.Months)
	avalancheMonths := len(avalanche.Months)

	faster := StrategyAvalanche
	if snowballMonths < avalancheMonths {
		faster = StrategySnowball
	}

	return &ComparisonResult{
		Snowball:       buildStrategyResult(snowball, now),
		Avalanche:      buildStrategyResult(avalanche, now),
		Recommendation: recommend(savings, threshold, snowballMonths, avalancheMonths),
		Comparison: Comparison{
			InterestSavings: savings.InexactFloat64(),
			TimeDifference:  snowballMonths - avalancheMonths,
			FasterMethod:    faster,
		},
	}, nil
}

// recommend выбирает метод: лавину — при существенной экономии на процентах,
// иначе снежный ком ради поведенческого эффекта быстрых маленьких побед.
func recommend(savings, threshold decimal.Decimal, snowballMonths, avalancheMonths int) Recommendation {
	confidence := ConfidenceMedium
	switch {
	case savings.GreaterThanOrEqual(threshold.Mul(decimal.NewFromInt(3))):
		confidence = ConfidenceHigh
	case snowballMonths == avalancheMonths && savings.Abs().LessThanOrEqual(threshold):
		confidence = ConfidenceLow
	}

	if savings.GreaterThan(threshold) {
		return Recommendation{
			Method: StrategyAvalanche,
			Reason: fmt.Sprintf(
				"Paying highest-rate debts first saves %s in interest compared to the snowball order.",
				savings.StringFixed(2),
			),
			Confidence: confidence,
		}
	}

	return Recommendation{
		Method: StrategySnowball,
		Reason: "Interest savings from the avalanche order are marginal; " +
			"clearing the smallest balances first builds payoff momentum.",
		Confidence: confidence,
	}
}
