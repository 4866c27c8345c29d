package payoff

import "sort"

type Strategy string

const (
	StrategySnowball  Strategy = "snowball"  // наименьший баланс первым
	StrategyAvalanche Strategy = "avalanche" // наибольшая ставка первой
)

// orderForStrategy возвращает детерминированный порядок приоритетов для стратегии.
// Порядок фиксируется один раз на старте симуляции и не пересчитывается по ходу:
// "снежный ком" и "лавина" определены именно через стартовый порядок.
func orderForStrategy(debts []DebtSnapshot, strategy Strategy) []DebtSnapshot {
	ordered := make([]DebtSnapshot, len(debts))
	copy(ordered, debts)

	switch strategy {
	case StrategySnowball:
		sort.Slice(ordered, func(i, j int) bool {
			return lessSnowball(ordered[i], ordered[j])
		})
	default:
		sort.Slice(ordered, func(i, j int) bool {
			return lessAvalanche(ordered[i], ordered[j])
		})
	}

	return ordered
}

func lessSnowball(a, b DebtSnapshot) bool {
	if !a.CurrentBalance.Equal(b.CurrentBalance) {
		return a.CurrentBalance.LessThan(b.CurrentBalance)
	}
	if a.IsPriority != b.IsPriority {
		return a.IsPriority
	}
	if !a.AnnualRate.Equal(b.AnnualRate) {
		return a.AnnualRate.LessThan(b.AnnualRate)
	}
	return a.ID < b.ID
}

func lessAvalanche(a, b DebtSnapshot) bool {
	if !a.AnnualRate.Equal(b.AnnualRate) {
		return a.AnnualRate.GreaterThan(b.AnnualRate)
	}
	if a.IsPriority != b.IsPriority {
		return a.IsPriority
	}
	if !a.CurrentBalance.Equal(b.CurrentBalance) {
		return a.CurrentBalance.LessThan(b.CurrentBalance)
	}
	return a.ID < b.ID
}
