package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

type DebtOverview struct {
	TotalDebts           int
	ActiveDebts          int
	ClosedDebts          int
	TotalBalanceCents    int64
	TotalMinPaymentCents int64
	MaxAPRBps            int64
	WeightedAPRBps       int64
	PaidLast30DaysCents  int64
}

// NewStatsRepository создает репозиторий статистики по долгам.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Overview возвращает сводку по долгам пользователя: суммарный баланс,
// минимальные платежи, максимальную и средневзвешенную по балансу ставку.
func (r *StatsRepository) Overview(ctx context.Context, userID uuid.UUID) (DebtOverview, error) {
	var stats DebtOverview

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) AS total_debts,
		        COUNT(*) FILTER (WHERE is_active) AS active_debts,
		        COUNT(*) FILTER (WHERE NOT is_active) AS closed_debts,
		        COALESCE(SUM(balance_cents) FILTER (WHERE is_active), 0) AS total_balance_cents,
		        COALESCE(SUM(min_payment_cents) FILTER (WHERE is_active), 0) AS total_min_payment_cents,
		        COALESCE(MAX(apr_bps) FILTER (WHERE is_active), 0) AS max_apr_bps,
		        COALESCE(
		            SUM(apr_bps * balance_cents) FILTER (WHERE is_active AND balance_cents > 0)
		            / NULLIF(SUM(balance_cents) FILTER (WHERE is_active AND balance_cents > 0), 0),
		        0) AS weighted_apr_bps
		 FROM debts
		 WHERE user_id = $1`,
		userID,
	).Scan(
		&stats.TotalDebts, &stats.ActiveDebts, &stats.ClosedDebts,
		&stats.TotalBalanceCents, &stats.TotalMinPaymentCents,
		&stats.MaxAPRBps, &stats.WeightedAPRBps,
	)
	if err != nil {
		return stats, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(p.amount_cents), 0)
		 FROM debt_payments p
		 JOIN debts d ON d.id = p.debt_id
		 WHERE d.user_id = $1 AND p.paid_on >= CURRENT_DATE - INTERVAL '30 days'`,
		userID,
	).Scan(&stats.PaidLast30DaysCents)
	if err != nil {
		return stats, err
	}

	return stats, nil
}
