package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PayoffLogRepository struct {
	db *pgxpool.Pool
}

// PayoffRunLog — запись об одном прогоне движка стратегий.
type PayoffRunLog struct {
	UserID               uuid.UUID
	DebtCount            int
	ExtraPaymentCents    int64
	SnowballMonths       int
	AvalancheMonths      int
	InterestSavingsCents int64
	RecommendedMethod    string
	Confidence           string
}

// NewPayoffLogRepository создает репозиторий журнала расчетов.
func NewPayoffLogRepository(db *pgxpool.Pool) *PayoffLogRepository {
	return &PayoffLogRepository{db: db}
}

// LogRun сохраняет итог одного расчета стратегий.
func (r *PayoffLogRepository) LogRun(ctx context.Context, run PayoffRunLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payoff_runs
		 (user_id, debt_count, extra_payment_cents, snowball_months, avalanche_months,
		  interest_savings_cents, recommended_method, confidence)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.UserID,
		run.DebtCount,
		run.ExtraPaymentCents,
		run.SnowballMonths,
		run.AvalancheMonths,
		run.InterestSavingsCents,
		run.RecommendedMethod,
		run.Confidence,
	)
	return err
}
