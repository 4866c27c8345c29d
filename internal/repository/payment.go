package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/debt-payoff-planner/internal/models"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository создает репозиторий платежей по долгам.
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Record сохраняет платеж и уменьшает баланс долга в одной транзакции.
// Баланс не опускается ниже нуля. Возвращает платеж и новый баланс.
func (r *PaymentRepository) Record(ctx context.Context, userID, debtID uuid.UUID, amountCents int64, paidOn time.Time, note string) (models.DebtPayment, int64, error) {
	var payment models.DebtPayment
	var newBalance int64

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return payment, 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(ctx,
		`UPDATE debts
		 SET balance_cents = GREATEST(balance_cents - $3, 0), updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING balance_cents`,
		debtID, userID, amountCents,
	).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment, 0, ErrNotFound
		}
		return payment, 0, err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO debt_payments (debt_id, amount_cents, paid_on, note)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, debt_id, amount_cents, paid_on, note, created_at`,
		debtID, amountCents, paidOn, note,
	).Scan(&payment.ID, &payment.DebtID, &payment.AmountCents, &payment.PaidOn, &payment.Note, &payment.CreatedAt)
	if err != nil {
		return payment, 0, err
	}

	return payment, newBalance, tx.Commit(ctx)
}

// ListByDebt возвращает историю платежей по долгу пользователя.
func (r *PaymentRepository) ListByDebt(ctx context.Context, userID, debtID uuid.UUID) ([]models.DebtPayment, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM debts WHERE id = $1 AND user_id = $2)`,
		debtID, userID,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, debt_id, amount_cents, paid_on, note, created_at
		 FROM debt_payments
		 WHERE debt_id = $1
		 ORDER BY paid_on DESC, created_at DESC`,
		debtID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]models.DebtPayment, 0)
	for rows.Next() {
		var payment models.DebtPayment
		if err := rows.Scan(&payment.ID, &payment.DebtID, &payment.AmountCents, &payment.PaidOn, &payment.Note, &payment.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
