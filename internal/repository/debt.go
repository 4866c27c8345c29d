package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/debt-payoff-planner/internal/models"
)

const debtColumns = `id, user_id, name, kind, balance_cents, apr_bps, min_payment_cents,
	is_priority, due_day, notes, is_active, created_at, updated_at`

type DebtRepository struct {
	db *pgxpool.Pool
}

// DebtFilter сужает выборку долгов пользователя.
type DebtFilter struct {
	Kind       *models.DebtKind
	ActiveOnly bool
	Sort       string
}

// NewDebtRepository создает репозиторий долгов.
func NewDebtRepository(db *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{db: db}
}

// Create сохраняет новый долг пользователя.
func (r *DebtRepository) Create(ctx context.Context, debt models.Debt) (models.Debt, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO debts
		 (user_id, name, kind, balance_cents, apr_bps, min_payment_cents, is_priority, due_day, notes, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
		 RETURNING `+debtColumns,
		debt.UserID, debt.Name, debt.Kind, debt.BalanceCents, debt.APRBps,
		debt.MinPaymentCents, debt.IsPriority, debt.DueDay, debt.Notes,
	)

	return scanDebt(row)
}

// GetByID возвращает долг пользователя по идентификатору.
func (r *DebtRepository) GetByID(ctx context.Context, userID, debtID uuid.UUID) (models.Debt, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+debtColumns+` FROM debts WHERE id = $1 AND user_id = $2`,
		debtID, userID,
	)

	debt, err := scanDebt(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return debt, ErrNotFound
	}
	return debt, err
}

// ListByUser возвращает долги пользователя с учетом фильтра.
func (r *DebtRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter DebtFilter) ([]models.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.ActiveOnly {
		query += ` AND is_active`
	}
	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		query += ` AND kind = $2`
	}
	query += ` ORDER BY ` + debtOrderClause(filter.Sort)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := make([]models.Debt, 0)
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	return debts, rows.Err()
}

// ListActiveByUser возвращает активные долги с положительным балансом —
// вход для движка стратегий.
func (r *DebtRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Debt, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+debtColumns+`
		 FROM debts
		 WHERE user_id = $1 AND is_active AND balance_cents > 0
		 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := make([]models.Debt, 0)
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	return debts, rows.Err()
}

// Update изменяет поля долга пользователя.
func (r *DebtRepository) Update(ctx context.Context, debt models.Debt) (models.Debt, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE debts
		 SET name = $3, kind = $4, balance_cents = $5, apr_bps = $6,
		     min_payment_cents = $7, is_priority = $8, due_day = $9, notes = $10,
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+debtColumns,
		debt.ID, debt.UserID, debt.Name, debt.Kind, debt.BalanceCents, debt.APRBps,
		debt.MinPaymentCents, debt.IsPriority, debt.DueDay, debt.Notes,
	)

	updated, err := scanDebt(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return updated, ErrNotFound
	}
	return updated, err
}

// SetActive закрывает или возвращает долг в работу.
func (r *DebtRepository) SetActive(ctx context.Context, userID, debtID uuid.UUID, active bool) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE debts SET is_active = $3, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		debtID, userID, active,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete удаляет долг вместе с историей платежей.
func (r *DebtRepository) Delete(ctx context.Context, userID, debtID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM debts WHERE id = $1 AND user_id = $2`,
		debtID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// debtOrderClause переводит пользовательский ключ сортировки в безопасный ORDER BY.
func debtOrderClause(sort string) string {
	switch sort {
	case "balance":
		return "balance_cents DESC, id"
	case "rate":
		return "apr_bps DESC, id"
	case "name":
		return "name, id"
	default:
		return "created_at, id"
	}
}

func scanDebt(row pgx.Row) (models.Debt, error) {
	var debt models.Debt
	err := row.Scan(
		&debt.ID, &debt.UserID, &debt.Name, &debt.Kind, &debt.BalanceCents,
		&debt.APRBps, &debt.MinPaymentCents, &debt.IsPriority, &debt.DueDay,
		&debt.Notes, &debt.IsActive, &debt.CreatedAt, &debt.UpdatedAt,
	)
	return debt, err
}
