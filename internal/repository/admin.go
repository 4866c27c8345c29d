package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

type AdminUser struct {
	ID        uuid.UUID
	Email     string
	Name      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DailyCount struct {
	Day   time.Time
	Count int
}

type UsageStats struct {
	Users           int
	Debts           int
	PayoffRuns      int
	PayoffRunsByDay []DailyCount
	AvalanchePicked int
	SnowballPicked  int
}

// NewAdminRepository создает репозиторий для админских запросов.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// ListUsers возвращает страницу пользователей.
func (r *AdminRepository) ListUsers(ctx context.Context, limit, offset int) ([]AdminUser, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, name, created_at, updated_at
		 FROM users
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]AdminUser, 0, limit)
	for rows.Next() {
		var user AdminUser
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// CountUsers возвращает общее число пользователей.
func (r *AdminRepository) CountUsers(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	return total, err
}

// UsageStats возвращает сводку использования за последние days дней.
func (r *AdminRepository) UsageStats(ctx context.Context, days int) (UsageStats, error) {
	var stats UsageStats

	err := r.db.QueryRow(ctx,
		`SELECT
		    (SELECT COUNT(*) FROM users),
		    (SELECT COUNT(*) FROM debts),
		    (SELECT COUNT(*) FROM payoff_runs),
		    (SELECT COUNT(*) FROM payoff_runs WHERE recommended_method = 'avalanche'),
		    (SELECT COUNT(*) FROM payoff_runs WHERE recommended_method = 'snowball')`,
	).Scan(&stats.Users, &stats.Debts, &stats.PayoffRuns, &stats.AvalanchePicked, &stats.SnowballPicked)
	if err != nil {
		return stats, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*)
		 FROM payoff_runs
		 WHERE created_at >= CURRENT_DATE - $1 * INTERVAL '1 day'
		 GROUP BY day
		 ORDER BY day`,
		days,
	)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var item DailyCount
		if err := rows.Scan(&item.Day, &item.Count); err != nil {
			return stats, err
		}
		stats.PayoffRunsByDay = append(stats.PayoffRunsByDay, item)
	}

	return stats, rows.Err()
}
