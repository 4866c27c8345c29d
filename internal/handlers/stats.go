package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/debt-payoff-planner/internal/auth"
	"example.com/debt-payoff-planner/internal/repository"
)

type StatsHandler struct {
	Stats *repository.StatsRepository
}

// NewStatsHandler создает обработчик статистики.
func NewStatsHandler(stats *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

type DebtOverviewResponse struct {
	TotalDebts           int   `json:"total_debts"`
	ActiveDebts          int   `json:"active_debts"`
	ClosedDebts          int   `json:"closed_debts"`
	TotalBalanceCents    int64 `json:"total_balance_cents"`
	TotalMinPaymentCents int64 `json:"total_min_payment_cents"`
	MaxAPRBps            int64 `json:"max_apr_bps"`
	WeightedAPRBps       int64 `json:"weighted_apr_bps"`
	PaidLast30DaysCents  int64 `json:"paid_last_30_days_cents"`
}

// Overview возвращает сводку по долгам пользователя.
func (h *StatsHandler) Overview(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	stats, err := h.Stats.Overview(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, DebtOverviewResponse{
		TotalDebts:           stats.TotalDebts,
		ActiveDebts:          stats.ActiveDebts,
		ClosedDebts:          stats.ClosedDebts,
		TotalBalanceCents:    stats.TotalBalanceCents,
		TotalMinPaymentCents: stats.TotalMinPaymentCents,
		MaxAPRBps:            stats.MaxAPRBps,
		WeightedAPRBps:       stats.WeightedAPRBps,
		PaidLast30DaysCents:  stats.PaidLast30DaysCents,
	})
}
