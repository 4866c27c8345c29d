package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"example.com/debt-payoff-planner/internal/auth"
	"example.com/debt-payoff-planner/internal/models"
	"example.com/debt-payoff-planner/internal/notifications"
	"example.com/debt-payoff-planner/internal/payoff"
	"example.com/debt-payoff-planner/internal/repository"
)

type PayoffHandler struct {
	Debts   *repository.DebtRepository
	Runs    *repository.PayoffLogRepository
	Hub     *notifications.Hub
	Options payoff.Options
}

// NewPayoffHandler создает обработчик расчета стратегий погашения.
func NewPayoffHandler(debts *repository.DebtRepository, runs *repository.PayoffLogRepository, hub *notifications.Hub, opts payoff.Options) *PayoffHandler {
	return &PayoffHandler{
		Debts:   debts,
		Runs:    runs,
		Hub:     hub,
		Options: opts,
	}
}

type StrategiesRequest struct {
	ExtraPaymentCents int64 `json:"extra_payment_cents" validate:"min=0"`
}

type PreviewDebt struct {
	ID                 string  `json:"id" validate:"max=100"`
	Name               string  `json:"name" validate:"required,max=100"`
	CurrentBalance     float64 `json:"currentBalance" validate:"min=0"`
	AnnualInterestRate float64 `json:"annualInterestRate" validate:"min=0"`
	MinimumPayment     float64 `json:"minimumPayment" validate:"min=0"`
	IsPriority         bool    `json:"isPriority"`
}

type PreviewRequest struct {
	Debts        []PreviewDebt `json:"debts" validate:"required,min=1,max=100,dive"`
	ExtraPayment float64       `json:"extraPayment" validate:"min=0"`
}

// Strategies считает обе стратегии по активным долгам пользователя.
func (h *PayoffHandler) Strategies(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req StrategiesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	debts, err := h.Debts.ListActiveByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	extraPayment := decimal.New(req.ExtraPaymentCents, -2)
	result, err := payoff.Compute(toSnapshots(debts), extraPayment, time.Now().UTC(), h.Options)
	if err != nil {
		return payoffError(c, err)
	}

	if err := h.Runs.LogRun(c.Request().Context(), repository.PayoffRunLog{
		UserID:               userID,
		DebtCount:            len(debts),
		ExtraPaymentCents:    req.ExtraPaymentCents,
		SnowballMonths:       result.Snowball.MonthsToPayoff,
		AvalancheMonths:      result.Avalanche.MonthsToPayoff,
		InterestSavingsCents: toCents(result.Comparison.InterestSavings),
		RecommendedMethod:    string(result.Recommendation.Method),
		Confidence:           string(result.Recommendation.Confidence),
	}); err != nil {
		slog.Warn("failed to log payoff run", "error", err, "user_id", userID)
	}

	h.Hub.Publish(userID, notifications.Event{
		Type: notifications.EventPayoffComputed,
		Data: map[string]interface{}{
			"recommended_method": result.Recommendation.Method,
			"interest_savings":   result.Comparison.InterestSavings,
		},
	})

	return c.JSON(http.StatusOK, result)
}

// Preview считает стратегии по долгам из тела запроса, ничего не сохраняя.
// Подходит для прикидок "что если" без изменения данных пользователя.
func (h *PayoffHandler) Preview(c echo.Context) error {
	if _, ok := auth.UserIDFromContext(c); !ok {
		return unauthorized(c)
	}

	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	snapshots := make([]payoff.DebtSnapshot, 0, len(req.Debts))
	for i, debt := range req.Debts {
		id := debt.ID
		if id == "" {
			id = fmt.Sprintf("debt-%d", i+1)
		}
		snapshots = append(snapshots, payoff.DebtSnapshot{
			ID:             id,
			Name:           debt.Name,
			CurrentBalance: decimal.NewFromFloat(debt.CurrentBalance).Round(2),
			AnnualRate:     decimal.NewFromFloat(debt.AnnualInterestRate),
			MinimumPayment: decimal.NewFromFloat(debt.MinimumPayment).Round(2),
			IsPriority:     debt.IsPriority,
		})
	}

	extraPayment := decimal.NewFromFloat(req.ExtraPayment).Round(2)
	result, err := payoff.Compute(snapshots, extraPayment, time.Now().UTC(), h.Options)
	if err != nil {
		return payoffError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ExportCSV выгружает помесячные графики обеих стратегий в CSV-файл.
func (h *PayoffHandler) ExportCSV(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	strategy := c.QueryParam("strategy")
	switch strategy {
	case "", "both", string(payoff.StrategySnowball), string(payoff.StrategyAvalanche):
	default:
		return badRequest(c, "invalid strategy")
	}

	extraPaymentCents := int64(0)
	if raw := c.QueryParam("extra_payment_cents"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return badRequest(c, "invalid extra_payment_cents")
		}
		extraPaymentCents = parsed
	}

	debts, err := h.Debts.ListActiveByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	extraPayment := decimal.New(extraPaymentCents, -2)
	result, err := payoff.Compute(toSnapshots(debts), extraPayment, time.Now().UTC(), h.Options)
	if err != nil {
		return payoffError(c, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writeScheduleCSV(writer, result, strategy); err != nil {
		return serverError(c)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "payoff-strategies-" + time.Now().UTC().Format(dateLayout) + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func writeScheduleCSV(writer *csv.Writer, result *payoff.ComparisonResult, strategy string) error {
	header := []string{"strategy", "month", "total_balance", "total_interest", "payments"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, strategyResult := range []payoff.StrategyResult{result.Snowball, result.Avalanche} {
		if strategy != "" && strategy != "both" && strategy != string(strategyResult.Strategy) {
			continue
		}
		for _, month := range strategyResult.Simulation {
			record := []string{
				string(strategyResult.Strategy),
				strconv.Itoa(month.Month),
				strconv.FormatFloat(month.TotalBalance, 'f', 2, 64),
				strconv.FormatFloat(month.TotalInterest, 'f', 2, 64),
				strconv.FormatFloat(month.Payments, 'f', 2, 64),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

// payoffError переводит ошибки движка в HTTP-ответы.
func payoffError(c echo.Context, err error) error {
	var validationErr *payoff.ValidationError
	if errors.As(err, &validationErr) {
		return badRequest(c, validationErr.Error())
	}

	if errors.Is(err, payoff.ErrNoActiveDebts) {
		return unprocessable(c, "no active debts to simulate")
	}

	var insufficientErr *payoff.InsufficientPaymentError
	if errors.As(err, &insufficientErr) {
		return unprocessable(c, insufficientErr.Error())
	}

	return serverError(c)
}

// toSnapshots переводит долги из хранилища (центы, базисные пункты)
// во входные снимки движка (десятичные доллары и проценты).
func toSnapshots(debts []models.Debt) []payoff.DebtSnapshot {
	snapshots := make([]payoff.DebtSnapshot, 0, len(debts))
	for _, debt := range debts {
		snapshots = append(snapshots, payoff.DebtSnapshot{
			ID:             debt.ID.String(),
			Name:           debt.Name,
			CurrentBalance: decimal.New(debt.BalanceCents, -2),
			AnnualRate:     decimal.New(debt.APRBps, -2),
			MinimumPayment: decimal.New(debt.MinPaymentCents, -2),
			IsPriority:     debt.IsPriority,
		})
	}
	return snapshots
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
