package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/debt-payoff-planner/internal/auth"
	"example.com/debt-payoff-planner/internal/models"
	"example.com/debt-payoff-planner/internal/notifications"
	"example.com/debt-payoff-planner/internal/repository"
)

type DebtHandler struct {
	Debts *repository.DebtRepository
	Hub   *notifications.Hub
}

// NewDebtHandler создает обработчик долгов.
func NewDebtHandler(debts *repository.DebtRepository, hub *notifications.Hub) *DebtHandler {
	return &DebtHandler{Debts: debts, Hub: hub}
}

type DebtRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Kind            string `json:"kind" validate:"required,oneof=credit_card loan mortgage other"`
	BalanceCents    int64  `json:"balance_cents" validate:"min=0"`
	APRBps          int64  `json:"apr_bps" validate:"min=0,max=100000"`
	MinPaymentCents int64  `json:"min_payment_cents" validate:"min=0"`
	IsPriority      bool   `json:"is_priority"`
	DueDay          int    `json:"due_day" validate:"min=0,max=31"`
	Notes           string `json:"notes" validate:"max=1000"`
}

type DebtListResponse struct {
	Debts []models.Debt `json:"debts"`
}

type DebtResponse struct {
	Debt models.Debt `json:"debt"`
}

// Create сохраняет новый долг.
func (h *DebtHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req DebtRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}
	if req.BalanceCents > 0 && req.MinPaymentCents == 0 {
		return badRequest(c, "min_payment_cents is required for a debt with outstanding balance")
	}

	debt, err := h.Debts.Create(c.Request().Context(), models.Debt{
		UserID:          userID,
		Name:            req.Name,
		Kind:            models.DebtKind(req.Kind),
		BalanceCents:    req.BalanceCents,
		APRBps:          req.APRBps,
		MinPaymentCents: req.MinPaymentCents,
		IsPriority:      req.IsPriority,
		DueDay:          req.DueDay,
		Notes:           req.Notes,
	})
	if err != nil {
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.Event{
		Type: notifications.EventDebtUpdated,
		Data: debt,
	})

	return c.JSON(http.StatusCreated, DebtResponse{Debt: debt})
}

// List возвращает долги пользователя.
func (h *DebtHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	filter := repository.DebtFilter{
		ActiveOnly: c.QueryParam("active") == "true",
		Sort:       c.QueryParam("sort"),
	}
	if kindParam := c.QueryParam("kind"); kindParam != "" {
		kind, ok := mapDebtKind(kindParam)
		if !ok {
			return badRequest(c, "unknown debt kind")
		}
		filter.Kind = &kind
	}

	debts, err := h.Debts.ListByUser(c.Request().Context(), userID, filter)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, DebtListResponse{Debts: debts})
}

// Get возвращает долг по идентификатору.
func (h *DebtHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debtID, err := uuid.Parse(c.Param("debtId"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	debt, err := h.Debts.GetByID(c.Request().Context(), userID, debtID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "debt not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, DebtResponse{Debt: debt})
}

// Update изменяет долг.
func (h *DebtHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debtID, err := uuid.Parse(c.Param("debtId"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	var req DebtRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}
	if req.BalanceCents > 0 && req.MinPaymentCents == 0 {
		return badRequest(c, "min_payment_cents is required for a debt with outstanding balance")
	}

	debt, err := h.Debts.Update(c.Request().Context(), models.Debt{
		ID:              debtID,
		UserID:          userID,
		Name:            req.Name,
		Kind:            models.DebtKind(req.Kind),
		BalanceCents:    req.BalanceCents,
		APRBps:          req.APRBps,
		MinPaymentCents: req.MinPaymentCents,
		IsPriority:      req.IsPriority,
		DueDay:          req.DueDay,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "debt not found")
		}
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.Event{
		Type: notifications.EventDebtUpdated,
		Data: debt,
	})

	return c.JSON(http.StatusOK, DebtResponse{Debt: debt})
}

// Close помечает долг закрытым, сохраняя историю.
func (h *DebtHandler) Close(c echo.Context) error {
	return h.setActive(c, false)
}

// Reopen возвращает закрытый долг в работу.
func (h *DebtHandler) Reopen(c echo.Context) error {
	return h.setActive(c, true)
}

func (h *DebtHandler) setActive(c echo.Context, active bool) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debtID, err := uuid.Parse(c.Param("debtId"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	if err := h.Debts.SetActive(c.Request().Context(), userID, debtID, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "debt not found")
		}
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.Event{
		Type: notifications.EventDebtUpdated,
		Data: map[string]interface{}{"id": debtID, "is_active": active},
	})

	return c.NoContent(http.StatusNoContent)
}

// Delete удаляет долг вместе с платежами.
func (h *DebtHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debtID, err := uuid.Parse(c.Param("debtId"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	if err := h.Debts.Delete(c.Request().Context(), userID, debtID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "debt not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// mapDebtKind переводит строку запроса в известный вид долга.
func mapDebtKind(raw string) (models.DebtKind, bool) {
	switch raw {
	case "credit_card":
		return models.DebtKindCreditCard, true
	case "loan":
		return models.DebtKindLoan, true
	case "mortgage":
		return models.DebtKindMortgage, true
	case "other":
		return models.DebtKindOther, true
	default:
		return "", false
	}
}
