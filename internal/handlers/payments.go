package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/debt-payoff-planner/internal/auth"
	"example.com/debt-payoff-planner/internal/models"
	"example.com/debt-payoff-planner/internal/notifications"
	"example.com/debt-payoff-planner/internal/repository"
)

type PaymentHandler struct {
	Payments *repository.PaymentRepository
	Hub      *notifications.Hub
}

// NewPaymentHandler создает обработчик платежей по долгам.
func NewPaymentHandler(payments *repository.PaymentRepository, hub *notifications.Hub) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Hub: hub}
}

type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	PaidOn      string `json:"paid_on" validate:"omitempty,datetime=2006-01-02"`
	Note        string `json:"note" validate:"max=500"`
}

type RecordPaymentResponse struct {
	Payment         models.DebtPayment `json:"payment"`
	NewBalanceCents int64              `json:"new_balance_cents"`
}

type PaymentListResponse struct {
	Payments []models.DebtPayment `json:"payments"`
}

// Record сохраняет платеж и уменьшает баланс долга.
func (h *PaymentHandler) Record(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debtID, err := uuid.Parse(c.Param("debtId"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	paidOn := time.Now().UTC()
	if req.PaidOn != "" {
		paidOn, err = time.Parse(dateLayout, req.PaidOn)
		if err != nil {
			return badRequest(c, "invalid paid_on date")
		}
	}

	payment, newBalance, err := h.Payments.Record(c.Request().Context(), userID, debtID, req.AmountCents, paidOn, req.Note)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "debt not found")
		}
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.Event{
		Type: notifications.EventPaymentRecorded,
		Data: map[string]interface{}{
			"debt_id":           debtID,
			"amount_cents":      payment.AmountCents,
			"new_balance_cents": newBalance,
		},
	})

	return c.JSON(http.StatusCreated, RecordPaymentResponse{
		Payment:         payment,
		NewBalanceCents: newBalance,
	})
}

// List возвращает историю платежей по долгу.
func (h *PaymentHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debtID, err := uuid.Parse(c.Param("debtId"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	payments, err := h.Payments.ListByDebt(c.Request().Context(), userID, debtID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "debt not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, PaymentListResponse{Payments: payments})
}
