package models

import (
	"time"

	"github.com/google/uuid"
)

type DebtKind string

const (
	DebtKindCreditCard DebtKind = "credit_card"
	DebtKindLoan       DebtKind = "loan"
	DebtKindMortgage   DebtKind = "mortgage"
	DebtKindOther      DebtKind = "other"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Debt — долг пользователя. Деньги храним в центах, ставку — в базисных пунктах.
type Debt struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Kind            DebtKind  `json:"kind"`
	BalanceCents    int64     `json:"balance_cents"`
	APRBps          int64     `json:"apr_bps"`
	MinPaymentCents int64     `json:"min_payment_cents"`
	IsPriority      bool      `json:"is_priority"`
	DueDay          int       `json:"due_day"`
	Notes           string    `json:"notes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DebtPayment struct {
	ID          uuid.UUID `json:"id"`
	DebtID      uuid.UUID `json:"debt_id"`
	AmountCents int64     `json:"amount_cents"`
	PaidOn      time.Time `json:"paid_on"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}
