package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"artisthub-backend/internal/shared/apperror"
)

// =====================================================
// PAYMENT STATUS
// =====================================================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

// =====================================================
// ENTITY
// =====================================================

// CommissionPayment: một lần checkout của commissioner
type CommissionPayment struct {
	ID             uuid.UUID       `json:"id"`
	CommissionID   uuid.UUID       `json:"commission_id"`
	Provider       string          `json:"provider"`
	PayeeAccountID string          `json:"payee_account_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	PaymentURL     string          `json:"payment_url"`
	ProviderRef    *string         `json:"provider_ref"`
	Status         Status          `json:"status"`
	PaidAt         *time.Time      `json:"paid_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// =====================================================
// DTOs
// =====================================================

type AccountResponse struct {
	AccountID     string `json:"account_id"`
	OnboardingURL string `json:"onboarding_url"`
}

type PaymentResponse struct {
	ID           uuid.UUID  `json:"id"`
	CommissionID uuid.UUID  `json:"commission_id"`
	Provider     string     `json:"provider"`
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency"`
	PaymentURL   string     `json:"payment_url"`
	Status       Status     `json:"status"`
	PaidAt       *time.Time `json:"paid_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (p *CommissionPayment) ToResponse() PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		CommissionID: p.CommissionID,
		Provider:     p.Provider,
		Amount:       p.Amount.InexactFloat64(),
		Currency:     p.Currency,
		PaymentURL:   p.PaymentURL,
		Status:       p.Status,
		PaidAt:       p.PaidAt,
		CreatedAt:    p.CreatedAt,
	}
}

func ToResponses(list []*CommissionPayment) []PaymentResponse {
	out := make([]PaymentResponse, len(list))
	for i, p := range list {
		out[i] = p.ToResponse()
	}
	return out
}

// =====================================================
// ERRORS
// =====================================================

func ErrPaymentNotFound(id string) error {
	return apperror.NotFound("payment %s not found", id)
}

var (
	ErrPayeeNotOnboarded = apperror.InvalidArgument("artist has not connected a payment account")
	ErrNotArtist         = apperror.Forbidden("only PROFESSIONAL users can connect a payment account")
	ErrInvalidWebhook    = apperror.InvalidArgument("invalid webhook")
)

func ErrGatewayFailed(err error) error {
	return apperror.Internal("payment provider request failed", err)
}
