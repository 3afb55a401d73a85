package gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// GATEWAY INTERFACE
// =====================================================

// Gateway là payment provider: onboarding tài khoản artist, tạo link
// thanh toán cho commission, verify webhook.
type Gateway interface {
	Name() string

	// CreateAccount tạo connected account (nếu chưa có) và trả về onboarding link
	CreateAccount(ctx context.Context, req AccountRequest) (*Account, error)

	// CreatePaymentLink tạo checkout link, tiền chuyển thẳng vào account của artist
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLink, error)

	// VerifyWebhook kiểm tra chữ ký và parse event
	VerifyWebhook(payload []byte, signature string) (*Event, error)
}

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)

// =====================================================
// REQUEST/RESPONSE TYPES
// =====================================================

type AccountRequest struct {
	Email     string
	AccountID string // rỗng = tạo account mới
}

type Account struct {
	ID            string
	OnboardingURL string
}

type PaymentLinkRequest struct {
	PaymentID      uuid.UUID // commission_payments.id, gửi kèm làm reference
	CommissionID   uuid.UUID
	Description    string
	Amount         decimal.Decimal
	Currency       string
	PayeeAccountID string
	PlatformFee    decimal.Decimal
}

type PaymentLink struct {
	ProviderRef string // checkout session id
	URL         string
}

// EventType đã được chuẩn hóa, không phụ thuộc provider
type EventType string

const (
	EventPaymentSucceeded EventType = "payment.succeeded"
	EventPaymentFailed    EventType = "payment.failed"
	EventIgnored          EventType = "ignored"
)

type Event struct {
	ID           string
	Type         EventType
	RawType      string
	PaymentID    uuid.UUID
	CommissionID uuid.UUID
	ProviderRef  string
}

// =====================================================
// AMOUNT CONVERSION
// =====================================================

// zero-decimal currencies: amount gửi lên provider không nhân 100
var zeroDecimal = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// MinorUnits converts an amount to the provider's integer unit.
func MinorUnits(amount decimal.Decimal, currency string) int64 {
	if zeroDecimal[currency] {
		return amount.Round(0).IntPart()
	}
	return amount.Shift(2).Round(0).IntPart()
}

// PlatformFee tính phí nền tảng theo phần trăm, làm tròn 2 chữ số
func PlatformFee(amount decimal.Decimal, percent int) decimal.Decimal {
	if percent <= 0 {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)).Round(2)
}
