package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"artisthub-backend/internal/domains/payment/gateway"
)

// =====================================================
// MOCK GATEWAY (development + tests)
// =====================================================
// Webhook payload là JSON của MockEvent, không ký

type Gateway struct {
	mu       sync.Mutex
	baseURL  string
	Accounts []gateway.AccountRequest
	Links    []gateway.PaymentLinkRequest

	FailPaymentLink bool
}

func NewGateway(baseURL string) *Gateway {
	return &Gateway{baseURL: baseURL}
}

func (g *Gateway) Name() string { return "mock" }

func (g *Gateway) CreateAccount(_ context.Context, req gateway.AccountRequest) (*gateway.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Accounts = append(g.Accounts, req)

	id := req.AccountID
	if id == "" {
		id = "acct_mock_" + uuid.NewString()[:8]
	}
	return &gateway.Account{
		ID:            id,
		OnboardingURL: fmt.Sprintf("%s/onboarding/%s", g.baseURL, id),
	}, nil
}

func (g *Gateway) CreatePaymentLink(_ context.Context, req gateway.PaymentLinkRequest) (*gateway.PaymentLink, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailPaymentLink {
		return nil, fmt.Errorf("mock payment link creation failed")
	}
	g.Links = append(g.Links, req)

	ref := "cs_mock_" + req.PaymentID.String()
	return &gateway.PaymentLink{
		ProviderRef: ref,
		URL:         fmt.Sprintf("%s/checkout/%s?amount=%s", g.baseURL, ref, req.Amount.StringFixed(2)),
	}, nil
}

type MockEvent struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	PaymentID    string `json:"payment_id"`
	CommissionID string `json:"commission_id"`
	ProviderRef  string `json:"provider_ref"`
}

func (g *Gateway) VerifyWebhook(payload []byte, _ string) (*gateway.Event, error) {
	var raw MockEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrMalformedEvent, err)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("%w: missing event id", gateway.ErrMalformedEvent)
	}

	event := &gateway.Event{
		ID:          raw.ID,
		RawType:     raw.Type,
		Type:        gateway.EventType(raw.Type),
		ProviderRef: raw.ProviderRef,
	}
	switch event.Type {
	case gateway.EventPaymentSucceeded, gateway.EventPaymentFailed:
		id, err := uuid.Parse(raw.PaymentID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad payment reference", gateway.ErrMalformedEvent)
		}
		event.PaymentID = id
	default:
		event.Type = gateway.EventIgnored
	}
	if cid, err := uuid.Parse(raw.CommissionID); err == nil {
		event.CommissionID = cid
	}
	return event, nil
}
