package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/payment/gateway"
)

// =====================================================
// STRIPE CLIENT IMPLEMENTATION
// =====================================================

type Client struct {
	config     *Config
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(config *Config) gateway.Gateway {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

func (c *Client) Name() string { return "stripe" }

// =====================================================
// ACCOUNTS (Connect onboarding)
// =====================================================

func (c *Client) CreateAccount(ctx context.Context, req gateway.AccountRequest) (*gateway.Account, error) {
	accountID := req.AccountID
	if accountID == "" {
		form := url.Values{}
		form.Set("type", "express")
		if req.Email != "" {
			form.Set("email", req.Email)
		}
		form.Set("capabilities[card_payments][requested]", "true")
		form.Set("capabilities[transfers][requested]", "true")

		var created struct {
			ID string `json:"id"`
		}
		if err := c.post(ctx, pathAccounts, form, &created); err != nil {
			return nil, fmt.Errorf("create account: %w", err)
		}
		accountID = created.ID
	}

	form := url.Values{}
	form.Set("account", accountID)
	form.Set("refresh_url", c.config.RefreshURL)
	form.Set("return_url", c.config.RefreshURL)
	form.Set("type", "account_onboarding")

	var link struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, pathAccountLinks, form, &link); err != nil {
		return nil, fmt.Errorf("create account link: %w", err)
	}

	return &gateway.Account{ID: accountID, OnboardingURL: link.URL}, nil
}

// =====================================================
// CHECKOUT SESSION
// =====================================================

func (c *Client) CreatePaymentLink(ctx context.Context, req gateway.PaymentLinkRequest) (*gateway.PaymentLink, error) {
	currency := strings.ToLower(req.Currency)

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.config.SuccessURL)
	form.Set("cancel_url", c.config.CancelURL)
	form.Set("client_reference_id", req.PaymentID.String())
	form.Set("metadata[payment_id]", req.PaymentID.String())
	form.Set("metadata[commission_id]", req.CommissionID.String())
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(gateway.MinorUnits(req.Amount, currency), 10))
	form.Set("line_items[0][price_data][product_data][name]", req.Description)
	form.Set("payment_intent_data[transfer_data][destination]", req.PayeeAccountID)
	if req.PlatformFee.IsPositive() {
		form.Set("payment_intent_data[application_fee_amount]",
			strconv.FormatInt(gateway.MinorUnits(req.PlatformFee, currency), 10))
	}

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := c.post(ctx, pathCheckoutSessions, form, &session); err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	if session.URL == "" {
		return nil, fmt.Errorf("checkout session %s has no url", session.ID)
	}

	return &gateway.PaymentLink{ProviderRef: session.ID, URL: session.URL}, nil
}

// =====================================================
// WEBHOOK
// =====================================================

type webhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID                string            `json:"id"`
			ClientReferenceID string            `json:"client_reference_id"`
			PaymentStatus     string            `json:"payment_status"`
			Metadata          map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

func (c *Client) VerifyWebhook(payload []byte, signature string) (*gateway.Event, error) {
	if err := VerifySignature(payload, signature, c.config.WebhookSecret, c.config.WebhookTolerance, c.now()); err != nil {
		return nil, err
	}

	var raw webhookEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrMalformedEvent, err)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("%w: missing event id", gateway.ErrMalformedEvent)
	}

	event := &gateway.Event{
		ID:          raw.ID,
		RawType:     raw.Type,
		Type:        gateway.EventIgnored,
		ProviderRef: raw.Data.Object.ID,
	}

	switch raw.Type {
	case "checkout.session.completed":
		// thanh toán async (bank debit) sẽ đến sau qua async_payment_succeeded
		if raw.Data.Object.PaymentStatus == "paid" {
			event.Type = gateway.EventPaymentSucceeded
		}
	case "checkout.session.async_payment_succeeded":
		event.Type = gateway.EventPaymentSucceeded
	case "checkout.session.async_payment_failed", "checkout.session.expired":
		event.Type = gateway.EventPaymentFailed
	}

	if event.Type != gateway.EventIgnored {
		ref := raw.Data.Object.ClientReferenceID
		if ref == "" {
			ref = raw.Data.Object.Metadata["payment_id"]
		}
		paymentID, err := uuid.Parse(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: bad payment reference %q", gateway.ErrMalformedEvent, ref)
		}
		event.PaymentID = paymentID
		if cid, err := uuid.Parse(raw.Data.Object.Metadata["commission_id"]); err == nil {
			event.CommissionID = cid
		}
	}

	return event, nil
}

// =====================================================
// HTTP
// =====================================================

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.endpoint(path), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.SetBasicAuth(c.config.APIKey, "")
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call payment API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		_ = json.Unmarshal(body, &apiErr)
		log.Error().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("type", apiErr.Error.Type).
			Msg("Payment API request failed")
		return fmt.Errorf("payment API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
