package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	commissionmodel "artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/domains/payment/gateway"
	"artisthub-backend/internal/domains/payment/model"
	"artisthub-backend/internal/domains/payment/repository"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/validation"
)

type Config struct {
	Currency           string
	PlatformFeePercent int
}

type paymentService struct {
	repo    repository.PaymentRepository
	gateway gateway.Gateway
	artists ArtistAccounts
	users   UserReader
	cfg     Config
}

func NewPaymentService(
	repo repository.PaymentRepository,
	gw gateway.Gateway,
	artists ArtistAccounts,
	users UserReader,
	cfg Config,
) PaymentService {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	return &paymentService{repo: repo, gateway: gw, artists: artists, users: users, cfg: cfg}
}

// =====================================================
// ONBOARDING
// =====================================================

// Onboard: user PROFESSIONAL đã có artist info, account id lưu vào artist info
func (s *paymentService) Onboard(ctx context.Context, userID uuid.UUID) (*model.AccountResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != usermodel.RoleProfessional {
		return nil, model.ErrNotArtist
	}

	info, err := s.artists.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing := ""
	if info.PaymentAccountID != nil {
		existing = *info.PaymentAccountID
	}

	account, err := s.gateway.CreateAccount(ctx, gateway.AccountRequest{Email: user.Email, AccountID: existing})
	if err != nil {
		return nil, model.ErrGatewayFailed(err)
	}

	if account.ID != existing {
		if _, err := s.artists.SetPaymentAccount(ctx, userID, account.ID); err != nil {
			return nil, err
		}
		log.Info().
			Str("user_id", userID.String()).
			Str("provider", s.gateway.Name()).
			Msg("Payment account connected")
	}

	return &model.AccountResponse{AccountID: account.ID, OnboardingURL: account.OnboardingURL}, nil
}

// =====================================================
// CHECKOUT
// =====================================================

func (s *paymentService) CreateCommissionPaymentLink(
	ctx context.Context,
	c *commissionmodel.Commission,
) (*commissionmodel.CheckoutResponse, error) {
	if c.Price == nil {
		return nil, commissionmodel.ErrPriceMissing()
	}

	info, err := s.artists.GetByUserID(ctx, c.ArtistID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, model.ErrPayeeNotOnboarded
		}
		return nil, err
	}
	if info.PaymentAccountID == nil || *info.PaymentAccountID == "" {
		return nil, model.ErrPayeeNotOnboarded
	}

	amount := *c.Price
	paymentID := uuid.New()
	link, err := s.gateway.CreatePaymentLink(ctx, gateway.PaymentLinkRequest{
		PaymentID:      paymentID,
		CommissionID:   c.ID,
		Description:    fmt.Sprintf("Commission: %s", strings.TrimSpace(c.Title)),
		Amount:         amount,
		Currency:       s.cfg.Currency,
		PayeeAccountID: *info.PaymentAccountID,
		PlatformFee:    gateway.PlatformFee(amount, s.cfg.PlatformFeePercent),
	})
	if err != nil {
		log.Error().Err(err).Str("commission_id", c.ID.String()).Msg("Failed to create payment link")
		return nil, model.ErrGatewayFailed(err)
	}

	ref := link.ProviderRef
	payment, err := s.repo.Create(ctx, &model.CommissionPayment{
		ID:             paymentID,
		CommissionID:   c.ID,
		Provider:       s.gateway.Name(),
		PayeeAccountID: *info.PaymentAccountID,
		Amount:         amount,
		Currency:       s.cfg.Currency,
		PaymentURL:     link.URL,
		ProviderRef:    &ref,
		Status:         model.StatusPending,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("commission_id", c.ID.String()).
		Str("payment_id", payment.ID.String()).
		Str("amount", amount.StringFixed(2)).
		Msg("Payment link created")

	price := amount.InexactFloat64()
	return &commissionmodel.CheckoutResponse{
		CommissionID: c.ID.String(),
		PaymentID:    payment.ID.String(),
		URL:          payment.PaymentURL,
		Amount:       &price,
		Currency:     payment.Currency,
	}, nil
}

func (s *paymentService) ReadAllByCommission(ctx context.Context, commissionID string) ([]*model.CommissionPayment, error) {
	id, err := validation.ParseID("commission_id", commissionID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCommission(ctx, id)
}
