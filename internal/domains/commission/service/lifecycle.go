package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/internal/shared/validation"
)

// ========================================
// LIFECYCLE ACTIONS
// ========================================
// Khác với Update, các action luôn đi qua state machine:
// đúng actor, đúng trạng thái nguồn, ghi bằng compare-and-swap.

func (s *commissionService) SetPrice(ctx context.Context, id string, callerID uuid.UUID, req model.SetPriceRequest) (*model.Commission, error) {
	commissionID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	return s.act(ctx, commissionID, callerID, model.ActionSetPrice, utils.ParseFloatToDecimal(req.Price))
}

func (s *commissionService) Accept(ctx context.Context, id string, callerID uuid.UUID) (*model.Commission, error) {
	commissionID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.act(ctx, commissionID, callerID, model.ActionAccept, nil)
}

func (s *commissionService) Deny(ctx context.Context, id string, callerID uuid.UUID) (*model.Commission, error) {
	commissionID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.act(ctx, commissionID, callerID, model.ActionDeny, nil)
}

func (s *commissionService) Complete(ctx context.Context, id string, callerID uuid.UUID) (*model.Commission, error) {
	commissionID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.act(ctx, commissionID, callerID, model.ActionComplete, nil)
}

func (s *commissionService) act(ctx context.Context, id, callerID uuid.UUID, action model.Action, price *decimal.Decimal) (*model.Commission, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actor := current.ActorOf(callerID)
	if actor == "" {
		return nil, model.ErrNotParticipant()
	}

	t, ok := model.Lifecycle.Find(action, current.Status)
	if !ok {
		return nil, model.ErrActionNotAvailable(action, current.Status)
	}
	if !t.AllowedFor(actor) {
		return nil, model.ErrActorNotAllowed(action, actor)
	}

	updated, err := s.repo.Transition(ctx, id, []model.Status{current.Status}, t.To, price)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("commission_id", id.String()).
		Str("action", string(action)).
		Str("actor", string(actor)).
		Str("from", string(current.Status)).
		Str("to", string(updated.Status)).
		Msg("Commission transition")

	s.recordTransition(current.Status, updated.Status)
	s.notify(ctx, updated, actor)
	return updated, nil
}

// AvailableTransitions trả về các action caller có thể làm ở trạng thái hiện tại
func (s *commissionService) AvailableTransitions(ctx context.Context, id string, callerID uuid.UUID) ([]model.Transition, error) {
	c, err := s.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	actor := c.ActorOf(callerID)
	if actor == "" {
		return nil, model.ErrNotParticipant()
	}
	return model.Lifecycle.AvailableTransitions(c.Status, actor), nil
}

// ========================================
// PAYMENT
// ========================================

// Checkout tạo link thanh toán; status chỉ đổi khi webhook xác nhận
func (s *commissionService) Checkout(ctx context.Context, id string, callerID uuid.UUID) (*model.CheckoutResponse, error) {
	c, err := s.Read(ctx, id)
	if err != nil {
		return nil, err
	}

	actor := c.ActorOf(callerID)
	if actor == "" {
		return nil, model.ErrNotParticipant()
	}
	if actor != model.ActorCommissioner {
		return nil, apperror.Forbidden("only the commissioner can pay for this commission")
	}
	if _, ok := model.Lifecycle.Find(model.ActionPay, c.Status); !ok {
		return nil, model.ErrActionNotAvailable(model.ActionPay, c.Status)
	}
	if c.Price == nil {
		return nil, model.ErrPriceMissing()
	}
	if s.payments == nil {
		return nil, apperror.Internal("payment provider is not configured", nil)
	}

	return s.payments.CreateCommissionPaymentLink(ctx, c)
}

// ConfirmPayment: PENDING|ACCEPTED -> PAID. Gọi lại với commission đã PAID
// (webhook gửi trùng) thì trả về record hiện tại, không notify lần nữa.
func (s *commissionService) ConfirmPayment(ctx context.Context, commissionID uuid.UUID, providerRef string) (*model.Commission, error) {
	current, err := s.repo.GetByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	if current.Status == model.StatusPaid || current.Status == model.StatusCompleted {
		log.Info().
			Str("commission_id", commissionID.String()).
			Str("provider_ref", providerRef).
			Msg("Payment already confirmed")
		return current, nil
	}
	if _, ok := model.Lifecycle.Find(model.ActionPay, current.Status); !ok {
		return nil, model.ErrActionNotAvailable(model.ActionPay, current.Status)
	}

	updated, err := s.repo.Transition(ctx, commissionID, model.Lifecycle.SourcesFor(model.ActionPay), model.StatusPaid, nil)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("commission_id", commissionID.String()).
		Str("provider_ref", providerRef).
		Str("from", string(current.Status)).
		Msg("Commission payment confirmed")

	s.recordTransition(current.Status, updated.Status)
	s.notify(ctx, updated, model.ActorPaymentProvider)
	return updated, nil
}
