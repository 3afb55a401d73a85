package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/payment/gateway"
	"artisthub-backend/internal/domains/payment/repository"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/pkg/cache"
	"artisthub-backend/pkg/metrics"
)

const (
	webhookKeyPrefix = "webhook:payment:"
	webhookKeyTTL    = 72 * time.Hour
)

type webhookService struct {
	gateway     gateway.Gateway
	payments    repository.PaymentRepository
	commissions CommissionConfirmer
	cache       cache.Cache
}

func NewWebhookService(
	gw gateway.Gateway,
	payments repository.PaymentRepository,
	commissions CommissionConfirmer,
	c cache.Cache,
) WebhookService {
	return &webhookService{gateway: gw, payments: payments, commissions: commissions, cache: c}
}

// Handle:
//  1. verify chữ ký (sai -> InvalidArgument, provider không retry)
//  2. idempotent theo event id (Redis INCR, lần đầu = 1)
//  3. succeeded -> đánh dấu payment + ConfirmPayment; failed -> đánh dấu payment
//
// Lỗi tạm thời trả về error để provider gửi lại; key idempotency bị xóa.
func (s *webhookService) Handle(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		metrics.RecordWebhook("", "rejected")
		log.Warn().Err(err).Str("provider", s.gateway.Name()).Msg("Webhook rejected")
		return apperror.InvalidArgument("invalid webhook: %s", err.Error())
	}

	if event.Type == gateway.EventIgnored {
		metrics.RecordWebhook(event.RawType, "ignored")
		log.Debug().Str("event_id", event.ID).Str("type", event.RawType).Msg("Webhook event ignored")
		return nil
	}

	key := webhookKeyPrefix + event.ID
	if s.seen(ctx, key) {
		metrics.RecordWebhook(string(event.Type), "duplicate")
		log.Info().Str("event_id", event.ID).Msg("Duplicate webhook event")
		return nil
	}

	if err := s.process(ctx, event); err != nil {
		metrics.RecordWebhook(string(event.Type), "failed")
		s.forget(ctx, key)
		return err
	}

	metrics.RecordWebhook(string(event.Type), "processed")
	return nil
}

func (s *webhookService) process(ctx context.Context, event *gateway.Event) error {
	switch event.Type {
	case gateway.EventPaymentSucceeded:
		payment, changed, err := s.payments.MarkSucceeded(ctx, event.PaymentID, event.ProviderRef)
		if err != nil {
			if apperror.IsNotFound(err) {
				log.Warn().Str("event_id", event.ID).Str("payment_id", event.PaymentID.String()).Msg("Webhook for unknown payment")
				return nil
			}
			return err
		}
		if event.CommissionID != uuid.Nil && event.CommissionID != payment.CommissionID {
			log.Warn().
				Str("event_id", event.ID).
				Str("event_commission", event.CommissionID.String()).
				Str("payment_commission", payment.CommissionID.String()).
				Msg("Webhook commission does not match payment record")
		}

		_, err = s.commissions.ConfirmPayment(ctx, payment.CommissionID, event.ProviderRef)
		if err != nil {
			var appErr *apperror.Error
			if errors.As(err, &appErr) && appErr.Status < 500 {
				if !changed {
					// event gửi lại sau khi đã xử lý xong
					log.Debug().Str("event_id", event.ID).Msg("Payment already confirmed")
					return nil
				}
				// commission không còn nhận thanh toán (vd đã REJECTED): retry không giúp gì
				log.Error().
					Err(err).
					Str("commission_id", payment.CommissionID.String()).
					Str("payment_id", payment.ID.String()).
					Msg("Payment succeeded but commission cannot be marked PAID")
				return nil
			}
			return err
		}

		log.Info().
			Str("event_id", event.ID).
			Str("payment_id", payment.ID.String()).
			Bool("payment_changed", changed).
			Msg("Payment webhook processed")
		return nil

	case gateway.EventPaymentFailed:
		payment, err := s.payments.MarkFailed(ctx, event.PaymentID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return nil
			}
			return err
		}
		log.Info().
			Str("event_id", event.ID).
			Str("payment_id", payment.ID.String()).
			Str("status", string(payment.Status)).
			Msg("Payment failed")
		return nil
	}
	return nil
}

// seen: true nếu event đã được xử lý. Cache lỗi -> coi như chưa thấy,
// MarkSucceeded và ConfirmPayment vẫn idempotent ở tầng DB.
func (s *webhookService) seen(ctx context.Context, key string) bool {
	if s.cache == nil {
		return false
	}
	n, err := s.cache.Increment(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Webhook idempotency check failed")
		return false
	}
	if n > 1 {
		return true
	}
	if err := s.cache.Expire(ctx, key, webhookKeyTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to set webhook key TTL")
	}
	return false
}

func (s *webhookService) forget(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to clear webhook key")
	}
}
