package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/infrastructure/email"
	"artisthub-backend/internal/shared"
)

// ============================================
// Commission Notification Handler
// ============================================

// Deliverer is implemented by email.CommissionMailer.
type Deliverer interface {
	Deliver(ctx context.Context, p shared.CommissionNotificationPayload) error
}

var _ Deliverer = (*email.CommissionMailer)(nil)

// CommissionEmailHandler xử lý mọi task email:commission_*
type CommissionEmailHandler struct {
	mailer Deliverer
}

func NewCommissionEmailHandler(mailer Deliverer) *CommissionEmailHandler {
	return &CommissionEmailHandler{mailer: mailer}
}

func (h *CommissionEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.CommissionNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Str("task_type", task.Type()).Msg("Failed to unmarshal commission notification payload")
		// Sai format payload, retry cũng vô ích
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if payload.Kind.TaskType() != task.Type() {
		return fmt.Errorf("payload kind %q does not match task %s: %w", payload.Kind, task.Type(), asynq.SkipRetry)
	}

	log.Info().
		Str("commission_id", payload.CommissionID).
		Str("kind", string(payload.Kind)).
		Msg("Processing commission notification")

	if err := h.mailer.Deliver(ctx, payload); err != nil {
		log.Error().Err(err).Str("commission_id", payload.CommissionID).Msg("Failed to send commission notification")
		return fmt.Errorf("deliver %s: %w", payload.Kind, err)
	}

	log.Info().
		Str("commission_id", payload.CommissionID).
		Str("kind", string(payload.Kind)).
		Msg("Commission notification sent")

	return nil
}
