package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/shared"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier đẩy commission notification vào queue "notification";
// cmd/worker render và gửi email.
type AsynqNotifier struct {
	client   Enqueuer
	maxRetry int
}

func NewAsynqNotifier(client Enqueuer) *AsynqNotifier {
	return &AsynqNotifier{client: client, maxRetry: 3}
}

// Notify enqueue một task cho mỗi recipient, retry của một người không gửi lại cho người kia
func (n *AsynqNotifier) Notify(ctx context.Context, p shared.CommissionNotificationPayload) error {
	taskType := p.Kind.TaskType()
	if taskType == "" {
		return fmt.Errorf("unknown notification kind %q", p.Kind)
	}
	if len(p.Recipients) == 0 {
		return fmt.Errorf("notification %s for commission %s has no recipients", p.Kind, p.CommissionID)
	}

	var errs []error
	for _, party := range p.Recipients {
		single := p
		single.Recipients = []shared.Party{party}
		if err := n.enqueue(ctx, taskType, single); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, taskType string, p shared.CommissionNotificationPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	task := asynq.NewTask(taskType, payload)
	info, err := n.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueNotification),
		asynq.MaxRetry(n.maxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s for %s: %w", taskType, p.Recipients[0], err)
	}

	log.Debug().
		Str("task_id", info.ID).
		Str("task_type", taskType).
		Str("commission_id", p.CommissionID).
		Str("recipient", string(p.Recipients[0])).
		Msg("Notification enqueued")
	return nil
}
