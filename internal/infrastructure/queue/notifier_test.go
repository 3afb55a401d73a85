package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/shared"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func TestAsynqNotifier_EnqueuesOnNotificationQueue(t *testing.T) {
	fake := &fakeEnqueuer{}
	n := NewAsynqNotifier(fake)

	p := shared.CommissionNotificationPayload{
		Kind:         shared.NotifyPriceSet,
		CommissionID: "c-1",
		Title:        "Dragon",
		Price:        "50.00",
		Recipients:   []shared.Party{shared.PartyCommissioner},
	}
	require.NoError(t, n.Notify(context.Background(), p))

	require.Len(t, fake.tasks, 1)
	assert.Equal(t, shared.TypeCommissionPriceSet, fake.tasks[0].Type())

	var decoded shared.CommissionNotificationPayload
	require.NoError(t, json.Unmarshal(fake.tasks[0].Payload(), &decoded))
	assert.Equal(t, p, decoded)

	var queueName string
	var maxRetry int
	for _, o := range fake.opts[0] {
		switch o.Type() {
		case asynq.QueueOpt:
			queueName = o.Value().(string)
		case asynq.MaxRetryOpt:
			maxRetry = o.Value().(int)
		}
	}
	assert.Equal(t, shared.QueueNotification, queueName)
	assert.Equal(t, 3, maxRetry)
}

func TestAsynqNotifier_Errors(t *testing.T) {
	n := NewAsynqNotifier(&fakeEnqueuer{})
	err := n.Notify(context.Background(), shared.CommissionNotificationPayload{Kind: "bogus"})
	assert.ErrorContains(t, err, "unknown notification kind")

	err = n.Notify(context.Background(), shared.CommissionNotificationPayload{Kind: shared.NotifyPaid, CommissionID: "c-1"})
	assert.ErrorContains(t, err, "no recipients")

	n = NewAsynqNotifier(&fakeEnqueuer{err: errors.New("redis down")})
	err = n.Notify(context.Background(), shared.CommissionNotificationPayload{
		Kind:       shared.NotifyPaid,
		Recipients: []shared.Party{shared.PartyArtist},
	})
	assert.ErrorContains(t, err, "redis down")
}

func TestAsynqNotifier_OneTaskPerRecipient(t *testing.T) {
	fake := &fakeEnqueuer{}
	n := NewAsynqNotifier(fake)

	p := shared.CommissionNotificationPayload{
		Kind:         shared.NotifyPaid,
		CommissionID: "c-1",
		Title:        "Dragon",
		Recipients:   []shared.Party{shared.PartyArtist, shared.PartyCommissioner},
	}
	require.NoError(t, n.Notify(context.Background(), p))
	require.Len(t, fake.tasks, 2)

	var got []shared.Party
	for _, task := range fake.tasks {
		assert.Equal(t, shared.TypeCommissionPaid, task.Type())
		var decoded shared.CommissionNotificationPayload
		require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
		require.Len(t, decoded.Recipients, 1)
		got = append(got, decoded.Recipients[0])
	}
	assert.Equal(t, []shared.Party{shared.PartyArtist, shared.PartyCommissioner}, got)
	// payload gốc không bị sửa
	assert.Len(t, p.Recipients, 2)
}
