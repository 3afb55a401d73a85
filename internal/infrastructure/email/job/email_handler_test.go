package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/shared"
)

type mockDeliverer struct {
	mock.Mock
}

func (m *mockDeliverer) Deliver(ctx context.Context, p shared.CommissionNotificationPayload) error {
	return m.Called(ctx, p).Error(0)
}

func TestCommissionEmailHandler_ProcessTask(t *testing.T) {
	p := shared.CommissionNotificationPayload{Kind: shared.NotifyCompleted, CommissionID: "c-1", Recipients: []shared.Party{shared.PartyCommissioner}}
	raw, err := json.Marshal(p)
	require.NoError(t, err)

	d := &mockDeliverer{}
	d.On("Deliver", mock.Anything, p).Return(nil).Once()

	h := NewCommissionEmailHandler(d)
	require.NoError(t, h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeCommissionCompleted, raw)))
	d.AssertExpectations(t)
}

func TestCommissionEmailHandler_BadPayloadSkipsRetry(t *testing.T) {
	h := NewCommissionEmailHandler(&mockDeliverer{})

	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeCommissionPaid, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	raw, _ := json.Marshal(shared.CommissionNotificationPayload{Kind: shared.NotifyDenied})
	err = h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeCommissionPaid, raw))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestCommissionEmailHandler_DeliveryFailureIsRetried(t *testing.T) {
	p := shared.CommissionNotificationPayload{Kind: shared.NotifyPaid, CommissionID: "c-2"}
	raw, _ := json.Marshal(p)

	d := &mockDeliverer{}
	d.On("Deliver", mock.Anything, mock.Anything).Return(errors.New("smtp timeout"))

	err := NewCommissionEmailHandler(d).ProcessTask(context.Background(), asynq.NewTask(shared.TypeCommissionPaid, raw))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}
