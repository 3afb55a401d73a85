package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/shared"
)

type recordingEmailService struct {
	sent []EmailRequest
	fail map[string]error
}

func (r *recordingEmailService) SendEmail(ctx context.Context, req EmailRequest) error {
	if err := r.fail[req.To[0]]; err != nil {
		return err
	}
	r.sent = append(r.sent, req)
	return nil
}

func samplePayload(kind shared.NotificationKind, recipients ...shared.Party) shared.CommissionNotificationPayload {
	return shared.CommissionNotificationPayload{
		Kind:         kind,
		CommissionID: "9b2f0c3e-1111-4a4a-8c8c-123456789abc",
		Title:        "Dragon",
		Price:        "50.00",
		Artist:       shared.UserBasicInfo{ID: "a", Email: "artist@example.com", FullName: "Ana Artist"},
		Commissioner: shared.UserBasicInfo{ID: "c", Email: "client@example.com", FullName: "Carl Client"},
		Recipients:   recipients,
	}
}

func TestRenderCommissionEmail_AllKinds(t *testing.T) {
	kinds := []shared.NotificationKind{
		shared.NotifyRequested, shared.NotifyPriceSet, shared.NotifyAccepted,
		shared.NotifyDenied, shared.NotifyPaid, shared.NotifyCompleted,
	}
	for _, k := range kinds {
		p := samplePayload(k, shared.PartyArtist)
		subject, body, err := RenderCommissionEmail(p, p.Artist, "https://app.example")
		require.NoError(t, err, k)
		assert.Contains(t, subject, "Dragon")
		assert.Contains(t, body, "Hi Ana Artist")
		assert.Contains(t, body, "https://app.example/commissions/"+p.CommissionID)
	}

	_, _, err := RenderCommissionEmail(samplePayload("unknown"), shared.UserBasicInfo{}, "")
	assert.Error(t, err)
}

func TestRenderCommissionEmail_EscapesUserInput(t *testing.T) {
	p := samplePayload(shared.NotifyRequested, shared.PartyArtist)
	p.Title = "<script>alert(1)</script>"

	_, body, err := RenderCommissionEmail(p, p.Artist, "")
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestCommissionMailer_DeliversToEachRecipient(t *testing.T) {
	svc := &recordingEmailService{}
	m := NewCommissionMailer(svc, "https://app.example")

	err := m.Deliver(context.Background(), samplePayload(shared.NotifyPaid, shared.PartyArtist, shared.PartyCommissioner))
	require.NoError(t, err)

	require.Len(t, svc.sent, 2)
	assert.Equal(t, []string{"artist@example.com"}, svc.sent[0].To)
	assert.Equal(t, []string{"client@example.com"}, svc.sent[1].To)
	assert.True(t, svc.sent[0].IsHTML)
}

func TestCommissionMailer_ContinuesAfterFailure(t *testing.T) {
	svc := &recordingEmailService{fail: map[string]error{"artist@example.com": errors.New("mailbox full")}}
	m := NewCommissionMailer(svc, "")

	err := m.Deliver(context.Background(), samplePayload(shared.NotifyPaid, shared.PartyArtist, shared.PartyCommissioner))
	assert.ErrorContains(t, err, "mailbox full")
	require.Len(t, svc.sent, 1)
	assert.Equal(t, []string{"client@example.com"}, svc.sent[0].To)
}

func TestCommissionMailer_NoRecipients(t *testing.T) {
	m := NewCommissionMailer(&recordingEmailService{}, "")
	assert.Error(t, m.Deliver(context.Background(), samplePayload(shared.NotifyPaid)))
}

func TestSMTPEmailService_BuildsMessage(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	svc := NewSMTPEmailService(SMTPConfig{Host: "localhost", Port: 1025, From: "noreply@artisthub.local"}).(*smtpEmailService)
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := svc.SendEmail(context.Background(), EmailRequest{To: []string{"x@example.com"}, Subject: "Hello", Body: "<p>hi</p>", IsHTML: true})
	require.NoError(t, err)

	assert.Equal(t, "localhost:1025", gotAddr)
	assert.Equal(t, "noreply@artisthub.local", gotFrom)
	assert.Equal(t, []string{"x@example.com"}, gotTo)
	msg := string(gotMsg)
	assert.True(t, strings.HasPrefix(msg, "From: noreply@artisthub.local\r\n"))
	assert.Contains(t, msg, "Subject: Hello\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>hi</p>")

	assert.Error(t, svc.SendEmail(context.Background(), EmailRequest{}))
}
