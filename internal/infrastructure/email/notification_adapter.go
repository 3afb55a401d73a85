package email

import (
	"context"
	"errors"
	"fmt"

	"artisthub-backend/internal/shared"
)

// ================================================
// COMMISSION MAILER
// Render + gửi một email cho mỗi recipient của notification
// ================================================

type CommissionMailer struct {
	emailService EmailService
	publicURL    string
}

func NewCommissionMailer(emailService EmailService, publicURL string) *CommissionMailer {
	return &CommissionMailer{emailService: emailService, publicURL: publicURL}
}

// Deliver gửi hết cho mọi recipient rồi mới trả lỗi gộp
func (m *CommissionMailer) Deliver(ctx context.Context, p shared.CommissionNotificationPayload) error {
	recipients := p.RecipientInfos()
	if len(recipients) == 0 {
		return fmt.Errorf("notification %s for commission %s has no recipients", p.Kind, p.CommissionID)
	}

	var errs []error
	for _, r := range recipients {
		subject, body, err := RenderCommissionEmail(p, r, m.publicURL)
		if err != nil {
			return err
		}

		req := EmailRequest{To: []string{r.Email}, Subject: subject, Body: body, IsHTML: true}
		if err := m.emailService.SendEmail(ctx, req); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", r.Email, err))
		}
	}
	return errors.Join(errs...)
}

// SyncNotifier gửi email ngay trong request (NOTIFY_MODE=sync)
type SyncNotifier struct {
	mailer *CommissionMailer
}

func NewSyncNotifier(mailer *CommissionMailer) *SyncNotifier {
	return &SyncNotifier{mailer: mailer}
}

func (n *SyncNotifier) Notify(ctx context.Context, p shared.CommissionNotificationPayload) error {
	return n.mailer.Deliver(ctx, p)
}
