package main

import (
	"github.com/hibiken/asynq"

	"artisthub-backend/internal/config"
	"artisthub-backend/internal/infrastructure/email"
	emailjob "artisthub-backend/internal/infrastructure/email/job"
	"artisthub-backend/internal/shared"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	commissionEmail *emailjob.CommissionEmailHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(cfg *config.Config) *HandlerRegistry {
	emailSvc := email.NewSMTPEmailService(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	mailer := email.NewCommissionMailer(emailSvc, cfg.App.PublicURL)

	return &HandlerRegistry{
		commissionEmail: emailjob.NewCommissionEmailHandler(mailer),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Commission lifecycle emails: một handler cho mọi kind
	for _, taskType := range []string{
		shared.TypeCommissionRequested,
		shared.TypeCommissionPriceSet,
		shared.TypeCommissionAccepted,
		shared.TypeCommissionDenied,
		shared.TypeCommissionPaid,
		shared.TypeCommissionCompleted,
	} {
		mux.HandleFunc(taskType, h.commissionEmail.ProcessTask)
	}
}
