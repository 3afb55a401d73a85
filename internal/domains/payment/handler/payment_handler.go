package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/payment/model"
	"artisthub-backend/internal/domains/payment/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
)

const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	payments service.PaymentService
	webhooks service.WebhookService
}

func NewPaymentHandler(payments service.PaymentService, webhooks service.WebhookService) *PaymentHandler {
	return &PaymentHandler{payments: payments, webhooks: webhooks}
}

// CreateAccount: POST /payments/accounts
func (h *PaymentHandler) CreateAccount(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("authentication required"))
		return
	}

	account, err := h.payments.Onboard(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Payment account ready", account)
}

// ListByCommission: GET /commissions/:id/payments
func (h *PaymentHandler) ListByCommission(c *gin.Context) {
	payments, err := h.payments.ReadAllByCommission(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get payments successfully", model.ToResponses(payments))
}

// Webhook: POST /webhooks/payments
// Body phải giữ nguyên bytes để verify chữ ký
func (h *PaymentHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.InvalidArgument("unreadable webhook body"))
		return
	}

	if err := h.webhooks.Handle(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		if apperror.StatusOf(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("Webhook processing failed")
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
