package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/domains/commission/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
	"artisthub-backend/internal/shared/validation"
)

// Lỗi được đẩy vào c.Error, middleware.ErrorHandler dịch ra response
type CommissionHandler struct {
	service service.CommissionService
}

func NewCommissionHandler(svc service.CommissionService) *CommissionHandler {
	return &CommissionHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/commissions
// ════════════════════════════════════════════════════════════════

func (h *CommissionHandler) Create(c *gin.Context) {
	callerID, ok := caller(c)
	if !ok {
		return
	}
	var req model.CreateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	// commissioner mặc định là người gọi, không được đặt hộ người khác
	if req.CommissionerID == "" {
		req.CommissionerID = callerID.String()
	}
	if err := validation.Check(req.Validate()); err != nil {
		c.Error(err)
		return
	}
	if commissionerID, _ := uuid.Parse(req.CommissionerID); commissionerID != callerID {
		c.Error(apperror.Forbidden("commissioner_id must be the authenticated user"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Commission requested", created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/commissions, GET /v1/commissions/:id
// ════════════════════════════════════════════════════════════════

func (h *CommissionHandler) List(c *gin.Context) {
	var req model.ListCommissionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}

	items, total, err := h.service.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 {
		limit = model.DefaultPageSize
	}
	response.SuccessWithMeta(c, http.StatusOK, "Get commissions successfully", model.ToResponses(items), &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

func (h *CommissionHandler) GetByID(c *gin.Context) {
	commission, err := h.service.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get commission successfully", commission.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/commissions/:id  (price, status)
// ════════════════════════════════════════════════════════════════

func (h *CommissionHandler) Update(c *gin.Context) {
	callerID, ok := caller(c)
	if !ok {
		return
	}
	var req model.UpdateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")

	if err := validation.Check(req.Validate()); err != nil {
		c.Error(err)
		return
	}
	if !h.requireParticipant(c, req.ID, callerID) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Commission updated", updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/commissions/:id
// ════════════════════════════════════════════════════════════════

func (h *CommissionHandler) Delete(c *gin.Context) {
	callerID, ok := caller(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if !h.requireParticipant(c, id, callerID) {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Commission deleted", deleted.ToResponse())
}

// requireParticipant: chỉ artist hoặc commissioner được sửa/xoá
func (h *CommissionHandler) requireParticipant(c *gin.Context, id string, callerID uuid.UUID) bool {
	current, err := h.service.Read(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return false
	}
	if current.ActorOf(callerID) == "" {
		c.Error(model.ErrNotParticipant())
		return false
	}
	return true
}

// ════════════════════════════════════════════════════════════════
// LIFECYCLE: POST /v1/commissions/:id/{price,accept,deny,complete,checkout}
// ════════════════════════════════════════════════════════════════

func (h *CommissionHandler) SetPrice(c *gin.Context) {
	callerID, ok := caller(c)
	if !ok {
		return
	}
	var req model.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	updated, err := h.service.SetPrice(c.Request.Context(), c.Param("id"), callerID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Commission price set", updated.ToResponse())
}

func (h *CommissionHandler) Accept(c *gin.Context) {
	h.runAction(c, h.service.Accept, "Commission accepted")
}

func (h *CommissionHandler) Deny(c *gin.Context) {
	h.runAction(c, h.service.Deny, "Commission rejected")
}

func (h *CommissionHandler) Complete(c *gin.Context) {
	h.runAction(c, h.service.Complete, "Commission completed")
}

func (h *CommissionHandler) Checkout(c *gin.Context) {
	callerID, ok := caller(c)
	if !ok {
		return
	}
	link, err := h.service.Checkout(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Payment link created", link)
}

// Transitions: GET /v1/commissions/:id/transitions
func (h *CommissionHandler) Transitions(c *gin.Context) {
	callerID, ok := caller(c)
	if !ok {
		return
	}
	transitions, err := h.service.AvailableTransitions(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get available transitions successfully", transitions)
}

type actionFunc func(ctx context.Context, id string, callerID uuid.UUID) (*model.Commission, error)

func (h *CommissionHandler) runAction(c *gin.Context, fn actionFunc, message string) {
	callerID, ok := caller(c)
	if !ok {
		return
	}
	updated, err := fn(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, message, updated.ToResponse())
}

func caller(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("authentication required"))
		return uuid.Nil, false
	}
	return userID, true
}
