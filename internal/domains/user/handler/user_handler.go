package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/domains/user/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// ========================================
// AUTH: POST /v1/auth/register, /v1/auth/login
// ========================================

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Register successfully", resp)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successfully", resp)
}

// GET /v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("authentication required"))
		return
	}
	u, err := h.service.Read(c.Request.Context(), userID.String())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get profile successfully", u.ToResponse())
}

// ========================================
// CRUD: /v1/users
// ========================================

func (h *UserHandler) List(c *gin.Context) {
	var req model.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}
	users, total, err := h.service.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "Get users successfully", model.ToResponses(users), &response.Meta{
		Page:  max(req.Page, 1),
		Limit: limitOrDefault(req.Limit),
		Total: total,
	})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.service.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get user successfully", u.ToResponse())
}

// Update: chỉ chính user đó được sửa
func (h *UserHandler) Update(c *gin.Context) {
	if !isSelf(c) {
		return
	}
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")

	u, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", u.ToResponse())
}

func (h *UserHandler) Delete(c *gin.Context) {
	if !isSelf(c) {
		return
	}
	u, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", u.ToResponse())
}

func isSelf(c *gin.Context) bool {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("authentication required"))
		return false
	}
	target, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// id sai format: để service trả InvalidArgument
		return true
	}
	if userID != target {
		c.Error(apperror.Forbidden("you can only modify your own account"))
		return false
	}
	return true
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return model.DefaultPageSize
	}
	return limit
}
