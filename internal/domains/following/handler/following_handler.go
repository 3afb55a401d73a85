package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisthub-backend/internal/domains/following/model"
	"artisthub-backend/internal/domains/following/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
)

type FollowingHandler struct {
	service service.FollowingService
}

func NewFollowingHandler(svc service.FollowingService) *FollowingHandler {
	return &FollowingHandler{service: svc}
}

// Create: follower mặc định là user đang đăng nhập, không follow hộ người khác
func (h *FollowingHandler) Create(c *gin.Context) {
	var req model.CreateFollowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	followerID, ok := middleware.ActingAs(c, req.FollowerID)
	if !ok {
		return
	}
	req.FollowerID = followerID

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Followed", f)
}

func (h *FollowingHandler) List(c *gin.Context) {
	var req model.ListFollowingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}
	rows, err := h.service.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get followings successfully", rows)
}

func (h *FollowingHandler) GetByID(c *gin.Context) {
	f, err := h.service.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get following successfully", f)
}

// Delete: chỉ follower được unfollow
func (h *FollowingHandler) Delete(c *gin.Context) {
	current, err := h.service.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if !middleware.RequireOwner(c, current.FollowerID) {
		return
	}

	f, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unfollowed", f)
}
