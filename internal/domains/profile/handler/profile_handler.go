package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisthub-backend/internal/domains/profile/model"
	"artisthub-backend/internal/domains/profile/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// POST /v1/profiles: user_id mặc định là người gọi
func (h *ProfileHandler) Create(c *gin.Context) {
	var req model.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	userID, ok := middleware.ActingAs(c, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile created", p)
}

// GET /v1/profiles?tag=
func (h *ProfileHandler) List(c *gin.Context) {
	var req model.ListProfilesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}
	profiles, err := h.service.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get profiles successfully", profiles)
}

func (h *ProfileHandler) GetByID(c *gin.Context) {
	p, err := h.service.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get profile successfully", p)
}

// GET /v1/users/:id/profile
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	p, err := h.service.ReadByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get profile successfully", p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")
	if !middleware.Validated(c, req.Validate()) {
		return
	}
	if !h.requireOwner(c, req.ID) {
		return
	}

	p, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", p)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	if !h.requireOwner(c, c.Param("id")) {
		return
	}
	p, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile deleted", p)
}

func (h *ProfileHandler) requireOwner(c *gin.Context, id string) bool {
	current, err := h.service.Read(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return false
	}
	return middleware.RequireOwner(c, current.UserID)
}
