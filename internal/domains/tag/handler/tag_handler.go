package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisthub-backend/internal/domains/tag/model"
	"artisthub-backend/internal/domains/tag/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/response"
)

type TagHandler struct {
	service service.TagService
}

func NewTagHandler(svc service.TagService) *TagHandler {
	return &TagHandler{service: svc}
}

func (h *TagHandler) Create(c *gin.Context) {
	var req model.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	tag, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Tag created", tag)
}

func (h *TagHandler) List(c *gin.Context) {
	var req model.ListTagsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}
	tags, err := h.service.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get tags successfully", tags)
}

func (h *TagHandler) GetByID(c *gin.Context) {
	tag, err := h.service.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get tag successfully", tag)
}

func (h *TagHandler) Delete(c *gin.Context) {
	tag, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Tag deleted", tag)
}
