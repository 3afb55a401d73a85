package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"artisthub-backend/internal/domains/upload/model"
	"artisthub-backend/internal/domains/upload/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
)

type UploadHandler struct {
	service service.UploadService
	maxSize int64
}

func NewUploadHandler(svc service.UploadService, maxSize int64) *UploadHandler {
	return &UploadHandler{service: svc, maxSize: maxSize}
}

// UploadImage: POST /uploads/images (multipart, field "file")
func (h *UploadHandler) UploadImage(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("authentication required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(model.ErrFileRequired)
		return
	}
	if h.maxSize > 0 && fileHeader.Size > h.maxSize {
		c.Error(model.ErrInvalidImage("file too large"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal("cannot open upload", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.Error(apperror.Internal("cannot read upload", err))
		return
	}

	img, err := h.service.UploadImage(c.Request.Context(), userID, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Image uploaded", img)
}

// DeleteImage: DELETE /uploads/images/:id
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("authentication required"))
		return
	}
	if err := h.service.DeleteImage(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Image deleted", nil)
}
