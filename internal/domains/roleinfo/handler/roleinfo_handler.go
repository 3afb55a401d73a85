package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisthub-backend/internal/domains/roleinfo/model"
	"artisthub-backend/internal/domains/roleinfo/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
)

type RoleInfoHandler struct {
	artists    service.ArtistInfoService
	recruiters service.RecruiterInfoService
}

func NewRoleInfoHandler(artists service.ArtistInfoService, recruiters service.RecruiterInfoService) *RoleInfoHandler {
	return &RoleInfoHandler{artists: artists, recruiters: recruiters}
}

// ════════════════════════════════════════════════════════════════
// ARTIST INFO: /artist-infos
// ════════════════════════════════════════════════════════════════

func (h *RoleInfoHandler) CreateArtistInfo(c *gin.Context) {
	var req model.CreateArtistInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	userID, ok := middleware.ActingAs(c, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	info, err := h.artists.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Artist info created", info)
}

func (h *RoleInfoHandler) ListArtistInfos(c *gin.Context) {
	var req model.ListArtistInfosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}
	list, err := h.artists.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get artist infos successfully", list)
}

func (h *RoleInfoHandler) GetArtistInfo(c *gin.Context) {
	info, err := h.artists.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get artist info successfully", info)
}

// GetArtistInfoByUser: GET /users/:id/artist-info
func (h *RoleInfoHandler) GetArtistInfoByUser(c *gin.Context) {
	info, err := h.artists.ReadByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get artist info successfully", info)
}

func (h *RoleInfoHandler) UpdateArtistInfo(c *gin.Context) {
	var req model.UpdateArtistInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")
	if !middleware.Validated(c, req.Validate()) {
		return
	}
	if !h.requireArtistOwner(c, req.ID) {
		return
	}

	info, err := h.artists.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Artist info updated", info)
}

func (h *RoleInfoHandler) DeleteArtistInfo(c *gin.Context) {
	if !h.requireArtistOwner(c, c.Param("id")) {
		return
	}
	info, err := h.artists.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Artist info deleted", info)
}

// ════════════════════════════════════════════════════════════════
// RECRUITER INFO: /recruiter-infos
// ════════════════════════════════════════════════════════════════

func (h *RoleInfoHandler) CreateRecruiterInfo(c *gin.Context) {
	var req model.CreateRecruiterInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	userID, ok := middleware.ActingAs(c, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	info, err := h.recruiters.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Recruiter info created", info)
}

func (h *RoleInfoHandler) ListRecruiterInfos(c *gin.Context) {
	var req model.ListRecruiterInfosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}
	list, err := h.recruiters.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get recruiter infos successfully", list)
}

func (h *RoleInfoHandler) GetRecruiterInfo(c *gin.Context) {
	info, err := h.recruiters.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get recruiter info successfully", info)
}

func (h *RoleInfoHandler) UpdateRecruiterInfo(c *gin.Context) {
	var req model.UpdateRecruiterInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")
	if !middleware.Validated(c, req.Validate()) {
		return
	}
	if !h.requireRecruiterOwner(c, req.ID) {
		return
	}

	info, err := h.recruiters.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter info updated", info)
}

func (h *RoleInfoHandler) DeleteRecruiterInfo(c *gin.Context) {
	if !h.requireRecruiterOwner(c, c.Param("id")) {
		return
	}
	info, err := h.recruiters.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter info deleted", info)
}

func (h *RoleInfoHandler) requireArtistOwner(c *gin.Context, id string) bool {
	info, err := h.artists.Read(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return false
	}
	return middleware.RequireOwner(c, info.UserID)
}

func (h *RoleInfoHandler) requireRecruiterOwner(c *gin.Context, id string) bool {
	info, err := h.recruiters.Read(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return false
	}
	return middleware.RequireOwner(c, info.UserID)
}
