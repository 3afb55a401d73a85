package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisthub-backend/internal/domains/portfolio/model"
	"artisthub-backend/internal/domains/portfolio/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
)

type PortfolioHandler struct {
	portfolios service.PortfolioService
	items      service.ItemService
}

func NewPortfolioHandler(portfolios service.PortfolioService, items service.ItemService) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios, items: items}
}

// ════════════════════════════════════════════════════════════════
// PORTFOLIOS
// ════════════════════════════════════════════════════════════════

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req model.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	userID, ok := middleware.ActingAs(c, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	p, err := h.portfolios.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Portfolio created", p)
}

func (h *PortfolioHandler) List(c *gin.Context) {
	var req model.ListPortfoliosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}
	list, err := h.portfolios.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get portfolios successfully", list)
}

func (h *PortfolioHandler) GetByID(c *gin.Context) {
	p, err := h.portfolios.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get portfolio successfully", p)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	var req model.UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")
	if !middleware.Validated(c, req.Validate()) {
		return
	}
	if !h.requirePortfolioOwner(c, req.ID) {
		return
	}

	p, err := h.portfolios.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio updated", p)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	if !h.requirePortfolioOwner(c, c.Param("id")) {
		return
	}
	p, err := h.portfolios.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio deleted", p)
}

// ════════════════════════════════════════════════════════════════
// ITEMS: /portfolios/:id/items, /portfolio-items/:id
// ════════════════════════════════════════════════════════════════

func (h *PortfolioHandler) CreateItem(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.PortfolioID = c.Param("id")
	if !middleware.Validated(c, req.Validate()) {
		return
	}
	if !h.requirePortfolioOwner(c, req.PortfolioID) {
		return
	}

	it, err := h.items.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Portfolio item created", it)
}

func (h *PortfolioHandler) ListItems(c *gin.Context) {
	items, err := h.items.ReadAll(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get portfolio items successfully", items)
}

func (h *PortfolioHandler) GetItem(c *gin.Context) {
	it, err := h.items.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get portfolio item successfully", it)
}

func (h *PortfolioHandler) UpdateItem(c *gin.Context) {
	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")
	if !middleware.Validated(c, req.Validate()) {
		return
	}
	if !h.requireItemOwner(c, req.ID) {
		return
	}

	it, err := h.items.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio item updated", it)
}

func (h *PortfolioHandler) DeleteItem(c *gin.Context) {
	if !h.requireItemOwner(c, c.Param("id")) {
		return
	}
	it, err := h.items.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio item deleted", it)
}

// ════════════════════════════════════════════════════════════════
// OWNERSHIP: chỉ chủ portfolio được sửa portfolio và item
// ════════════════════════════════════════════════════════════════

func (h *PortfolioHandler) requirePortfolioOwner(c *gin.Context, id string) bool {
	p, err := h.portfolios.Read(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return false
	}
	return middleware.RequireOwner(c, p.UserID)
}

func (h *PortfolioHandler) requireItemOwner(c *gin.Context, id string) bool {
	it, err := h.items.Read(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return false
	}
	return h.requirePortfolioOwner(c, it.PortfolioID.String())
}
