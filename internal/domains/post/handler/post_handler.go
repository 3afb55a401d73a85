package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artisthub-backend/internal/domains/post/model"
	"artisthub-backend/internal/domains/post/service"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/internal/shared/response"
)

type PostHandler struct {
	posts    service.PostService
	comments service.CommentService
	likes    service.LikeService
}

func NewPostHandler(posts service.PostService, comments service.CommentService, likes service.LikeService) *PostHandler {
	return &PostHandler{posts: posts, comments: comments, likes: likes}
}

// ════════════════════════════════════════════════════════════════
// POSTS
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	authorID, ok := middleware.ActingAs(c, req.AuthorID)
	if !ok {
		return
	}
	req.AuthorID = authorID

	p, err := h.posts.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Post created", p)
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	var req model.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.InvalidArgument("invalid query: %s", err.Error()))
		return
	}
	posts, err := h.posts.ReadAll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get posts successfully", posts)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	p, err := h.posts.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get post successfully", p)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")
	if !middleware.Validated(c, req.Validate()) {
		return
	}
	current, err := h.posts.Read(c.Request.Context(), req.ID)
	if err != nil {
		c.Error(err)
		return
	}
	if !middleware.RequireOwner(c, current.AuthorID) {
		return
	}

	p, err := h.posts.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Post updated", p)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	current, err := h.posts.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if !middleware.RequireOwner(c, current.AuthorID) {
		return
	}

	p, err := h.posts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Post deleted", p)
}

// ════════════════════════════════════════════════════════════════
// COMMENTS: /posts/:id/comments, /comments/:id
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) CreateComment(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.PostID = c.Param("id")
	authorID, ok := middleware.ActingAs(c, req.AuthorID)
	if !ok {
		return
	}
	req.AuthorID = authorID

	comment, err := h.comments.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Comment created", comment)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	comments, err := h.comments.ReadAll(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get comments successfully", comments)
}

func (h *PostHandler) GetComment(c *gin.Context) {
	comment, err := h.comments.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get comment successfully", comment)
}

func (h *PostHandler) UpdateComment(c *gin.Context) {
	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	req.ID = c.Param("id")
	if !middleware.Validated(c, req.Validate()) {
		return
	}
	current, err := h.comments.Read(c.Request.Context(), req.ID)
	if err != nil {
		c.Error(err)
		return
	}
	if !middleware.RequireOwner(c, current.AuthorID) {
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comment updated", comment)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	current, err := h.comments.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if !middleware.RequireOwner(c, current.AuthorID) {
		return
	}

	comment, err := h.comments.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comment deleted", comment)
}

// ════════════════════════════════════════════════════════════════
// LIKES: /posts/:id/likes, /likes/:id
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Like(c *gin.Context) {
	userID, ok := middleware.ActingAs(c, "")
	if !ok {
		return
	}
	req := model.LikeRequest{
		PostID: c.Param("id"),
		UserID: userID,
	}
	like, err := h.likes.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Post liked", like)
}

func (h *PostHandler) ListLikes(c *gin.Context) {
	likes, err := h.likes.ReadAll(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get likes successfully", likes)
}

func (h *PostHandler) GetLike(c *gin.Context) {
	like, err := h.likes.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Get like successfully", like)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	current, err := h.likes.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if !middleware.RequireOwner(c, current.UserID) {
		return
	}

	like, err := h.likes.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Like removed", like)
}
