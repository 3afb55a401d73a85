package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/domains/post/model"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/middleware"
)

// ========================================
// STUBS
// ========================================

type stubPosts struct {
	byID    map[string]*model.Post
	created []model.CreatePostRequest
	updated []model.UpdatePostRequest
	deleted []string
}

func (s *stubPosts) Create(_ context.Context, req model.CreatePostRequest) (*model.Post, error) {
	s.created = append(s.created, req)
	return &model.Post{ID: uuid.New(), AuthorID: uuid.MustParse(req.AuthorID), Title: req.Title}, nil
}

func (s *stubPosts) Read(_ context.Context, id string) (*model.Post, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, model.ErrPostNotFound(id)
}

func (s *stubPosts) ReadAll(context.Context, model.ListPostsRequest) ([]*model.Post, error) {
	return nil, nil
}

func (s *stubPosts) Update(_ context.Context, req model.UpdatePostRequest) (*model.Post, error) {
	s.updated = append(s.updated, req)
	return s.byID[req.ID], nil
}

func (s *stubPosts) Delete(_ context.Context, id string) (*model.Post, error) {
	s.deleted = append(s.deleted, id)
	return s.byID[id], nil
}

type stubComments struct {
	byID    map[string]*model.Comment
	deleted []string
}

func (s *stubComments) Create(_ context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	return &model.Comment{ID: uuid.New()}, nil
}

func (s *stubComments) Read(_ context.Context, id string) (*model.Comment, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, apperror.NotFound("comment %s not found", id)
}

func (s *stubComments) ReadAll(context.Context, string, int, int) ([]*model.Comment, error) {
	return nil, nil
}

func (s *stubComments) Update(_ context.Context, req model.UpdateCommentRequest) (*model.Comment, error) {
	return s.byID[req.ID], nil
}

func (s *stubComments) Delete(_ context.Context, id string) (*model.Comment, error) {
	s.deleted = append(s.deleted, id)
	return s.byID[id], nil
}

type stubLikes struct {
	byID    map[string]*model.PostLike
	created []model.LikeRequest
	deleted []string
}

func (s *stubLikes) Create(_ context.Context, req model.LikeRequest) (*model.PostLike, error) {
	s.created = append(s.created, req)
	return &model.PostLike{ID: uuid.New()}, nil
}

func (s *stubLikes) Read(_ context.Context, id string) (*model.PostLike, error) {
	if l, ok := s.byID[id]; ok {
		return l, nil
	}
	return nil, apperror.NotFound("like %s not found", id)
}

func (s *stubLikes) ReadAll(context.Context, string) ([]*model.PostLike, error) {
	return nil, nil
}

func (s *stubLikes) Delete(_ context.Context, id string) (*model.PostLike, error) {
	s.deleted = append(s.deleted, id)
	return s.byID[id], nil
}

// ========================================
// HELPERS
// ========================================

type fixture struct {
	posts    *stubPosts
	comments *stubComments
	likes    *stubLikes
	author   uuid.UUID
	post     *model.Post
	comment  *model.Comment
	like     *model.PostLike
}

func newFixture() *fixture {
	author := uuid.New()
	post := &model.Post{ID: uuid.New(), AuthorID: author, Title: "Sketch"}
	comment := &model.Comment{ID: uuid.New(), PostID: post.ID, AuthorID: author, Body: "nice"}
	like := &model.PostLike{ID: uuid.New(), PostID: post.ID, UserID: author}
	return &fixture{
		posts:    &stubPosts{byID: map[string]*model.Post{post.ID.String(): post}},
		comments: &stubComments{byID: map[string]*model.Comment{comment.ID.String(): comment}},
		likes:    &stubLikes{byID: map[string]*model.PostLike{like.ID.String(): like}},
		author:   author,
		post:     post,
		comment:  comment,
		like:     like,
	}
}

func (f *fixture) router(callerID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	if callerID != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextKeyUserID, *callerID)
			c.Next()
		})
	}

	h := NewPostHandler(f.posts, f.comments, f.likes)
	r.POST("/posts", h.CreatePost)
	r.PUT("/posts/:id", h.UpdatePost)
	r.DELETE("/posts/:id", h.DeletePost)
	r.POST("/posts/:id/likes", h.Like)
	r.PUT("/comments/:id", h.UpdateComment)
	r.DELETE("/comments/:id", h.DeleteComment)
	r.DELETE("/likes/:id", h.Unlike)
	return r
}

func send(t *testing.T, r *gin.Engine, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env.Code
}

// ========================================
// TESTS
// ========================================

func TestCreatePost_AuthorIsCaller(t *testing.T) {
	f := newFixture()

	status, _ := send(t, f.router(&f.author), http.MethodPost, "/posts", `{"title":"Sketch","body":"wip"}`)
	assert.Equal(t, http.StatusCreated, status)
	require.Len(t, f.posts.created, 1)
	assert.Equal(t, f.author.String(), f.posts.created[0].AuthorID)

	status, code := send(t, f.router(&f.author), http.MethodPost, "/posts",
		`{"author_id":"`+uuid.NewString()+`","title":"Sketch","body":"wip"}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, apperror.CodeForbidden, code)

	status, _ = send(t, f.router(nil), http.MethodPost, "/posts", `{"title":"Sketch","body":"wip"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Len(t, f.posts.created, 1)
}

func TestPostMutations_OwnerOnly(t *testing.T) {
	f := newFixture()
	stranger := uuid.New()
	r := f.router(&stranger)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"update post", http.MethodPut, "/posts/" + f.post.ID.String(), `{"title":"mine now"}`},
		{"delete post", http.MethodDelete, "/posts/" + f.post.ID.String(), ""},
		{"update comment", http.MethodPut, "/comments/" + f.comment.ID.String(), `{"body":"edited"}`},
		{"delete comment", http.MethodDelete, "/comments/" + f.comment.ID.String(), ""},
		{"unlike", http.MethodDelete, "/likes/" + f.like.ID.String(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := send(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusForbidden, status)
			assert.Equal(t, apperror.CodeForbidden, code)
		})
	}

	assert.Empty(t, f.posts.updated)
	assert.Empty(t, f.posts.deleted)
	assert.Empty(t, f.comments.deleted)
	assert.Empty(t, f.likes.deleted)
}

func TestPostMutations_OwnerAllowed(t *testing.T) {
	f := newFixture()
	r := f.router(&f.author)

	status, _ := send(t, r, http.MethodPut, "/posts/"+f.post.ID.String(), `{"title":"Final"}`)
	assert.Equal(t, http.StatusOK, status)
	status, _ = send(t, r, http.MethodDelete, "/comments/"+f.comment.ID.String(), "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = send(t, r, http.MethodDelete, "/likes/"+f.like.ID.String(), "")
	assert.Equal(t, http.StatusOK, status)

	assert.Len(t, f.posts.updated, 1)
	assert.Equal(t, []string{f.comment.ID.String()}, f.comments.deleted)
	assert.Equal(t, []string{f.like.ID.String()}, f.likes.deleted)
}

func TestUpdatePost_ShapeBeforeExistence(t *testing.T) {
	f := newFixture()

	status, code := send(t, f.router(&f.author), http.MethodPut, "/posts/"+uuid.NewString(), `{"title":"   "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperror.CodeInvalidArgument, code)

	status, code = send(t, f.router(&f.author), http.MethodPut, "/posts/"+uuid.NewString(), `{"title":"ok"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, apperror.CodeNotFound, code)
}

func TestLike_UsesCaller(t *testing.T) {
	f := newFixture()
	liker := uuid.New()

	status, _ := send(t, f.router(&liker), http.MethodPost, "/posts/"+f.post.ID.String()+"/likes", "")
	assert.Equal(t, http.StatusCreated, status)
	require.Len(t, f.likes.created, 1)
	assert.Equal(t, liker.String(), f.likes.created[0].UserID)
}
