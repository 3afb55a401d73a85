package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/domains/following/model"
	"artisthub-backend/internal/shared/middleware"
)

type stubFollowings struct {
	byID    map[string]*model.Following
	created []model.CreateFollowingRequest
	deleted []string
}

func (s *stubFollowings) Create(_ context.Context, req model.CreateFollowingRequest) (*model.Following, error) {
	s.created = append(s.created, req)
	return &model.Following{ID: uuid.New()}, nil
}

func (s *stubFollowings) Read(_ context.Context, id string) (*model.Following, error) {
	if f, ok := s.byID[id]; ok {
		return f, nil
	}
	return nil, model.ErrFollowingNotFound(id)
}

func (s *stubFollowings) ReadAll(context.Context, model.ListFollowingsRequest) ([]*model.Following, error) {
	return nil, nil
}

func (s *stubFollowings) Delete(_ context.Context, id string) (*model.Following, error) {
	s.deleted = append(s.deleted, id)
	return s.byID[id], nil
}

func newRouter(svc *stubFollowings, callerID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	if callerID != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextKeyUserID, *callerID)
			c.Next()
		})
	}
	h := NewFollowingHandler(svc)
	r.POST("/followings", h.Create)
	r.DELETE("/followings/:id", h.Delete)
	return r
}

func send(r *gin.Engine, method, path, body string) int {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestCreate_FollowerIsCaller(t *testing.T) {
	svc := &stubFollowings{}
	me, other := uuid.New(), uuid.New()

	code := send(newRouter(svc, &me), http.MethodPost, "/followings", `{"followee_id":"`+other.String()+`"}`)
	assert.Equal(t, http.StatusCreated, code)
	require.Len(t, svc.created, 1)
	assert.Equal(t, me.String(), svc.created[0].FollowerID)

	code = send(newRouter(svc, &me), http.MethodPost, "/followings",
		`{"follower_id":"`+uuid.NewString()+`","followee_id":"`+other.String()+`"}`)
	assert.Equal(t, http.StatusForbidden, code)

	code = send(newRouter(svc, nil), http.MethodPost, "/followings", `{"followee_id":"`+other.String()+`"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Len(t, svc.created, 1)
}

func TestDelete_OnlyFollower(t *testing.T) {
	follower := uuid.New()
	f := &model.Following{ID: uuid.New(), FollowerID: follower, FolloweeID: uuid.New()}
	svc := &stubFollowings{byID: map[string]*model.Following{f.ID.String(): f}}

	// followee cũng không được xoá hộ
	code := send(newRouter(svc, &f.FolloweeID), http.MethodDelete, "/followings/"+f.ID.String(), "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Empty(t, svc.deleted)

	code = send(newRouter(svc, &follower), http.MethodDelete, "/followings/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, code)

	code = send(newRouter(svc, &follower), http.MethodDelete, "/followings/"+f.ID.String(), "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{f.ID.String()}, svc.deleted)
}
