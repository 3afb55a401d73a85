package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/domains/following/model"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/apperror"
)

type memFollowings struct {
	rows   map[uuid.UUID]*model.Following
	filter model.Filter
}

func (m *memFollowings) Create(_ context.Context, f *model.Following) (*model.Following, error) {
	for _, r := range m.rows {
		if r.FollowerID == f.FollowerID && r.FolloweeID == f.FolloweeID {
			return nil, model.ErrAlreadyFollowing
		}
	}
	f.ID = uuid.New()
	m.rows[f.ID] = f
	return f, nil
}

func (m *memFollowings) GetByID(_ context.Context, id uuid.UUID) (*model.Following, error) {
	f, ok := m.rows[id]
	if !ok {
		return nil, model.ErrFollowingNotFound(id.String())
	}
	return f, nil
}

func (m *memFollowings) List(_ context.Context, filter model.Filter) ([]*model.Following, error) {
	m.filter = filter
	var out []*model.Following
	for _, r := range m.rows {
		if filter.FollowerID != nil && r.FollowerID != *filter.FollowerID {
			continue
		}
		if filter.FolloweeID != nil && r.FolloweeID != *filter.FolloweeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memFollowings) Delete(_ context.Context, id uuid.UUID) (*model.Following, error) {
	f, ok := m.rows[id]
	if !ok {
		return nil, model.ErrFollowingNotFound(id.String())
	}
	delete(m.rows, id)
	return f, nil
}

type users map[uuid.UUID]bool

func (u users) GetByID(_ context.Context, id uuid.UUID) (*usermodel.User, error) {
	if !u[id] {
		return nil, usermodel.ErrUserNotFound(id.String())
	}
	return &usermodel.User{ID: id}, nil
}

func TestFollowingService_Create(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	repo := &memFollowings{rows: map[uuid.UUID]*model.Following{}}
	svc := NewFollowingService(repo, users{a: true, b: true})

	f, err := svc.Create(ctx, model.CreateFollowingRequest{FollowerID: a.String(), FolloweeID: b.String()})
	require.NoError(t, err)
	assert.Equal(t, a, f.FollowerID)
	assert.Equal(t, b, f.FolloweeID)

	_, err = svc.Create(ctx, model.CreateFollowingRequest{FollowerID: a.String(), FolloweeID: b.String()})
	assert.True(t, apperror.IsConflict(err))

	// chiều ngược lại là một following khác
	_, err = svc.Create(ctx, model.CreateFollowingRequest{FollowerID: b.String(), FolloweeID: a.String()})
	assert.NoError(t, err)
}

func TestFollowingService_CreateRejects(t *testing.T) {
	ctx := context.Background()
	a := uuid.New()
	svc := NewFollowingService(&memFollowings{rows: map[uuid.UUID]*model.Following{}}, users{a: true})

	tests := []struct {
		name  string
		req   model.CreateFollowingRequest
		check func(error) bool
	}{
		{"self follow", model.CreateFollowingRequest{FollowerID: a.String(), FolloweeID: a.String()}, apperror.IsInvalidArgument},
		{"malformed id", model.CreateFollowingRequest{FollowerID: "nope", FolloweeID: a.String()}, apperror.IsInvalidArgument},
		{"missing followee", model.CreateFollowingRequest{FollowerID: a.String(), FolloweeID: uuid.NewString()}, apperror.IsNotFound},
		{"missing follower", model.CreateFollowingRequest{FollowerID: uuid.NewString(), FolloweeID: a.String()}, apperror.IsNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.True(t, tt.check(err), "got %v", err)
		})
	}
}

func TestFollowingService_ReadAll(t *testing.T) {
	ctx := context.Background()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	repo := &memFollowings{rows: map[uuid.UUID]*model.Following{}}
	svc := NewFollowingService(repo, users{a: true, b: true, c: true})

	for _, pair := range [][2]uuid.UUID{{a, b}, {c, b}, {b, a}} {
		_, err := svc.Create(ctx, model.CreateFollowingRequest{FollowerID: pair[0].String(), FolloweeID: pair[1].String()})
		require.NoError(t, err)
	}

	followee := b.String()
	got, err := svc.ReadAll(ctx, model.ListFollowingsRequest{FolloweeID: &followee, Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 10, repo.filter.Offset)

	bad := "x"
	_, err = svc.ReadAll(ctx, model.ListFollowingsRequest{FollowerID: &bad})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestFollowingService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewFollowingService(&memFollowings{rows: map[uuid.UUID]*model.Following{}}, users{})

	_, err := svc.Delete(ctx, uuid.NewString())
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Delete(ctx, "")
	assert.True(t, apperror.IsInvalidArgument(err))
}
