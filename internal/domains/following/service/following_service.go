package service

import (
	"context"

	"github.com/google/uuid"

	"artisthub-backend/internal/domains/following/model"
	"artisthub-backend/internal/domains/following/repository"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/validation"
)

// FollowingService: following không có update
type FollowingService interface {
	Create(ctx context.Context, req model.CreateFollowingRequest) (*model.Following, error)
	Read(ctx context.Context, id string) (*model.Following, error)
	ReadAll(ctx context.Context, req model.ListFollowingsRequest) ([]*model.Following, error)
	Delete(ctx context.Context, id string) (*model.Following, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error)
}

type followingService struct {
	repo  repository.FollowingRepository
	users UserReader
}

func NewFollowingService(repo repository.FollowingRepository, users UserReader) FollowingService {
	return &followingService{repo: repo, users: users}
}

func (s *followingService) Create(ctx context.Context, req model.CreateFollowingRequest) (*model.Following, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	followerID, err := validation.ParseID("follower_id", req.FollowerID)
	if err != nil {
		return nil, err
	}
	followeeID, err := validation.ParseID("followee_id", req.FolloweeID)
	if err != nil {
		return nil, err
	}
	if followerID == followeeID {
		return nil, model.ErrSelfFollow
	}

	if _, err := s.users.GetByID(ctx, followerID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, followeeID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.Following{FollowerID: followerID, FolloweeID: followeeID})
}

func (s *followingService) Read(ctx context.Context, id string) (*model.Following, error) {
	fid, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, fid)
}

func (s *followingService) ReadAll(ctx context.Context, req model.ListFollowingsRequest) ([]*model.Following, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	followerID, err := validation.ParseOptionalID("follower_id", req.FollowerID)
	if err != nil {
		return nil, err
	}
	followeeID, err := validation.ParseOptionalID("followee_id", req.FolloweeID)
	if err != nil {
		return nil, err
	}

	filter := model.Filter{FollowerID: followerID, FolloweeID: followeeID, Limit: req.Limit}
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if req.Page > 1 {
		filter.Offset = (req.Page - 1) * filter.Limit
	}
	return s.repo.List(ctx, filter)
}

func (s *followingService) Delete(ctx context.Context, id string) (*model.Following, error) {
	fid, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, fid)
}
