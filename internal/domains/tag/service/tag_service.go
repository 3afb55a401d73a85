package service

import (
	"context"
	"strings"

	"artisthub-backend/internal/domains/tag/model"
	"artisthub-backend/internal/domains/tag/repository"
	"artisthub-backend/internal/shared/validation"
)

type TagService interface {
	Create(ctx context.Context, req model.CreateTagRequest) (*model.Tag, error)
	Read(ctx context.Context, id string) (*model.Tag, error)
	ReadAll(ctx context.Context, req model.ListTagsRequest) ([]*model.Tag, error)
	Delete(ctx context.Context, id string) (*model.Tag, error)
}

type tagService struct {
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

// Create: tên tag lưu lowercase, unique
func (s *tagService) Create(ctx context.Context, req model.CreateTagRequest) (*model.Tag, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, strings.ToLower(strings.TrimSpace(req.Name)))
}

func (s *tagService) Read(ctx context.Context, id string) (*model.Tag, error) {
	tagID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, tagID)
}

func (s *tagService) ReadAll(ctx context.Context, req model.ListTagsRequest) ([]*model.Tag, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = 50
	}
	return s.repo.List(ctx, strings.ToLower(strings.TrimSpace(req.Search)), limit)
}

func (s *tagService) Delete(ctx context.Context, id string) (*model.Tag, error) {
	tagID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, tagID)
}
