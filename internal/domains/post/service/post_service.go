package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/post/model"
	"artisthub-backend/internal/domains/post/repository"
	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/internal/shared/validation"
)

type postService struct {
	repo  repository.PostRepository
	users UserReader
}

func NewPostService(repo repository.PostRepository, users UserReader) PostService {
	return &postService{repo: repo, users: users}
}

func (s *postService) Create(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	authorID, err := validation.ParseID("author_id", req.AuthorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, &model.Post{
		AuthorID: authorID,
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Tags:     utils.NormalizeTags(req.Tags),
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("post_id", p.ID.String()).Str("author_id", authorID.String()).Msg("Post created")
	return p, nil
}

func (s *postService) Read(ctx context.Context, id string) (*model.Post, error) {
	postID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, postID)
}

func (s *postService) ReadAll(ctx context.Context, req model.ListPostsRequest) ([]*model.Post, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	authorID, err := validation.ParseOptionalID("author_id", req.AuthorID)
	if err != nil {
		return nil, err
	}
	filter := model.PostFilter{
		AuthorID: authorID,
		Tag:      strings.ToLower(strings.TrimSpace(req.Tag)),
		Limit:    req.Limit,
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if req.Page > 1 {
		filter.Offset = (req.Page - 1) * filter.Limit
	}
	return s.repo.List(ctx, filter)
}

func (s *postService) Update(ctx context.Context, req model.UpdatePostRequest) (*model.Post, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	postID, err := validation.ParseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		p.Body = *req.Body
	}
	if req.Tags != nil {
		p.Tags = utils.NormalizeTags(req.Tags)
	}
	return s.repo.Update(ctx, p)
}

func (s *postService) Delete(ctx context.Context, id string) (*model.Post, error) {
	postID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, postID)
}
