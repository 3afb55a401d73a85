package service

import (
	"context"

	"artisthub-backend/internal/domains/post/model"
	"artisthub-backend/internal/domains/post/repository"
	"artisthub-backend/internal/shared/validation"
)

type commentService struct {
	repo  repository.CommentRepository
	posts repository.PostRepository
	users UserReader
}

func NewCommentService(repo repository.CommentRepository, posts repository.PostRepository, users UserReader) CommentService {
	return &commentService{repo: repo, posts: posts, users: users}
}

func (s *commentService) Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	postID, err := validation.ParseID("post_id", req.PostID)
	if err != nil {
		return nil, err
	}
	authorID, err := validation.ParseID("author_id", req.AuthorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Body:     req.Body,
	})
}

func (s *commentService) Read(ctx context.Context, id string) (*model.Comment, error) {
	commentID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, commentID)
}

func (s *commentService) ReadAll(ctx context.Context, postID string, page, limit int) ([]*model.Comment, error) {
	pid, err := validation.ParseID("post_id", postID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}
	return s.repo.ListByPost(ctx, pid, limit, offset)
}

func (s *commentService) Update(ctx context.Context, req model.UpdateCommentRequest) (*model.Comment, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	commentID, err := validation.ParseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	c.Body = req.Body
	return s.repo.Update(ctx, c)
}

func (s *commentService) Delete(ctx context.Context, id string) (*model.Comment, error) {
	commentID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, commentID)
}
