package service

import (
	"context"

	"github.com/google/uuid"

	"artisthub-backend/internal/domains/post/model"
	usermodel "artisthub-backend/internal/domains/user/model"
)

type PostService interface {
	Create(ctx context.Context, req model.CreatePostRequest) (*model.Post, error)
	Read(ctx context.Context, id string) (*model.Post, error)
	ReadAll(ctx context.Context, req model.ListPostsRequest) ([]*model.Post, error)
	Update(ctx context.Context, req model.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id string) (*model.Post, error)
}

type CommentService interface {
	Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error)
	Read(ctx context.Context, id string) (*model.Comment, error)
	ReadAll(ctx context.Context, postID string, page, limit int) ([]*model.Comment, error)
	Update(ctx context.Context, req model.UpdateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, id string) (*model.Comment, error)
}

// LikeService: like không có update
type LikeService interface {
	Create(ctx context.Context, req model.LikeRequest) (*model.PostLike, error)
	Read(ctx context.Context, id string) (*model.PostLike, error)
	ReadAll(ctx context.Context, postID string) ([]*model.PostLike, error)
	Delete(ctx context.Context, id string) (*model.PostLike, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error)
}
