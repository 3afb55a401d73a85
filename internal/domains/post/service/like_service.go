package service

import (
	"context"

	"artisthub-backend/internal/domains/post/model"
	"artisthub-backend/internal/domains/post/repository"
	"artisthub-backend/internal/shared/validation"
	pkgdb "artisthub-backend/pkg/database"
)

type likeService struct {
	repo  repository.LikeRepository
	posts repository.PostRepository
	users UserReader
	tx    pkgdb.TxManager
}

func NewLikeService(
	repo repository.LikeRepository,
	posts repository.PostRepository,
	users UserReader,
	tx pkgdb.TxManager,
) LikeService {
	return &likeService{repo: repo, posts: posts, users: users, tx: tx}
}

// Create: insert like + tăng like_count trong cùng transaction
func (s *likeService) Create(ctx context.Context, req model.LikeRequest) (*model.PostLike, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	postID, err := validation.ParseID("post_id", req.PostID)
	if err != nil {
		return nil, err
	}
	userID, err := validation.ParseID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	var like *model.PostLike
	err = s.tx.RunInTx(ctx, func(tx pkgdb.DBTX) error {
		created, err := s.repo.WithTx(tx).Create(ctx, &model.PostLike{PostID: postID, UserID: userID})
		if err != nil {
			return err
		}
		if err := s.posts.WithTx(tx).AdjustLikeCount(ctx, postID, 1); err != nil {
			return err
		}
		like = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

func (s *likeService) Read(ctx context.Context, id string) (*model.PostLike, error) {
	likeID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, likeID)
}

func (s *likeService) ReadAll(ctx context.Context, postID string) ([]*model.PostLike, error) {
	pid, err := validation.ParseID("post_id", postID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByPost(ctx, pid)
}

// Delete: xóa like + giảm like_count trong cùng transaction
func (s *likeService) Delete(ctx context.Context, id string) (*model.PostLike, error) {
	likeID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}

	var deleted *model.PostLike
	err = s.tx.RunInTx(ctx, func(tx pkgdb.DBTX) error {
		l, err := s.repo.WithTx(tx).Delete(ctx, likeID)
		if err != nil {
			return err
		}
		if err := s.posts.WithTx(tx).AdjustLikeCount(ctx, l.PostID, -1); err != nil {
			return err
		}
		deleted = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
