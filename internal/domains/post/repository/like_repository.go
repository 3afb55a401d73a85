package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/post/model"
	"artisthub-backend/internal/infrastructure/database"
	pkgdb "artisthub-backend/pkg/database"
)

type LikeRepository interface {
	Create(ctx context.Context, like *model.PostLike) (*model.PostLike, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PostLike, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*model.PostLike, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.PostLike, error)

	WithTx(tx pkgdb.DBTX) LikeRepository
}

type likeRepo struct {
	db pkgdb.DBTX
}

func NewLikeRepository(db pkgdb.DBTX) LikeRepository {
	return &likeRepo{db: db}
}

func (r *likeRepo) WithTx(tx pkgdb.DBTX) LikeRepository {
	return &likeRepo{db: tx}
}

func scanLike(row pgx.Row) (*model.PostLike, error) {
	var l model.PostLike
	if err := row.Scan(&l.ID, &l.PostID, &l.UserID, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *likeRepo) Create(ctx context.Context, like *model.PostLike) (*model.PostLike, error) {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	created, err := scanLike(r.db.QueryRow(ctx, `
		INSERT INTO post_likes (id, post_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, user_id, created_at`,
		like.ID, like.PostID, like.UserID,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "post_likes_post_user_key") {
			return nil, model.ErrAlreadyLiked
		}
		return nil, database.MapError(err, "like")
	}
	return created, nil
}

func (r *likeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.PostLike, error) {
	l, err := scanLike(r.db.QueryRow(ctx, `SELECT id, post_id, user_id, created_at FROM post_likes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLikeNotFound(id.String())
		}
		return nil, database.MapError(err, "like")
	}
	return l, nil
}

func (r *likeRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*model.PostLike, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, post_id, user_id, created_at FROM post_likes
		WHERE post_id = $1 ORDER BY created_at`, postID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer rows.Close()

	likes := make([]*model.PostLike, 0)
	for rows.Next() {
		l, err := scanLike(rows)
		if err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

func (r *likeRepo) Delete(ctx context.Context, id uuid.UUID) (*model.PostLike, error) {
	l, err := scanLike(r.db.QueryRow(ctx,
		`DELETE FROM post_likes WHERE id = $1 RETURNING id, post_id, user_id, created_at`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLikeNotFound(id.String())
		}
		return nil, database.MapError(err, "like")
	}
	return l, nil
}
