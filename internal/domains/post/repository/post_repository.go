package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/post/model"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/shared/utils"
	pkgdb "artisthub-backend/pkg/database"
)

type PostRepository interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context, filter model.PostFilter) ([]*model.Post, error)
	Update(ctx context.Context, p *model.Post) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Post, error)

	// AdjustLikeCount cộng delta vào like_count
	AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) error

	WithTx(tx pkgdb.DBTX) PostRepository
}

const postColumns = `id, author_id, title, body, image_url, tags, like_count, created_at, updated_at`

type postRepo struct {
	db pkgdb.DBTX
}

func NewPostRepository(db pkgdb.DBTX) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) WithTx(tx pkgdb.DBTX) PostRepository {
	return &postRepo{db: tx}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.Title,
		&p.Body,
		&p.ImageURL,
		&p.Tags,
		&p.LikeCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepo) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	created, err := scanPost(r.db.QueryRow(ctx, `
		INSERT INTO posts (id, author_id, title, body, image_url, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+postColumns,
		p.ID, p.AuthorID, p.Title, p.Body, p.ImageURL, p.Tags,
	))
	if err != nil {
		return nil, database.MapError(err, "post")
	}
	return created, nil
}

func (r *postRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound(id.String())
		}
		return nil, database.MapError(err, "post")
	}
	return p, nil
}

func (r *postRepo) List(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	var where utils.WhereBuilder
	if filter.AuthorID != nil {
		where.Add("author_id = ?", *filter.AuthorID)
	}
	if filter.Tag != "" {
		where.Add("? = ANY(tags)", filter.Tag)
	}
	query := `SELECT ` + postColumns + ` FROM posts` + where.SQL() +
		` ORDER BY created_at DESC, id LIMIT ` + where.Next(filter.Limit) + ` OFFSET ` + where.Next(filter.Offset)

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postRepo) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	updated, err := scanPost(r.db.QueryRow(ctx, `
		UPDATE posts SET title = $2, body = $3, tags = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING `+postColumns,
		p.ID, p.Title, p.Body, p.Tags,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound(p.ID.String())
		}
		return nil, database.MapError(err, "post")
	}
	return updated, nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, `DELETE FROM posts WHERE id = $1 RETURNING `+postColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound(id.String())
		}
		return nil, database.MapError(err, "post")
	}
	return p, nil
}

func (r *postRepo) AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE posts SET like_count = GREATEST(like_count + $2, 0) WHERE id = $1`, id, delta)
	if err != nil {
		return database.MapError(err, "post")
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound(id.String())
	}
	return nil
}
