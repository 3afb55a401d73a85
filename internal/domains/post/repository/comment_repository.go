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

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*model.Comment, error)
	Update(ctx context.Context, c *model.Comment) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Comment, error)
}

const commentColumns = `id, post_id, author_id, body, created_at, updated_at`

type commentRepo struct {
	db pkgdb.DBTX
}

func NewCommentRepository(db pkgdb.DBTX) CommentRepository {
	return &commentRepo{db: db}
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	created, err := scanComment(r.db.QueryRow(ctx, `
		INSERT INTO comments (id, post_id, author_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING `+commentColumns,
		c.ID, c.PostID, c.AuthorID, c.Body,
	))
	if err != nil {
		return nil, database.MapError(err, "comment")
	}
	return created, nil
}

func (r *commentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound(id.String())
		}
		return nil, database.MapError(err, "comment")
	}
	return c, nil
}

func (r *commentRepo) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*model.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE post_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepo) Update(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	updated, err := scanComment(r.db.QueryRow(ctx, `
		UPDATE comments SET body = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+commentColumns, c.ID, c.Body))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound(c.ID.String())
		}
		return nil, database.MapError(err, "comment")
	}
	return updated, nil
}

func (r *commentRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, `DELETE FROM comments WHERE id = $1 RETURNING `+commentColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound(id.String())
		}
		return nil, database.MapError(err, "comment")
	}
	return c, nil
}
