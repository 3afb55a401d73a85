package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/tag/model"
	"artisthub-backend/internal/infrastructure/database"
	pkgdb "artisthub-backend/pkg/database"
)

type TagRepository interface {
	Create(ctx context.Context, name string) (*model.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error)
	List(ctx context.Context, search string, limit int) ([]*model.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Tag, error)

	// UpsertMany tạo các tag chưa có, trả về đủ các tag theo tên
	UpsertMany(ctx context.Context, names []string) ([]*model.Tag, error)

	// WithTx chạy repo trên transaction của caller
	WithTx(tx pkgdb.DBTX) TagRepository
}

type tagRepo struct {
	db pkgdb.DBTX
}

func NewTagRepository(db pkgdb.DBTX) TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) WithTx(tx pkgdb.DBTX) TagRepository {
	return &tagRepo{db: tx}
}

func (r *tagRepo) Create(ctx context.Context, name string) (*model.Tag, error) {
	var t model.Tag
	err := r.db.QueryRow(ctx,
		`INSERT INTO tags (id, name) VALUES ($1, $2) RETURNING id, name, created_at`,
		uuid.New(), name,
	).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "tags_name_key") {
			return nil, model.ErrTagExists
		}
		return nil, database.MapError(err, "tag")
	}
	return &t, nil
}

func (r *tagRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	var t model.Tag
	err := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM tags WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTagNotFound(id.String())
		}
		return nil, database.MapError(err, "tag")
	}
	return &t, nil
}

func (r *tagRepo) List(ctx context.Context, search string, limit int) ([]*model.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at FROM tags
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2`, search, limit)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return collectTags(rows)
}

func (r *tagRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	var t model.Tag
	err := r.db.QueryRow(ctx, `DELETE FROM tags WHERE id = $1 RETURNING id, name, created_at`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTagNotFound(id.String())
		}
		return nil, database.MapError(err, "tag")
	}
	return &t, nil
}

func (r *tagRepo) UpsertMany(ctx context.Context, names []string) ([]*model.Tag, error) {
	if len(names) == 0 {
		return []*model.Tag{}, nil
	}
	ids := make([]string, len(names))
	for i := range names {
		ids[i] = uuid.NewString()
	}

	// DO UPDATE để RETURNING trả cả các tag đã tồn tại
	rows, err := r.db.Query(ctx, `
		INSERT INTO tags (id, name)
		SELECT * FROM unnest($1::uuid[], $2::text[])
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at`, ids, names)
	if err != nil {
		return nil, fmt.Errorf("upsert tags: %w", err)
	}
	return collectTags(rows)
}

func collectTags(rows pgx.Rows) ([]*model.Tag, error) {
	defer rows.Close()
	tags := make([]*model.Tag, 0)
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}
