package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/following/model"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/shared/utils"
	pkgdb "artisthub-backend/pkg/database"
)

type FollowingRepository interface {
	Create(ctx context.Context, f *model.Following) (*model.Following, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Following, error)
	List(ctx context.Context, filter model.Filter) ([]*model.Following, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Following, error)
}

const followingColumns = `id, follower_id, followee_id, created_at`

type followingRepo struct {
	db pkgdb.DBTX
}

func NewFollowingRepository(db pkgdb.DBTX) FollowingRepository {
	return &followingRepo{db: db}
}

func scanFollowing(row pgx.Row) (*model.Following, error) {
	var f model.Following
	if err := row.Scan(&f.ID, &f.FollowerID, &f.FolloweeID, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *followingRepo) Create(ctx context.Context, f *model.Following) (*model.Following, error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	created, err := scanFollowing(r.db.QueryRow(ctx,
		`INSERT INTO followings (id, follower_id, followee_id) VALUES ($1, $2, $3)
		 RETURNING `+followingColumns,
		f.ID, f.FollowerID, f.FolloweeID,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "followings_pair_key") {
			return nil, model.ErrAlreadyFollowing
		}
		return nil, database.MapError(err, "following")
	}
	return created, nil
}

func (r *followingRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Following, error) {
	f, err := scanFollowing(r.db.QueryRow(ctx,
		`SELECT `+followingColumns+` FROM followings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrFollowingNotFound(id.String())
		}
		return nil, database.MapError(err, "following")
	}
	return f, nil
}

func (r *followingRepo) List(ctx context.Context, filter model.Filter) ([]*model.Following, error) {
	var where utils.WhereBuilder
	if filter.FollowerID != nil {
		where.Add("follower_id = ?", *filter.FollowerID)
	}
	if filter.FolloweeID != nil {
		where.Add("followee_id = ?", *filter.FolloweeID)
	}
	query := `SELECT ` + followingColumns + ` FROM followings` + where.SQL() + ` ORDER BY created_at DESC`
	query += ` LIMIT ` + where.Next(filter.Limit) + ` OFFSET ` + where.Next(filter.Offset)

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list followings: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Following, 0)
	for rows.Next() {
		f, err := scanFollowing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan following: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *followingRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Following, error) {
	f, err := scanFollowing(r.db.QueryRow(ctx,
		`DELETE FROM followings WHERE id = $1 RETURNING `+followingColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrFollowingNotFound(id.String())
		}
		return nil, database.MapError(err, "following")
	}
	return f, nil
}
