package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/pkg/cache"
	pkgdb "artisthub-backend/pkg/database"
)

const (
	userCacheKeyPrefix = "user:"
	userCacheTTL       = 15 * time.Minute
	userColumns        = `id, username, email, password_hash, role, display_name, bio, avatar_url, created_at, updated_at`
)

type userRepo struct {
	db    pkgdb.DBTX
	cache cache.Cache
}

// NewUserRepository: cache nil thì bỏ qua cache-aside
func NewUserRepository(db pkgdb.DBTX, c cache.Cache) UserRepository {
	return &userRepo{db: db, cache: c}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.DisplayName,
		&u.Bio,
		&u.AvatarURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	return &u, nil
}

// mapWriteError phân biệt email / username trùng
func mapWriteError(err error) error {
	switch {
	case database.IsUniqueViolation(err, "users_email_key"):
		return model.ErrEmailTaken
	case database.IsUniqueViolation(err, "users_username_key"):
		return model.ErrUsernameTaken
	}
	return database.MapError(err, "user")
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	query := `
		INSERT INTO users (id, username, email, password_hash, role, display_name, bio, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.DisplayName,
		user.Bio,
		user.AvatarURL,
	))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return created, nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	cacheKey := userCacheKeyPrefix + id.String()
	if r.cache != nil {
		var cached model.User
		hit, err := r.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("user cache get failed")
		}
		if err == nil && hit {
			return &cached, nil
		}
	}

	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound(id.String())
		}
		return nil, database.MapError(err, "user")
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, u, userCacheTTL); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("user cache set failed")
		}
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound(email)
		}
		return nil, database.MapError(err, "user")
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context, filter model.ListFilter) ([]*model.User, int, error) {
	var where utils.WhereBuilder
	if filter.Role != nil {
		where.Add("role = ?", string(*filter.Role))
	}
	if filter.Search != "" {
		where.Add("(username ILIKE ? OR display_name ILIKE ?)", "%"+filter.Search+"%")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users` + where.SQL() +
		` ORDER BY created_at DESC, id LIMIT ` + where.Next(filter.Limit) + ` OFFSET ` + where.Next(filter.Offset)
	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *userRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		UPDATE users
		SET display_name = $2, bio = $3, role = $4, avatar_url = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID,
		user.DisplayName,
		user.Bio,
		string(user.Role),
		user.AvatarURL,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound(user.ID.String())
		}
		return nil, mapWriteError(err)
	}

	r.invalidate(ctx, user.ID)
	return updated, nil
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) (*model.User, error) {
	deleted, err := scanUser(r.db.QueryRow(ctx, `DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound(id.String())
		}
		return nil, database.MapError(err, "user")
	}

	r.invalidate(ctx, id)
	return deleted, nil
}

func (r *userRepo) invalidate(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, userCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Str("user_id", id.String()).Msg("user cache invalidate failed")
	}
}
