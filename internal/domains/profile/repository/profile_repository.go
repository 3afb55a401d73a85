package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/profile/model"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/shared/utils"
	pkgdb "artisthub-backend/pkg/database"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	List(ctx context.Context, tag string, limit, offset int) ([]*model.Profile, error)
	Update(ctx context.Context, p *model.Profile) (*model.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Profile, error)

	// ReplaceTags xóa link cũ rồi link lại theo tagIDs
	ReplaceTags(ctx context.Context, profileID uuid.UUID, tagIDs []uuid.UUID) error

	WithTx(tx pkgdb.DBTX) ProfileRepository
}

type profileRepo struct {
	db pkgdb.DBTX
}

func NewProfileRepository(db pkgdb.DBTX) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) WithTx(tx pkgdb.DBTX) ProfileRepository {
	return &profileRepo{db: tx}
}

// tags được gom bằng subquery để một query trả đủ profile
const profileSelect = `
	SELECT p.id, p.user_id, p.headline, p.location, p.website, p.banner_url,
	       COALESCE((SELECT array_agg(t.name ORDER BY t.name)
	                 FROM profile_tags pt JOIN tags t ON t.id = pt.tag_id
	                 WHERE pt.profile_id = p.id), '{}') AS tags,
	       p.created_at, p.updated_at
	FROM profiles p`

func scanProfile(row pgx.Row) (*model.Profile, error) {
	var p model.Profile
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Headline,
		&p.Location,
		&p.Website,
		&p.BannerURL,
		&p.Tags,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO profiles (id, user_id, headline, location, website, banner_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.Headline, p.Location, p.Website, p.BannerURL,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "profiles_user_id_key") {
			return nil, model.ErrProfileExists
		}
		return nil, database.MapError(err, "profile")
	}
	return p, nil
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, profileSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound(id.String())
		}
		return nil, database.MapError(err, "profile")
	}
	return p, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, profileSelect+` WHERE p.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound("for user " + userID.String())
		}
		return nil, database.MapError(err, "profile")
	}
	return p, nil
}

func (r *profileRepo) List(ctx context.Context, tag string, limit, offset int) ([]*model.Profile, error) {
	var where utils.WhereBuilder
	if tag != "" {
		where.Add(`EXISTS (SELECT 1 FROM profile_tags pt JOIN tags t ON t.id = pt.tag_id
			WHERE pt.profile_id = p.id AND t.name = ?)`, tag)
	}
	query := profileSelect + where.SQL() +
		` ORDER BY p.created_at DESC LIMIT ` + where.Next(limit) + ` OFFSET ` + where.Next(offset)

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) Update(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE profiles
		SET headline = $2, location = $3, website = $4, banner_url = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		p.ID, p.Headline, p.Location, p.Website, p.BannerURL,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound(p.ID.String())
		}
		return nil, database.MapError(err, "profile")
	}
	return p, nil
}

func (r *profileRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return nil, database.MapError(err, "profile")
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrProfileNotFound(id.String())
	}
	return p, nil
}

func (r *profileRepo) ReplaceTags(ctx context.Context, profileID uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM profile_tags WHERE profile_id = $1`, profileID); err != nil {
		return database.MapError(err, "profile tag")
	}
	if len(tagIDs) == 0 {
		return nil
	}
	ids := make([]string, len(tagIDs))
	for i, id := range tagIDs {
		ids[i] = id.String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO profile_tags (profile_id, tag_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`, profileID, ids)
	if err != nil {
		return database.MapError(err, "profile tag")
	}
	return nil
}
