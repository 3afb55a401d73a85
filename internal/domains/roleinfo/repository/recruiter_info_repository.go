package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/roleinfo/model"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/shared/utils"
	pkgdb "artisthub-backend/pkg/database"
)

type RecruiterInfoRepository interface {
	Create(ctx context.Context, info *model.RecruiterInfo) (*model.RecruiterInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.RecruiterInfo, error)
	List(ctx context.Context, company string, limit, offset int) ([]*model.RecruiterInfo, error)
	Update(ctx context.Context, info *model.RecruiterInfo) (*model.RecruiterInfo, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.RecruiterInfo, error)
}

const recruiterInfoColumns = `id, user_id, company, position, created_at, updated_at`

type recruiterInfoRepo struct {
	db pkgdb.DBTX
}

func NewRecruiterInfoRepository(db pkgdb.DBTX) RecruiterInfoRepository {
	return &recruiterInfoRepo{db: db}
}

func scanRecruiterInfo(row pgx.Row) (*model.RecruiterInfo, error) {
	var info model.RecruiterInfo
	if err := row.Scan(&info.ID, &info.UserID, &info.Company, &info.Position, &info.CreatedAt, &info.UpdatedAt); err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *recruiterInfoRepo) Create(ctx context.Context, info *model.RecruiterInfo) (*model.RecruiterInfo, error) {
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	created, err := scanRecruiterInfo(r.db.QueryRow(ctx, `
		INSERT INTO recruiter_infos (id, user_id, company, position)
		VALUES ($1, $2, $3, $4)
		RETURNING `+recruiterInfoColumns,
		info.ID, info.UserID, info.Company, info.Position,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "recruiter_infos_user_id_key") {
			return nil, model.ErrRecruiterInfoExists
		}
		return nil, database.MapError(err, "recruiter info")
	}
	return created, nil
}

func (r *recruiterInfoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.RecruiterInfo, error) {
	info, err := scanRecruiterInfo(r.db.QueryRow(ctx,
		`SELECT `+recruiterInfoColumns+` FROM recruiter_infos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecruiterInfoNotFound(id.String())
		}
		return nil, database.MapError(err, "recruiter info")
	}
	return info, nil
}

func (r *recruiterInfoRepo) List(ctx context.Context, company string, limit, offset int) ([]*model.RecruiterInfo, error) {
	var where utils.WhereBuilder
	if company != "" {
		where.Add("company ILIKE ?", "%"+company+"%")
	}
	query := `SELECT ` + recruiterInfoColumns + ` FROM recruiter_infos` + where.SQL() +
		` ORDER BY company LIMIT ` + where.Next(limit) + ` OFFSET ` + where.Next(offset)

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list recruiter infos: %w", err)
	}
	defer rows.Close()

	out := make([]*model.RecruiterInfo, 0)
	for rows.Next() {
		info, err := scanRecruiterInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recruiter info: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func (r *recruiterInfoRepo) Update(ctx context.Context, info *model.RecruiterInfo) (*model.RecruiterInfo, error) {
	updated, err := scanRecruiterInfo(r.db.QueryRow(ctx, `
		UPDATE recruiter_infos SET company = $2, position = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+recruiterInfoColumns,
		info.ID, info.Company, info.Position,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecruiterInfoNotFound(info.ID.String())
		}
		return nil, database.MapError(err, "recruiter info")
	}
	return updated, nil
}

func (r *recruiterInfoRepo) Delete(ctx context.Context, id uuid.UUID) (*model.RecruiterInfo, error) {
	info, err := scanRecruiterInfo(r.db.QueryRow(ctx,
		`DELETE FROM recruiter_infos WHERE id = $1 RETURNING `+recruiterInfoColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecruiterInfoNotFound(id.String())
		}
		return nil, database.MapError(err, "recruiter info")
	}
	return info, nil
}
