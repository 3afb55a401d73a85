package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/portfolio/model"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/shared/utils"
	pkgdb "artisthub-backend/pkg/database"
)

type PortfolioRepository interface {
	Create(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Portfolio, error)
	List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]*model.Portfolio, error)
	Update(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Portfolio, error)
}

const portfolioColumns = `id, user_id, title, description, created_at, updated_at`

type portfolioRepo struct {
	db pkgdb.DBTX
}

func NewPortfolioRepository(db pkgdb.DBTX) PortfolioRepository {
	return &portfolioRepo{db: db}
}

func scanPortfolio(row pgx.Row) (*model.Portfolio, error) {
	var p model.Portfolio
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepo) Create(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	created, err := scanPortfolio(r.db.QueryRow(ctx, `
		INSERT INTO portfolios (id, user_id, title, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+portfolioColumns,
		p.ID, p.UserID, p.Title, p.Description,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "portfolios_user_id_key") {
			return nil, model.ErrPortfolioExists
		}
		return nil, database.MapError(err, "portfolio")
	}
	return created, nil
}

func (r *portfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Portfolio, error) {
	p, err := scanPortfolio(r.db.QueryRow(ctx,
		`SELECT `+portfolioColumns+` FROM portfolios WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPortfolioNotFound(id.String())
		}
		return nil, database.MapError(err, "portfolio")
	}
	return p, nil
}

func (r *portfolioRepo) List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]*model.Portfolio, error) {
	var where utils.WhereBuilder
	if userID != nil {
		where.Add("user_id = ?", *userID)
	}
	query := `SELECT ` + portfolioColumns + ` FROM portfolios` + where.SQL() +
		` ORDER BY created_at DESC LIMIT ` + where.Next(limit) + ` OFFSET ` + where.Next(offset)

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Portfolio, 0)
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *portfolioRepo) Update(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	updated, err := scanPortfolio(r.db.QueryRow(ctx, `
		UPDATE portfolios SET title = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+portfolioColumns,
		p.ID, p.Title, p.Description,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPortfolioNotFound(p.ID.String())
		}
		return nil, database.MapError(err, "portfolio")
	}
	return updated, nil
}

// Delete: items bị xóa theo ON DELETE CASCADE
func (r *portfolioRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Portfolio, error) {
	p, err := scanPortfolio(r.db.QueryRow(ctx,
		`DELETE FROM portfolios WHERE id = $1 RETURNING `+portfolioColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPortfolioNotFound(id.String())
		}
		return nil, database.MapError(err, "portfolio")
	}
	return p, nil
}
