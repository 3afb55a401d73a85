package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/portfolio/model"
	"artisthub-backend/internal/infrastructure/database"
	pkgdb "artisthub-backend/pkg/database"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) (*model.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]*model.Item, error)
	Update(ctx context.Context, item *model.Item) (*model.Item, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Item, error)

	// NextPosition trả về position kế tiếp (max + 1) trong portfolio
	NextPosition(ctx context.Context, portfolioID uuid.UUID) (int, error)
}

const itemColumns = `id, portfolio_id, title, description, image_url, position, created_at, updated_at`

type itemRepo struct {
	db pkgdb.DBTX
}

func NewItemRepository(db pkgdb.DBTX) ItemRepository {
	return &itemRepo{db: db}
}

func scanItem(row pgx.Row) (*model.Item, error) {
	var it model.Item
	if err := row.Scan(
		&it.ID,
		&it.PortfolioID,
		&it.Title,
		&it.Description,
		&it.ImageURL,
		&it.Position,
		&it.CreatedAt,
		&it.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	created, err := scanItem(r.db.QueryRow(ctx, `
		INSERT INTO portfolio_items (id, portfolio_id, title, description, image_url, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+itemColumns,
		item.ID, item.PortfolioID, item.Title, item.Description, item.ImageURL, item.Position,
	))
	if err != nil {
		return nil, database.MapError(err, "portfolio item")
	}
	return created, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM portfolio_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound(id.String())
		}
		return nil, database.MapError(err, "portfolio item")
	}
	return it, nil
}

func (r *itemRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]*model.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM portfolio_items WHERE portfolio_id = $1 ORDER BY position, created_at`,
		portfolioID)
	if err != nil {
		return nil, fmt.Errorf("list portfolio items: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *itemRepo) Update(ctx context.Context, item *model.Item) (*model.Item, error) {
	updated, err := scanItem(r.db.QueryRow(ctx, `
		UPDATE portfolio_items
		SET title = $2, description = $3, image_url = $4, position = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+itemColumns,
		item.ID, item.Title, item.Description, item.ImageURL, item.Position,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound(item.ID.String())
		}
		return nil, database.MapError(err, "portfolio item")
	}
	return updated, nil
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx,
		`DELETE FROM portfolio_items WHERE id = $1 RETURNING `+itemColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound(id.String())
		}
		return nil, database.MapError(err, "portfolio item")
	}
	return it, nil
}

func (r *itemRepo) NextPosition(ctx context.Context, portfolioID uuid.UUID) (int, error) {
	var next int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM portfolio_items WHERE portfolio_id = $1`,
		portfolioID,
	).Scan(&next)
	if err != nil {
		return 0, database.MapError(err, "portfolio item")
	}
	return next, nil
}
