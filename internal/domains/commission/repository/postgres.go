package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/pkg/cache"
	pkgdb "artisthub-backend/pkg/database"
)

const (
	commissionCacheKeyPrefix = "commission:"
	commissionColumns        = `id, artist_id, commissioner_id, title, description, notes, price, status, created_at`
)

type postgresCommissionRepository struct {
	db    pkgdb.DBTX
	cache cache.Cache // nil = không cache
	ttl   time.Duration
}

// NewPostgresCommissionRepository: cache có thể nil (test, worker)
func NewPostgresCommissionRepository(db pkgdb.DBTX, c cache.Cache, ttl time.Duration) CommissionRepository {
	return &postgresCommissionRepository{db: db, cache: c, ttl: ttl}
}

func scanCommission(row pgx.Row) (*model.Commission, error) {
	var c model.Commission
	var status string
	err := row.Scan(
		&c.ID,
		&c.ArtistID,
		&c.CommissionerID,
		&c.Title,
		&c.Description,
		&c.Notes,
		&c.Price,
		&status,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = model.Status(status)
	return &c, nil
}

// priceArg: NUMERIC nhận text, nil -> NULL
func priceArg(p *decimal.Decimal) any {
	if p == nil {
		return nil
	}
	return p.String()
}

// ========================================
// CREATE
// ========================================

func (r *postgresCommissionRepository) Create(ctx context.Context, c *model.Commission) (*model.Commission, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query := `
		INSERT INTO commissions (id, artist_id, commissioner_id, title, description, notes, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + commissionColumns

	created, err := scanCommission(r.db.QueryRow(ctx, query,
		c.ID,
		c.ArtistID,
		c.CommissionerID,
		c.Title,
		c.Description,
		c.Notes,
		priceArg(c.Price),
		string(c.Status),
	))
	if err != nil {
		return nil, database.MapError(err, "commission")
	}
	return created, nil
}

// ========================================
// READ
// ========================================

func (r *postgresCommissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Commission, error) {
	cacheKey := commissionCacheKeyPrefix + id.String()

	if r.cache != nil {
		var cached model.Commission
		hit, err := r.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("commission cache get failed")
		}
		if err == nil && hit {
			return &cached, nil
		}
	}

	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1`
	c, err := scanCommission(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommissionNotFound(id.String())
		}
		return nil, database.MapError(err, "commission")
	}

	r.setCache(ctx, c)
	return c, nil
}

func (r *postgresCommissionRepository) List(ctx context.Context, filter model.ListFilter) ([]*model.Commission, int, error) {
	var where utils.WhereBuilder
	if filter.ArtistID != nil {
		where.Add("artist_id = ?", *filter.ArtistID)
	}
	if filter.CommissionerID != nil {
		where.Add("commissioner_id = ?", *filter.CommissionerID)
	}
	if filter.Status != nil {
		where.Add("status = ?", string(*filter.Status))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM commissions` + where.SQL()
	if err := r.db.QueryRow(ctx, countQuery, where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count commissions: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = model.DefaultPageSize
	}
	query := `SELECT ` + commissionColumns + ` FROM commissions` + where.SQL() +
		` ORDER BY created_at DESC, id LIMIT ` + where.Next(limit) + ` OFFSET ` + where.Next(filter.Offset)

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Commission, 0)
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan commission: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate commissions: %w", err)
	}
	return items, total, nil
}

// ========================================
// UPDATE
// ========================================

func (r *postgresCommissionRepository) Update(ctx context.Context, c *model.Commission) (*model.Commission, error) {
	query := `
		UPDATE commissions
		SET price = $2, status = $3
		WHERE id = $1
		RETURNING ` + commissionColumns

	updated, err := scanCommission(r.db.QueryRow(ctx, query, c.ID, priceArg(c.Price), string(c.Status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommissionNotFound(c.ID.String())
		}
		return nil, database.MapError(err, "commission")
	}

	r.invalidate(ctx, c.ID)
	return updated, nil
}

func (r *postgresCommissionRepository) Transition(
	ctx context.Context,
	id uuid.UUID,
	allowedFrom []model.Status,
	to model.Status,
	price *decimal.Decimal,
) (*model.Commission, error) {
	from := make([]string, len(allowedFrom))
	for i, s := range allowedFrom {
		from[i] = string(s)
	}

	// compare-and-swap trên status
	query := `
		UPDATE commissions
		SET status = $2, price = COALESCE($3::numeric, price)
		WHERE id = $1 AND status = ANY($4)
		RETURNING ` + commissionColumns

	updated, err := scanCommission(r.db.QueryRow(ctx, query, id, string(to), priceArg(price), from))
	if err == nil {
		r.invalidate(ctx, id)
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, database.MapError(err, "commission")
	}

	// không có row: hoặc không tồn tại, hoặc status đã bị đổi
	r.invalidate(ctx, id)
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, apperror.Conflict("commission is %s, expected one of %v", current.Status, allowedFrom)
}

// ========================================
// DELETE
// ========================================

func (r *postgresCommissionRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Commission, error) {
	query := `DELETE FROM commissions WHERE id = $1 RETURNING ` + commissionColumns

	deleted, err := scanCommission(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommissionNotFound(id.String())
		}
		return nil, database.MapError(err, "commission")
	}

	r.invalidate(ctx, id)
	return deleted, nil
}

// ========================================
// CACHE HELPERS
// ========================================
// Lỗi cache chỉ log, không làm fail request

func (r *postgresCommissionRepository) setCache(ctx context.Context, c *model.Commission) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, commissionCacheKeyPrefix+c.ID.String(), c, r.ttl); err != nil {
		log.Warn().Err(err).Str("commission_id", c.ID.String()).Msg("commission cache set failed")
	}
}

func (r *postgresCommissionRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, commissionCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Str("commission_id", id.String()).Msg("commission cache invalidate failed")
	}
}
