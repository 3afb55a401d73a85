package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"artisthub-backend/internal/domains/roleinfo/model"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/shared/utils"
	pkgdb "artisthub-backend/pkg/database"
)

type ArtistInfoRepository interface {
	Create(ctx context.Context, info *model.ArtistInfo) (*model.ArtistInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ArtistInfo, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.ArtistInfo, error)
	List(ctx context.Context, status *model.CommissionStatus, limit, offset int) ([]*model.ArtistInfo, error)
	Update(ctx context.Context, info *model.ArtistInfo) (*model.ArtistInfo, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.ArtistInfo, error)

	// SetPaymentAccount lưu account id của payment provider sau onboarding
	SetPaymentAccount(ctx context.Context, userID uuid.UUID, accountID string) (*model.ArtistInfo, error)
}

const artistInfoColumns = `id, user_id, commission_status, base_price, payment_account_id, created_at, updated_at`

type artistInfoRepo struct {
	db pkgdb.DBTX
}

func NewArtistInfoRepository(db pkgdb.DBTX) ArtistInfoRepository {
	return &artistInfoRepo{db: db}
}

func scanArtistInfo(row pgx.Row) (*model.ArtistInfo, error) {
	var (
		info   model.ArtistInfo
		status string
	)
	if err := row.Scan(
		&info.ID,
		&info.UserID,
		&status,
		&info.BasePrice,
		&info.PaymentAccountID,
		&info.CreatedAt,
		&info.UpdatedAt,
	); err != nil {
		return nil, err
	}
	info.CommissionStatus = model.CommissionStatus(status)
	return &info, nil
}

func numericArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func (r *artistInfoRepo) Create(ctx context.Context, info *model.ArtistInfo) (*model.ArtistInfo, error) {
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	created, err := scanArtistInfo(r.db.QueryRow(ctx, `
		INSERT INTO professional_artist_infos (id, user_id, commission_status, base_price)
		VALUES ($1, $2, $3, $4::numeric)
		RETURNING `+artistInfoColumns,
		info.ID, info.UserID, string(info.CommissionStatus), numericArg(info.BasePrice),
	))
	if err != nil {
		if database.IsUniqueViolation(err, "professional_artist_infos_user_id_key") {
			return nil, model.ErrArtistInfoExists
		}
		return nil, database.MapError(err, "artist info")
	}
	return created, nil
}

func (r *artistInfoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ArtistInfo, error) {
	info, err := scanArtistInfo(r.db.QueryRow(ctx,
		`SELECT `+artistInfoColumns+` FROM professional_artist_infos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistInfoNotFound(id.String())
		}
		return nil, database.MapError(err, "artist info")
	}
	return info, nil
}

func (r *artistInfoRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.ArtistInfo, error) {
	info, err := scanArtistInfo(r.db.QueryRow(ctx,
		`SELECT `+artistInfoColumns+` FROM professional_artist_infos WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistInfoNotFound("for user " + userID.String())
		}
		return nil, database.MapError(err, "artist info")
	}
	return info, nil
}

func (r *artistInfoRepo) List(ctx context.Context, status *model.CommissionStatus, limit, offset int) ([]*model.ArtistInfo, error) {
	var where utils.WhereBuilder
	if status != nil {
		where.Add("commission_status = ?", string(*status))
	}
	query := `SELECT ` + artistInfoColumns + ` FROM professional_artist_infos` + where.SQL() +
		` ORDER BY created_at DESC LIMIT ` + where.Next(limit) + ` OFFSET ` + where.Next(offset)

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list artist infos: %w", err)
	}
	defer rows.Close()

	out := make([]*model.ArtistInfo, 0)
	for rows.Next() {
		info, err := scanArtistInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist info: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func (r *artistInfoRepo) Update(ctx context.Context, info *model.ArtistInfo) (*model.ArtistInfo, error) {
	updated, err := scanArtistInfo(r.db.QueryRow(ctx, `
		UPDATE professional_artist_infos
		SET commission_status = $2, base_price = $3::numeric, updated_at = NOW()
		WHERE id = $1
		RETURNING `+artistInfoColumns,
		info.ID, string(info.CommissionStatus), numericArg(info.BasePrice),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistInfoNotFound(info.ID.String())
		}
		return nil, database.MapError(err, "artist info")
	}
	return updated, nil
}

func (r *artistInfoRepo) Delete(ctx context.Context, id uuid.UUID) (*model.ArtistInfo, error) {
	info, err := scanArtistInfo(r.db.QueryRow(ctx,
		`DELETE FROM professional_artist_infos WHERE id = $1 RETURNING `+artistInfoColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistInfoNotFound(id.String())
		}
		return nil, database.MapError(err, "artist info")
	}
	return info, nil
}

func (r *artistInfoRepo) SetPaymentAccount(ctx context.Context, userID uuid.UUID, accountID string) (*model.ArtistInfo, error) {
	info, err := scanArtistInfo(r.db.QueryRow(ctx, `
		UPDATE professional_artist_infos
		SET payment_account_id = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING `+artistInfoColumns,
		userID, accountID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistInfoNotFound("for user " + userID.String())
		}
		return nil, database.MapError(err, "artist info")
	}
	return info, nil
}
