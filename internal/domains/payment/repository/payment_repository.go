package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"artisthub-backend/internal/domains/payment/model"
	"artisthub-backend/internal/infrastructure/database"
	pkgdb "artisthub-backend/pkg/database"
)

// =====================================================
// COMMISSION PAYMENT REPOSITORY
// =====================================================
type PaymentRepository interface {
	Create(ctx context.Context, p *model.CommissionPayment) (*model.CommissionPayment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.CommissionPayment, error)
	ListByCommission(ctx context.Context, commissionID uuid.UUID) ([]*model.CommissionPayment, error)

	// MarkSucceeded: PENDING|FAILED -> SUCCEEDED. changed=false nếu đã SUCCEEDED
	MarkSucceeded(ctx context.Context, id uuid.UUID, providerRef string) (p *model.CommissionPayment, changed bool, err error)

	// MarkFailed chỉ đổi record đang PENDING
	MarkFailed(ctx context.Context, id uuid.UUID) (*model.CommissionPayment, error)
}

const paymentColumns = `id, commission_id, provider, payee_account_id, amount, currency,
	payment_url, provider_ref, status, paid_at, created_at, updated_at`

type paymentRepo struct {
	db pkgdb.DBTX
}

func NewPaymentRepository(db pkgdb.DBTX) PaymentRepository {
	return &paymentRepo{db: db}
}

func scanPayment(row pgx.Row) (*model.CommissionPayment, error) {
	var (
		p      model.CommissionPayment
		status string
	)
	if err := row.Scan(
		&p.ID,
		&p.CommissionID,
		&p.Provider,
		&p.PayeeAccountID,
		&p.Amount,
		&p.Currency,
		&p.PaymentURL,
		&p.ProviderRef,
		&status,
		&p.PaidAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Status = model.Status(status)
	return &p, nil
}

func (r *paymentRepo) Create(ctx context.Context, p *model.CommissionPayment) (*model.CommissionPayment, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = model.StatusPending
	}
	created, err := scanPayment(r.db.QueryRow(ctx, `
		INSERT INTO commission_payments
			(id, commission_id, provider, payee_account_id, amount, currency, payment_url, provider_ref, status)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9)
		RETURNING `+paymentColumns,
		p.ID, p.CommissionID, p.Provider, p.PayeeAccountID, p.Amount.String(),
		p.Currency, p.PaymentURL, p.ProviderRef, string(p.Status),
	))
	if err != nil {
		return nil, database.MapError(err, "payment")
	}
	return created, nil
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.CommissionPayment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM commission_payments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPaymentNotFound(id.String())
		}
		return nil, database.MapError(err, "payment")
	}
	return p, nil
}

func (r *paymentRepo) ListByCommission(ctx context.Context, commissionID uuid.UUID) ([]*model.CommissionPayment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM commission_payments WHERE commission_id = $1 ORDER BY created_at DESC`,
		commissionID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	out := make([]*model.CommissionPayment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *paymentRepo) MarkSucceeded(ctx context.Context, id uuid.UUID, providerRef string) (*model.CommissionPayment, bool, error) {
	var ref *string
	if providerRef != "" {
		ref = &providerRef
	}
	p, err := scanPayment(r.db.QueryRow(ctx, `
		UPDATE commission_payments
		SET status = 'SUCCEEDED', paid_at = NOW(), updated_at = NOW(),
		    provider_ref = COALESCE($2, provider_ref)
		WHERE id = $1 AND status <> 'SUCCEEDED'
		RETURNING `+paymentColumns,
		id, ref,
	))
	if err == nil {
		return p, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, database.MapError(err, "payment")
	}

	// không có row nào đổi: đã SUCCEEDED hoặc không tồn tại
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *paymentRepo) MarkFailed(ctx context.Context, id uuid.UUID) (*model.CommissionPayment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, `
		UPDATE commission_payments SET status = 'FAILED', updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING `+paymentColumns, id))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, database.MapError(err, "payment")
	}
	return r.GetByID(ctx, id)
}
