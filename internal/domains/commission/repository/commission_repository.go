package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"artisthub-backend/internal/domains/commission/model"
)

// CommissionRepository định nghĩa các thao tác persistence cho commission
type CommissionRepository interface {
	Create(ctx context.Context, c *model.Commission) (*model.Commission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Commission, error)
	List(ctx context.Context, filter model.ListFilter) ([]*model.Commission, int, error)

	// Update ghi đè price và status (last write wins)
	Update(ctx context.Context, c *model.Commission) (*model.Commission, error)

	// Transition chỉ ghi khi status hiện tại nằm trong allowedFrom.
	// price nil giữ nguyên giá cũ. Conflict nếu status đã đổi trước đó.
	Transition(ctx context.Context, id uuid.UUID, allowedFrom []model.Status, to model.Status, price *decimal.Decimal) (*model.Commission, error)

	// Delete xóa cứng và trả về record vừa xóa
	Delete(ctx context.Context, id uuid.UUID) (*model.Commission, error)
}
