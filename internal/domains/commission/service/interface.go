package service

import (
	"context"

	"github.com/google/uuid"

	"artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/shared"
)

// CommissionService: DAO contract (create/read/readAll/update/delete)
// cộng các lifecycle action có kiểm tra actor
type CommissionService interface {
	Create(ctx context.Context, req model.CreateCommissionRequest) (*model.Commission, error)
	Read(ctx context.Context, id string) (*model.Commission, error)
	ReadAll(ctx context.Context, req model.ListCommissionsRequest) ([]*model.Commission, int, error)
	Update(ctx context.Context, req model.UpdateCommissionRequest) (*model.Commission, error)
	Delete(ctx context.Context, id string) (*model.Commission, error)

	SetPrice(ctx context.Context, id string, callerID uuid.UUID, req model.SetPriceRequest) (*model.Commission, error)
	Accept(ctx context.Context, id string, callerID uuid.UUID) (*model.Commission, error)
	Deny(ctx context.Context, id string, callerID uuid.UUID) (*model.Commission, error)
	Complete(ctx context.Context, id string, callerID uuid.UUID) (*model.Commission, error)
	Checkout(ctx context.Context, id string, callerID uuid.UUID) (*model.CheckoutResponse, error)
	AvailableTransitions(ctx context.Context, id string, callerID uuid.UUID) ([]model.Transition, error)

	// ConfirmPayment chỉ được gọi từ webhook đã verify chữ ký
	ConfirmPayment(ctx context.Context, commissionID uuid.UUID, providerRef string) (*model.Commission, error)
}

// ========================================
// COLLABORATORS
// ========================================

// UserLookup resolves a user id to contact details; NotFound when missing.
type UserLookup interface {
	GetBasicInfo(ctx context.Context, id uuid.UUID) (*shared.UserBasicInfo, error)
}

// Notifier gửi thông báo cho mỗi transition (queue hoặc sync)
type Notifier interface {
	Notify(ctx context.Context, p shared.CommissionNotificationPayload) error
}

// PaymentLinker tạo link thanh toán cho commission
type PaymentLinker interface {
	CreateCommissionPaymentLink(ctx context.Context, c *model.Commission) (*model.CheckoutResponse, error)
}
