package service

import (
	"context"

	"github.com/google/uuid"

	commissionmodel "artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/domains/payment/model"
	rolemodel "artisthub-backend/internal/domains/roleinfo/model"
	usermodel "artisthub-backend/internal/domains/user/model"
)

// =====================================================
// PAYMENT SERVICE INTERFACE
// =====================================================
type PaymentService interface {
	// Onboard tạo (hoặc tiếp tục) connected account cho artist
	Onboard(ctx context.Context, userID uuid.UUID) (*model.AccountResponse, error)

	// CreateCommissionPaymentLink được commission service gọi khi checkout
	CreateCommissionPaymentLink(ctx context.Context, c *commissionmodel.Commission) (*commissionmodel.CheckoutResponse, error)

	ReadAllByCommission(ctx context.Context, commissionID string) ([]*model.CommissionPayment, error)
}

// WebhookService xử lý event từ provider
type WebhookService interface {
	Handle(ctx context.Context, payload []byte, signature string) error
}

// =====================================================
// COLLABORATORS
// =====================================================

type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error)
}

// ArtistAccounts is satisfied by the roleinfo artist repository.
type ArtistAccounts interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*rolemodel.ArtistInfo, error)
	SetPaymentAccount(ctx context.Context, userID uuid.UUID, accountID string) (*rolemodel.ArtistInfo, error)
}

// CommissionConfirmer is satisfied by the commission service.
type CommissionConfirmer interface {
	ConfirmPayment(ctx context.Context, commissionID uuid.UUID, providerRef string) (*commissionmodel.Commission, error)
}
