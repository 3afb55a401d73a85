package service

import (
	"context"

	"github.com/google/uuid"

	"artisthub-backend/internal/domains/portfolio/model"
	usermodel "artisthub-backend/internal/domains/user/model"
)

type PortfolioService interface {
	Create(ctx context.Context, req model.CreatePortfolioRequest) (*model.Portfolio, error)
	Read(ctx context.Context, id string) (*model.Portfolio, error)
	ReadAll(ctx context.Context, req model.ListPortfoliosRequest) ([]*model.Portfolio, error)
	Update(ctx context.Context, req model.UpdatePortfolioRequest) (*model.Portfolio, error)
	Delete(ctx context.Context, id string) (*model.Portfolio, error)
}

type ItemService interface {
	Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error)
	Read(ctx context.Context, id string) (*model.Item, error)
	ReadAll(ctx context.Context, portfolioID string) ([]*model.Item, error)
	Update(ctx context.Context, req model.UpdateItemRequest) (*model.Item, error)
	Delete(ctx context.Context, id string) (*model.Item, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error)
}
