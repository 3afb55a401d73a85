package service

import (
	"context"
	"strings"

	"artisthub-backend/internal/domains/portfolio/model"
	"artisthub-backend/internal/domains/portfolio/repository"
	"artisthub-backend/internal/shared/validation"
)

type itemService struct {
	repo       repository.ItemRepository
	portfolios repository.PortfolioRepository
}

func NewItemService(repo repository.ItemRepository, portfolios repository.PortfolioRepository) ItemService {
	return &itemService{repo: repo, portfolios: portfolios}
}

func (s *itemService) Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	portfolioID, err := validation.ParseID("portfolio_id", req.PortfolioID)
	if err != nil {
		return nil, err
	}
	if _, err := s.portfolios.GetByID(ctx, portfolioID); err != nil {
		return nil, err
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		position, err = s.repo.NextPosition(ctx, portfolioID)
		if err != nil {
			return nil, err
		}
	}

	return s.repo.Create(ctx, &model.Item{
		PortfolioID: portfolioID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Position:    position,
	})
}

func (s *itemService) Read(ctx context.Context, id string) (*model.Item, error) {
	itemID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, itemID)
}

// ReadAll: items của một portfolio, theo position
func (s *itemService) ReadAll(ctx context.Context, portfolioID string) ([]*model.Item, error) {
	pid, err := validation.ParseID("portfolio_id", portfolioID)
	if err != nil {
		return nil, err
	}
	if _, err := s.portfolios.GetByID(ctx, pid); err != nil {
		return nil, err
	}
	return s.repo.ListByPortfolio(ctx, pid)
}

func (s *itemService) Update(ctx context.Context, req model.UpdateItemRequest) (*model.Item, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	itemID, err := validation.ParseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		it.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.ImageURL != nil {
		it.ImageURL = *req.ImageURL
	}
	if req.Position != nil {
		it.Position = *req.Position
	}
	return s.repo.Update(ctx, it)
}

func (s *itemService) Delete(ctx context.Context, id string) (*model.Item, error) {
	itemID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, itemID)
}
