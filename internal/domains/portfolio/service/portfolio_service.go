package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/portfolio/model"
	"artisthub-backend/internal/domains/portfolio/repository"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/validation"
)

type portfolioService struct {
	repo  repository.PortfolioRepository
	users UserReader
}

func NewPortfolioService(repo repository.PortfolioRepository, users UserReader) PortfolioService {
	return &portfolioService{repo: repo, users: users}
}

// Create: chỉ user PROFESSIONAL mới có portfolio, tối đa một cái
func (s *portfolioService) Create(ctx context.Context, req model.CreatePortfolioRequest) (*model.Portfolio, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	userID, err := validation.ParseID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner.Role != usermodel.RoleProfessional {
		return nil, model.ErrNotProfessional
	}

	p, err := s.repo.Create(ctx, &model.Portfolio{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("portfolio_id", p.ID.String()).Str("user_id", userID.String()).Msg("Portfolio created")
	return p, nil
}

func (s *portfolioService) Read(ctx context.Context, id string) (*model.Portfolio, error) {
	pid, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, pid)
}

func (s *portfolioService) ReadAll(ctx context.Context, req model.ListPortfoliosRequest) ([]*model.Portfolio, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	userID, err := validation.ParseOptionalID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = 20
	}
	offset := 0
	if req.Page > 1 {
		offset = (req.Page - 1) * limit
	}
	return s.repo.List(ctx, userID, limit, offset)
}

func (s *portfolioService) Update(ctx context.Context, req model.UpdatePortfolioRequest) (*model.Portfolio, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	pid, err := validation.ParseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	return s.repo.Update(ctx, p)
}

func (s *portfolioService) Delete(ctx context.Context, id string) (*model.Portfolio, error) {
	pid, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, pid)
}
