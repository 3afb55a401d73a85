package service

import (
	"context"
	"strings"

	"artisthub-backend/internal/domains/roleinfo/model"
	"artisthub-backend/internal/domains/roleinfo/repository"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/validation"
)

type recruiterInfoService struct {
	repo  repository.RecruiterInfoRepository
	users UserReader
}

func NewRecruiterInfoService(repo repository.RecruiterInfoRepository, users UserReader) RecruiterInfoService {
	return &recruiterInfoService{repo: repo, users: users}
}

func (s *recruiterInfoService) Create(ctx context.Context, req model.CreateRecruiterInfoRequest) (*model.RecruiterInfo, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	userID, err := validation.ParseID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(ctx, s.users, userID, usermodel.RoleRecruiter); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.RecruiterInfo{
		UserID:   userID,
		Company:  strings.TrimSpace(req.Company),
		Position: strings.TrimSpace(req.Position),
	})
}

func (s *recruiterInfoService) Read(ctx context.Context, id string) (*model.RecruiterInfo, error) {
	infoID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, infoID)
}

func (s *recruiterInfoService) ReadAll(ctx context.Context, req model.ListRecruiterInfosRequest) ([]*model.RecruiterInfo, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	limit, offset := paging(req.Page, req.Limit, 20)
	return s.repo.List(ctx, strings.TrimSpace(req.Company), limit, offset)
}

func (s *recruiterInfoService) Update(ctx context.Context, req model.UpdateRecruiterInfoRequest) (*model.RecruiterInfo, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	infoID, err := validation.ParseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	info, err := s.repo.GetByID(ctx, infoID)
	if err != nil {
		return nil, err
	}
	if req.Company != nil {
		info.Company = strings.TrimSpace(*req.Company)
	}
	if req.Position != nil {
		info.Position = strings.TrimSpace(*req.Position)
	}
	return s.repo.Update(ctx, info)
}

func (s *recruiterInfoService) Delete(ctx context.Context, id string) (*model.RecruiterInfo, error) {
	infoID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, infoID)
}
