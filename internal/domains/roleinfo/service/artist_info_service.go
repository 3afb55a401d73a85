package service

import (
	"context"

	"artisthub-backend/internal/domains/roleinfo/model"
	"artisthub-backend/internal/domains/roleinfo/repository"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/internal/shared/validation"
)

type artistInfoService struct {
	repo  repository.ArtistInfoRepository
	users UserReader
}

func NewArtistInfoService(repo repository.ArtistInfoRepository, users UserReader) ArtistInfoService {
	return &artistInfoService{repo: repo, users: users}
}

func (s *artistInfoService) Create(ctx context.Context, req model.CreateArtistInfoRequest) (*model.ArtistInfo, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	userID, err := validation.ParseID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(ctx, s.users, userID, usermodel.RoleProfessional); err != nil {
		return nil, err
	}

	status := model.CommissionsOpen
	if parsed, ok := model.ParseCommissionStatus(req.CommissionStatus); ok {
		status = parsed
	}

	return s.repo.Create(ctx, &model.ArtistInfo{
		UserID:           userID,
		CommissionStatus: status,
		BasePrice:        req.BasePriceDecimal(),
	})
}

func (s *artistInfoService) Read(ctx context.Context, id string) (*model.ArtistInfo, error) {
	infoID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, infoID)
}

func (s *artistInfoService) ReadByUser(ctx context.Context, userID string) (*model.ArtistInfo, error) {
	uid, err := validation.ParseID("user_id", userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByUserID(ctx, uid)
}

func (s *artistInfoService) ReadAll(ctx context.Context, req model.ListArtistInfosRequest) ([]*model.ArtistInfo, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	var status *model.CommissionStatus
	if parsed, ok := model.ParseCommissionStatus(req.CommissionStatus); ok {
		status = &parsed
	}
	limit, offset := paging(req.Page, req.Limit, 20)
	return s.repo.List(ctx, status, limit, offset)
}

// Update: payment_account_id chỉ đổi qua onboarding
func (s *artistInfoService) Update(ctx context.Context, req model.UpdateArtistInfoRequest) (*model.ArtistInfo, error) {
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

	if req.CommissionStatus != nil {
		status, _ := model.ParseCommissionStatus(*req.CommissionStatus)
		info.CommissionStatus = status
	}
	if req.BasePrice != nil {
		info.BasePrice = utils.ParseFloatToDecimal(req.BasePrice)
	}
	return s.repo.Update(ctx, info)
}

func (s *artistInfoService) Delete(ctx context.Context, id string) (*model.ArtistInfo, error) {
	infoID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, infoID)
}
