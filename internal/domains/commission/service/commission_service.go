package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/domains/commission/repository"
	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/internal/shared/validation"
)

// Config: StrictTransitions bật guard cho Update
type Config struct {
	StrictTransitions bool
}

type commissionService struct {
	repo     repository.CommissionRepository
	users    UserLookup
	notifier Notifier
	payments PaymentLinker
	cfg      Config
}

// NewCommissionService: payments có thể nil khi chưa cấu hình cổng thanh toán
func NewCommissionService(
	repo repository.CommissionRepository,
	users UserLookup,
	notifier Notifier,
	payments PaymentLinker,
	cfg Config,
) CommissionService {
	return &commissionService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		payments: payments,
		cfg:      cfg,
	}
}

// ========================================
// CREATE
// ========================================

func (s *commissionService) Create(ctx context.Context, req model.CreateCommissionRequest) (*model.Commission, error) {
	// 1. shape
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	artistID, err := validation.ParseID("artist_id", req.ArtistID)
	if err != nil {
		return nil, err
	}
	commissionerID, err := validation.ParseID("commissioner_id", req.CommissionerID)
	if err != nil {
		return nil, err
	}

	// 2. existence
	artist, err := s.users.GetBasicInfo(ctx, artistID)
	if err != nil {
		return nil, err
	}
	commissioner, err := s.users.GetBasicInfo(ctx, commissionerID)
	if err != nil {
		return nil, err
	}

	// 3. status/price của caller bị bỏ qua
	created, err := s.repo.Create(ctx, &model.Commission{
		ArtistID:       artistID,
		CommissionerID: commissionerID,
		Title:          req.Title,
		Description:    req.Description,
		Notes:          req.Notes,
		Price:          nil,
		Status:         model.StatusRequested,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("commission_id", created.ID.String()).
		Str("artist_id", artistID.String()).
		Str("commissioner_id", commissionerID.String()).
		Msg("Commission requested")

	s.recordTransition("", created.Status)
	s.notifyWith(ctx, created, model.StatusRequested, "", artist, commissioner)
	return created, nil
}

// ========================================
// READ
// ========================================

func (s *commissionService) Read(ctx context.Context, id string) (*model.Commission, error) {
	commissionID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, commissionID)
}

func (s *commissionService) ReadAll(ctx context.Context, req model.ListCommissionsRequest) ([]*model.Commission, int, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, 0, err
	}

	var filter model.ListFilter
	var err error
	if filter.ArtistID, err = validation.ParseOptionalID("artist_id", req.ArtistID); err != nil {
		return nil, 0, err
	}
	if filter.CommissionerID, err = validation.ParseOptionalID("commissioner_id", req.CommissionerID); err != nil {
		return nil, 0, err
	}
	if req.Status != nil && *req.Status != "" {
		status, ok := model.ParseStatus(*req.Status)
		if !ok {
			return nil, 0, model.ErrIllegalStatus(*req.Status)
		}
		filter.Status = &status
	}

	filter.Limit = req.Limit
	if filter.Limit <= 0 {
		filter.Limit = model.DefaultPageSize
	}
	if req.Page > 1 {
		filter.Offset = (req.Page - 1) * filter.Limit
	}

	return s.repo.List(ctx, filter)
}

// ========================================
// UPDATE
// ========================================

// Update áp dụng price và/hoặc status. Mặc định không kiểm tra transition;
// StrictTransitions=true thì status mới phải là cạnh hợp lệ của state machine.
func (s *commissionService) Update(ctx context.Context, req model.UpdateCommissionRequest) (*model.Commission, error) {
	// 1. shape: id, price, status
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	id, err := validation.ParseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	var newStatus *model.Status
	if req.Status != nil {
		status, ok := model.ParseStatus(*req.Status)
		if !ok {
			return nil, model.ErrIllegalStatus(*req.Status)
		}
		newStatus = &status
	}

	// 2. existence
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if req.Price != nil {
		next.Price = utils.ParseFloatToDecimal(req.Price)
	}
	if newStatus != nil {
		if s.cfg.StrictTransitions && *newStatus != current.Status &&
			!model.Lifecycle.CanTransition(current.Status, *newStatus) {
			return nil, model.ErrIllegalTransition(current.Status, *newStatus)
		}
		next.Status = *newStatus
	}

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, err
	}

	if updated.Status != current.Status {
		log.Info().
			Str("commission_id", updated.ID.String()).
			Str("from", string(current.Status)).
			Str("to", string(updated.Status)).
			Msg("Commission status updated")

		s.recordTransition(current.Status, updated.Status)
		if updated.Status != model.StatusRequested {
			s.notify(ctx, updated, "")
		}
	}
	return updated, nil
}

// ========================================
// DELETE
// ========================================

func (s *commissionService) Delete(ctx context.Context, id string) (*model.Commission, error) {
	commissionID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	deleted, err := s.repo.Delete(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	log.Info().Str("commission_id", deleted.ID.String()).Msg("Commission deleted")
	return deleted, nil
}
