package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/profile/model"
	"artisthub-backend/internal/domains/profile/repository"
	tagrepo "artisthub-backend/internal/domains/tag/repository"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/internal/shared/validation"
	pkgdb "artisthub-backend/pkg/database"
)

type ProfileService interface {
	Create(ctx context.Context, req model.CreateProfileRequest) (*model.Profile, error)
	Read(ctx context.Context, id string) (*model.Profile, error)
	ReadByUser(ctx context.Context, userID string) (*model.Profile, error)
	ReadAll(ctx context.Context, req model.ListProfilesRequest) ([]*model.Profile, error)
	Update(ctx context.Context, req model.UpdateProfileRequest) (*model.Profile, error)
	Delete(ctx context.Context, id string) (*model.Profile, error)
}

// UserReader: user repository thỏa mãn interface này
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	tags  tagrepo.TagRepository
	users UserReader
	tx    pkgdb.TxManager
}

func NewProfileService(
	repo repository.ProfileRepository,
	tags tagrepo.TagRepository,
	users UserReader,
	tx pkgdb.TxManager,
) ProfileService {
	return &profileService{repo: repo, tags: tags, users: users, tx: tx}
}

// Create: tạo profile + upsert tag + link trong cùng một transaction
func (s *profileService) Create(ctx context.Context, req model.CreateProfileRequest) (*model.Profile, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	userID, err := validation.ParseID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	tagNames := utils.NormalizeTags(req.Tags)
	var created *model.Profile
	err = s.tx.RunInTx(ctx, func(tx pkgdb.DBTX) error {
		p, err := s.repo.WithTx(tx).Create(ctx, &model.Profile{
			UserID:    userID,
			Headline:  strings.TrimSpace(req.Headline),
			Location:  strings.TrimSpace(req.Location),
			Website:   strings.TrimSpace(req.Website),
			BannerURL: req.BannerURL,
		})
		if err != nil {
			return err
		}
		if err := s.linkTags(ctx, tx, p.ID, tagNames); err != nil {
			return err
		}
		p.Tags = tagNames
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("profile_id", created.ID.String()).Int("tags", len(tagNames)).Msg("Profile created")
	return created, nil
}

func (s *profileService) linkTags(ctx context.Context, tx pkgdb.DBTX, profileID uuid.UUID, names []string) error {
	tags, err := s.tags.WithTx(tx).UpsertMany(ctx, names)
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return s.repo.WithTx(tx).ReplaceTags(ctx, profileID, ids)
}

func (s *profileService) Read(ctx context.Context, id string) (*model.Profile, error) {
	profileID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, profileID)
}

func (s *profileService) ReadByUser(ctx context.Context, userID string) (*model.Profile, error) {
	uid, err := validation.ParseID("user_id", userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByUserID(ctx, uid)
}

func (s *profileService) ReadAll(ctx context.Context, req model.ListProfilesRequest) ([]*model.Profile, error) {
	if err := validation.Check(req.Validate()); err != nil {
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
	return s.repo.List(ctx, strings.ToLower(strings.TrimSpace(req.Tag)), limit, offset)
}

func (s *profileService) Update(ctx context.Context, req model.UpdateProfileRequest) (*model.Profile, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	profileID, err := validation.ParseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if req.Headline != nil {
		p.Headline = strings.TrimSpace(*req.Headline)
	}
	if req.Location != nil {
		p.Location = strings.TrimSpace(*req.Location)
	}
	if req.Website != nil {
		p.Website = strings.TrimSpace(*req.Website)
	}
	if req.BannerURL != nil {
		p.BannerURL = req.BannerURL
	}

	err = s.tx.RunInTx(ctx, func(tx pkgdb.DBTX) error {
		if _, err := s.repo.WithTx(tx).Update(ctx, p); err != nil {
			return err
		}
		if req.Tags == nil {
			return nil
		}
		names := utils.NormalizeTags(req.Tags)
		if err := s.linkTags(ctx, tx, p.ID, names); err != nil {
			return err
		}
		p.Tags = names
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Delete(ctx context.Context, id string) (*model.Profile, error) {
	profileID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, profileID)
}
