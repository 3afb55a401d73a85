package service

import (
	"context"

	"github.com/google/uuid"

	"artisthub-backend/internal/domains/roleinfo/model"
	usermodel "artisthub-backend/internal/domains/user/model"
)

type ArtistInfoService interface {
	Create(ctx context.Context, req model.CreateArtistInfoRequest) (*model.ArtistInfo, error)
	Read(ctx context.Context, id string) (*model.ArtistInfo, error)
	ReadByUser(ctx context.Context, userID string) (*model.ArtistInfo, error)
	ReadAll(ctx context.Context, req model.ListArtistInfosRequest) ([]*model.ArtistInfo, error)
	Update(ctx context.Context, req model.UpdateArtistInfoRequest) (*model.ArtistInfo, error)
	Delete(ctx context.Context, id string) (*model.ArtistInfo, error)
}

type RecruiterInfoService interface {
	Create(ctx context.Context, req model.CreateRecruiterInfoRequest) (*model.RecruiterInfo, error)
	Read(ctx context.Context, id string) (*model.RecruiterInfo, error)
	ReadAll(ctx context.Context, req model.ListRecruiterInfosRequest) ([]*model.RecruiterInfo, error)
	Update(ctx context.Context, req model.UpdateRecruiterInfoRequest) (*model.RecruiterInfo, error)
	Delete(ctx context.Context, id string) (*model.RecruiterInfo, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error)
}

// requireRole: info record chỉ gắn với user đúng role
func requireRole(ctx context.Context, users UserReader, userID uuid.UUID, role usermodel.Role) error {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.Role != role {
		return model.ErrRoleMismatch(string(role))
	}
	return nil
}

func paging(page, limit, fallback int) (int, int) {
	if limit == 0 {
		limit = fallback
	}
	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}
	return limit, offset
}
