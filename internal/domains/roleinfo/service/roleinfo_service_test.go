package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/domains/roleinfo/model"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/apperror"
)

type memArtistInfos struct {
	rows map[uuid.UUID]*model.ArtistInfo
	last *model.CommissionStatus
}

func (m *memArtistInfos) Create(_ context.Context, info *model.ArtistInfo) (*model.ArtistInfo, error) {
	for _, r := range m.rows {
		if r.UserID == info.UserID {
			return nil, model.ErrArtistInfoExists
		}
	}
	info.ID = uuid.New()
	m.rows[info.ID] = info
	return info, nil
}

func (m *memArtistInfos) GetByID(_ context.Context, id uuid.UUID) (*model.ArtistInfo, error) {
	info, ok := m.rows[id]
	if !ok {
		return nil, model.ErrArtistInfoNotFound(id.String())
	}
	cp := *info
	return &cp, nil
}

func (m *memArtistInfos) GetByUserID(_ context.Context, userID uuid.UUID) (*model.ArtistInfo, error) {
	for _, r := range m.rows {
		if r.UserID == userID {
			return r, nil
		}
	}
	return nil, model.ErrArtistInfoNotFound("for user " + userID.String())
}

func (m *memArtistInfos) List(_ context.Context, status *model.CommissionStatus, _, _ int) ([]*model.ArtistInfo, error) {
	m.last = status
	return nil, nil
}

func (m *memArtistInfos) Update(_ context.Context, info *model.ArtistInfo) (*model.ArtistInfo, error) {
	m.rows[info.ID] = info
	return info, nil
}

func (m *memArtistInfos) Delete(_ context.Context, id uuid.UUID) (*model.ArtistInfo, error) {
	return nil, model.ErrArtistInfoNotFound(id.String())
}

func (m *memArtistInfos) SetPaymentAccount(_ context.Context, userID uuid.UUID, accountID string) (*model.ArtistInfo, error) {
	return nil, nil
}

type roles map[uuid.UUID]usermodel.Role

func (r roles) GetByID(_ context.Context, id uuid.UUID) (*usermodel.User, error) {
	role, ok := r[id]
	if !ok {
		return nil, usermodel.ErrUserNotFound(id.String())
	}
	return &usermodel.User{ID: id, Role: role}, nil
}

func TestArtistInfoService_Create(t *testing.T) {
	ctx := context.Background()
	artist, casual := uuid.New(), uuid.New()
	svc := NewArtistInfoService(&memArtistInfos{rows: map[uuid.UUID]*model.ArtistInfo{}}, roles{
		artist: usermodel.RoleProfessional,
		casual: usermodel.RoleCasual,
	})

	price := 40.0
	info, err := svc.Create(ctx, model.CreateArtistInfoRequest{UserID: artist.String(), BasePrice: &price})
	require.NoError(t, err)
	assert.Equal(t, model.CommissionsOpen, info.CommissionStatus)
	assert.True(t, decimal.NewFromInt(40).Equal(*info.BasePrice))
	assert.Nil(t, info.PaymentAccountID)

	_, err = svc.Create(ctx, model.CreateArtistInfoRequest{UserID: artist.String()})
	assert.True(t, apperror.IsConflict(err))

	_, err = svc.Create(ctx, model.CreateArtistInfoRequest{UserID: casual.String()})
	assert.True(t, apperror.IsInvalidArgument(err))

	negative := -1.0
	_, err = svc.Create(ctx, model.CreateArtistInfoRequest{UserID: artist.String(), BasePrice: &negative})
	assert.True(t, apperror.IsInvalidArgument(err))

	_, err = svc.Create(ctx, model.CreateArtistInfoRequest{UserID: artist.String(), CommissionStatus: "maybe"})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestArtistInfoService_UpdateStatusCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	artist := uuid.New()
	repo := &memArtistInfos{rows: map[uuid.UUID]*model.ArtistInfo{}}
	svc := NewArtistInfoService(repo, roles{artist: usermodel.RoleProfessional})

	info, err := svc.Create(ctx, model.CreateArtistInfoRequest{UserID: artist.String()})
	require.NoError(t, err)

	closed := "closed"
	updated, err := svc.Update(ctx, model.UpdateArtistInfoRequest{ID: info.ID.String(), CommissionStatus: &closed})
	require.NoError(t, err)
	assert.Equal(t, model.CommissionsClosed, updated.CommissionStatus)

	_, err = svc.ReadAll(ctx, model.ListArtistInfosRequest{CommissionStatus: "Open"})
	require.NoError(t, err)
	require.NotNil(t, repo.last)
	assert.Equal(t, model.CommissionsOpen, *repo.last)
}

type memRecruiters struct {
	rows map[uuid.UUID]*model.RecruiterInfo
}

func (m *memRecruiters) Create(_ context.Context, info *model.RecruiterInfo) (*model.RecruiterInfo, error) {
	info.ID = uuid.New()
	m.rows[info.ID] = info
	return info, nil
}

func (m *memRecruiters) GetByID(_ context.Context, id uuid.UUID) (*model.RecruiterInfo, error) {
	info, ok := m.rows[id]
	if !ok {
		return nil, model.ErrRecruiterInfoNotFound(id.String())
	}
	return info, nil
}

func (m *memRecruiters) List(context.Context, string, int, int) ([]*model.RecruiterInfo, error) {
	return nil, nil
}

func (m *memRecruiters) Update(_ context.Context, info *model.RecruiterInfo) (*model.RecruiterInfo, error) {
	return info, nil
}

func (m *memRecruiters) Delete(_ context.Context, id uuid.UUID) (*model.RecruiterInfo, error) {
	return nil, model.ErrRecruiterInfoNotFound(id.String())
}

func TestRecruiterInfoService_Create(t *testing.T) {
	ctx := context.Background()
	recruiter, artist := uuid.New(), uuid.New()
	svc := NewRecruiterInfoService(&memRecruiters{rows: map[uuid.UUID]*model.RecruiterInfo{}}, roles{
		recruiter: usermodel.RoleRecruiter,
		artist:    usermodel.RoleProfessional,
	})

	info, err := svc.Create(ctx, model.CreateRecruiterInfoRequest{UserID: recruiter.String(), Company: " Studio Ghibli "})
	require.NoError(t, err)
	assert.Equal(t, "Studio Ghibli", info.Company)

	_, err = svc.Create(ctx, model.CreateRecruiterInfoRequest{UserID: artist.String(), Company: "X"})
	assert.True(t, apperror.IsInvalidArgument(err))

	_, err = svc.Create(ctx, model.CreateRecruiterInfoRequest{UserID: uuid.NewString(), Company: "X"})
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Create(ctx, model.CreateRecruiterInfoRequest{UserID: recruiter.String()})
	assert.True(t, apperror.IsInvalidArgument(err))
}
