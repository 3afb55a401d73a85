package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/domains/portfolio/model"
	usermodel "artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/apperror"
)

type memPortfolios struct {
	rows map[uuid.UUID]*model.Portfolio
}

func (m *memPortfolios) Create(_ context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	for _, r := range m.rows {
		if r.UserID == p.UserID {
			return nil, model.ErrPortfolioExists
		}
	}
	p.ID = uuid.New()
	m.rows[p.ID] = p
	return p, nil
}

func (m *memPortfolios) GetByID(_ context.Context, id uuid.UUID) (*model.Portfolio, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, model.ErrPortfolioNotFound(id.String())
	}
	cp := *p
	return &cp, nil
}

func (m *memPortfolios) List(context.Context, *uuid.UUID, int, int) ([]*model.Portfolio, error) {
	return nil, nil
}

func (m *memPortfolios) Update(_ context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	m.rows[p.ID] = p
	return p, nil
}

func (m *memPortfolios) Delete(_ context.Context, id uuid.UUID) (*model.Portfolio, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, model.ErrPortfolioNotFound(id.String())
	}
	delete(m.rows, id)
	return p, nil
}

type memItems struct {
	rows []*model.Item
}

func (m *memItems) Create(_ context.Context, it *model.Item) (*model.Item, error) {
	it.ID = uuid.New()
	m.rows = append(m.rows, it)
	return it, nil
}

func (m *memItems) GetByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	for _, it := range m.rows {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, model.ErrItemNotFound(id.String())
}

func (m *memItems) ListByPortfolio(_ context.Context, portfolioID uuid.UUID) ([]*model.Item, error) {
	var out []*model.Item
	for _, it := range m.rows {
		if it.PortfolioID == portfolioID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memItems) Update(_ context.Context, it *model.Item) (*model.Item, error) {
	return it, nil
}

func (m *memItems) Delete(_ context.Context, id uuid.UUID) (*model.Item, error) {
	return nil, model.ErrItemNotFound(id.String())
}

func (m *memItems) NextPosition(_ context.Context, portfolioID uuid.UUID) (int, error) {
	next := 0
	for _, it := range m.rows {
		if it.PortfolioID == portfolioID && it.Position >= next {
			next = it.Position + 1
		}
	}
	return next, nil
}

type roleDirectory map[uuid.UUID]usermodel.Role

func (d roleDirectory) GetByID(_ context.Context, id uuid.UUID) (*usermodel.User, error) {
	role, ok := d[id]
	if !ok {
		return nil, usermodel.ErrUserNotFound(id.String())
	}
	return &usermodel.User{ID: id, Role: role}, nil
}

func TestPortfolioService_Create(t *testing.T) {
	ctx := context.Background()
	artist, recruiter := uuid.New(), uuid.New()
	svc := NewPortfolioService(&memPortfolios{rows: map[uuid.UUID]*model.Portfolio{}}, roleDirectory{
		artist:    usermodel.RoleProfessional,
		recruiter: usermodel.RoleRecruiter,
	})

	p, err := svc.Create(ctx, model.CreatePortfolioRequest{UserID: artist.String(), Title: "  Ink works "})
	require.NoError(t, err)
	assert.Equal(t, "Ink works", p.Title)

	_, err = svc.Create(ctx, model.CreatePortfolioRequest{UserID: artist.String(), Title: "Second"})
	assert.True(t, apperror.IsConflict(err), "one portfolio per user")

	_, err = svc.Create(ctx, model.CreatePortfolioRequest{UserID: recruiter.String(), Title: "Nope"})
	assert.ErrorIs(t, err, model.ErrNotProfessional)

	_, err = svc.Create(ctx, model.CreatePortfolioRequest{UserID: uuid.NewString(), Title: "Ghost"})
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Create(ctx, model.CreatePortfolioRequest{UserID: artist.String(), Title: " "})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestPortfolioService_Update(t *testing.T) {
	ctx := context.Background()
	artist := uuid.New()
	svc := NewPortfolioService(&memPortfolios{rows: map[uuid.UUID]*model.Portfolio{}}, roleDirectory{artist: usermodel.RoleProfessional})

	p, err := svc.Create(ctx, model.CreatePortfolioRequest{UserID: artist.String(), Title: "Old", Description: "keep"})
	require.NoError(t, err)

	title := "New"
	updated, err := svc.Update(ctx, model.UpdatePortfolioRequest{ID: p.ID.String(), Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "keep", updated.Description)

	_, err = svc.Update(ctx, model.UpdatePortfolioRequest{ID: uuid.NewString(), Title: &title})
	assert.True(t, apperror.IsNotFound(err))
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()
	portfolios := &memPortfolios{rows: map[uuid.UUID]*model.Portfolio{}}
	items := &memItems{}
	portfolioID := uuid.New()
	portfolios.rows[portfolioID] = &model.Portfolio{ID: portfolioID}
	svc := NewItemService(items, portfolios)

	first, err := svc.Create(ctx, model.CreateItemRequest{
		PortfolioID: portfolioID.String(),
		Title:       "Dragon",
		ImageURL:    "https://cdn.example.com/dragon.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)

	second, err := svc.Create(ctx, model.CreateItemRequest{
		PortfolioID: portfolioID.String(),
		Title:       "Knight",
		ImageURL:    "https://cdn.example.com/knight.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	_, err = svc.Create(ctx, model.CreateItemRequest{
		PortfolioID: uuid.NewString(),
		Title:       "Orphan",
		ImageURL:    "https://cdn.example.com/o.png",
	})
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Create(ctx, model.CreateItemRequest{
		PortfolioID: portfolioID.String(),
		Title:       "No image",
		ImageURL:    "not a url",
	})
	assert.True(t, apperror.IsInvalidArgument(err))

	list, err := svc.ReadAll(ctx, portfolioID.String())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
