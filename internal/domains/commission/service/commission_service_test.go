package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/shared"
	"artisthub-backend/internal/shared/apperror"
)

type fixture struct {
	svc          CommissionService
	repo         *memoryRepo
	notifier     *recordingNotifier
	linker       *stubLinker
	artist       uuid.UUID
	commissioner uuid.UUID
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	artist, commissioner := uuid.New(), uuid.New()
	users := userDirectory{
		artist:       {ID: artist.String(), Email: "artist@example.test", FullName: "Ari Artist"},
		commissioner: {ID: commissioner.String(), Email: "client@example.test", FullName: "Cam Client"},
	}
	f := &fixture{
		repo:         newMemoryRepo(),
		notifier:     &recordingNotifier{},
		linker:       &stubLinker{},
		artist:       artist,
		commissioner: commissioner,
	}
	f.svc = NewCommissionService(f.repo, users, f.notifier, f.linker, cfg)
	return f
}

func (f *fixture) create(t *testing.T) *model.Commission {
	t.Helper()
	c, err := f.svc.Create(context.Background(), model.CreateCommissionRequest{
		ArtistID:       f.artist.String(),
		CommissionerID: f.commissioner.String(),
		Title:          "Dragon",
		Description:    "fantasy dragon bust",
	})
	require.NoError(t, err)
	return c
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code, appErr.Message)
}

// ========================================
// CREATE
// ========================================

func TestCreate_ForcesRequestedAndIgnoresCallerPriceStatus(t *testing.T) {
	f := newFixture(t, Config{})
	notes := "3/4 view"

	c, err := f.svc.Create(context.Background(), model.CreateCommissionRequest{
		ArtistID:       f.artist.String(),
		CommissionerID: f.commissioner.String(),
		Title:          "Dragon",
		Description:    "fantasy dragon bust",
		Notes:          &notes,
		Price:          floatPtr(500),
		Status:         strPtr("COMPLETED"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusRequested, c.Status)
	assert.Nil(t, c.Price)

	// round trip
	read, err := f.svc.Read(context.Background(), c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, f.artist, read.ArtistID)
	assert.Equal(t, f.commissioner, read.CommissionerID)
	assert.Equal(t, "Dragon", read.Title)
	assert.Equal(t, "fantasy dragon bust", read.Description)
	require.NotNil(t, read.Notes)
	assert.Equal(t, notes, *read.Notes)

	// notify artist "request started"
	require.Len(t, f.notifier.sent, 1)
	p := f.notifier.last()
	assert.Equal(t, shared.NotifyRequested, p.Kind)
	assert.Equal(t, []shared.Party{shared.PartyArtist}, p.Recipients)
	assert.Equal(t, "Ari Artist", p.Artist.FullName)
	assert.Equal(t, "client@example.test", p.Commissioner.Email)
	assert.Equal(t, c.ID.String(), p.CommissionID)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t, Config{})
	valid := func() model.CreateCommissionRequest {
		return model.CreateCommissionRequest{
			ArtistID:       f.artist.String(),
			CommissionerID: f.commissioner.String(),
			Title:          "Dragon",
			Description:    "fantasy dragon bust",
		}
	}

	tests := []struct {
		name   string
		mutate func(r *model.CreateCommissionRequest)
		code   string
	}{
		{"malformed artist id", func(r *model.CreateCommissionRequest) { r.ArtistID = "not-a-uuid" }, apperror.CodeInvalidArgument},
		{"missing commissioner id", func(r *model.CreateCommissionRequest) { r.CommissionerID = "" }, apperror.CodeInvalidArgument},
		{"blank title", func(r *model.CreateCommissionRequest) { r.Title = "   " }, apperror.CodeInvalidArgument},
		{"missing description", func(r *model.CreateCommissionRequest) { r.Description = "" }, apperror.CodeInvalidArgument},
		{"negative price", func(r *model.CreateCommissionRequest) { r.Price = floatPtr(-0.01) }, apperror.CodeInvalidArgument},
		{"price over column limit", func(r *model.CreateCommissionRequest) { r.Price = floatPtr(1e10) }, apperror.CodeInvalidArgument},
		{"unknown artist", func(r *model.CreateCommissionRequest) { r.ArtistID = uuid.NewString() }, apperror.CodeNotFound},
		{"unknown commissioner", func(r *model.CreateCommissionRequest) { r.CommissionerID = uuid.NewString() }, apperror.CodeNotFound},
		// shape trước existence
		{"malformed beats missing", func(r *model.CreateCommissionRequest) {
			r.ArtistID = uuid.NewString()
			r.CommissionerID = "nope"
		}, apperror.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			_, err := f.svc.Create(context.Background(), req)
			assertCode(t, err, tt.code)
		})
	}
	assert.Empty(t, f.notifier.sent)
}

func TestCreate_NonNegativePricesAccepted(t *testing.T) {
	f := newFixture(t, Config{})
	for _, p := range []float64{0, 0.5, 50, 1e6} {
		c, err := f.svc.Create(context.Background(), model.CreateCommissionRequest{
			ArtistID:       f.artist.String(),
			CommissionerID: f.commissioner.String(),
			Title:          "t",
			Description:    "d",
			Price:          floatPtr(p),
		})
		require.NoError(t, err)
		assert.Nil(t, c.Price)
	}
}

// ========================================
// READ
// ========================================

func TestRead_IdempotentAndErrors(t *testing.T) {
	f := newFixture(t, Config{})
	c := f.create(t)

	a, err := f.svc.Read(context.Background(), c.ID.String())
	require.NoError(t, err)
	b, err := f.svc.Read(context.Background(), c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = f.svc.Read(context.Background(), "bad")
	assertCode(t, err, apperror.CodeInvalidArgument)
	_, err = f.svc.Read(context.Background(), uuid.NewString())
	assertCode(t, err, apperror.CodeNotFound)
}

func TestReadAll_Filters(t *testing.T) {
	f := newFixture(t, Config{})
	first := f.create(t)
	f.create(t)
	_, err := f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: first.ID.String(), Status: strPtr("pending")})
	require.NoError(t, err)

	items, total, err := f.svc.ReadAll(context.Background(), model.ListCommissionsRequest{Status: strPtr("Pending")})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID)

	artist := f.artist.String()
	_, total, err = f.svc.ReadAll(context.Background(), model.ListCommissionsRequest{ArtistID: &artist})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	stranger := uuid.NewString()
	items, _, err = f.svc.ReadAll(context.Background(), model.ListCommissionsRequest{CommissionerID: &stranger})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReadAll_InvalidFilters(t *testing.T) {
	f := newFixture(t, Config{})
	for _, s := range []string{"done", "REQUESTEDX", "cancelled"} {
		_, _, err := f.svc.ReadAll(context.Background(), model.ListCommissionsRequest{Status: strPtr(s)})
		assertCode(t, err, apperror.CodeInvalidArgument)
	}
	_, _, err := f.svc.ReadAll(context.Background(), model.ListCommissionsRequest{ArtistID: strPtr("x")})
	assertCode(t, err, apperror.CodeInvalidArgument)
	_, _, err = f.svc.ReadAll(context.Background(), model.ListCommissionsRequest{Limit: 1000})
	assertCode(t, err, apperror.CodeInvalidArgument)
	_, _, err = f.svc.ReadAll(context.Background(), model.ListCommissionsRequest{Page: 1 << 60, Limit: 100})
	assertCode(t, err, apperror.CodeInvalidArgument)
}

// ========================================
// UPDATE
// ========================================

func TestUpdate_PriceValidation(t *testing.T) {
	f := newFixture(t, Config{})
	c := f.create(t)

	for _, p := range []float64{-1, 1e10, 1e12, 10.005} {
		_, err := f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: c.ID.String(), Price: floatPtr(p)})
		assertCode(t, err, apperror.CodeInvalidArgument)
	}
	stored, err := f.svc.Read(context.Background(), c.ID.String())
	require.NoError(t, err)
	assert.Nil(t, stored.Price)

	for _, p := range []float64{0, 12.5, 99999} {
		updated, err := f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: c.ID.String(), Price: floatPtr(p)})
		require.NoError(t, err)
		require.NotNil(t, updated.Price)
		assert.Equal(t, p, updated.Price.InexactFloat64())
		assert.Equal(t, model.StatusRequested, updated.Status)
	}
}

func TestUpdate_StatusValidation(t *testing.T) {
	f := newFixture(t, Config{})
	c := f.create(t)

	for _, s := range []string{"", "DONE", "cancel", "PAYED"} {
		_, err := f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr(s)})
		assertCode(t, err, apperror.CodeInvalidArgument)
	}

	updated, err := f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("accepted")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, updated.Status)
}

func TestUpdate_IdErrors(t *testing.T) {
	f := newFixture(t, Config{})

	_, err := f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: uuid.NewString(), Price: floatPtr(1)})
	assertCode(t, err, apperror.CodeNotFound)

	_, err = f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: "12", Price: floatPtr(1)})
	assertCode(t, err, apperror.CodeInvalidArgument)

	// shape trước existence
	_, err = f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: uuid.NewString(), Price: floatPtr(-3)})
	assertCode(t, err, apperror.CodeInvalidArgument)
}

func TestUpdate_ScenarioHappyPath(t *testing.T) {
	f := newFixture(t, Config{})
	ctx := context.Background()
	c := f.create(t)
	assert.Equal(t, model.StatusRequested, c.Status)

	c, err := f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Price: floatPtr(50), Status: strPtr("PENDING")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, c.Status)
	assert.Equal(t, "50", c.Price.String())

	c, err = f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("PAID")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, c.Status)

	c, err = f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("COMPLETED")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, c.Status)

	assert.Equal(t, []shared.NotificationKind{
		shared.NotifyRequested,
		shared.NotifyPriceSet,
		shared.NotifyPaid,
		shared.NotifyCompleted,
	}, f.notifier.kinds())
	assert.Equal(t, "50.00", f.notifier.sent[1].Price)
}

func TestUpdate_PermissiveAfterRejection(t *testing.T) {
	f := newFixture(t, Config{})
	ctx := context.Background()
	c := f.create(t)

	c, err := f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("REJECTED")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, c.Status)
	assert.ElementsMatch(t, []shared.Party{shared.PartyArtist, shared.PartyCommissioner}, f.notifier.last().Recipients)

	c, err = f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Price: floatPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, c.Status)
	assert.Equal(t, "10", c.Price.String())

	// jump không hợp lệ vẫn được chấp nhận ở chế độ mặc định
	c, err = f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("COMPLETED")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, c.Status)
}

func TestUpdate_StrictTransitions(t *testing.T) {
	f := newFixture(t, Config{StrictTransitions: true})
	ctx := context.Background()
	c := f.create(t)

	_, err := f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("COMPLETED")})
	assertCode(t, err, apperror.CodeInvalidArgument)

	// cùng status + đổi giá vẫn hợp lệ
	c, err = f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("requested"), Price: floatPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, model.StatusRequested, c.Status)

	c, err = f.svc.Update(ctx, model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("PENDING")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, c.Status)
}

func TestUpdate_NotifierFailureDoesNotFail(t *testing.T) {
	f := newFixture(t, Config{})
	f.notifier.err = assert.AnError

	c := f.create(t)
	updated, err := f.svc.Update(context.Background(), model.UpdateCommissionRequest{ID: c.ID.String(), Status: strPtr("PENDING")})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, updated.Status)
	assert.Len(t, f.notifier.sent, 2)
}

// ========================================
// DELETE
// ========================================

func TestDelete(t *testing.T) {
	f := newFixture(t, Config{})
	c := f.create(t)

	deleted, err := f.svc.Delete(context.Background(), c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)

	_, err = f.svc.Read(context.Background(), c.ID.String())
	assertCode(t, err, apperror.CodeNotFound)
	_, err = f.svc.Delete(context.Background(), c.ID.String())
	assertCode(t, err, apperror.CodeNotFound)
	_, err = f.svc.Delete(context.Background(), "x")
	assertCode(t, err, apperror.CodeInvalidArgument)
}
