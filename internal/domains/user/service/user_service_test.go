package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared/apperror"
)

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[uuid.UUID]model.User{}}
}

func (r *memoryUserRepo) Create(_ context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, model.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return nil, model.ErrUsernameTaken
		}
	}
	stored := *u
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	r.users[stored.ID] = stored
	return &stored, nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound(id.String())
	}
	return &u, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound(email)
}

func (r *memoryUserRepo) List(_ context.Context, f model.ListFilter) ([]*model.User, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.User
	for _, u := range r.users {
		u := u
		if f.Role != nil && u.Role != *f.Role {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(u.Username+" "+u.DisplayName), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, &u)
	}
	return out, len(out), nil
}

func (r *memoryUserRepo) Update(_ context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return nil, model.ErrUserNotFound(u.ID.String())
	}
	r.users[u.ID] = *u
	out := *u
	return &out, nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound(id.String())
	}
	delete(r.users, id)
	return &u, nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID, email, role string) (string, time.Time, error) {
	return "token-" + userID + "-" + role, time.Unix(1700000000, 0), nil
}

func newTestService() (UserService, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	return NewUserService(repo, fakeTokens{}, bcrypt.MinCost), repo
}

func register(t *testing.T, svc UserService, username, role string) *model.LoginResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Username:    username,
		Email:       strings.ToUpper(username) + "@Example.test",
		Password:    "correct horse",
		DisplayName: " " + username + " ",
		Role:        role,
	})
	require.NoError(t, err)
	return resp
}

func codeOf(err error) string {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		return ""
	}
	return appErr.Code
}

func TestRegister_CanonicalRoleAndNormalizedEmail(t *testing.T) {
	svc, repo := newTestService()

	resp := register(t, svc, "ari", "professional")
	assert.Equal(t, model.RoleProfessional, resp.User.Role)
	assert.Equal(t, "ari@example.test", resp.User.Email)
	assert.Equal(t, "ari", resp.User.DisplayName)
	assert.True(t, strings.HasPrefix(resp.AccessToken, "token-"))
	assert.True(t, strings.HasSuffix(resp.AccessToken, "-PROFESSIONAL"))

	stored, err := repo.GetByID(context.Background(), uuid.MustParse(resp.User.ID))
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))

	casual := register(t, svc, "cam", "")
	assert.Equal(t, model.RoleCasual, casual.User.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()
	base := model.RegisterRequest{Username: "ari", Email: "ari@example.test", Password: "longenough"}

	cases := map[string]func(r *model.RegisterRequest){
		"bad email":      func(r *model.RegisterRequest) { r.Email = "nope" },
		"short password": func(r *model.RegisterRequest) { r.Password = "short" },
		"bad username":   func(r *model.RegisterRequest) { r.Username = "a b" },
		"unknown role":   func(r *model.RegisterRequest) { r.Role = "admin" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := base
			mutate(&req)
			_, err := svc.Register(context.Background(), req)
			assert.Equal(t, apperror.CodeInvalidArgument, codeOf(err))
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "ari", "")

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "other", Email: "ARI@example.test", Password: "longenough",
	})
	assert.Equal(t, apperror.CodeConflict, codeOf(err))
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	registered := register(t, svc, "ari", "recruiter")

	resp, err := svc.Login(context.Background(), model.LoginRequest{Email: "ARI@example.test", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	_, err = svc.Login(context.Background(), model.LoginRequest{Email: "ari@example.test", Password: "wrong password"})
	assert.Equal(t, apperror.CodeUnauthorized, codeOf(err))

	_, err = svc.Login(context.Background(), model.LoginRequest{Email: "ghost@example.test", Password: "whatever1"})
	assert.Equal(t, apperror.CodeUnauthorized, codeOf(err))
}

func TestUpdate_RoleAndFields(t *testing.T) {
	svc, _ := newTestService()
	resp := register(t, svc, "ari", "")

	bio := "I paint dragons"
	updated, err := svc.Update(context.Background(), model.UpdateUserRequest{
		ID:   resp.User.ID,
		Bio:  &bio,
		Role: strPtr("Professional"),
	})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, model.RoleProfessional, updated.Role)

	_, err = svc.Update(context.Background(), model.UpdateUserRequest{ID: resp.User.ID, Role: strPtr("wizard")})
	assert.Equal(t, apperror.CodeInvalidArgument, codeOf(err))

	_, err = svc.Update(context.Background(), model.UpdateUserRequest{ID: uuid.NewString(), Bio: &bio})
	assert.Equal(t, apperror.CodeNotFound, codeOf(err))

	_, err = svc.Update(context.Background(), model.UpdateUserRequest{ID: "bad", Bio: &bio})
	assert.Equal(t, apperror.CodeInvalidArgument, codeOf(err))
}

func TestReadAll_FilterByRole(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "ari", "professional")
	register(t, svc, "bo", "casual")

	users, total, err := svc.ReadAll(context.Background(), model.ListUsersRequest{Role: strPtr("PROFESSIONAL")})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "ari", users[0].Username)

	_, _, err = svc.ReadAll(context.Background(), model.ListUsersRequest{Role: strPtr("boss")})
	assert.Equal(t, apperror.CodeInvalidArgument, codeOf(err))
}

func TestGetBasicInfoAndDelete(t *testing.T) {
	svc, _ := newTestService()
	resp := register(t, svc, "ari", "")
	id := uuid.MustParse(resp.User.ID)

	info, err := svc.GetBasicInfo(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ari@example.test", info.Email)
	assert.Equal(t, "ari", info.FullName)

	_, err = svc.Delete(context.Background(), resp.User.ID)
	require.NoError(t, err)

	_, err = svc.GetBasicInfo(context.Background(), id)
	assert.Equal(t, apperror.CodeNotFound, codeOf(err))
}

func strPtr(s string) *string { return &s }
