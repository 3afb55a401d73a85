package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/domains/user/repository"
	"artisthub-backend/internal/shared"
	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/validation"
)

// DefaultBcryptCost = 12: cân bằng giữa security và performance
const DefaultBcryptCost = 12

type userService struct {
	repo       repository.UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

func NewUserService(repo repository.UserRepository, tokens TokenIssuer, bcryptCost int) UserService {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &userService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error) {
	u, err := s.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, model.NormalizeEmail(req.Email))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("user_id", u.ID.String()).Msg("Failed login attempt")
		return nil, model.ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *userService) issue(u *model.User) (*model.LoginResponse, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Email, string(u.Role))
	if err != nil {
		return nil, apperror.Internal("failed to issue token", err)
	}
	return &model.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        u.ToResponse(),
	}, nil
}

// ========================================
// CRUD
// ========================================

func (s *userService) Create(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}

	role := model.RoleCasual
	if req.Role != "" {
		role, _ = model.ParseRole(req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, apperror.Internal("failed to hash password", err)
	}

	created, err := s.repo.Create(ctx, &model.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        model.NormalizeEmail(req.Email),
		PasswordHash: string(hash),
		Role:         role,
		DisplayName:  strings.TrimSpace(req.DisplayName),
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", created.ID.String()).Str("role", string(created.Role)).Msg("User created")
	return created, nil
}

func (s *userService) Read(ctx context.Context, id string) (*model.User, error) {
	userID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) ReadAll(ctx context.Context, req model.ListUsersRequest) ([]*model.User, int, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, 0, err
	}

	filter := model.ListFilter{
		Search: strings.TrimSpace(req.Search),
		Limit:  req.Limit,
	}
	if req.Role != nil && *req.Role != "" {
		role, _ := model.ParseRole(*req.Role)
		filter.Role = &role
	}
	if filter.Limit <= 0 {
		filter.Limit = model.DefaultPageSize
	}
	if req.Page > 1 {
		filter.Offset = (req.Page - 1) * filter.Limit
	}
	return s.repo.List(ctx, filter)
}

func (s *userService) Update(ctx context.Context, req model.UpdateUserRequest) (*model.User, error) {
	if err := validation.Check(req.Validate()); err != nil {
		return nil, err
	}
	userID, err := validation.ParseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		u.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Role != nil {
		u.Role, _ = model.ParseRole(*req.Role)
	}
	if req.AvatarURL != nil {
		u.AvatarURL = req.AvatarURL
	}

	return s.repo.Update(ctx, u)
}

func (s *userService) Delete(ctx context.Context, id string) (*model.User, error) {
	userID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	deleted, err := s.repo.Delete(ctx, userID)
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", deleted.ID.String()).Msg("User deleted")
	return deleted, nil
}

func (s *userService) GetBasicInfo(ctx context.Context, id uuid.UUID) (*shared.UserBasicInfo, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserBasicInfo{
		ID:       u.ID.String(),
		Email:    u.Email,
		FullName: u.Name(),
	}, nil
}
